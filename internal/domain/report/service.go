package report

import (
	"context"
	"io"
	"time"
)

// Dimension selects which report a summary covers.
type Dimension int

const (
	// DimensionGeneral tallies the whole filtered population.
	DimensionGeneral Dimension = iota
	// DimensionDeaths restricts to deceased persons and counts death types.
	DimensionDeaths
	// DimensionDisabilities restricts to disabled persons and counts
	// disability types.
	DimensionDisabilities
)

// SummaryRow is one group's tallies in ranked order.
type SummaryRow struct {
	Group      string         `json:"group"`
	Male       int            `json:"male"`
	Female     int            `json:"female"`
	Members    int            `json:"members"`
	Households int            `json:"households"`
	AverageAge float64        `json:"average_age"`
	Categories map[string]int `json:"categories,omitempty"`
}

type Service struct {
	repo Repository
	opts Options
	now  func() time.Time
}

func NewService(repo Repository, genders GenderLabels) *Service {
	return &Service{
		repo: repo,
		opts: Options{Genders: genders},
		now:  time.Now,
	}
}

// List returns the records matching the criteria, in gateway order.
func (s *Service) List(ctx context.Context, crit Criteria) ([]Record, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, err
	}
	return s.withAsOf(crit).Filter(records), nil
}

// Summary filters, aggregates by village and ranks the groups descending by
// member count.
func (s *Service) Summary(ctx context.Context, crit Criteria, dim Dimension) ([]SummaryRow, error) {
	grouped, err := s.aggregate(ctx, crit, dim)
	if err != nil {
		return nil, err
	}

	keys := grouped.Rank(RankByMembers)
	rows := make([]SummaryRow, 0, len(keys))
	for _, key := range keys {
		t, _ := grouped.Tally(key)
		row := SummaryRow{
			Group:      key,
			Male:       t.Male,
			Female:     t.Female,
			Members:    t.Members,
			Households: t.Households(),
			AverageAge: t.AverageAge(),
		}
		if dim != DimensionGeneral {
			row.Categories = t.Categories()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GenderChart builds the per-village gender bar chart for the filtered set.
func (s *Service) GenderChart(ctx context.Context, crit Criteria) (BarChart, error) {
	grouped, err := s.aggregate(ctx, crit, DimensionGeneral)
	if err != nil {
		return BarChart{}, err
	}
	return grouped.GenderBarChart(RankByMembers, s.opts.Genders.Male, s.opts.Genders.Female), nil
}

// PopulationChart builds the per-village population pie for the filtered set.
func (s *Service) PopulationChart(ctx context.Context, crit Criteria) (PieChart, error) {
	grouped, err := s.aggregate(ctx, crit, DimensionGeneral)
	if err != nil {
		return PieChart{}, err
	}
	return grouped.PopulationPie(RankByMembers), nil
}

// ExportCSV streams the filtered records through the fixed projection.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, crit Criteria) error {
	records, err := s.List(ctx, crit)
	if err != nil {
		return err
	}
	return WriteCSV(w, records, s.AsOf(crit))
}

func (s *Service) aggregate(ctx context.Context, crit Criteria, dim Dimension) (*Grouped, error) {
	crit = s.withAsOf(crit)

	var category CategoryFunc
	switch dim {
	case DimensionDeaths:
		deceased := true
		crit.Deceased = &deceased
		category = DeathTypeCategories
	case DimensionDisabilities:
		disabled := true
		crit.Disabled = &disabled
		category = DisabilityTypeCategories
	}

	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, err
	}

	opts := s.opts
	opts.AsOf = crit.AsOf
	return Aggregate(crit.Filter(records), ByVillage, category, opts), nil
}

// AsOf resolves the reference date for age math, defaulting to now.
func (s *Service) AsOf(crit Criteria) time.Time {
	if !crit.AsOf.IsZero() {
		return crit.AsOf
	}
	return s.now()
}

func (s *Service) withAsOf(crit Criteria) Criteria {
	crit.AsOf = s.AsOf(crit)
	return crit
}
