package report

import (
	"sort"
	"time"
)

// GroupUnspecified is the bucket for records whose group key is blank, so a
// null village never produces an undefined-keyed group.
const GroupUnspecified = "unspecified"

// GenderLabels holds the two literal gender values present in the source
// data. They are configuration, not hardcoded: the registry stores
// locale-specific strings.
type GenderLabels struct {
	Male   string
	Female string
}

// Options configures one aggregation pass.
type Options struct {
	Genders GenderLabels
	// AsOf anchors age computation; zero means time.Now at call time.
	AsOf time.Time
}

// KeyFunc derives the grouping key for a record. Blank keys are routed to
// GroupUnspecified.
type KeyFunc func(Record) string

// CategoryFunc derives zero or more category labels to count for a record
// (death-type name, disability-type names). Nil disables category counting.
type CategoryFunc func(Record) []string

// ByVillage groups records by village name.
func ByVillage(r Record) string { return r.Village() }

// ByTownship groups records by township name.
func ByTownship(r Record) string {
	if r.Household == nil {
		return ""
	}
	return r.Household.Township
}

// DeathTypeCategories counts the death-type name of deceased records.
func DeathTypeCategories(r Record) []string {
	if !r.Deceased || r.DeathType == "" {
		return nil
	}
	return []string{r.DeathType}
}

// DisabilityTypeCategories counts every disability-type name on the record.
func DisabilityTypeCategories(r Record) []string {
	return r.DisabilityTypes
}

// Tally accumulates the per-group counters shown on the dashboard.
type Tally struct {
	Male    int
	Female  int
	Members int

	households map[string]struct{}

	categories    map[string]int
	categoryOrder []string

	ageSum   int
	ageCount int
}

func newTally() *Tally {
	return &Tally{
		households: make(map[string]struct{}),
		categories: make(map[string]int),
	}
}

// Households counts distinct household numbers seen in the group.
func (t *Tally) Households() int { return len(t.households) }

// AverageAge is the mean age of members with a computable age, 0 when none.
func (t *Tally) AverageAge() float64 {
	if t.ageCount == 0 {
		return 0
	}
	return float64(t.ageSum) / float64(t.ageCount)
}

// Category returns the count for one category label.
func (t *Tally) Category(label string) int { return t.categories[label] }

// CategoryKeys returns category labels in first-seen order.
func (t *Tally) CategoryKeys() []string {
	keys := make([]string, len(t.categoryOrder))
	copy(keys, t.categoryOrder)
	return keys
}

// Categories returns a copy of the category counts.
func (t *Tally) Categories() map[string]int {
	out := make(map[string]int, len(t.categories))
	for k, v := range t.categories {
		out[k] = v
	}
	return out
}

func (t *Tally) add(r Record, opts Options, category CategoryFunc, asOf time.Time) {
	t.Members++

	switch r.Gender {
	case opts.Genders.Male:
		t.Male++
	case opts.Genders.Female:
		t.Female++
	}

	if no := r.HouseholdNo(); no != "" {
		t.households[no] = struct{}{}
	}

	if age := r.AgeAt(asOf); age != AgeUnknown {
		t.ageSum += age
		t.ageCount++
	}

	if category != nil {
		for _, label := range category(r) {
			if label == "" {
				continue
			}
			if _, seen := t.categories[label]; !seen {
				t.categoryOrder = append(t.categoryOrder, label)
			}
			t.categories[label]++
		}
	}
}

// Grouped holds per-group tallies with explicit first-seen key order, so the
// output is reproducible independent of map iteration.
type Grouped struct {
	order   []string
	tallies map[string]*Tally
}

// Keys returns group keys in first-seen order.
func (g *Grouped) Keys() []string {
	keys := make([]string, len(g.order))
	copy(keys, g.order)
	return keys
}

// Tally returns the tally for a group key.
func (g *Grouped) Tally(key string) (*Tally, bool) {
	t, ok := g.tallies[key]
	return t, ok
}

// Len is the number of groups.
func (g *Grouped) Len() int { return len(g.order) }

// RankBy selects the tally field used for ranking.
type RankBy int

const (
	RankByMembers RankBy = iota
	RankByHouseholds
	RankByMale
	RankByFemale
)

// Rank returns the group keys sorted descending by the chosen tally field.
// Ties keep first-seen order (stable sort).
func (g *Grouped) Rank(by RankBy) []string {
	keys := g.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return g.rankValue(keys[i], by) > g.rankValue(keys[j], by)
	})
	return keys
}

func (g *Grouped) rankValue(key string, by RankBy) int {
	t := g.tallies[key]
	switch by {
	case RankByHouseholds:
		return t.Households()
	case RankByMale:
		return t.Male
	case RankByFemale:
		return t.Female
	default:
		return t.Members
	}
}

// Aggregate folds records into per-group tallies in a single pass. The input
// order fully determines group order and category order.
func Aggregate(records []Record, key KeyFunc, category CategoryFunc, opts Options) *Grouped {
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	g := &Grouped{tallies: make(map[string]*Tally)}
	for _, r := range records {
		k := ""
		if key != nil {
			k = key(r)
		}
		if k == "" {
			k = GroupUnspecified
		}

		t, ok := g.tallies[k]
		if !ok {
			t = newTally()
			g.tallies[k] = t
			g.order = append(g.order, k)
		}
		t.add(r, opts, category, asOf)
	}
	return g
}
