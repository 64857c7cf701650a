package handler

import (
	"net/url"
	"testing"
	"time"
)

func TestParseCriteriaDefaults(t *testing.T) {
	crit, err := parseCriteria(url.Values{})
	if err != nil {
		t.Fatalf("parseCriteria: %v", err)
	}

	if crit.Search != "" || crit.Gender != "" || crit.Village != "" {
		t.Fatalf("expected unconstrained criteria, got %+v", crit)
	}
	if crit.Deceased != nil || crit.Disabled != nil {
		t.Fatal("expected nil flag filters")
	}
	if crit.Age.Min != nil || crit.Age.Max != nil {
		t.Fatal("expected open age range")
	}
	if !crit.AsOf.IsZero() {
		t.Fatal("expected zero as-of date")
	}
}

func TestParseCriteriaFullQuery(t *testing.T) {
	query := url.Values{}
	query.Set("search", "  aung ")
	query.Set("gender", "male")
	query.Set("village", "north")
	query.Set("residencies", "resident, migrant ,resident")
	query.Set("deceased", "true")
	query.Set("min_age", "18")
	query.Set("max_age", "65")
	query.Set("as_of", "2020-06-15")

	crit, err := parseCriteria(query)
	if err != nil {
		t.Fatalf("parseCriteria: %v", err)
	}

	if crit.Search != "aung" {
		t.Fatalf("search = %q, want trimmed value", crit.Search)
	}
	if crit.Gender != "male" || crit.Village != "north" {
		t.Fatalf("unexpected dimension values: %+v", crit)
	}
	if len(crit.Residencies) != 2 {
		t.Fatalf("residencies = %v, want deduplicated pair", crit.Residencies)
	}
	if crit.Deceased == nil || !*crit.Deceased {
		t.Fatal("deceased = nil, want true")
	}
	if crit.Age.Min == nil || *crit.Age.Min != 18 || crit.Age.Max == nil || *crit.Age.Max != 65 {
		t.Fatalf("age range = %+v, want 18..65", crit.Age)
	}
	want := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !crit.AsOf.Equal(want) {
		t.Fatalf("as_of = %v, want %v", crit.AsOf, want)
	}
}

func TestParseCriteriaRejectsBadValues(t *testing.T) {
	cases := map[string]url.Values{
		"bad bool": {"deceased": {"maybe"}},
		"bad age":  {"min_age": {"-3"}},
		"bad date": {"as_of": {"15/06/2020"}},
	}

	for name, query := range cases {
		if _, err := parseCriteria(query); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
