package report

import (
	"strings"
	"time"
)

// AgeRange bounds an age filter. A nil bound is unbounded on that side.
type AgeRange struct {
	Min *int
	Max *int
}

func (a AgeRange) unset() bool {
	return a.Min == nil && a.Max == nil
}

// Criteria is one filter configuration. Every configured dimension must match
// (logical AND); the free-text search is the only OR, across a fixed list of
// string fields. An empty string, empty slice or nil bound means the
// dimension is unconstrained — filtering by a literal empty value is not
// possible, matching the registration screens this replaces.
type Criteria struct {
	Search string

	Gender           string
	HouseholdNo      string
	StateRegion      string
	District         string
	Township         string
	WardVillageTract string
	Village          string

	Residencies     []string
	DeathTypes      []string
	DisabilityTypes []string

	Deceased *bool
	Disabled *bool

	Age  AgeRange
	AsOf time.Time
}

// Matches reports whether the record satisfies every configured dimension.
// Records missing a nested field required by an active dimension are
// non-matching, never a panic.
func (c Criteria) Matches(r Record) bool {
	if !c.matchSearch(r) {
		return false
	}
	if c.Gender != "" && r.Gender != c.Gender {
		return false
	}
	if !c.matchHousehold(r) {
		return false
	}
	if !matchSet(c.Residencies, r.Residency) {
		return false
	}
	if !matchSet(c.DeathTypes, r.DeathType) {
		return false
	}
	if !matchAnySet(c.DisabilityTypes, r.DisabilityTypes) {
		return false
	}
	if c.Deceased != nil && r.Deceased != *c.Deceased {
		return false
	}
	if c.Disabled != nil && r.Disabled != *c.Disabled {
		return false
	}
	return c.matchAge(r)
}

// Filter returns the records matching the criteria, preserving input order.
func (c Criteria) Filter(records []Record) []Record {
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func (c Criteria) matchSearch(r Record) bool {
	query := strings.TrimSpace(c.Search)
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range []string{r.Name, r.NationalID, r.FatherName, r.MotherName} {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (c Criteria) matchHousehold(r Record) bool {
	if c.HouseholdNo == "" && c.StateRegion == "" && c.District == "" &&
		c.Township == "" && c.WardVillageTract == "" && c.Village == "" {
		return true
	}
	if r.Household == nil {
		return false
	}
	h := r.Household
	if c.HouseholdNo != "" && h.HouseholdNo != c.HouseholdNo {
		return false
	}
	if c.StateRegion != "" && h.StateRegion != c.StateRegion {
		return false
	}
	if c.District != "" && h.District != c.District {
		return false
	}
	if c.Township != "" && h.Township != c.Township {
		return false
	}
	if c.WardVillageTract != "" && h.WardVillageTract != c.WardVillageTract {
		return false
	}
	if c.Village != "" && h.Village != c.Village {
		return false
	}
	return true
}

func (c Criteria) matchAge(r Record) bool {
	if c.Age.unset() {
		return true
	}

	asOf := c.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	age := r.AgeAt(asOf)
	if age == AgeUnknown {
		return false
	}
	if c.Age.Min != nil && age < *c.Age.Min {
		return false
	}
	if c.Age.Max != nil && age > *c.Age.Max {
		return false
	}
	return true
}

// matchSet reports membership of value in selected, with an empty selection
// meaning unconstrained.
func matchSet(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// matchAnySet matches when any of the record's values is selected. A person
// can hold several disability types; one hit is enough.
func matchAnySet(selected, values []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range values {
		for _, s := range selected {
			if s == v {
				return true
			}
		}
	}
	return false
}
