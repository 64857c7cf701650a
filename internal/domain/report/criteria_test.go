package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func sampleRecord() Record {
	return Record{
		ID:         "p-1",
		Name:       "Aung Myint",
		NationalID: "12/ABC(N)123456",
		Gender:     "male",
		BirthDate:  datePtr(1990, time.May, 20),
		FatherName: "U Hla",
		MotherName: "Daw Mya",
		Residency:  "resident",
		Household: &HouseholdInfo{
			HouseholdNo: "H-001",
			Village:     "Kan Gyi",
			Township:    "Pathein",
		},
	}
}

func TestEmptyCriteriaMatchesEverything(t *testing.T) {
	assert.True(t, Criteria{}.Matches(sampleRecord()))
	assert.True(t, Criteria{}.Matches(Record{}))
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	r := sampleRecord()

	assert.True(t, Criteria{Search: "aung"}.Matches(r))
	assert.True(t, Criteria{Search: "u hla"}.Matches(r))
	assert.True(t, Criteria{Search: "DAW"}.Matches(r))
	assert.True(t, Criteria{Search: "123456"}.Matches(r))
	assert.False(t, Criteria{Search: "nobody"}.Matches(r))
}

func TestGeographyFilterOnMissingHousehold(t *testing.T) {
	r := sampleRecord()
	r.Household = nil

	// An active geography dimension never matches a record without a
	// household, and never panics.
	assert.False(t, Criteria{Village: "Kan Gyi"}.Matches(r))
	assert.True(t, Criteria{}.Matches(r))
}

func TestSetMembershipFilters(t *testing.T) {
	r := sampleRecord()
	r.DisabilityTypes = []string{"visual", "hearing"}

	assert.True(t, Criteria{Residencies: []string{"resident", "moved"}}.Matches(r))
	assert.False(t, Criteria{Residencies: []string{"moved"}}.Matches(r))
	assert.True(t, Criteria{DisabilityTypes: []string{"hearing"}}.Matches(r))
	assert.False(t, Criteria{DisabilityTypes: []string{"physical"}}.Matches(r))
}

func TestAgeRangeFilter(t *testing.T) {
	r := sampleRecord()
	asOf := date(2024, time.June, 1)

	assert.True(t, Criteria{Age: AgeRange{Min: intPtr(30)}, AsOf: asOf}.Matches(r))
	assert.False(t, Criteria{Age: AgeRange{Max: intPtr(30)}, AsOf: asOf}.Matches(r))
	assert.True(t, Criteria{Age: AgeRange{Min: intPtr(34), Max: intPtr(34)}, AsOf: asOf}.Matches(r))
}

func TestUnknownAgeFailsBoundedFilterOnly(t *testing.T) {
	r := sampleRecord()
	r.BirthDate = nil

	assert.True(t, Criteria{}.Matches(r))
	assert.False(t, Criteria{Age: AgeRange{Min: intPtr(0)}}.Matches(r))
	assert.False(t, Criteria{Age: AgeRange{Max: intPtr(200)}}.Matches(r))
}

func TestFlagFilters(t *testing.T) {
	r := sampleRecord()
	r.Deceased = true

	assert.True(t, Criteria{Deceased: boolPtr(true)}.Matches(r))
	assert.False(t, Criteria{Deceased: boolPtr(false)}.Matches(r))
	assert.False(t, Criteria{Disabled: boolPtr(true)}.Matches(r))
}

func TestFilterMonotonicity(t *testing.T) {
	records := []Record{
		sampleRecord(),
		{Name: "Thida", Gender: "female", Household: &HouseholdInfo{HouseholdNo: "H-002", Village: "Kan Gyi"}},
		{Name: "Kyaw", Gender: "male"},
	}

	base := Criteria{Village: "Kan Gyi"}
	narrowed := base
	narrowed.Gender = "male"

	baseCount := len(base.Filter(records))
	narrowedCount := len(narrowed.Filter(records))

	assert.LessOrEqual(t, narrowedCount, baseCount)
	assert.Equal(t, 2, baseCount)
	assert.Equal(t, 1, narrowedCount)
}
