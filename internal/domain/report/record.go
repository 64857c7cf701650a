package report

import "time"

// Record is the denormalized, read-only shape the reporting core works on:
// one person joined with their household, geography names and lookup names.
// It is produced by the gateway (Repository) and never persisted.
type Record struct {
	ID           string
	Name         string
	NationalID   string
	Gender       string
	BirthDate    *time.Time
	FatherName   string
	MotherName   string
	Residency    string
	Remark       string
	Deceased     bool
	Disabled     bool
	Occupation   string
	Education    string
	Ethnicity    string
	Nationality  string
	Religion     string
	Relationship string

	DeathDate   *time.Time
	DeathType   string
	DeathPlace  string
	Complainant string

	DisabilityTypes []string

	Household *HouseholdInfo
}

// HouseholdInfo carries the household identity and its position in the
// administrative hierarchy. Geography names are empty when the household has
// no reference at that level.
type HouseholdInfo struct {
	HouseholdNo      string
	HouseNo          string
	StateRegion      string
	District         string
	Township         string
	WardVillageTract string
	Village          string
}

// Village returns the record's village name, or "" when the record has no
// household or the household has no village reference.
func (r Record) Village() string {
	if r.Household == nil {
		return ""
	}
	return r.Household.Village
}

// HouseholdNo returns the record's household number, or "" when unknown.
func (r Record) HouseholdNo() string {
	if r.Household == nil {
		return ""
	}
	return r.Household.HouseholdNo
}
