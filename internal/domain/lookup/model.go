package lookup

import "time"

// Entry is one row of a reference table: a stable id, a display name and,
// for geography levels, the parent level's id.
type Entry struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	ParentID  *string   `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Reference table names. Each is its own relation; the repository addresses
// them by table name.
const (
	TableOccupations     = "occupations"
	TableEducations      = "educations"
	TableEthnicities     = "ethnicities"
	TableNationalities   = "nationalities"
	TableReligions       = "religions"
	TableRelationships   = "relationships"
	TableDeathTypes      = "death_types"
	TableDisabilityTypes = "disability_types"

	TableStateRegions      = "state_regions"
	TableDistricts         = "districts"
	TableTownships         = "townships"
	TableWardVillageTracts = "ward_village_tracts"
	TableVillages          = "villages"
)

var knownTables = []string{
	TableOccupations,
	TableEducations,
	TableEthnicities,
	TableNationalities,
	TableReligions,
	TableRelationships,
	TableDeathTypes,
	TableDisabilityTypes,
	TableStateRegions,
	TableDistricts,
	TableTownships,
	TableWardVillageTracts,
	TableVillages,
}

var geographyTables = map[string]struct{}{
	TableDistricts:         {},
	TableTownships:         {},
	TableWardVillageTracts: {},
	TableVillages:          {},
}

// IsKnownTable reports whether the table name is a registered lookup table.
func IsKnownTable(table string) bool {
	for _, t := range knownTables {
		if t == table {
			return true
		}
	}
	return false
}

// HasParent reports whether entries of the table carry a parent geography id.
func HasParent(table string) bool {
	_, ok := geographyTables[table]
	return ok
}

// Tables returns all registered lookup table names.
func Tables() []string {
	out := make([]string, len(knownTables))
	copy(out, knownTables)
	return out
}
