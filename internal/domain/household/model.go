package household

import "time"

// Household is a registered dwelling unit located in the 5-level
// administrative hierarchy. HouseholdNo is the primary filter and sort key
// across reports and must be unique.
type Household struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	HouseholdNo string `gorm:"size:64;not null;uniqueIndex"`
	HouseNo     string `gorm:"size:64"`

	StateRegionID      *string `gorm:"type:uuid;index"`
	DistrictID         *string `gorm:"type:uuid;index"`
	TownshipID         *string `gorm:"type:uuid;index"`
	WardVillageTractID *string `gorm:"type:uuid;index"`
	VillageID          *string `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	HouseholdNo        string
	HouseNo            string
	StateRegionID      *string
	DistrictID         *string
	TownshipID         *string
	WardVillageTractID *string
	VillageID          *string
}

type UpdateInput struct {
	ID                 string
	HouseholdNo        string
	HouseNo            string
	StateRegionID      *string
	DistrictID         *string
	TownshipID         *string
	WardVillageTractID *string
	VillageID          *string
}

type ListFilter struct {
	HouseholdNo string
	VillageID   string
	Limit       int
	Offset      int
}
