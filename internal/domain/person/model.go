package person

import "time"

// Person is one family-register row. The deceased/disabled flags are owned
// by the death and disability registration flows and are not writable
// through Update.
type Person struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"not null"`
	NationalID string     `gorm:"size:64;index"`
	Gender     string     `gorm:"size:32;not null"`
	BirthDate  *time.Time `gorm:"type:date"`
	FatherName string
	MotherName string
	Residency  string `gorm:"size:32"`
	Remark     string

	Deceased bool `gorm:"not null;default:false"`
	Disabled bool `gorm:"not null;default:false"`

	HouseholdID string `gorm:"type:uuid;not null;index"`

	OccupationID   *string `gorm:"type:uuid"`
	EducationID    *string `gorm:"type:uuid"`
	EthnicityID    *string `gorm:"type:uuid"`
	NationalityID  *string `gorm:"type:uuid"`
	ReligionID     *string `gorm:"type:uuid"`
	RelationshipID *string `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type CreateInput struct {
	Name           string
	NationalID     string
	Gender         string
	BirthDate      *time.Time
	FatherName     string
	MotherName     string
	Residency      string
	Remark         string
	HouseholdID    string
	OccupationID   *string
	EducationID    *string
	EthnicityID    *string
	NationalityID  *string
	ReligionID     *string
	RelationshipID *string
}

type UpdateInput struct {
	ID             string
	Name           string
	NationalID     string
	Gender         string
	BirthDate      *time.Time
	FatherName     string
	MotherName     string
	Residency      string
	Remark         string
	HouseholdID    string
	OccupationID   *string
	EducationID    *string
	EthnicityID    *string
	NationalityID  *string
	ReligionID     *string
	RelationshipID *string
}

type ListFilter struct {
	Search      string
	HouseholdID string
	Gender      string
	Deceased    *bool
	Disabled    *bool
	Limit       int
	Offset      int
}
