package disability

import "time"

// Disability is one registered disability of a person. A person can hold
// several; the person's disabled flag mirrors "has at least one" and is
// maintained in the same transaction as the rows.
type Disability struct {
	ID               string `gorm:"type:uuid;primaryKey"`
	PersonID         string `gorm:"type:uuid;not null;index"`
	Description      string
	DisabilityTypeID *string `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type RegisterInput struct {
	PersonID         string
	Description      string
	DisabilityTypeID *string
}
