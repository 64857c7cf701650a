package death

import "time"

// Death extends a person once deceased. One row per person; the row and the
// person's deceased flag are written in the same transaction.
type Death struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	PersonID    string    `gorm:"type:uuid;not null;uniqueIndex"`
	DeathDate   time.Time `gorm:"type:date;not null"`
	DeathPlace  string
	Complainant string
	Remark      string
	DeathTypeID *string `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type RegisterInput struct {
	PersonID    string
	DeathDate   time.Time
	DeathPlace  string
	Complainant string
	Remark      string
	DeathTypeID *string
}
