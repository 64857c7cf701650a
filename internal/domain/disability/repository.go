package disability

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Get(ctx context.Context, id string) (*Disability, error)
	ListByPerson(ctx context.Context, personID string) ([]Disability, error)
	List(ctx context.Context) ([]Disability, error)
	Create(ctx context.Context, disability *Disability) error
	Delete(ctx context.Context, id string) error
	CountByPerson(ctx context.Context, personID string) (int64, error)
	PersonExists(ctx context.Context, personID string) (bool, error)
	SetPersonDisabled(ctx context.Context, personID string, disabled bool) error
}
