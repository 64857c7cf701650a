package death

import "context"

// Repository persists death rows and the paired person flag. SetPersonDeceased
// runs against the persons table so the flag flip can share a transaction
// with the dependent row.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Get(ctx context.Context, id string) (*Death, error)
	GetByPerson(ctx context.Context, personID string) (*Death, error)
	List(ctx context.Context) ([]Death, error)
	Create(ctx context.Context, death *Death) error
	Delete(ctx context.Context, id string) error
	IsPersonDeceased(ctx context.Context, personID string) (bool, error)
	SetPersonDeceased(ctx context.Context, personID string, deceased bool) error
}
