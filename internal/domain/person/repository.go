package person

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Get(ctx context.Context, id string) (*Person, error)
	List(ctx context.Context, filter ListFilter) ([]Person, error)
	Create(ctx context.Context, person *Person) error
	Update(ctx context.Context, person *Person) error
	Delete(ctx context.Context, id string) error
	HouseholdExists(ctx context.Context, householdID string) (bool, error)
}
