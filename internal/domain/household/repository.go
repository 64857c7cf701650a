package household

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Get(ctx context.Context, id string) (*Household, error)
	List(ctx context.Context, filter ListFilter) ([]Household, error)
	Create(ctx context.Context, household *Household) error
	Update(ctx context.Context, household *Household) error
	Delete(ctx context.Context, id string) error
	IsHouseholdNoTaken(ctx context.Context, householdNo, excludeID string) (bool, error)
	CountPersons(ctx context.Context, id string) (int64, error)
}
