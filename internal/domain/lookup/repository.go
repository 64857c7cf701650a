package lookup

import "context"

type Repository interface {
	List(ctx context.Context, table string) ([]Entry, error)
	Get(ctx context.Context, table, id string) (*Entry, error)
	Create(ctx context.Context, table string, entry *Entry) error
	IsNameTaken(ctx context.Context, table, name string) (bool, error)
}
