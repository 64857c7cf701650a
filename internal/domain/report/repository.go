package report

import "context"

// Repository is the reference-data gateway the reporting core consumes. It
// returns already-joined records; the core never issues queries itself.
type Repository interface {
	Records(ctx context.Context) ([]Record, error)
}
