package inmemory

import (
	"context"
	"sync"

	reportdomain "vims-go/internal/domain/report"
)

// FixtureReportRepository is an in-memory reference-data gateway for tests
// and local development: records go in as plain data and come back in
// insertion order, like the real gateway's stable query order.
type FixtureReportRepository struct {
	mu      sync.RWMutex
	records []reportdomain.Record
}

func NewFixtureReportRepository(records ...reportdomain.Record) *FixtureReportRepository {
	repo := &FixtureReportRepository{}
	repo.Add(records...)
	return repo
}

func (r *FixtureReportRepository) Add(records ...reportdomain.Record) {
	r.mu.Lock()
	r.records = append(r.records, records...)
	r.mu.Unlock()
}

func (r *FixtureReportRepository) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

func (r *FixtureReportRepository) Records(ctx context.Context) ([]reportdomain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reportdomain.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}
