package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultCacheTTL = 5 * time.Minute

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return NewServiceWithCache(repo, noopCache{}, 0)
}

func NewServiceWithCache(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Service{repo: repo, cache: cache, cacheTTL: ttl}
}

// List returns the table's entries in name order, served from cache when
// fresh.
func (s *Service) List(ctx context.Context, table string) ([]Entry, error) {
	if !IsKnownTable(table) {
		return nil, ErrUnknownTable
	}

	if entries, ok := s.cache.Get(table); ok {
		return entries, nil
	}

	entries, err := s.repo.List(ctx, table)
	if err != nil {
		return nil, err
	}

	s.cache.Set(table, entries, s.cacheTTL)
	return entries, nil
}

// Get returns one entry by id.
func (s *Service) Get(ctx context.Context, table, id string) (*Entry, error) {
	if !IsKnownTable(table) {
		return nil, ErrUnknownTable
	}
	return s.repo.Get(ctx, table, id)
}

// Add extends a lookup table in place, the "add new" inline flow on the
// registration forms. Duplicate names are rejected.
func (s *Service) Add(ctx context.Context, table, name string, parentID *string) (*Entry, error) {
	if !IsKnownTable(table) {
		return nil, ErrUnknownTable
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if parentID != nil && !HasParent(table) {
		return nil, fmt.Errorf("table %s has no parent level", table)
	}

	taken, err := s.repo.IsNameTaken(ctx, table, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	entry := Entry{
		ID:       uuid.NewString(),
		Name:     name,
		ParentID: parentID,
	}
	if err := s.repo.Create(ctx, table, &entry); err != nil {
		return nil, err
	}

	s.cache.Delete(table)
	return &entry, nil
}
