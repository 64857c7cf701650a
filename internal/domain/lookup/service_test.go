package lookup

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeLookupRepo struct {
	entries   map[string][]Entry
	listCalls int
}

func (f *fakeLookupRepo) List(ctx context.Context, table string) ([]Entry, error) {
	f.listCalls++
	return f.entries[table], nil
}

func (f *fakeLookupRepo) Get(ctx context.Context, table, id string) (*Entry, error) {
	for _, e := range f.entries[table] {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (f *fakeLookupRepo) Create(ctx context.Context, table string, entry *Entry) error {
	if f.entries == nil {
		f.entries = make(map[string][]Entry)
	}
	f.entries[table] = append(f.entries[table], *entry)
	return nil
}

func (f *fakeLookupRepo) IsNameTaken(ctx context.Context, table, name string) (bool, error) {
	for _, e := range f.entries[table] {
		if e.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type recordingCache struct {
	items   map[string][]Entry
	deletes []string
}

func (c *recordingCache) Get(table string) ([]Entry, bool) {
	entries, ok := c.items[table]
	return entries, ok
}

func (c *recordingCache) Set(table string, entries []Entry, ttl time.Duration) {
	if c.items == nil {
		c.items = make(map[string][]Entry)
	}
	c.items[table] = entries
}

func (c *recordingCache) Delete(table string) {
	c.deletes = append(c.deletes, table)
	delete(c.items, table)
}

func (c *recordingCache) Clear() { c.items = nil }

func TestListUnknownTable(t *testing.T) {
	svc := NewService(&fakeLookupRepo{})
	if _, err := svc.List(context.Background(), "nope"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestListCachesPerTable(t *testing.T) {
	repo := &fakeLookupRepo{entries: map[string][]Entry{
		TableReligions: {{ID: "r1", Name: "Buddhist"}},
	}}
	svc := NewServiceWithCache(repo, &recordingCache{}, time.Minute)

	for i := 0; i < 3; i++ {
		entries, err := svc.List(context.Background(), TableReligions)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
	}

	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	repo := &fakeLookupRepo{entries: map[string][]Entry{
		TableOccupations: {{ID: "o1", Name: "Farmer"}},
	}}
	svc := NewService(repo)

	if _, err := svc.Add(context.Background(), TableOccupations, " Farmer ", nil); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestAddInvalidatesCache(t *testing.T) {
	repo := &fakeLookupRepo{}
	cache := &recordingCache{}
	svc := NewServiceWithCache(repo, cache, time.Minute)

	entry, err := svc.Add(context.Background(), TableVillages, "Kan Gyi", strPtr("wvt-1"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.ID == "" || entry.Name != "Kan Gyi" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if len(cache.deletes) != 1 || cache.deletes[0] != TableVillages {
		t.Fatalf("expected cache invalidation for villages, got %v", cache.deletes)
	}
}

func TestAddParentOnlyForGeography(t *testing.T) {
	svc := NewService(&fakeLookupRepo{})

	if _, err := svc.Add(context.Background(), TableReligions, "Hindu", strPtr("x")); err == nil {
		t.Fatal("expected error for parent on non-geography table")
	}
}

func strPtr(s string) *string { return &s }
