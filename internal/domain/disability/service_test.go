package disability

import (
	"context"
	"errors"
	"testing"
)

type fakeDisabilityRepo struct {
	rows     map[string]Disability
	disabled map[string]bool
}

func newFakeDisabilityRepo(personIDs ...string) *fakeDisabilityRepo {
	f := &fakeDisabilityRepo{
		rows:     make(map[string]Disability),
		disabled: make(map[string]bool),
	}
	for _, id := range personIDs {
		f.disabled[id] = false
	}
	return f
}

func (f *fakeDisabilityRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	rowsBefore := make(map[string]Disability, len(f.rows))
	for k, v := range f.rows {
		rowsBefore[k] = v
	}
	disabledBefore := make(map[string]bool, len(f.disabled))
	for k, v := range f.disabled {
		disabledBefore[k] = v
	}

	if err := fn(f); err != nil {
		f.rows = rowsBefore
		f.disabled = disabledBefore
		return err
	}
	return nil
}

func (f *fakeDisabilityRepo) Get(ctx context.Context, id string) (*Disability, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, ErrDisabilityNotFound
	}
	return &d, nil
}

func (f *fakeDisabilityRepo) ListByPerson(ctx context.Context, personID string) ([]Disability, error) {
	var out []Disability
	for _, d := range f.rows {
		if d.PersonID == personID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDisabilityRepo) List(ctx context.Context) ([]Disability, error) {
	out := make([]Disability, 0, len(f.rows))
	for _, d := range f.rows {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDisabilityRepo) Create(ctx context.Context, d *Disability) error {
	f.rows[d.ID] = *d
	return nil
}

func (f *fakeDisabilityRepo) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeDisabilityRepo) CountByPerson(ctx context.Context, personID string) (int64, error) {
	var count int64
	for _, d := range f.rows {
		if d.PersonID == personID {
			count++
		}
	}
	return count, nil
}

func (f *fakeDisabilityRepo) PersonExists(ctx context.Context, personID string) (bool, error) {
	_, ok := f.disabled[personID]
	return ok, nil
}

func (f *fakeDisabilityRepo) SetPersonDisabled(ctx context.Context, personID string, disabled bool) error {
	if _, ok := f.disabled[personID]; !ok {
		return ErrPersonNotFound
	}
	f.disabled[personID] = disabled
	return nil
}

func TestRegisterSetsFlag(t *testing.T) {
	repo := newFakeDisabilityRepo("p-1")
	svc := NewService(repo)

	d, err := svc.Register(context.Background(), RegisterInput{PersonID: "p-1", Description: "visual"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if d.ID == "" {
		t.Fatal("expected generated id")
	}
	if !repo.disabled["p-1"] {
		t.Fatal("expected disabled flag set")
	}
}

func TestRegisterUnknownPerson(t *testing.T) {
	svc := NewService(newFakeDisabilityRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{PersonID: "ghost"}); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestRemoveLastClearsFlag(t *testing.T) {
	repo := newFakeDisabilityRepo("p-1")
	svc := NewService(repo)

	first, err := svc.Register(context.Background(), RegisterInput{PersonID: "p-1", Description: "visual"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	second, err := svc.Register(context.Background(), RegisterInput{PersonID: "p-1", Description: "hearing"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Remove(context.Background(), first.ID); err != nil {
		t.Fatalf("remove first: %v", err)
	}
	if !repo.disabled["p-1"] {
		t.Fatal("flag must stay set while one disability remains")
	}

	if err := svc.Remove(context.Background(), second.ID); err != nil {
		t.Fatalf("remove second: %v", err)
	}
	if repo.disabled["p-1"] {
		t.Fatal("flag must clear with the last disability")
	}
}

func TestRemoveUnknown(t *testing.T) {
	svc := NewService(newFakeDisabilityRepo("p-1"))

	if err := svc.Remove(context.Background(), "missing"); !errors.Is(err, ErrDisabilityNotFound) {
		t.Fatalf("expected ErrDisabilityNotFound, got %v", err)
	}
}
