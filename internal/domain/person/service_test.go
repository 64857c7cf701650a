package person

import (
	"context"
	"errors"
	"testing"
)

type fakePersonRepo struct {
	persons    map[string]Person
	households map[string]bool
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{
		persons:    make(map[string]Person),
		households: make(map[string]bool),
	}
}

func (f *fakePersonRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	before := make(map[string]Person, len(f.persons))
	for k, v := range f.persons {
		before[k] = v
	}
	if err := fn(f); err != nil {
		f.persons = before
		return err
	}
	return nil
}

func (f *fakePersonRepo) Get(ctx context.Context, id string) (*Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return nil, ErrPersonNotFound
	}
	return &p, nil
}

func (f *fakePersonRepo) List(ctx context.Context, filter ListFilter) ([]Person, error) {
	out := make([]Person, 0, len(f.persons))
	for _, p := range f.persons {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePersonRepo) Create(ctx context.Context, p *Person) error {
	f.persons[p.ID] = *p
	return nil
}

func (f *fakePersonRepo) Update(ctx context.Context, p *Person) error {
	f.persons[p.ID] = *p
	return nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, id string) error {
	delete(f.persons, id)
	return nil
}

func (f *fakePersonRepo) HouseholdExists(ctx context.Context, householdID string) (bool, error) {
	return f.households[householdID], nil
}

func TestCreateRequiresExistingHousehold(t *testing.T) {
	repo := newFakePersonRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:        "Aung Aung",
		Gender:      "male",
		HouseholdID: "missing",
	})
	if !errors.Is(err, ErrHouseholdNotFound) {
		t.Fatalf("expected ErrHouseholdNotFound, got %v", err)
	}
	if len(repo.persons) != 0 {
		t.Fatal("no person may be created for a missing household")
	}
}

func TestCreateTrimsAndStores(t *testing.T) {
	repo := newFakePersonRepo()
	repo.households["hh-1"] = true
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:        "  Aung Aung ",
		NationalID:  " 12/ABC(N)123456 ",
		Gender:      "male",
		HouseholdID: "hh-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "Aung Aung" {
		t.Fatalf("name = %q, want trimmed", p.Name)
	}
	if p.NationalID != "12/ABC(N)123456" {
		t.Fatalf("national id = %q, want trimmed", p.NationalID)
	}
	if p.Deceased || p.Disabled {
		t.Fatal("new persons start with both flags cleared")
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	repo := newFakePersonRepo()
	svc := NewService(repo)

	cases := []CreateInput{
		{Gender: "male", HouseholdID: "hh-1"},
		{Name: "Aung Aung", HouseholdID: "hh-1"},
		{Name: "Aung Aung", Gender: "male"},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestUpdatePreservesRegistrationFlags(t *testing.T) {
	repo := newFakePersonRepo()
	repo.households["hh-1"] = true
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:        "Aung Aung",
		Gender:      "male",
		HouseholdID: "hh-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Simulate a later death registration flipping the flag.
	stored := repo.persons[p.ID]
	stored.Deceased = true
	repo.persons[p.ID] = stored

	updated, err := svc.Update(context.Background(), UpdateInput{
		ID:          p.ID,
		Name:        "Aung Gyi",
		Gender:      "male",
		HouseholdID: "hh-1",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Aung Gyi" {
		t.Fatalf("name = %q, want updated", updated.Name)
	}
	if !updated.Deceased {
		t.Fatal("update must not clear the deceased flag")
	}
}

func TestUpdateChecksNewHousehold(t *testing.T) {
	repo := newFakePersonRepo()
	repo.households["hh-1"] = true
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:        "Aung Aung",
		Gender:      "male",
		HouseholdID: "hh-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(context.Background(), UpdateInput{
		ID:          p.ID,
		Name:        "Aung Aung",
		Gender:      "male",
		HouseholdID: "hh-missing",
	})
	if !errors.Is(err, ErrHouseholdNotFound) {
		t.Fatalf("expected ErrHouseholdNotFound, got %v", err)
	}
	if repo.persons[p.ID].HouseholdID != "hh-1" {
		t.Fatal("person must keep the old household after a refused move")
	}
}

func TestDeleteUnknownPerson(t *testing.T) {
	repo := newFakePersonRepo()
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
