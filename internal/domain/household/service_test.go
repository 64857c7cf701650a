package household

import (
	"context"
	"errors"
	"testing"
)

type fakeHouseholdRepo struct {
	households map[string]Household
	personsIn  map[string]int64
}

func newFakeHouseholdRepo() *fakeHouseholdRepo {
	return &fakeHouseholdRepo{
		households: make(map[string]Household),
		personsIn:  make(map[string]int64),
	}
}

func (f *fakeHouseholdRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	before := make(map[string]Household, len(f.households))
	for k, v := range f.households {
		before[k] = v
	}
	if err := fn(f); err != nil {
		f.households = before
		return err
	}
	return nil
}

func (f *fakeHouseholdRepo) Get(ctx context.Context, id string) (*Household, error) {
	h, ok := f.households[id]
	if !ok {
		return nil, ErrHouseholdNotFound
	}
	return &h, nil
}

func (f *fakeHouseholdRepo) List(ctx context.Context, filter ListFilter) ([]Household, error) {
	out := make([]Household, 0, len(f.households))
	for _, h := range f.households {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHouseholdRepo) Create(ctx context.Context, h *Household) error {
	f.households[h.ID] = *h
	return nil
}

func (f *fakeHouseholdRepo) Update(ctx context.Context, h *Household) error {
	f.households[h.ID] = *h
	return nil
}

func (f *fakeHouseholdRepo) Delete(ctx context.Context, id string) error {
	delete(f.households, id)
	return nil
}

func (f *fakeHouseholdRepo) IsHouseholdNoTaken(ctx context.Context, householdNo, excludeID string) (bool, error) {
	for _, h := range f.households {
		if h.HouseholdNo == householdNo && h.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHouseholdRepo) CountPersons(ctx context.Context, id string) (int64, error) {
	return f.personsIn[id], nil
}

func TestCreateRejectsDuplicateHouseholdNo(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{HouseholdNo: "H-001"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{HouseholdNo: "H-001"}); !errors.Is(err, ErrHouseholdNoTaken) {
		t.Fatalf("expected ErrHouseholdNoTaken, got %v", err)
	}
	if len(repo.households) != 1 {
		t.Fatalf("expected 1 household, got %d", len(repo.households))
	}
}

func TestUpdateKeepsOwnHouseholdNo(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	h, err := svc.Create(context.Background(), CreateInput{HouseholdNo: "H-001", HouseNo: "1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), UpdateInput{ID: h.ID, HouseholdNo: "H-001", HouseNo: "2"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.HouseNo != "2" {
		t.Fatalf("expected house no 2, got %q", updated.HouseNo)
	}
}

func TestDeleteProtectsOccupiedHousehold(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	h, err := svc.Create(context.Background(), CreateInput{HouseholdNo: "H-001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.personsIn[h.ID] = 3

	if err := svc.Delete(context.Background(), h.ID); !errors.Is(err, ErrHouseholdInUse) {
		t.Fatalf("expected ErrHouseholdInUse, got %v", err)
	}
	if _, ok := repo.households[h.ID]; !ok {
		t.Fatal("household must survive a refused delete")
	}
}
