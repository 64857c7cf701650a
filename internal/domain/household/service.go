package household

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*Household, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Household, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Household, error) {
	input.HouseholdNo = strings.TrimSpace(input.HouseholdNo)
	if input.HouseholdNo == "" {
		return nil, fmt.Errorf("household number is required")
	}

	var result Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.IsHouseholdNoTaken(ctx, input.HouseholdNo, "")
		if err != nil {
			return err
		}
		if taken {
			return ErrHouseholdNoTaken
		}

		h := Household{
			ID:                 uuid.NewString(),
			HouseholdNo:        input.HouseholdNo,
			HouseNo:            strings.TrimSpace(input.HouseNo),
			StateRegionID:      input.StateRegionID,
			DistrictID:         input.DistrictID,
			TownshipID:         input.TownshipID,
			WardVillageTractID: input.WardVillageTractID,
			VillageID:          input.VillageID,
		}
		if err := tx.Create(ctx, &h); err != nil {
			return err
		}

		result = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Household, error) {
	input.HouseholdNo = strings.TrimSpace(input.HouseholdNo)
	if input.HouseholdNo == "" {
		return nil, fmt.Errorf("household number is required")
	}

	var result Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.Get(ctx, input.ID)
		if err != nil {
			return err
		}

		taken, err := tx.IsHouseholdNoTaken(ctx, input.HouseholdNo, input.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrHouseholdNoTaken
		}

		existing.HouseholdNo = input.HouseholdNo
		existing.HouseNo = strings.TrimSpace(input.HouseNo)
		existing.StateRegionID = input.StateRegionID
		existing.DistrictID = input.DistrictID
		existing.TownshipID = input.TownshipID
		existing.WardVillageTractID = input.WardVillageTractID
		existing.VillageID = input.VillageID

		if err := tx.Update(ctx, existing); err != nil {
			return err
		}

		result = *existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete removes an empty household. Households with registered persons are
// protected; persons must be moved or deleted first.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}

		count, err := tx.CountPersons(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrHouseholdInUse
		}

		return tx.Delete(ctx, id)
	})
}
