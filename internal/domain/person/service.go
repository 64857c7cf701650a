package person

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

func (s *Service) Get(ctx context.Context, id string) (*Person, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Person, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Person, error) {
	if err := validate(input.Name, input.Gender, input.HouseholdID); err != nil {
		return nil, err
	}

	var result Person
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.HouseholdExists(ctx, input.HouseholdID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrHouseholdNotFound
		}

		p := Person{
			ID:             uuid.NewString(),
			Name:           strings.TrimSpace(input.Name),
			NationalID:     strings.TrimSpace(input.NationalID),
			Gender:         input.Gender,
			BirthDate:      input.BirthDate,
			FatherName:     strings.TrimSpace(input.FatherName),
			MotherName:     strings.TrimSpace(input.MotherName),
			Residency:      input.Residency,
			Remark:         input.Remark,
			HouseholdID:    input.HouseholdID,
			OccupationID:   input.OccupationID,
			EducationID:    input.EducationID,
			EthnicityID:    input.EthnicityID,
			NationalityID:  input.NationalityID,
			ReligionID:     input.ReligionID,
			RelationshipID: input.RelationshipID,
		}
		if err := tx.Create(ctx, &p); err != nil {
			return err
		}

		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Update edits the register fields. The deceased/disabled flags are owned by
// the registration flows and kept as-is.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Person, error) {
	if err := validate(input.Name, input.Gender, input.HouseholdID); err != nil {
		return nil, err
	}

	var result Person
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.Get(ctx, input.ID)
		if err != nil {
			return err
		}

		if existing.HouseholdID != input.HouseholdID {
			exists, err := tx.HouseholdExists(ctx, input.HouseholdID)
			if err != nil {
				return err
			}
			if !exists {
				return ErrHouseholdNotFound
			}
		}

		existing.Name = strings.TrimSpace(input.Name)
		existing.NationalID = strings.TrimSpace(input.NationalID)
		existing.Gender = input.Gender
		existing.BirthDate = input.BirthDate
		existing.FatherName = strings.TrimSpace(input.FatherName)
		existing.MotherName = strings.TrimSpace(input.MotherName)
		existing.Residency = input.Residency
		existing.Remark = input.Remark
		existing.HouseholdID = input.HouseholdID
		existing.OccupationID = input.OccupationID
		existing.EducationID = input.EducationID
		existing.EthnicityID = input.EthnicityID
		existing.NationalityID = input.NationalityID
		existing.ReligionID = input.ReligionID
		existing.RelationshipID = input.RelationshipID

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

// Delete is the explicit admin deletion; dependent death and disability rows
// go with the person (ON DELETE CASCADE).
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
}

func validate(name, gender, householdID string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(gender) == "" {
		return fmt.Errorf("gender is required")
	}
	if strings.TrimSpace(householdID) == "" {
		return fmt.Errorf("household is required")
	}
	return nil
}
