package death

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

func (s *Service) Get(ctx context.Context, id string) (*Death, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetByPerson(ctx context.Context, personID string) (*Death, error) {
	return s.repo.GetByPerson(ctx, personID)
}

func (s *Service) List(ctx context.Context) ([]Death, error) {
	return s.repo.List(ctx)
}

// Register creates the death row and flips the person's deceased flag as one
// logical operation. Either both are committed or neither is.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Death, error) {
	if strings.TrimSpace(input.PersonID) == "" {
		return nil, fmt.Errorf("person is required")
	}
	if input.DeathDate.IsZero() {
		return nil, fmt.Errorf("death date is required")
	}

	var result Death
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		deceased, err := tx.IsPersonDeceased(ctx, input.PersonID)
		if err != nil {
			return err
		}
		if deceased {
			return ErrAlreadyRegistered
		}

		d := Death{
			ID:          uuid.NewString(),
			PersonID:    input.PersonID,
			DeathDate:   input.DeathDate,
			DeathPlace:  strings.TrimSpace(input.DeathPlace),
			Complainant: strings.TrimSpace(input.Complainant),
			Remark:      input.Remark,
			DeathTypeID: input.DeathTypeID,
		}
		if err := tx.Create(ctx, &d); err != nil {
			return err
		}

		if err := tx.SetPersonDeceased(ctx, input.PersonID, true); err != nil {
			return err
		}

		result = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Deregister deletes the death row and clears the person's flag, the
// compensating pair of Register.
func (s *Service) Deregister(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		d, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(ctx, id); err != nil {
			return err
		}

		return tx.SetPersonDeceased(ctx, d.PersonID, false)
	})
}
