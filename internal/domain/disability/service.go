package disability

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

func (s *Service) Get(ctx context.Context, id string) (*Disability, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Disability, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPerson(ctx context.Context, personID string) ([]Disability, error) {
	return s.repo.ListByPerson(ctx, personID)
}

// Register creates the disability row and sets the person's disabled flag in
// one transaction.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Disability, error) {
	if strings.TrimSpace(input.PersonID) == "" {
		return nil, fmt.Errorf("person is required")
	}

	var result Disability
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.PersonExists(ctx, input.PersonID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPersonNotFound
		}

		d := Disability{
			ID:               uuid.NewString(),
			PersonID:         input.PersonID,
			Description:      strings.TrimSpace(input.Description),
			DisabilityTypeID: input.DisabilityTypeID,
		}
		if err := tx.Create(ctx, &d); err != nil {
			return err
		}

		if err := tx.SetPersonDisabled(ctx, input.PersonID, true); err != nil {
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

// Remove deletes one disability row; removing the person's last one clears
// the disabled flag in the same transaction.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		d, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(ctx, id); err != nil {
			return err
		}

		remaining, err := tx.CountByPerson(ctx, d.PersonID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return tx.SetPersonDisabled(ctx, d.PersonID, false)
		}
		return nil
	})
}
