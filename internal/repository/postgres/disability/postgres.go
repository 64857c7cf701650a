package disability

import (
	"context"
	"errors"

	disabilitydomain "vims-go/internal/domain/disability"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(disabilitydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*disabilitydomain.Disability, error) {
	var d disabilitydomain.Disability
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, disabilitydomain.ErrDisabilityNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) ListByPerson(ctx context.Context, personID string) ([]disabilitydomain.Disability, error) {
	var disabilities []disabilitydomain.Disability
	if err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("created_at asc").
		Find(&disabilities).Error; err != nil {
		return nil, err
	}
	return disabilities, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]disabilitydomain.Disability, error) {
	var disabilities []disabilitydomain.Disability
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&disabilities).Error; err != nil {
		return nil, err
	}
	return disabilities, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *disabilitydomain.Disability) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&disabilitydomain.Disability{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return disabilitydomain.ErrDisabilityNotFound
	}
	return nil
}

func (r *PostgresRepository) CountByPerson(ctx context.Context, personID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&disabilitydomain.Disability{}).Where("person_id = ?", personID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) PersonExists(ctx context.Context, personID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("people").Where("id = ?", personID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) SetPersonDisabled(ctx context.Context, personID string, disabled bool) error {
	result := r.db.WithContext(ctx).Table("people").Where("id = ?", personID).Update("disabled", disabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return disabilitydomain.ErrPersonNotFound
	}
	return nil
}
