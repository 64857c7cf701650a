package death

import (
	"context"
	"errors"

	deathdomain "vims-go/internal/domain/death"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(deathdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*deathdomain.Death, error) {
	var d deathdomain.Death
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deathdomain.ErrDeathNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) GetByPerson(ctx context.Context, personID string) (*deathdomain.Death, error) {
	var d deathdomain.Death
	if err := r.db.WithContext(ctx).Where("person_id = ?", personID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deathdomain.ErrDeathNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]deathdomain.Death, error) {
	var deaths []deathdomain.Death
	if err := r.db.WithContext(ctx).Order("death_date desc").Find(&deaths).Error; err != nil {
		return nil, err
	}
	return deaths, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *deathdomain.Death) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&deathdomain.Death{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return deathdomain.ErrDeathNotFound
	}
	return nil
}

func (r *PostgresRepository) IsPersonDeceased(ctx context.Context, personID string) (bool, error) {
	type row struct {
		Deceased bool
	}

	var result row
	err := r.db.WithContext(ctx).Table("people").Select("deceased").Where("id = ?", personID).Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, deathdomain.ErrPersonNotFound
	}
	if err != nil {
		return false, err
	}
	return result.Deceased, nil
}

func (r *PostgresRepository) SetPersonDeceased(ctx context.Context, personID string, deceased bool) error {
	result := r.db.WithContext(ctx).Table("people").Where("id = ?", personID).Update("deceased", deceased)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return deathdomain.ErrPersonNotFound
	}
	return nil
}
