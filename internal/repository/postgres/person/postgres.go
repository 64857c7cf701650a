package person

import (
	"context"
	"errors"

	persondomain "vims-go/internal/domain/person"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(persondomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*persondomain.Person, error) {
	var p persondomain.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, persondomain.ErrPersonNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter persondomain.ListFilter) ([]persondomain.Person, error) {
	query := r.db.WithContext(ctx).Model(&persondomain.Person{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR national_id ILIKE ? OR father_name ILIKE ? OR mother_name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.HouseholdID != "" {
		query = query.Where("household_id = ?", filter.HouseholdID)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.Deceased != nil {
		query = query.Where("deceased = ?", *filter.Deceased)
	}
	if filter.Disabled != nil {
		query = query.Where("disabled = ?", *filter.Disabled)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var persons []persondomain.Person
	if err := query.Order("name asc").Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *persondomain.Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresRepository) Update(ctx context.Context, p *persondomain.Person) error {
	result := r.db.WithContext(ctx).Model(&persondomain.Person{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":            p.Name,
		"national_id":     p.NationalID,
		"gender":          p.Gender,
		"birth_date":      p.BirthDate,
		"father_name":     p.FatherName,
		"mother_name":     p.MotherName,
		"residency":       p.Residency,
		"remark":          p.Remark,
		"household_id":    p.HouseholdID,
		"occupation_id":   p.OccupationID,
		"education_id":    p.EducationID,
		"ethnicity_id":    p.EthnicityID,
		"nationality_id":  p.NationalityID,
		"religion_id":     p.ReligionID,
		"relationship_id": p.RelationshipID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return persondomain.ErrPersonNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&persondomain.Person{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return persondomain.ErrPersonNotFound
	}
	return nil
}

func (r *PostgresRepository) HouseholdExists(ctx context.Context, householdID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("households").Where("id = ?", householdID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
