package household

import (
	"context"
	"errors"

	householddomain "vims-go/internal/domain/household"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(householddomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*householddomain.Household, error) {
	var h householddomain.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, householddomain.ErrHouseholdNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter householddomain.ListFilter) ([]householddomain.Household, error) {
	query := r.db.WithContext(ctx).Model(&householddomain.Household{})

	if filter.HouseholdNo != "" {
		query = query.Where("household_no ILIKE ?", "%"+filter.HouseholdNo+"%")
	}
	if filter.VillageID != "" {
		query = query.Where("village_id = ?", filter.VillageID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var households []householddomain.Household
	if err := query.Order("household_no asc").Find(&households).Error; err != nil {
		return nil, err
	}
	return households, nil
}

func (r *PostgresRepository) Create(ctx context.Context, h *householddomain.Household) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *PostgresRepository) Update(ctx context.Context, h *householddomain.Household) error {
	result := r.db.WithContext(ctx).Model(&householddomain.Household{}).Where("id = ?", h.ID).Updates(map[string]interface{}{
		"household_no":          h.HouseholdNo,
		"house_no":              h.HouseNo,
		"state_region_id":       h.StateRegionID,
		"district_id":           h.DistrictID,
		"township_id":           h.TownshipID,
		"ward_village_tract_id": h.WardVillageTractID,
		"village_id":            h.VillageID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return householddomain.ErrHouseholdNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&householddomain.Household{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return householddomain.ErrHouseholdNotFound
	}
	return nil
}

func (r *PostgresRepository) IsHouseholdNoTaken(ctx context.Context, householdNo, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&householddomain.Household{}).Where("household_no = ?", householdNo)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CountPersons(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("people").Where("household_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
