package lookup

import (
	"context"
	"errors"

	lookupdomain "vims-go/internal/domain/lookup"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, table string) ([]lookupdomain.Entry, error) {
	if !lookupdomain.IsKnownTable(table) {
		return nil, lookupdomain.ErrUnknownTable
	}

	var entries []lookupdomain.Entry
	if err := r.db.WithContext(ctx).Table(table).Order("name asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) Get(ctx context.Context, table, id string) (*lookupdomain.Entry, error) {
	if !lookupdomain.IsKnownTable(table) {
		return nil, lookupdomain.ErrUnknownTable
	}

	var entry lookupdomain.Entry
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookupdomain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresRepository) Create(ctx context.Context, table string, entry *lookupdomain.Entry) error {
	if !lookupdomain.IsKnownTable(table) {
		return lookupdomain.ErrUnknownTable
	}
	return r.db.WithContext(ctx).Table(table).Create(entry).Error
}

func (r *PostgresRepository) IsNameTaken(ctx context.Context, table, name string) (bool, error) {
	if !lookupdomain.IsKnownTable(table) {
		return false, lookupdomain.ErrUnknownTable
	}

	var count int64
	if err := r.db.WithContext(ctx).Table(table).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
