package hierarchy

import (
	"context"

	"gorm.io/gorm"

	"warehouseiq/internal/models"
)

// GormStore implements Store on the shared gorm handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// InsertMany writes the whole batch in one transaction, so a constraint
// violation on any row leaves nothing behind.
func (s *GormStore) InsertMany(ctx context.Context, rows []models.WarehouseLocation) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		return &StoreError{Op: "insert", Err: err}
	}
	return nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.WarehouseLocation, error) {
	var rows []models.WarehouseLocation
	if err := s.db.WithContext(ctx).Order("name asc").Find(&rows).Error; err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return rows, nil
}

// DeleteCascade removes the row; descendants go with it through the
// ON DELETE CASCADE constraint on parent_id.
func (s *GormStore) DeleteCascade(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.WarehouseLocation{}, "id = ?", id)
	if res.Error != nil {
		return &StoreError{Op: "delete", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &StoreError{Op: "delete", Err: gorm.ErrRecordNotFound}
	}
	return nil
}

func (s *GormStore) CountStockInSubtree(ctx context.Context, locationIDs []string) (int64, error) {
	if len(locationIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.InventoryStock{}).
		Where("location_id IN ? AND quantity > 0", locationIDs).
		Count(&count).Error; err != nil {
		return 0, &StoreError{Op: "count stock", Err: err}
	}
	return count, nil
}
