package hierarchy

import (
	"context"

	"warehouseiq/internal/models"
)

// Store is the location record store the service depends on. The real
// implementation sits on the relational database; tests substitute an
// in-memory one.
//
// DeleteCascade relies on the store's ON DELETE CASCADE self-reference to
// remove descendants; the service never walks and deletes rows itself.
type Store interface {
	InsertMany(ctx context.Context, rows []models.WarehouseLocation) error
	ListAll(ctx context.Context) ([]models.WarehouseLocation, error)
	DeleteCascade(ctx context.Context, id string) error
	CountStockInSubtree(ctx context.Context, locationIDs []string) (int64, error)
}
