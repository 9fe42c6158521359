package hierarchy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"warehouseiq/internal/models"
)

// Service orchestrates batch creation, tree reads and cascade deletion over
// an injected Store. It keeps no state between calls; every read rebuilds the
// tree from the current flat row set.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

var childProgression = []string{models.TypeSection, models.TypeFloor, models.TypeRow, models.TypeColumn, models.TypeRoof}

// SuggestChildType returns the conventional next level below parentType.
// Advisory only; callers may pick any type regardless of the parent.
func (s *Service) SuggestChildType(parentType string) string {
	for i, t := range childProgression {
		if t == parentType && i < len(childProgression)-1 {
			return childProgression[i+1]
		}
	}
	return models.TypeBin
}

// CreateBatch generates sibling names from the strategy and persists one
// location per name under parentID (nil for root). Validation failures happen
// before any store write; a store failure means the caller must treat the
// whole batch as failed.
func (s *Service) CreateBatch(ctx context.Context, parentID *string, locType string, strategy Strategy, capacity int) ([]models.WarehouseLocation, error) {
	if !validLocationType(locType) {
		return nil, validationErrorf("unknown location type %q", locType)
	}
	if capacity < 0 {
		return nil, validationErrorf("capacity must not be negative, got %d", capacity)
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	if n := strategy.Count(); n == 0 {
		return nil, validationErrorf("naming range produces no names")
	} else if n > MaxBatch {
		return nil, validationErrorf("cannot create more than %d locations at once (requested %d)", MaxBatch, n)
	}

	parentPath := ""
	if parentID != nil {
		rows, err := s.store.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		roots, _ := BuildTree(rows)
		parent := FindNode(roots, *parentID)
		if parent == nil {
			return nil, validationErrorf("parent location %s not found", *parentID)
		}
		parentPath = parent.Path
		if parentPath == "" {
			parentPath = parent.Name
		}
	}

	now := time.Now().UTC()
	names := strategy.Generate()
	rows := make([]models.WarehouseLocation, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.WarehouseLocation{
			ID:                 uuid.New().String(),
			ParentID:           parentID,
			Type:               locType,
			Name:               name,
			Path:               MaterializePath(parentPath, name),
			Capacity:           capacity,
			CurrentUtilization: 0,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	if err := s.store.InsertMany(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTree rebuilds the full forest from the store. Warnings carry rows whose
// parent reference did not resolve; they are excluded from the forest but must
// not stop the rest from rendering.
func (s *Service) GetTree(ctx context.Context) ([]*TreeNode, []Warning, error) {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	roots, warnings := BuildTree(rows)
	return roots, warnings, nil
}

// DeleteSubtree removes a location and every descendant. It refuses while any
// stock row still references the subtree; reassign or consume the stock first.
func (s *Service) DeleteSubtree(ctx context.Context, id string) error {
	rows, err := s.store.ListAll(ctx)
	if err != nil {
		return err
	}
	roots, _ := BuildTree(rows)
	node := FindNode(roots, id)
	if node == nil {
		return ErrNotFound
	}

	stocked, err := s.store.CountStockInSubtree(ctx, SubtreeIDs(node))
	if err != nil {
		return err
	}
	if stocked > 0 {
		return &StockConflictError{LocationID: id, StockedPlaces: stocked}
	}
	return s.store.DeleteCascade(ctx, id)
}

func validLocationType(t string) bool {
	for _, known := range models.LocationTypes {
		if known == t {
			return true
		}
	}
	return false
}
