package hierarchy

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouseiq/internal/models"
)

// fakeStore is an in-memory Store with the same cascade semantics the
// database enforces through its parent_id foreign key.
type fakeStore struct {
	rows       map[string]models.WarehouseLocation
	stock      map[string]int // locationID -> quantity
	insertErr  error
	listErr    error
	deleteErr  error
	insertions int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]models.WarehouseLocation{}, stock: map[string]int{}}
}

func (f *fakeStore) InsertMany(ctx context.Context, rows []models.WarehouseLocation) error {
	if f.insertErr != nil {
		return &StoreError{Op: "insert", Err: f.insertErr}
	}
	for _, row := range rows {
		if row.ParentID != nil {
			if _, ok := f.rows[*row.ParentID]; !ok {
				return &StoreError{Op: "insert", Err: errors.New("foreign key violation on parent_id")}
			}
		}
		f.rows[row.ID] = row
	}
	f.insertions++
	return nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]models.WarehouseLocation, error) {
	if f.listErr != nil {
		return nil, &StoreError{Op: "list", Err: f.listErr}
	}
	out := make([]models.WarehouseLocation, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) DeleteCascade(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return &StoreError{Op: "delete", Err: f.deleteErr}
	}
	if _, ok := f.rows[id]; !ok {
		return &StoreError{Op: "delete", Err: errors.New("record not found")}
	}
	doomed := []string{id}
	for len(doomed) > 0 {
		next := doomed[0]
		doomed = doomed[1:]
		delete(f.rows, next)
		for _, row := range f.rows {
			if row.ParentID != nil && *row.ParentID == next {
				doomed = append(doomed, row.ID)
			}
		}
	}
	return nil
}

func (f *fakeStore) CountStockInSubtree(ctx context.Context, locationIDs []string) (int64, error) {
	var n int64
	for _, id := range locationIDs {
		if f.stock[id] > 0 {
			n++
		}
	}
	return n, nil
}

func seedParent(t *testing.T, store *fakeStore, id, name, path string) {
	t.Helper()
	store.rows[id] = models.WarehouseLocation{ID: id, Type: models.TypeSection, Name: name, Path: path}
}

func TestCreateBatchUnderParent(t *testing.T) {
	store := newFakeStore()
	seedParent(t, store, "zone-a", "ZoneA", "ZoneA")
	svc := NewService(store)

	parentID := "zone-a"
	created, err := svc.CreateBatch(context.Background(), &parentID, models.TypeRow,
		Strategy{Kind: StrategyNumeric, From: 1, To: 3, Prefix: "Row-"}, 50)
	require.NoError(t, err)
	require.Len(t, created, 3)

	paths := []string{}
	for _, row := range created {
		paths = append(paths, row.Path)
		assert.Equal(t, "zone-a", *row.ParentID)
		assert.Equal(t, models.TypeRow, row.Type)
		assert.Equal(t, 50, row.Capacity)
		assert.Zero(t, row.CurrentUtilization)
		assert.NotEmpty(t, row.ID)
	}
	assert.Equal(t, []string{"ZoneA-Row-01", "ZoneA-Row-02", "ZoneA-Row-03"}, paths)
}

func TestCreateBatchAtRoot(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	created, err := svc.CreateBatch(context.Background(), nil, models.TypeSection,
		Strategy{Kind: StrategyAlphabetic, FromChar: "A", ToChar: "C"}, 0)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, name := range []string{"A", "B", "C"} {
		assert.Equal(t, name, created[i].Name)
		assert.Equal(t, name, created[i].Path)
		assert.Nil(t, created[i].ParentID)
	}
}

func TestCreateBatchValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	cases := []struct {
		name     string
		locType  string
		strategy Strategy
		capacity int
	}{
		{"oversized range", models.TypeBin, Strategy{Kind: StrategyNumeric, From: 1, To: 150}, 0},
		{"max int range", models.TypeBin, Strategy{Kind: StrategyNumeric, From: 0, To: math.MaxInt}, 0},
		{"empty range", models.TypeBin, Strategy{Kind: StrategyNumeric, From: 5, To: 1}, 0},
		{"negative capacity", models.TypeBin, Strategy{Kind: StrategyNumeric, From: 1, To: 2}, -1},
		{"unknown type", "MEZZANINE", Strategy{Kind: StrategyNumeric, From: 1, To: 2}, 0},
		{"unknown strategy", models.TypeBin, Strategy{Kind: "spiral"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBatch(ctx, nil, tc.locType, tc.strategy, tc.capacity)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
	// no write may have reached the store
	assert.Zero(t, store.insertions)
}

func TestCreateBatchUnknownParent(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	missing := "gone"
	_, err := svc.CreateBatch(context.Background(), &missing, models.TypeRow,
		Strategy{Kind: StrategyNumeric, From: 1, To: 2}, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, store.insertions)
}

func TestCreateBatchStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("duplicate entry")
	svc := NewService(store)

	_, err := svc.CreateBatch(context.Background(), nil, models.TypeSection,
		Strategy{Kind: StrategyNumeric, From: 1, To: 2}, 0)
	var serr *StoreError
	require.ErrorAs(t, err, &serr)
}

func TestGetTreeAfterBatches(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	roots, err := svc.CreateBatch(ctx, nil, models.TypeSection,
		Strategy{Kind: StrategyAlphabetic, FromChar: "A", ToChar: "B"}, 0)
	require.NoError(t, err)

	_, err = svc.CreateBatch(ctx, &roots[0].ID, models.TypeFloor,
		Strategy{Kind: StrategyNumeric, From: 1, To: 2}, 10)
	require.NoError(t, err)

	tree, warnings, err := svc.GetTree(ctx)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, tree, 2)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "A-01", tree[0].Children[0].Path)
	assert.Empty(t, tree[1].Children)
}

func TestDeleteSubtree(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	sections, err := svc.CreateBatch(ctx, nil, models.TypeSection,
		Strategy{Kind: StrategyAlphabetic, FromChar: "A", ToChar: "B"}, 0)
	require.NoError(t, err)
	floors, err := svc.CreateBatch(ctx, &sections[0].ID, models.TypeFloor,
		Strategy{Kind: StrategyNumeric, From: 1, To: 3}, 0)
	require.NoError(t, err)
	_, err = svc.CreateBatch(ctx, &floors[0].ID, models.TypeBin,
		Strategy{Kind: StrategyNumeric, From: 1, To: 5}, 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubtree(ctx, sections[0].ID))

	tree, warnings, err := svc.GetTree(ctx)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, tree, 1)
	assert.Equal(t, sections[1].ID, tree[0].ID)

	// nothing may still point at the deleted id
	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		if row.ParentID != nil {
			assert.NotEqual(t, sections[0].ID, *row.ParentID)
		}
	}
}

func TestDeleteSubtreeRefusedWhileStocked(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	sections, err := svc.CreateBatch(ctx, nil, models.TypeSection,
		Strategy{Kind: StrategyAlphabetic, FromChar: "A", ToChar: "A"}, 0)
	require.NoError(t, err)
	bins, err := svc.CreateBatch(ctx, &sections[0].ID, models.TypeBin,
		Strategy{Kind: StrategyNumeric, From: 1, To: 2}, 0)
	require.NoError(t, err)

	store.stock[bins[1].ID] = 7

	err = svc.DeleteSubtree(ctx, sections[0].ID)
	var conflict *StockConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, sections[0].ID, conflict.LocationID)
	assert.EqualValues(t, 1, conflict.StockedPlaces)

	// whole subtree must still be there
	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestDeleteSubtreeUnknownID(t *testing.T) {
	svc := NewService(newFakeStore())
	err := svc.DeleteSubtree(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSuggestChildType(t *testing.T) {
	svc := NewService(newFakeStore())
	assert.Equal(t, models.TypeFloor, svc.SuggestChildType(models.TypeSection))
	assert.Equal(t, models.TypeRow, svc.SuggestChildType(models.TypeFloor))
	assert.Equal(t, models.TypeColumn, svc.SuggestChildType(models.TypeRow))
	assert.Equal(t, models.TypeRoof, svc.SuggestChildType(models.TypeColumn))
	assert.Equal(t, models.TypeBin, svc.SuggestChildType(models.TypeRoof))
	assert.Equal(t, models.TypeBin, svc.SuggestChildType(models.TypeBin))
	assert.Equal(t, models.TypeBin, svc.SuggestChildType("SOMETHING_ELSE"))
}
