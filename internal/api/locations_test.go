package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouseiq/internal/hierarchy"
	"warehouseiq/internal/models"
)

// memStore backs the hierarchy service without a database. Deletion walks
// parent references the way the cascading foreign key would.
type memStore struct {
	rows    []models.WarehouseLocation
	stocked map[string]int64
}

func (m *memStore) InsertMany(_ context.Context, rows []models.WarehouseLocation) error {
	m.rows = append(m.rows, rows...)
	return nil
}

func (m *memStore) ListAll(_ context.Context) ([]models.WarehouseLocation, error) {
	out := make([]models.WarehouseLocation, len(m.rows))
	copy(out, m.rows)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) DeleteCascade(_ context.Context, id string) error {
	doomed := map[string]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, r := range m.rows {
			if r.ParentID != nil && doomed[*r.ParentID] && !doomed[r.ID] {
				doomed[r.ID] = true
				changed = true
			}
		}
	}
	kept := m.rows[:0]
	for _, r := range m.rows {
		if !doomed[r.ID] {
			kept = append(kept, r)
		}
	}
	m.rows = kept
	return nil
}

func (m *memStore) CountStockInSubtree(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		n += m.stocked[id]
	}
	return n, nil
}

func newLocationRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	s := &Server{Hierarchy: hierarchy.NewService(store)}
	r.GET("/api/locations/tree", s.getLocationTree)
	r.GET("/api/locations/suggest-type", s.suggestLocationType)
	r.POST("/api/locations/batch", s.createLocationBatch)
	r.DELETE("/api/locations/:id", s.deleteLocation)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBatchAndTree(t *testing.T) {
	store := &memStore{stocked: map[string]int64{}}
	r := newLocationRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/locations/batch", CreateBatchRequest{
		Type:     models.TypeSection,
		Strategy: hierarchy.Strategy{Kind: hierarchy.StrategyAlphabetic, FromChar: "A", ToChar: "B", Prefix: "Zone"},
		Capacity: 100,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created []models.WarehouseLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 2)
	assert.Equal(t, "ZoneA", created[0].Name)

	w = doJSON(t, r, http.MethodPost, "/api/locations/batch", CreateBatchRequest{
		ParentID: &created[0].ID,
		Type:     models.TypeRow,
		Strategy: hierarchy.Strategy{Kind: hierarchy.StrategyNumeric, From: 1, To: 3, Prefix: "Row-"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/locations/tree", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tree TreeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tree))
	require.Len(t, tree.Roots, 2)
	assert.Empty(t, tree.Warnings)
	require.Len(t, tree.Roots[0].Children, 3)
	assert.Equal(t, "ZoneA-Row-01", tree.Roots[0].Children[0].Path)
}

func TestCreateBatchValidationStatus(t *testing.T) {
	r := newLocationRouter(&memStore{stocked: map[string]int64{}})

	w := doJSON(t, r, http.MethodPost, "/api/locations/batch", CreateBatchRequest{
		Type:     "mezzanine",
		Strategy: hierarchy.Strategy{Kind: hierarchy.StrategyNumeric, From: 1, To: 2},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/locations/batch", CreateBatchRequest{
		Type:     models.TypeBin,
		Strategy: hierarchy.Strategy{Kind: hierarchy.StrategyNumeric, From: 1, To: 500},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLocationStatusCodes(t *testing.T) {
	store := &memStore{stocked: map[string]int64{}}
	r := newLocationRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/locations/batch", CreateBatchRequest{
		Type:     models.TypeSection,
		Strategy: hierarchy.Strategy{Kind: hierarchy.StrategyAlphabetic, FromChar: "A", ToChar: "A", Prefix: "Zone"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created []models.WarehouseLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/locations/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	store.stocked[created[0].ID] = 4
	w = doJSON(t, r, http.MethodDelete, "/api/locations/"+created[0].ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	delete(store.stocked, created[0].ID)
	w = doJSON(t, r, http.MethodDelete, "/api/locations/"+created[0].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.rows)
}

func TestSuggestLocationType(t *testing.T) {
	r := newLocationRouter(&memStore{stocked: map[string]int64{}})

	w := doJSON(t, r, http.MethodGet, "/api/locations/suggest-type?parent="+models.TypeSection, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"FLOOR"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/locations/suggest-type", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"BIN"}`, w.Body.String())
}
