package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouseiq/internal/models"
)

func loc(id, name, locType string, parentID *string, path string) models.WarehouseLocation {
	return models.WarehouseLocation{ID: id, ParentID: parentID, Type: locType, Name: name, Path: path}
}

func ptr(s string) *string { return &s }

func TestBuildTreeForest(t *testing.T) {
	rows := []models.WarehouseLocation{
		loc("a", "A", models.TypeSection, nil, "A"),
		loc("a1", "A-01", models.TypeFloor, ptr("a"), "A-A-01"),
		loc("a2", "A-02", models.TypeFloor, ptr("a"), "A-A-02"),
		loc("b", "B", models.TypeSection, nil, "B"),
		loc("b1", "B-01", models.TypeFloor, ptr("b"), "B-B-01"),
		loc("b1x", "X", models.TypeBin, ptr("b1"), "B-B-01-X"),
	}

	roots, warnings := BuildTree(rows)
	require.Empty(t, warnings)
	require.Len(t, roots, 2)

	assert.Equal(t, "A", roots[0].Name)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "A-01", roots[0].Children[0].Name)
	assert.Equal(t, "A-02", roots[0].Children[1].Name)

	assert.Equal(t, "B", roots[1].Name)
	require.Len(t, roots[1].Children, 1)
	require.Len(t, roots[1].Children[0].Children, 1)
	assert.Equal(t, "X", roots[1].Children[0].Children[0].Name)
}

func TestBuildTreeKeepsInputOrder(t *testing.T) {
	// rows arrive sorted by name; children must keep that order
	rows := []models.WarehouseLocation{
		loc("root", "Zone", models.TypeSection, nil, "Zone"),
		loc("c1", "01", models.TypeRow, ptr("root"), "Zone-01"),
		loc("c2", "02", models.TypeRow, ptr("root"), "Zone-02"),
		loc("c3", "10", models.TypeRow, ptr("root"), "Zone-10"),
	}
	roots, _ := BuildTree(rows)
	require.Len(t, roots, 1)
	got := []string{}
	for _, child := range roots[0].Children {
		got = append(got, child.Name)
	}
	assert.Equal(t, []string{"01", "02", "10"}, got)
}

func TestBuildTreeDropsOrphansWithWarning(t *testing.T) {
	rows := []models.WarehouseLocation{
		loc("a", "A", models.TypeSection, nil, "A"),
		loc("ghost-child", "G", models.TypeBin, ptr("ghost"), "G"),
	}
	roots, warnings := BuildTree(rows)
	require.Len(t, roots, 1)
	assert.Equal(t, "A", roots[0].Name)
	require.Len(t, warnings, 1)
	assert.Equal(t, "ghost-child", warnings[0].LocationID)
	assert.Equal(t, "ghost", warnings[0].ParentID)
}

func TestBuildTreeEmpty(t *testing.T) {
	roots, warnings := BuildTree(nil)
	assert.Empty(t, roots)
	assert.Empty(t, warnings)
}

func TestFlattenRoundTrip(t *testing.T) {
	rows := []models.WarehouseLocation{
		loc("a", "A", models.TypeSection, nil, "A"),
		loc("a1", "F1", models.TypeFloor, ptr("a"), "A-F1"),
		loc("a1r", "R1", models.TypeRow, ptr("a1"), "A-F1-R1"),
		loc("b", "B", models.TypeSection, nil, "B"),
	}
	first, warnings := BuildTree(rows)
	require.Empty(t, warnings)

	rebuilt, warnings := BuildTree(Flatten(first))
	require.Empty(t, warnings)
	assert.Equal(t, first, rebuilt)
}

func TestFindNodeAndSubtreeIDs(t *testing.T) {
	rows := []models.WarehouseLocation{
		loc("a", "A", models.TypeSection, nil, "A"),
		loc("a1", "F1", models.TypeFloor, ptr("a"), "A-F1"),
		loc("a1r", "R1", models.TypeRow, ptr("a1"), "A-F1-R1"),
		loc("b", "B", models.TypeSection, nil, "B"),
	}
	roots, _ := BuildTree(rows)

	require.Nil(t, FindNode(roots, "nope"))

	node := FindNode(roots, "a1")
	require.NotNil(t, node)
	assert.Equal(t, "F1", node.Name)
	assert.ElementsMatch(t, []string{"a1", "a1r"}, SubtreeIDs(node))

	root := FindNode(roots, "a")
	require.NotNil(t, root)
	assert.ElementsMatch(t, []string{"a", "a1", "a1r"}, SubtreeIDs(root))
}
