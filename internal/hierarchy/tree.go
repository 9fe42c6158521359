package hierarchy

import "warehouseiq/internal/models"

// TreeNode is the in-memory reconstruction of one location with its children
// attached. It is rebuilt from the flat row set on every read and never
// persisted.
type TreeNode struct {
	models.WarehouseLocation
	Children []*TreeNode `json:"children,omitempty"`
}

// BuildTree reconstructs the location forest from flat rows. Rows arrive
// sorted by name, and children keep that order within each level. A single
// pass builds an id index and a parent-id grouping; attaching children then
// touches each node once, so the whole rebuild is O(n).
//
// Rows whose parent id matches no known id are dropped from the forest and
// reported as warnings rather than failing the rebuild.
func BuildTree(rows []models.WarehouseLocation) ([]*TreeNode, []Warning) {
	index := make(map[string]*TreeNode, len(rows))
	childrenOf := map[string][]*TreeNode{}
	roots := []*TreeNode{}

	for i := range rows {
		n := &TreeNode{WarehouseLocation: rows[i]}
		index[n.ID] = n
		if n.ParentID != nil {
			childrenOf[*n.ParentID] = append(childrenOf[*n.ParentID], n)
		} else {
			roots = append(roots, n)
		}
	}

	warnings := []Warning{}
	for parentID, kids := range childrenOf {
		parent, ok := index[parentID]
		if !ok {
			for _, kid := range kids {
				warnings = append(warnings, Warning{
					LocationID: kid.ID,
					ParentID:   parentID,
					Msg:        "parent location does not exist; node excluded from tree",
				})
			}
			continue
		}
		parent.Children = kids
	}
	return roots, warnings
}

// Flatten walks a forest depth-first and returns the flat rows it was built
// from, children after their parent.
func Flatten(roots []*TreeNode) []models.WarehouseLocation {
	out := make([]models.WarehouseLocation, 0, len(roots))
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		out = append(out, n.WarehouseLocation)
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return out
}

// FindNode locates a node by id in a built forest.
func FindNode(roots []*TreeNode, id string) *TreeNode {
	var found *TreeNode
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if found != nil {
			return
		}
		if n.ID == id {
			found = n
			return
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
		if found != nil {
			break
		}
	}
	return found
}

// SubtreeIDs collects the ids of a node and all of its descendants.
func SubtreeIDs(n *TreeNode) []string {
	ids := []string{}
	var walk func(*TreeNode)
	walk = func(t *TreeNode) {
		ids = append(ids, t.ID)
		for _, child := range t.Children {
			walk(child)
		}
	}
	walk(n)
	return ids
}
