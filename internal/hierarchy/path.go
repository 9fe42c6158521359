package hierarchy

// MaterializePath computes the display path for a node at creation time.
// Root nodes use their own name; everything else appends to the parent's
// already-materialized path. Existing rows are never recomputed, so renaming
// an ancestor leaves descendant paths stale.
func MaterializePath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + "-" + name
}
