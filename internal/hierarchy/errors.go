package hierarchy

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested location id does not exist.
var ErrNotFound = errors.New("location not found")

// ValidationError marks caller input rejected before any store access.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StoreError wraps a failure reported by the location record store. It is
// propagated unchanged; no retry happens at this layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StockConflictError refuses a subtree deletion while inventory stock still
// references the subtree. The caller must move or clear the stock first.
type StockConflictError struct {
	LocationID    string
	StockedPlaces int64
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("location %s still holds stock in %d place(s); move or clear it before deleting", e.LocationID, e.StockedPlaces)
}

// Warning reports a recoverable data-integrity problem found while rebuilding
// the tree, such as a row whose parent id resolves to nothing.
type Warning struct {
	LocationID string `json:"locationId"`
	ParentID   string `json:"parentId"`
	Msg        string `json:"message"`
}
