package models

import "time"

// Location types. The progression SECTION -> FLOOR -> ROW -> COLUMN -> ROOF is
// advisory only; any type may be nested under any parent.
const (
	TypeSection = "SECTION"
	TypeFloor   = "FLOOR"
	TypeRow     = "ROW"
	TypeColumn  = "COLUMN"
	TypeRoof    = "ROOF"
	TypeBin     = "BIN"
	TypeShelf   = "SHELF"
)

var LocationTypes = []string{TypeSection, TypeFloor, TypeRow, TypeColumn, TypeRoof, TypeBin, TypeShelf}

// WarehouseLocation is one node of the storage hierarchy, stored flat.
// ParentID is a self-reference with ON DELETE CASCADE; Path is materialized
// once at creation and is not recomputed when an ancestor is renamed.
type WarehouseLocation struct {
	ID                 string             `gorm:"primaryKey;size:36" json:"id"`
	ParentID           *string            `gorm:"size:36;index" json:"parentId"`
	Parent             *WarehouseLocation `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Type               string             `gorm:"size:32;not null" json:"type"`
	Name               string             `gorm:"size:255;index" json:"name"`
	Path               string             `gorm:"size:512;index" json:"path"`
	Capacity           int                `json:"capacity"`
	CurrentUtilization int                `json:"currentUtilization"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}
