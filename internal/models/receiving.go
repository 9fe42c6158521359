package models

import (
	"time"

	"gorm.io/datatypes"
)

type ReceivingLog struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	WarehouseID  *string        `gorm:"size:36;index" json:"warehouseId"`
	Supplier     string         `gorm:"size:255" json:"supplier"`
	ReceivedDate time.Time      `json:"receivedDate"`
	ItemsJSON    datatypes.JSON `gorm:"type:json" json:"items"`
	Notes        string         `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ReceivedDocument tracks an uploaded packing slip or invoice. The raw bytes
// live in object storage under documents/<id>; only metadata and the extracted
// line items are kept here.
type ReceivedDocument struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	FileName    string         `gorm:"size:500" json:"fileName"`
	ContentType string         `gorm:"size:255" json:"contentType"`
	ObjectPath  string         `gorm:"size:1024" json:"objectPath"`
	ItemsJSON   datatypes.JSON `gorm:"type:json" json:"items"`
	CreatedAt   time.Time      `json:"createdAt"`
}
