package models

import "time"

type Warehouse struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Address      string    `gorm:"size:500" json:"address"`
	CapacitySqft int       `json:"capacitySqft"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type InventoryItem struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	SKU          string    `gorm:"size:64;uniqueIndex" json:"sku"`
	Name         string    `gorm:"size:255" json:"name"`
	Category     string    `gorm:"size:255" json:"category"`
	MinThreshold int       `json:"minThreshold"`
	MaxThreshold int       `json:"maxThreshold"`
	UnitCost     float64   `json:"unitCost"`
	WarehouseID  *string   `gorm:"size:36;index" json:"warehouseId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// InventoryStock ties an item to a hierarchy location. Its LocationID foreign
// key does not cascade on location delete, which is why subtree deletion must
// check for stock first.
type InventoryStock struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ItemID      string    `gorm:"size:36;index" json:"itemId"`
	LocationID  string    `gorm:"size:36;index" json:"locationId"`
	Quantity    int       `json:"quantity"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Movement struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ItemID         string    `gorm:"size:36;index" json:"itemId"`
	FromLocationID *string   `gorm:"size:36" json:"fromLocationId"`
	ToLocationID   *string   `gorm:"size:36" json:"toLocationId"`
	Quantity       int       `json:"quantity"`
	Reason         string    `gorm:"size:255" json:"reason"`
	CreatedAt      time.Time `json:"createdAt"`
}
