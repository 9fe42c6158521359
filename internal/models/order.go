package models

import "time"

type Order struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber  string    `gorm:"size:64;uniqueIndex" json:"orderNumber"`
	CustomerName string    `gorm:"size:255" json:"customerName"`
	Status       string    `gorm:"size:32;index" json:"status"`
	Priority     string    `gorm:"size:32" json:"priority"`
	WarehouseID  *string   `gorm:"size:36;index" json:"warehouseId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	OrderID         string `gorm:"size:36;index" json:"orderId"`
	ItemID          string `gorm:"size:36;index" json:"itemId"`
	QuantityOrdered int    `json:"quantityOrdered"`
	QuantityPicked  int    `json:"quantityPicked"`
}
