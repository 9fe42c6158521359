package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouseiq/internal/models"
)

func (s *Server) listItems(c *gin.Context) {
	var items []models.InventoryItem
	db := s.DB
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		db = db.Where("name LIKE ? OR sku LIKE ?", like, like)
	}
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type CreateItemRequest struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	MinThreshold int     `json:"minThreshold"`
	MaxThreshold int     `json:"maxThreshold"`
	UnitCost     float64 `json:"unitCost"`
	WarehouseID  *string `json:"warehouseId"`
}

func (s *Server) createItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.SKU == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sku and name required"})
		return
	}

	item := models.InventoryItem{
		ID:           uuid.New().String(),
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		MinThreshold: req.MinThreshold,
		MaxThreshold: req.MaxThreshold,
		UnitCost:     req.UnitCost,
		WarehouseID:  req.WarehouseID,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type StockSummary struct {
	ItemID   string `json:"itemId"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	MinLevel int    `json:"minLevel"`
	Low      bool   `json:"low"`
}

func (s *Server) getStockSummary(c *gin.Context) {
	var items []models.InventoryItem
	if err := s.DB.Order("name asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	byItem, err := s.stockTotals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	out := make([]StockSummary, 0, len(items))
	for _, item := range items {
		total := byItem[item.ID]
		out = append(out, StockSummary{
			ItemID:   item.ID,
			SKU:      item.SKU,
			Name:     item.Name,
			Total:    total,
			MinLevel: item.MinThreshold,
			Low:      total < item.MinThreshold,
		})
	}
	c.JSON(http.StatusOK, out)
}

type CreateMovementRequest struct {
	ItemID         string  `json:"itemId"`
	FromLocationID *string `json:"fromLocationId"`
	ToLocationID   *string `json:"toLocationId"`
	Quantity       int     `json:"quantity"`
	Reason         string  `json:"reason"`
}

// createMovement records a stock movement and adjusts the stock rows and
// location utilization counters in one transaction.
func (s *Server) createMovement(c *gin.Context) {
	var req CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.ItemID == "" || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and positive quantity required"})
		return
	}
	if req.FromLocationID == nil && req.ToLocationID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of fromLocationId/toLocationId required"})
		return
	}

	movement := models.Movement{
		ID:             uuid.New().String(),
		ItemID:         req.ItemID,
		FromLocationID: req.FromLocationID,
		ToLocationID:   req.ToLocationID,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}
		if req.FromLocationID != nil {
			if err := adjustStock(tx, req.ItemID, *req.FromLocationID, -req.Quantity); err != nil {
				return err
			}
		}
		if req.ToLocationID != nil {
			if err := adjustStock(tx, req.ItemID, *req.ToLocationID, req.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movement)
}

func adjustStock(tx *gorm.DB, itemID, locationID string, delta int) error {
	var stock models.InventoryStock
	res := tx.Where("item_id = ? AND location_id = ?", itemID, locationID).Limit(1).Find(&stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		stock = models.InventoryStock{
			ID:         uuid.New().String(),
			ItemID:     itemID,
			LocationID: locationID,
		}
	}
	stock.Quantity += delta
	if stock.Quantity < 0 {
		stock.Quantity = 0
	}
	stock.LastUpdated = time.Now().UTC()
	if err := tx.Save(&stock).Error; err != nil {
		return err
	}

	return tx.Model(&models.WarehouseLocation{}).
		Where("id = ?", locationID).
		Update("current_utilization", gorm.Expr("GREATEST(current_utilization + ?, 0)", delta)).Error
}
