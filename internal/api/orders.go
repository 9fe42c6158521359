package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouseiq/internal/models"
)

func (s *Server) listOrders(c *gin.Context) {
	var orders []models.Order
	db := s.DB
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if err := db.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

type CreateOrderRequest struct {
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	Priority     string  `json:"priority"`
	WarehouseID  *string `json:"warehouseId"`
	Items        []struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderNumber required"})
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	order := models.Order{
		ID:           uuid.New().String(),
		OrderNumber:  req.OrderNumber,
		CustomerName: req.CustomerName,
		Status:       "pending",
		Priority:     priority,
		WarehouseID:  req.WarehouseID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range req.Items {
			item := models.OrderItem{
				ID:              uuid.New().String(),
				OrderID:         order.ID,
				ItemID:          line.ItemID,
				QuantityOrdered: line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) getOrder(c *gin.Context) {
	var order models.Order
	if err := s.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	var items []models.OrderItem
	if err := s.DB.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}
