package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouseiq/internal/models"
)

func (s *Server) listWarehouses(c *gin.Context) {
	var warehouses []models.Warehouse
	if err := s.DB.Order("name asc").Find(&warehouses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, warehouses)
}

type CreateWarehouseRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CapacitySqft int    `json:"capacitySqft"`
}

func (s *Server) createWarehouse(c *gin.Context) {
	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	warehouse := models.Warehouse{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Address:      req.Address,
		CapacitySqft: req.CapacitySqft,
	}
	if err := s.DB.Create(&warehouse).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
		return
	}
	c.JSON(http.StatusOK, warehouse)
}
