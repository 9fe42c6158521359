package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"warehouseiq/internal/models"
)

func (s *Server) listReceiving(c *gin.Context) {
	var logs []models.ReceivingLog
	if err := s.DB.Order("received_date desc").Limit(100).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

type CreateReceivingRequest struct {
	WarehouseID  *string        `json:"warehouseId"`
	Supplier     string         `json:"supplier"`
	ReceivedDate *time.Time     `json:"receivedDate"`
	Items        datatypes.JSON `json:"items"`
	Notes        string         `json:"notes"`
}

func (s *Server) createReceiving(c *gin.Context) {
	var req CreateReceivingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Supplier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier required"})
		return
	}
	received := time.Now().UTC()
	if req.ReceivedDate != nil {
		received = *req.ReceivedDate
	}
	entry := models.ReceivingLog{
		ID:           uuid.New().String(),
		WarehouseID:  req.WarehouseID,
		Supplier:     req.Supplier,
		ReceivedDate: received,
		ItemsJSON:    req.Items,
		Notes:        req.Notes,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
