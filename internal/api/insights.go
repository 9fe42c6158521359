package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouseiq/internal/insights"
	"warehouseiq/internal/models"
)

func (s *Server) listInsights(c *gin.Context) {
	var rows []models.DailyInsight
	if err := s.DB.Order("created_at desc").Limit(30).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) generateInsights(c *gin.Context) {
	if !s.llmReady(c) {
		return
	}

	var totalOrders, pendingOrders int64
	if err := s.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	if err := s.DB.Model(&models.Order{}).Where("status = ?", "pending").Count(&pendingOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	totals, err := s.stockTotals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	var items []models.InventoryItem
	if err := s.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	lowStock := []string{}
	for _, item := range items {
		if totals[item.ID] < item.MinThreshold {
			lowStock = append(lowStock, item.Name)
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	generated, err := s.Insights.Generate(ctx, insights.Snapshot{
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		LowStockItems: lowStock,
		Date:          time.Now().UTC().Format("2006-01-02"),
		LLM:           s.LLM,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "insight generation failed"})
		return
	}

	related, _ := json.Marshal(map[string]string{"context": "daily_gen"})
	rows := make([]models.DailyInsight, 0, len(generated))
	for _, ins := range generated {
		rows = append(rows, models.DailyInsight{
			ID:              uuid.New().String(),
			Type:            ins.Type,
			Title:           ins.Title,
			Content:         ins.Content,
			Severity:        ins.Severity,
			RelatedDataJSON: related,
		})
	}
	if len(rows) > 0 {
		if err := s.DB.Create(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "insights": rows})
}
