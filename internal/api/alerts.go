package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouseiq/internal/models"
)

func (s *Server) listAlerts(c *gin.Context) {
	var alerts []models.GeneratedAlert
	if err := s.DB.Order("created_at desc").Limit(100).Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

type lowStockConditions struct {
	Threshold int `json:"threshold"`
}

// checkAlerts evaluates every active rule against current stock totals and
// persists one alert per violation.
func (s *Server) checkAlerts(c *gin.Context) {
	var rules []models.AlertRule
	if err := s.DB.Where("is_active = ?", true).Find(&rules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	if len(rules) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no active rules", "alertsGenerated": 0})
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

	created := []models.GeneratedAlert{}
	for _, rule := range rules {
		if rule.AlertType != "low_stock" {
			continue
		}
		conditions := lowStockConditions{Threshold: 10}
		if len(rule.ConditionsJSON) > 0 {
			_ = json.Unmarshal(rule.ConditionsJSON, &conditions)
		}
		for _, item := range items {
			total := totals[item.ID]
			if total >= conditions.Threshold {
				continue
			}
			data, _ := json.Marshal(map[string]any{"item_id": item.ID, "current_stock": total})
			created = append(created, models.GeneratedAlert{
				ID:          uuid.New().String(),
				AlertRuleID: rule.ID,
				Severity:    "warning",
				Message:     fmt.Sprintf("Low stock alert: %s has %d units (Threshold: %d)", item.Name, total, conditions.Threshold),
				DataJSON:    data,
			})
		}
	}

	if len(created) > 0 {
		if err := s.DB.Create(&created).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alertsGenerated": len(created)})
}

func (s *Server) stockTotals() (map[string]int, error) {
	type row struct {
		ItemID string
		Total  int
	}
	var totals []row
	if err := s.DB.Model(&models.InventoryStock{}).
		Select("item_id, SUM(quantity) AS total").
		Group("item_id").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int, len(totals))
	for _, t := range totals {
		out[t.ItemID] = t.Total
	}
	return out, nil
}
