package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouseiq/internal/ai"
	"warehouseiq/internal/models"
)

type reorderSuggestion struct {
	SKU                 string `json:"sku"`
	RecommendedQuantity int    `json:"recommended_quantity"`
	Reasoning           string `json:"reasoning"`
	ConfidenceScore     int    `json:"confidence_score"`
}

func (s *Server) recommendReorder(c *gin.Context) {
	if !s.llmReady(c) {
		return
	}

	var items []models.InventoryItem
	if err := s.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	var movements []models.Movement
	if err := s.DB.Order("created_at desc").Limit(100).Find(&movements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	itemsJSON, _ := json.Marshal(items)
	movementsJSON, _ := json.Marshal(movements)

	system := "You are an inventory planning analyst. Return strict JSON only."
	user := "Analyze the following inventory data and recent movements to identify items that need reordering.\n\n" +
		"Inventory Items:\n" + clip(string(itemsJSON), 3000) + "\n\n" +
		"Recent Movements:\n" + clip(string(movementsJSON), 3000) + "\n\n" +
		"Goal:\n" +
		"Recommend reorder quantities for items that are low in stock or moving fast.\n" +
		"Calculate a recommended quantity based on: (Target Stock = Max Threshold) - Current Stock.\n\n" +
		"Output Format (JSON Array):\n" +
		"[{\"sku\": \"ITEM_SKU\", \"recommended_quantity\": 50, \"reasoning\": \"...\", \"confidence_score\": 85}]\n\n" +
		"Return ONLY valid JSON."

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	raw, err := s.LLM.ChatJSON(ctx, system, user, 0.2)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "llm failed"})
		return
	}
	raw = ai.ExtractJSON(raw)
	var suggestions []reorderSuggestion
	if raw == "" || json.Unmarshal([]byte(raw), &suggestions) != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "llm invalid json"})
		return
	}

	bySKU := map[string]models.InventoryItem{}
	for _, item := range items {
		bySKU[item.SKU] = item
	}

	saved := []models.ReorderRecommendation{}
	for _, sug := range suggestions {
		item, ok := bySKU[sug.SKU]
		if !ok {
			continue
		}
		saved = append(saved, models.ReorderRecommendation{
			ID:                  uuid.New().String(),
			ItemID:              item.ID,
			RecommendedQuantity: sug.RecommendedQuantity,
			Reasoning:           sug.Reasoning,
			ConfidenceScore:     sug.ConfidenceScore,
			Status:              "pending",
		})
	}
	if len(saved) > 0 {
		if err := s.DB.Create(&saved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": saved})
}

type PickPathRequest struct {
	Items []PickPathItem `json:"items"`
}

type PickPathItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

// optimizePickPath asks the model to order the pick list by walking distance.
// Items the model drops or invents are discarded; unknown SKUs never survive.
func (s *Server) optimizePickPath(c *gin.Context) {
	if !s.llmReady(c) {
		return
	}

	var req PickPathRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items array is required"})
		return
	}

	itemsJSON, _ := json.Marshal(req.Items)
	system := "You are an expert in warehouse logistics and pick path optimization. Return strict JSON only."
	user := "I have a list of items to pick for an order.\n" +
		"Reorder them into the most efficient pick path to minimize walking distance.\n\n" +
		"Items to Pick (with locations):\n" + clip(string(itemsJSON), 3000) + "\n\n" +
		"Warehouse Layout Strategy:\n" +
		"- Location paths read root to leaf, e.g. \"ZoneA-Row-01-Bin-03\".\n" +
		"- Sections are walked in name order; a zig-zag path through rows is usually most efficient.\n\n" +
		"Output Format (JSON Array of Strings):\n" +
		"[\"Item A SKU\", \"Item B SKU\"]\n\n" +
		"Return ONLY the sorted array of SKUs."

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	raw, err := s.LLM.ChatJSON(ctx, system, user, 0.1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "llm failed"})
		return
	}
	raw = ai.ExtractJSON(raw)
	var sortedSKUs []string
	if raw == "" || json.Unmarshal([]byte(raw), &sortedSKUs) != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "llm invalid json"})
		return
	}

	bySKU := map[string]PickPathItem{}
	for _, item := range req.Items {
		bySKU[item.SKU] = item
	}
	path := make([]PickPathItem, 0, len(req.Items))
	for _, sku := range sortedSKUs {
		if item, ok := bySKU[sku]; ok {
			path = append(path, item)
			delete(bySKU, sku)
		}
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}

type PutawayRequest struct {
	ItemName string `json:"itemName"`
	Category string `json:"category"`
	SizeTier string `json:"sizeTier"`
}

func (s *Server) suggestPutaway(c *gin.Context) {
	if !s.llmReady(c) {
		return
	}

	var req PutawayRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemName is required"})
		return
	}

	var locations []models.WarehouseLocation
	if err := s.DB.Where("type IN ?", []string{models.TypeBin, models.TypeShelf}).
		Order("current_utilization asc").Limit(20).Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	locationsJSON, _ := json.Marshal(locations)

	system := "You are a warehouse slotting assistant. Return strict JSON only."
	user := "Suggest the best warehouse location to store a new item:\n" +
		"Item: " + req.ItemName + "\n" +
		"Category: " + req.Category + "\n" +
		"Size Tier: " + req.SizeTier + "\n\n" +
		"Available Locations Sample (least utilized first):\n" + clip(string(locationsJSON), 3000) + "\n\n" +
		"Rules:\n" +
		"- Heavy items go near the ground floor.\n" +
		"- Prefer locations with spare capacity.\n\n" +
		"Response Format (JSON):\n" +
		"{\"suggested_path\": \"ZoneA-Row-01-Bin-03\", \"reasoning\": \"...\"}"

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	raw, err := s.LLM.ChatJSON(ctx, system, user, 0.2)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "llm failed"})
		return
	}
	raw = ai.ExtractJSON(raw)
	var suggestion struct {
		SuggestedPath string `json:"suggested_path"`
		Reasoning     string `json:"reasoning"`
	}
	if raw == "" || json.Unmarshal([]byte(raw), &suggestion) != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "llm invalid json"})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

func clip(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max]
	}
	return s
}
