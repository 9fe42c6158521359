package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"warehouseiq/internal/ai"
	"warehouseiq/internal/assistant"
	"warehouseiq/internal/docs"
	"warehouseiq/internal/hierarchy"
	"warehouseiq/internal/insights"
	"warehouseiq/internal/storage"
)

type Server struct {
	DB        *gorm.DB
	Store     *storage.MinioStore
	LLM       *ai.Client
	Hierarchy *hierarchy.Service
	Assistant *assistant.Assistant
	Insights  *insights.Generator
	Docs      *docs.Processor
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")

	api.GET("/locations/tree", s.getLocationTree)
	api.GET("/locations/suggest-type", s.suggestLocationType)
	api.GET("/locations/:id", s.getLocation)
	api.POST("/locations/batch", s.createLocationBatch)
	api.PATCH("/locations/:id", s.updateLocation)
	api.DELETE("/locations/:id", s.deleteLocation)

	api.GET("/warehouses", s.listWarehouses)
	api.POST("/warehouses", s.createWarehouse)

	api.GET("/items", s.listItems)
	api.POST("/items", s.createItem)
	api.GET("/stock", s.getStockSummary)
	api.POST("/movements", s.createMovement)

	api.GET("/orders", s.listOrders)
	api.POST("/orders", s.createOrder)
	api.GET("/orders/:id", s.getOrder)

	api.GET("/receiving", s.listReceiving)
	api.POST("/receiving", s.createReceiving)

	api.GET("/alerts", s.listAlerts)
	api.POST("/alerts/check", s.checkAlerts)

	api.POST("/assistant/chat", s.assistantChat)

	api.GET("/insights", s.listInsights)
	api.POST("/insights/generate", s.generateInsights)

	api.POST("/recommendations/reorder", s.recommendReorder)
	api.POST("/recommendations/pick-path", s.optimizePickPath)
	api.POST("/recommendations/putaway", s.suggestPutaway)

	api.POST("/documents", s.processDocument)
	api.GET("/documents/:id/raw", s.getDocumentRaw)
	api.DELETE("/documents/:id", s.deleteDocument)
}

// hierarchyError maps the typed hierarchy errors onto transport responses.
func hierarchyError(c *gin.Context, err error) {
	var verr *hierarchy.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
		return
	}
	var conflict *hierarchy.StockConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
		return
	}
	if errors.Is(err, hierarchy.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) llmReady(c *gin.Context) bool {
	if s.LLM == nil || !s.LLM.Enabled() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "llm not configured"})
		return false
	}
	return true
}
