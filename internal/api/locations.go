package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"warehouseiq/internal/hierarchy"
	"warehouseiq/internal/models"
)

type CreateBatchRequest struct {
	ParentID *string            `json:"parentId"`
	Type     string             `json:"type"`
	Strategy hierarchy.Strategy `json:"strategy"`
	Capacity int                `json:"capacity"`
}

type TreeResponse struct {
	Roots    []*hierarchy.TreeNode `json:"roots"`
	Warnings []hierarchy.Warning   `json:"warnings,omitempty"`
}

func (s *Server) getLocationTree(c *gin.Context) {
	roots, warnings, err := s.Hierarchy.GetTree(c.Request.Context())
	if err != nil {
		hierarchyError(c, err)
		return
	}
	c.JSON(http.StatusOK, TreeResponse{Roots: roots, Warnings: warnings})
}

func (s *Server) createLocationBatch(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := s.Hierarchy.CreateBatch(c.Request.Context(), req.ParentID, req.Type, req.Strategy, req.Capacity)
	if err != nil {
		hierarchyError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) getLocation(c *gin.Context) {
	id := c.Param("id")
	var node models.WarehouseLocation
	if err := s.DB.First(&node, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	var children []models.WarehouseLocation
	if err := s.DB.Where("parent_id = ?", id).Order("name asc").Find(&children).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"node": node, "children": children})
}

type UpdateLocationRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Capacity *int    `json:"capacity"`
}

// updateLocation replaces simple fields. Descendant paths are materialized at
// creation and stay as they were, even when the name changes here.
func (s *Server) updateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "capacity must not be negative"})
			return
		}
		updates["capacity"] = *req.Capacity
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	res := s.DB.Model(&models.WarehouseLocation{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db update failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var updated models.WarehouseLocation
	if err := s.DB.First(&updated, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteLocation(c *gin.Context) {
	if err := s.Hierarchy.DeleteSubtree(c.Request.Context(), c.Param("id")); err != nil {
		hierarchyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) suggestLocationType(c *gin.Context) {
	parent := c.Query("parent")
	c.JSON(http.StatusOK, gin.H{"type": s.Hierarchy.SuggestChildType(parent)})
}
