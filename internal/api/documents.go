package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouseiq/internal/models"
	"warehouseiq/internal/storage"
)

const maxDocumentBytes = 10 << 20

// processDocument accepts a packing slip or invoice upload, stores the raw
// file, and returns the line items the model extracted from it.
func (s *Server) processDocument(c *gin.Context) {
	if !s.llmReady(c) {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read failed"})
		return
	}

	id := uuid.New().String()
	contentType := header.Header.Get("Content-Type")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	result, err := s.Docs.Process(ctx, id, header.Filename, contentType, raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "document processing failed"})
		return
	}

	itemsJSON, _ := json.Marshal(result.Items)
	doc := models.ReceivedDocument{
		ID:          id,
		FileName:    header.Filename,
		ContentType: contentType,
		ObjectPath:  result.ObjectPath,
		ItemsJSON:   itemsJSON,
	}
	if err := s.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "items": result.Items})
}

// deleteDocument removes the record and every stored object under the
// document's prefix.
func (s *Server) deleteDocument(c *gin.Context) {
	id := c.Param("id")
	res := s.DB.Where("id = ?", id).Delete(&models.ReceivedDocument{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err := s.Store.RemovePrefix(c.Request.Context(), storage.DocumentPrefix(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "object cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) getDocumentRaw(c *gin.Context) {
	var doc models.ReceivedDocument
	if err := s.DB.First(&doc, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
		return
	}

	obj, err := s.Store.Get(c.Request.Context(), doc.ObjectPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	defer obj.Close()

	if doc.ContentType != "" {
		c.Header("Content-Type", doc.ContentType)
	}
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, obj)
}
