package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) assistantChat(c *gin.Context) {
	if !s.llmReady(c) {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	reply, err := s.Assistant.Ask(ctx, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant failed"})
		return
	}
	c.JSON(http.StatusOK, reply)
}
