package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes
func SetupRoutes(r *gin.Engine, h *Handlers) {
	// Pages; the root and /ai both serve the classroom UI
	r.GET("/", h.IndexPage)
	r.GET("/ai", h.IndexPage)
	r.Static("/static", h.cfg.StaticDir)

	// API group
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/extract_keywords", h.ExtractKeywords)
	api.POST("/transcribe", h.Transcribe)
}
