package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Health reports liveness for deployment probes
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// IndexPage serves the classroom UI. HTML is not cached so lesson-day fixes
// reach student tablets on reload.
func (h *Handlers) IndexPage(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.File(filepath.Join(h.cfg.StaticDir, "index_ai.html"))
}
