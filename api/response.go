package api

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {"ok": true, ...} on
// success, {"ok": false, "error": "..."} with a matching HTTP status on
// failure. The frontend branches on "ok" alone.

// ErrorResponse is the failure envelope shared by all endpoints
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// respondError sends the failure envelope with the given status
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{OK: false, Error: message})
}
