package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TranscribeResponse is the success body for the transcribe endpoint
type TranscribeResponse struct {
	OK   bool   `json:"ok"`
	Text string `json:"text"`
}

// Transcribe converts one uploaded audio file (multipart field "audio") to
// text. The stream is handed to Whisper directly, nothing touches disk.
func (h *Handlers) Transcribe(c *gin.Context) {
	// Whisper rejects requests over the configured size anyway; failing
	// here spares the upload.
	maxBytes := int64(h.cfg.MaxAudioMB) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	file, err := c.FormFile("audio")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "audio too large")
			return
		}
		respondError(c, http.StatusBadRequest, "no audio file")
		return
	}
	if file.Filename == "" {
		respondError(c, http.StatusBadRequest, "empty filename")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "transcribe error: "+err.Error())
		return
	}
	defer src.Close()

	text, err := h.ai.Transcribe(c.Request.Context(), src, file.Filename)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "transcribe error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, TranscribeResponse{OK: true, Text: text})
}
