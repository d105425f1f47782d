package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moko271/design-thinking-grarec/cards"
	"github.com/moko271/design-thinking-grarec/log"
	"github.com/moko271/design-thinking-grarec/vendors"
)

// ExtractKeywordsRequest is the request body for the extract keywords
// endpoint. Memo is a pointer because its presence is what is validated: an
// empty memo is a legal request, a missing field is not. Phase works the same
// way so an explicitly empty phase is echoed back as sent.
type ExtractKeywordsRequest struct {
	Memo  *string `json:"memo"`
	Phase *string `json:"phase"`
}

// KeywordsResponse is the success body for the extract keywords endpoint
type KeywordsResponse struct {
	OK       bool         `json:"ok"`
	Keywords []cards.Card `json:"keywords"`
	Phase    string       `json:"phase"`
}

// ExtractKeywords turns a discussion memo into phrase cards for the current
// design thinking phase
func (h *Handlers) ExtractKeywords(c *gin.Context) {
	var req ExtractKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Memo == nil {
		respondError(c, http.StatusBadRequest, "no memo field")
		return
	}

	phase := string(cards.DefaultPhase)
	if req.Phase != nil {
		phase = *req.Phase
	}

	resp, err := h.ai.Complete(c.Request.Context(), vendors.CompletionOptions{
		SystemPrompt: cards.SystemInstruction,
		Prompt:       cards.BuildPrompt(*req.Memo, cards.Phase(phase)),
		Temperature:  0.4,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "OpenAI API error: "+err.Error())
		return
	}

	keywords := cards.Normalize(resp.Content)

	log.Info().
		Str("phase", phase).
		Int("memoChars", len(*req.Memo)).
		Int("cards", len(keywords)).
		Msg("keywords extracted")

	c.JSON(http.StatusOK, KeywordsResponse{OK: true, Keywords: keywords, Phase: phase})
}
