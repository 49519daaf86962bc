package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tradescribe/backend/internal/adapter/llm"
	"github.com/tradescribe/backend/internal/domain"
)

// extractor defines the extraction interface needed by AIHandler.
type extractor interface {
	ExtractTrade(ctx context.Context, text string, now time.Time) llm.Extraction
}

// AIHandler exposes trade extraction directly, without the chat pipeline.
type AIHandler struct {
	extractor extractor
	log       *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(ex extractor, logger *slog.Logger) *AIHandler {
	return &AIHandler{extractor: ex, log: logger.With("handler", "ai")}
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Trade *domain.TradeDraft `json:"trade"`
}

// Extract handles POST /api/ai/extract. Unlike the chat pipeline, a dead
// model here is an error the caller should see.
func (h *AIHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := h.extractor.ExtractTrade(r.Context(), req.Text, time.Now().UTC())

	if result.Outcome == llm.OutcomeUnavailable {
		h.log.WarnContext(r.Context(), "extraction unavailable",
			slog.String("error", result.Err.Error()))
		writeError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
		return
	}

	resp := extractResponse{}
	if result.TradeFound() {
		resp.Trade = result.Draft
	}
	writeJSON(w, http.StatusOK, resp)
}
