package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	Analytics(ctx context.Context, input analytics.AnalyticsInput) (domain.Analytics, error)
	Insights(ctx context.Context) (domain.Insights, error)
}

// AnalyticsHandler serves trade analytics endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Summary handles GET /api/analytics?from=&to=.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var input analytics.AnalyticsInput

	var err error
	if input.From, err = parseDateParam(r, "from"); err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	if input.To, err = parseDateParam(r, "to"); err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	summary, err := h.svc.Analytics(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Insights handles GET /api/analytics/insights.
func (h *AnalyticsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.Insights(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, insights)
}
