package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/internal/service/trade"
)

// tradeService defines the minimal interface needed by TradeHandler.
type tradeService interface {
	CreateTrade(ctx context.Context, input trade.CreateTradeInput) (*domain.Trade, error)
	GetTrade(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error)
	ListTrades(ctx context.Context, input trade.ListTradesInput) ([]*domain.Trade, error)
	UpdateTrade(ctx context.Context, tradeID uuid.UUID, input trade.UpdateTradeInput) (*domain.Trade, error)
	DeleteTrade(ctx context.Context, tradeID uuid.UUID) error
}

// TradeHandler serves trade CRUD endpoints.
type TradeHandler struct {
	svc tradeService
	log *slog.Logger
}

// NewTradeHandler creates a TradeHandler.
func NewTradeHandler(svc tradeService, logger *slog.Logger) *TradeHandler {
	return &TradeHandler{svc: svc, log: logger.With("handler", "trade")}
}

type createTradeRequest struct {
	Ticker     string   `json:"ticker"`
	EntryDate  string   `json:"entry_date"`
	EntryPrice float64  `json:"entry_price"`
	Quantity   *float64 `json:"quantity"`
	ExitDate   *string  `json:"exit_date"`
	ExitPrice  *float64 `json:"exit_price"`
	Notes      *string  `json:"notes"`
}

// updateTradeRequest keeps exit fields as raw JSON so an explicit null
// (reopen the position) can be told apart from an absent key (leave it).
type updateTradeRequest struct {
	Ticker     *string         `json:"ticker"`
	EntryDate  *string         `json:"entry_date"`
	EntryPrice *float64        `json:"entry_price"`
	Quantity   *float64        `json:"quantity"`
	ExitDate   json.RawMessage `json:"exit_date"`
	ExitPrice  json.RawMessage `json:"exit_price"`
	Notes      *string         `json:"notes"`
}

type tradeResponse struct {
	ID         string   `json:"id"`
	Ticker     string   `json:"ticker"`
	EntryDate  string   `json:"entry_date"`
	EntryPrice float64  `json:"entry_price"`
	Quantity   float64  `json:"quantity"`
	ExitDate   *string  `json:"exit_date,omitempty"`
	ExitPrice  *float64 `json:"exit_price,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	ProfitLoss *float64 `json:"profit_loss,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// Create handles POST /api/trades.
func (h *TradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := trade.CreateTradeInput{
		Ticker:     req.Ticker,
		EntryPrice: req.EntryPrice,
		Quantity:   1,
		ExitPrice:  req.ExitPrice,
		Notes:      req.Notes,
	}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}

	if req.EntryDate != "" {
		t, err := time.Parse(dateLayout, req.EntryDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "entry_date must be YYYY-MM-DD")
			return
		}
		input.EntryDate = t.UTC()
	}
	if req.ExitDate != nil {
		t, err := time.Parse(dateLayout, *req.ExitDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "exit_date must be YYYY-MM-DD")
			return
		}
		t = t.UTC()
		input.ExitDate = &t
	}

	created, err := h.svc.CreateTrade(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTradeResponse(created))
}

// List handles GET /api/trades?ticker=&from=&to=.
func (h *TradeHandler) List(w http.ResponseWriter, r *http.Request) {
	input := trade.ListTradesInput{
		Ticker: r.URL.Query().Get("ticker"),
	}

	var err error
	if input.From, err = parseDateParam(r, "from"); err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	if input.To, err = parseDateParam(r, "to"); err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	trades, err := h.svc.ListTrades(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]tradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, toTradeResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/trades/{id}.
func (h *TradeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	t, err := h.svc.GetTrade(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTradeResponse(t))
}

// Update handles PATCH /api/trades/{id}.
func (h *TradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	var req updateTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := trade.UpdateTradeInput{
		Ticker:     req.Ticker,
		EntryPrice: req.EntryPrice,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
	}

	if req.EntryDate != nil {
		t, err := time.Parse(dateLayout, *req.EntryDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "entry_date must be YYYY-MM-DD")
			return
		}
		t = t.UTC()
		input.EntryDate = &t
	}

	// Explicit nulls on either exit field reopen the position.
	if isJSONNull(req.ExitDate) || isJSONNull(req.ExitPrice) {
		input.ClearExit = true
	} else {
		if len(req.ExitDate) > 0 {
			var raw string
			if err := json.Unmarshal(req.ExitDate, &raw); err != nil {
				writeError(w, http.StatusBadRequest, "exit_date must be YYYY-MM-DD")
				return
			}
			t, err := time.Parse(dateLayout, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "exit_date must be YYYY-MM-DD")
				return
			}
			t = t.UTC()
			input.ExitDate = &t
		}
		if len(req.ExitPrice) > 0 {
			var v float64
			if err := json.Unmarshal(req.ExitPrice, &v); err != nil {
				writeError(w, http.StatusBadRequest, "exit_price must be a number")
				return
			}
			input.ExitPrice = &v
		}
	}

	updated, err := h.svc.UpdateTrade(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTradeResponse(updated))
}

// Delete handles DELETE /api/trades/{id}.
func (h *TradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid trade id")
		return
	}

	if err := h.svc.DeleteTrade(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) > 0 && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func toTradeResponse(t *domain.Trade) tradeResponse {
	resp := tradeResponse{
		ID:         t.ID.String(),
		Ticker:     t.Ticker,
		EntryDate:  t.EntryDate.Format(dateLayout),
		EntryPrice: t.EntryPrice,
		Quantity:   t.Quantity,
		ExitPrice:  t.ExitPrice,
		Notes:      t.Notes,
		ProfitLoss: t.ProfitLoss,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.Format(time.RFC3339),
	}
	if t.ExitDate != nil {
		s := t.ExitDate.Format(dateLayout)
		resp.ExitDate = &s
	}
	return resp
}
