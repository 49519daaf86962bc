package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tradescribe/backend/internal/domain"
	"github.com/tradescribe/backend/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	CreateChat(ctx context.Context, input chat.CreateChatInput) (*domain.Chat, error)
	ListChats(ctx context.Context) ([]*domain.Chat, error)
	GetChat(ctx context.Context, chatID uuid.UUID) (*chat.ChatWithMessages, error)
	DeleteChat(ctx context.Context, chatID uuid.UUID) error
	SendMessage(ctx context.Context, input chat.SendMessageInput) (*chat.SendMessageResult, error)
	GenerateTitle(ctx context.Context, chatID uuid.UUID) (*domain.Chat, error)
}

// ChatHandler serves chat REST endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type createChatRequest struct {
	Title string `json:"title"`
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type chatWithMessagesResponse struct {
	chatResponse
	Messages []messageResponse `json:"messages"`
}

type sendMessageResponse struct {
	Message        messageResponse    `json:"message"`
	TradeExtracted *domain.TradeDraft `json:"trade_extracted,omitempty"`
	TradeSaved     bool               `json:"trade_saved"`
	Grounded       bool               `json:"grounded"`
}

// Create handles POST /api/chats.
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChatRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	created, err := h.svc.CreateChat(r.Context(), chat.CreateChatInput{Title: req.Title})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChatResponse(created))
}

// List handles GET /api/chats.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	chats, err := h.svc.ListChats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]chatResponse, 0, len(chats))
	for _, c := range chats {
		out = append(out, toChatResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/chats/{id}.
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	result, err := h.svc.GetChat(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := chatWithMessagesResponse{
		chatResponse: toChatResponse(result.Chat),
		Messages:     make([]messageResponse, 0, len(result.Messages)),
	}
	for _, m := range result.Messages {
		resp.Messages = append(resp.Messages, toMessageResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/chats/{id}.
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	if err := h.svc.DeleteChat(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendMessage handles POST /api/chats/{id}/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SendMessage(r.Context(), chat.SendMessageInput{
		ChatID:  id,
		Content: req.Message,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sendMessageResponse{
		Message:        toMessageResponse(result.Message),
		TradeExtracted: result.TradeExtracted,
		TradeSaved:     result.TradeSaved,
		Grounded:       result.Grounded,
	})
}

// GenerateTitle handles POST /api/chats/{id}/title.
func (h *ChatHandler) GenerateTitle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	updated, err := h.svc.GenerateTitle(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChatResponse(updated))
}

func toChatResponse(c *domain.Chat) chatResponse {
	return chatResponse{
		ID:        c.ID.String(),
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		ChatID:    m.ChatID.String(),
		Role:      m.Role.String(),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
