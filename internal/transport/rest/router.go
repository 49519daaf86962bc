package rest

import (
	"net/http"

	"github.com/tradescribe/backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Chat      *ChatHandler
	Trade     *TradeHandler
	Analytics *AnalyticsHandler
	AI        *AIHandler
	Health    *HealthHandler
}

// NewRouter mounts all routes. Health probes and the register/login/refresh
// trio are public; everything else requires a bearer token.
func NewRouter(h Handlers, requireAuth middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)

	protected := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}

	mux.Handle("POST /api/auth/logout", protected(h.Auth.Logout))
	mux.Handle("GET /api/auth/me", protected(h.Auth.Me))

	mux.Handle("POST /api/chats", protected(h.Chat.Create))
	mux.Handle("GET /api/chats", protected(h.Chat.List))
	mux.Handle("GET /api/chats/{id}", protected(h.Chat.Get))
	mux.Handle("DELETE /api/chats/{id}", protected(h.Chat.Delete))
	mux.Handle("POST /api/chats/{id}/messages", protected(h.Chat.SendMessage))
	mux.Handle("POST /api/chats/{id}/title", protected(h.Chat.GenerateTitle))

	mux.Handle("POST /api/trades", protected(h.Trade.Create))
	mux.Handle("GET /api/trades", protected(h.Trade.List))
	mux.Handle("GET /api/trades/{id}", protected(h.Trade.Get))
	mux.Handle("PATCH /api/trades/{id}", protected(h.Trade.Update))
	mux.Handle("DELETE /api/trades/{id}", protected(h.Trade.Delete))

	mux.Handle("GET /api/analytics", protected(h.Analytics.Summary))
	mux.Handle("GET /api/analytics/insights", protected(h.Analytics.Insights))

	mux.Handle("POST /api/ai/extract", protected(h.AI.Extract))

	return mux
}
