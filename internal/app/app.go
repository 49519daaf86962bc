package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tradescribe/backend/internal/adapter/llm"
	"github.com/tradescribe/backend/internal/adapter/postgres"
	chatrepo "github.com/tradescribe/backend/internal/adapter/postgres/chat"
	messagerepo "github.com/tradescribe/backend/internal/adapter/postgres/message"
	tokenrepo "github.com/tradescribe/backend/internal/adapter/postgres/token"
	traderepo "github.com/tradescribe/backend/internal/adapter/postgres/trade"
	userrepo "github.com/tradescribe/backend/internal/adapter/postgres/user"
	"github.com/tradescribe/backend/internal/auth"
	"github.com/tradescribe/backend/internal/config"
	analyticssvc "github.com/tradescribe/backend/internal/service/analytics"
	authsvc "github.com/tradescribe/backend/internal/service/auth"
	chatsvc "github.com/tradescribe/backend/internal/service/chat"
	tradesvc "github.com/tradescribe/backend/internal/service/trade"
	"github.com/tradescribe/backend/internal/transport/middleware"
	"github.com/tradescribe/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", Version),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	chats := chatrepo.New(pool)
	messages := messagerepo.New(pool)
	trades := traderepo.New(pool)

	txManager := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	assistant := llm.New(cfg.LLM, cfg.Chat, logger)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	tradeService := tradesvc.NewService(logger, trades)
	chatService := chatsvc.NewService(logger, chats, messages, trades, assistant, cfg.Chat)
	analyticsService := analyticssvc.NewService(logger, trades, assistant, cfg.Chat.InsightTrades)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Chat:      rest.NewChatHandler(chatService, logger),
		Trade:     rest.NewTradeHandler(tradeService, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsService, logger),
		AI:        rest.NewAIHandler(assistant, logger),
		Health:    rest.NewHealthHandler(pool, Version),
	}

	router := rest.NewRouter(handlers, middleware.RequireAuth(authService))

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
