package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradescribe/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a bcrypt-shaped password hash placeholder.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Test User " + suffix
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         &name,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedChat creates a chat for the user and returns it.
func SeedChat(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Chat {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	chat := domain.Chat{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO chats (id, user_id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		chat.ID, chat.UserID, chat.Title, chat.CreatedAt, chat.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChat insert: %v", err)
	}

	return chat
}

// SeedMessage creates a message in the chat at the given time and returns it.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, chatID, userID uuid.UUID, role domain.MessageRole, content string, at time.Time) domain.Message {
	t.Helper()
	ctx := context.Background()

	msg := domain.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: at,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, chat_id, user_id, role, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.ChatID, msg.UserID, msg.Role.String(), msg.Content, msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	return msg
}

// SeedTrade creates a trade and returns it. Pass nil exit fields for an
// open position.
func SeedTrade(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, ticker string, entryDate time.Time, entryPrice, quantity float64, exitPrice *float64) domain.Trade {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	trade := domain.Trade{
		ID:         uuid.New(),
		UserID:     userID,
		Ticker:     ticker,
		EntryDate:  entryDate,
		EntryPrice: entryPrice,
		Quantity:   quantity,
		ExitPrice:  exitPrice,
		ProfitLoss: domain.ComputeProfitLoss(entryPrice, exitPrice, quantity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if exitPrice != nil {
		trade.ExitDate = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO trades (id, user_id, ticker, entry_date, entry_price, quantity,
		                     exit_date, exit_price, notes, profit_loss, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		trade.ID, trade.UserID, trade.Ticker, trade.EntryDate, trade.EntryPrice, trade.Quantity,
		trade.ExitDate, trade.ExitPrice, trade.Notes, trade.ProfitLoss, trade.CreatedAt, trade.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrade insert: %v", err)
	}

	return trade
}
