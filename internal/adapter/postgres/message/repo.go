// Package message implements the chat message repository using PostgreSQL.
package message

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tradescribe/backend/internal/adapter/postgres"
	"github.com/tradescribe/backend/internal/domain"
)

const table = "messages"

var columns = []string{"id", "chat_id", "user_id", "role", "content", "created_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type messageRow struct {
	ID        uuid.UUID `db:"id"`
	ChatID    uuid.UUID `db:"chat_id"`
	UserID    uuid.UUID `db:"user_id"`
	Role      string    `db:"role"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (r messageRow) toDomain() *domain.Message {
	return &domain.Message{
		ID:        r.ID,
		ChatID:    r.ChatID,
		UserID:    r.UserID,
		Role:      domain.MessageRole(r.Role),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a new message and returns the persisted record.
// Returns domain.ErrNotFound if the chat does not exist (FK violation).
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("id", "chat_id", "user_id", "role", "content").
		Values(m.ID, m.ChatID, m.UserID, m.Role.String(), m.Content).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID.String())
	}

	var row messageRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "message", m.ID.String())
	}

	return row.toDomain(), nil
}

// ListByChat returns all messages of a chat in chronological order
// (created_at ASC). Returns an empty slice for an empty chat.
func (r *Repo) ListByChat(ctx context.Context, userID, chatID uuid.UUID) ([]*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"chat_id": chatID, "user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	var rows []messageRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]*domain.Message, len(rows))
	for i, row := range rows {
		msgs[i] = row.toDomain()
	}

	return msgs, nil
}

// ListRecent returns the last limit messages of a chat in chronological
// order. Used to build the conversation window for the language model.
func (r *Repo) ListRecent(ctx context.Context, userID, chatID uuid.UUID, limit int) ([]*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	inner := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"chat_id": chatID, "user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := psql.Select("*").
		FromSelect(inner, "recent").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}

	var rows []messageRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}

	msgs := make([]*domain.Message, len(rows))
	for i, row := range rows {
		msgs[i] = row.toDomain()
	}

	return msgs, nil
}
