// Package chat implements the chat repository using PostgreSQL.
// Every query is scoped by user_id so one user can never see or touch
// another user's chats.
package chat

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

const table = "chats"

var columns = []string{"id", "user_id", "title", "created_at", "updated_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides chat persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type chatRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r chatRow) toDomain() *domain.Chat {
	return &domain.Chat{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create inserts a new chat and returns the persisted record.
func (r *Repo) Create(ctx context.Context, c *domain.Chat) (*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("id", "user_id", "title").
		Values(c.ID, c.UserID, c.Title).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "chat", c.ID.String())
	}

	var row chatRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "chat", c.ID.String())
	}

	return row.toDomain(), nil
}

// GetByID returns a chat by primary key.
// Returns domain.ErrNotFound if the chat does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, chatID uuid.UUID) (*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": chatID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "chat", chatID.String())
	}

	var row chatRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "chat", chatID.String())
	}

	return row.toDomain(), nil
}

// List returns all chats of a user ordered by updated_at DESC, newest first.
// Returns an empty slice if the user has no chats.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	var rows []chatRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	chats := make([]*domain.Chat, len(rows))
	for i, row := range rows {
		chats[i] = row.toDomain()
	}

	return chats, nil
}

// UpdateTitle sets a new title on a chat and bumps updated_at.
// Returns domain.ErrNotFound if the chat does not exist or belongs to another user.
func (r *Repo) UpdateTitle(ctx context.Context, userID, chatID uuid.UUID, title string) (*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("title", title).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": chatID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "chat", chatID.String())
	}

	var row chatRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "chat", chatID.String())
	}

	return row.toDomain(), nil
}

// Touch bumps a chat's updated_at so it sorts to the top of List.
func (r *Repo) Touch(ctx context.Context, userID, chatID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": chatID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "chat", chatID.String())
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "chat", chatID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", chatID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a chat. Messages are removed by ON DELETE CASCADE.
// Returns domain.ErrNotFound if the chat does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, chatID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": chatID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "chat", chatID.String())
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "chat", chatID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", chatID, domain.ErrNotFound)
	}

	return nil
}
