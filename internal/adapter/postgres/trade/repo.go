// Package trade implements the trade repository using PostgreSQL.
// Every query is scoped by user_id.
package trade

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

const table = "trades"

var columns = []string{
	"id", "user_id", "ticker", "entry_date", "entry_price", "quantity",
	"exit_date", "exit_price", "notes", "profit_loss", "created_at", "updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides trade persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new trade repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type tradeRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Ticker     string     `db:"ticker"`
	EntryDate  time.Time  `db:"entry_date"`
	EntryPrice float64    `db:"entry_price"`
	Quantity   float64    `db:"quantity"`
	ExitDate   *time.Time `db:"exit_date"`
	ExitPrice  *float64   `db:"exit_price"`
	Notes      *string    `db:"notes"`
	ProfitLoss *float64   `db:"profit_loss"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (r tradeRow) toDomain() *domain.Trade {
	return &domain.Trade{
		ID:         r.ID,
		UserID:     r.UserID,
		Ticker:     r.Ticker,
		EntryDate:  r.EntryDate,
		EntryPrice: r.EntryPrice,
		Quantity:   r.Quantity,
		ExitDate:   r.ExitDate,
		ExitPrice:  r.ExitPrice,
		Notes:      r.Notes,
		ProfitLoss: r.ProfitLoss,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Create inserts a new trade and returns the persisted record.
func (r *Repo) Create(ctx context.Context, t *domain.Trade) (*domain.Trade, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("id", "user_id", "ticker", "entry_date", "entry_price", "quantity",
			"exit_date", "exit_price", "notes", "profit_loss").
		Values(t.ID, t.UserID, t.Ticker, t.EntryDate, t.EntryPrice, t.Quantity,
			t.ExitDate, t.ExitPrice, t.Notes, t.ProfitLoss).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "trade", t.ID.String())
	}

	var row tradeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "trade", t.ID.String())
	}

	return row.toDomain(), nil
}

// GetByID returns a trade by primary key.
// Returns domain.ErrNotFound if the trade does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, tradeID uuid.UUID) (*domain.Trade, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": tradeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "trade", tradeID.String())
	}

	var row tradeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "trade", tradeID.String())
	}

	return row.toDomain(), nil
}

// List returns a user's trades matching the filter, ordered by entry_date
// DESC with created_at DESC as tiebreaker. Returns an empty slice when
// nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TradeFilter) ([]*domain.Trade, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sb := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("entry_date DESC", "created_at DESC")
	sb = applyFilter(sb, filter)

	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}

	var rows []tradeRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}

	trades := make([]*domain.Trade, len(rows))
	for i, row := range rows {
		trades[i] = row.toDomain()
	}

	return trades, nil
}

// Update persists all mutable fields of a trade and returns the stored
// record. Returns domain.ErrNotFound if the trade does not exist or
// belongs to another user.
func (r *Repo) Update(ctx context.Context, t *domain.Trade) (*domain.Trade, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("ticker", t.Ticker).
		Set("entry_date", t.EntryDate).
		Set("entry_price", t.EntryPrice).
		Set("quantity", t.Quantity).
		Set("exit_date", t.ExitDate).
		Set("exit_price", t.ExitPrice).
		Set("notes", t.Notes).
		Set("profit_loss", t.ProfitLoss).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID, "user_id": t.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "trade", t.ID.String())
	}

	var row tradeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "trade", t.ID.String())
	}

	return row.toDomain(), nil
}

// Delete removes a trade.
// Returns domain.ErrNotFound if the trade does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, tradeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": tradeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "trade", tradeID.String())
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "trade", tradeID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trade %s: %w", tradeID, domain.ErrNotFound)
	}

	return nil
}
