// Package message implements the Message repository using PostgreSQL.
package message

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/positive-vibes/internal/adapter/postgres"
	"github.com/heartmarshall/positive-vibes/internal/domain"
)

const table = "messages"

var columns = []string{"id", "username", "message", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Message {
	return domain.Message{
		ID:        r.ID,
		Username:  r.Username,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides message persistence backed by PostgreSQL.
// Messages are insert-only; there is no update or delete path.
type Repo struct {
	db postgres.Querier
}

// New creates a new message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a message. The store assigns id and created_at.
func (r *Repo) Create(ctx context.Context, username, text string) (*domain.Message, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("username", "message").
		Values(username, text).
		Suffix("RETURNING id, username, message, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert message: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "message", username)
	}

	m := out.toDomain()
	return &m, nil
}

// GetByID returns a single message.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select message: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "message", id.String())
	}

	m := out.toDomain()
	return &m, nil
}

// ListByUsername returns all messages addressed to username, newest first.
// Ties on created_at are broken by id so repeated loads return the same order.
func (r *Repo) ListByUsername(ctx context.Context, username string) ([]domain.Message, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"username": username}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list messages: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "message", username)
	}

	out := make([]domain.Message, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
