// Package identity implements the Identity repository using PostgreSQL.
package identity

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

const table = "identities"

var columns = []string{"id", "email", "password_hash", "created_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// Repo provides identity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new identity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new identity. The email must already be normalized.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.Identity, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING id, email, password_hash, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert identity: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "identity", email)
	}

	return out.toDomain(), nil
}

// GetByID returns the identity with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id.String())
}

// GetByEmail returns the identity with the given normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email}, email)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, key string) (*domain.Identity, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select identity: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "identity", key)
	}

	return out.toDomain(), nil
}
