// Package profile implements the Profile repository using PostgreSQL.
package profile

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

const (
	table      = "profiles"
	primaryKey = "profiles_pkey"
)

var columns = []string{"user_id", "username", "role", "created_at"}

type row struct {
	UserID    uuid.UUID `db:"user_id"`
	Username  string    `db:"username"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Profile {
	return domain.Profile{
		UserID:    r.UserID,
		Username:  r.Username,
		Role:      domain.Role(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a profile for an existing identity.
// Returns domain.ErrAlreadyExists if the username is taken, domain.ErrConflict
// if the identity already has a profile, domain.ErrNotFound if the identity
// does not exist.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, username string, role domain.Role) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "username", "role").
		Values(userID, username, string(role)).
		Suffix("RETURNING user_id, username, role, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert profile: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if postgres.ConstraintName(err) == primaryKey {
			return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "profile", username)
	}

	p := out.toDomain()
	return &p, nil
}

// GetByUserID returns the profile owned by the identity.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return r.getBy(ctx, squirrel.Eq{"user_id": userID}, userID.String())
}

// GetByUsername returns the profile with the given normalized username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, username)
}

func (r *Repo) getBy(ctx context.Context, where squirrel.Eq, key string) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select profile: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", key)
	}

	p := out.toDomain()
	return &p, nil
}

// UsernameExists reports whether any profile holds username.
func (r *Repo) UsernameExists(ctx context.Context, username string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"username": username}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build username exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "profile", username)
	}

	return exists, nil
}

// List returns every profile, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list profiles: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", "")
	}

	out := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// SetRoleByUsername updates the role of the profile holding username.
// Returns domain.ErrNotFound if no profile matches.
func (r *Repo) SetRoleByUsername(ctx context.Context, username string, role domain.Role) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Where(squirrel.Eq{"username": username}).
		Suffix("RETURNING user_id, username, role, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update profile role: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", username)
	}

	p := out.toDomain()
	return &p, nil
}
