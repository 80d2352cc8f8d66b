// Package stats reads the admin aggregates maintained in PostgreSQL.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/positive-vibes/internal/adapter/postgres"
	"github.com/heartmarshall/positive-vibes/internal/domain"
)

type analyticsRow struct {
	TotalUsers      int64 `db:"total_users"`
	TotalMessages   int64 `db:"total_messages"`
	ActiveUsernames int64 `db:"active_usernames"`
}

type userStatRow struct {
	Username     string    `db:"username"`
	MessageCount int64     `db:"message_count"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Repo provides read access to aggregate statistics.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Analytics calls get_admin_analytics() and returns its single row.
func (r *Repo) Analytics(ctx context.Context) (*domain.AdminStats, error) {
	query, args, err := postgres.Builder().
		Select("total_users", "total_messages", "active_usernames").
		From("get_admin_analytics()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build admin analytics: %w", err)
	}

	var out analyticsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "admin_stats", "")
	}

	return &domain.AdminStats{
		TotalUsers:      out.TotalUsers,
		TotalMessages:   out.TotalMessages,
		ActiveUsernames: out.ActiveUsernames,
	}, nil
}

// TopUsers returns up to limit usernames ordered by received message count.
func (r *Repo) TopUsers(ctx context.Context, limit int) ([]domain.UserStat, error) {
	if limit <= 0 {
		return []domain.UserStat{}, nil
	}

	query, args, err := postgres.Builder().
		Select("username", "message_count", "updated_at").
		From("user_stats").
		OrderBy("message_count DESC", "username ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top users: %w", err)
	}

	var rows []userStatRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user_stats", "")
	}

	out := make([]domain.UserStat, len(rows))
	for i, rw := range rows {
		out[i] = domain.UserStat{
			Username:     rw.Username,
			MessageCount: rw.MessageCount,
			UpdatedAt:    rw.UpdatedAt,
		}
	}
	return out, nil
}
