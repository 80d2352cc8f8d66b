package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.New().String()[:8], "-", "")
}

// UniqueUsername returns a valid username that no other test uses.
func UniqueUsername() string {
	return "u_" + uniqueSuffix()
}

// SeedIdentity inserts an identity with a placeholder password hash.
func SeedIdentity(t *testing.T, pool *pgxpool.Pool) domain.Identity {
	t.Helper()

	id := domain.Identity{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO identities (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		id.ID, id.Email, id.PasswordHash, id.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdentity: %v", err)
	}

	return id
}

// SeedProfile creates an identity plus a profile with the given role.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Profile {
	t.Helper()

	identity := SeedIdentity(t, pool)
	p := domain.Profile{
		UserID:    identity.ID,
		Username:  UniqueUsername(),
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (user_id, username, role, created_at) VALUES ($1, $2, $3, $4)`,
		p.UserID, p.Username, string(p.Role), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedMessage inserts a message for username with an explicit created_at.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, username, text string, createdAt time.Time) domain.Message {
	t.Helper()

	m := domain.Message{
		ID:        uuid.New(),
		Username:  username,
		Message:   text,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO messages (id, username, message, created_at) VALUES ($1, $2, $3, $4)`,
		m.ID, m.Username, m.Message, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}

	return m
}
