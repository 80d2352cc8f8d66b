package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ tokenValidator = (*tokenValidatorMock)(nil)

type validateTokenCall struct {
	Ctx   context.Context
	Token string
}

// tokenValidatorMock records every token it is asked to validate so tests
// can check which credential the middleware picked.
type tokenValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, string, error)

	mu    sync.Mutex
	calls []validateTokenCall
}

func (m *tokenValidatorMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	if m.ValidateTokenFunc == nil {
		panic("tokenValidatorMock: ValidateToken not stubbed")
	}
	m.mu.Lock()
	m.calls = append(m.calls, validateTokenCall{Ctx: ctx, Token: token})
	m.mu.Unlock()
	return m.ValidateTokenFunc(ctx, token)
}

func (m *tokenValidatorMock) ValidateTokenCalls() []validateTokenCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]validateTokenCall(nil), m.calls...)
}
