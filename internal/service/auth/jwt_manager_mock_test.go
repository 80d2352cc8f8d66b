package auth

import (
	"github.com/google/uuid"
)

var _ jwtManager = (*jwtManagerMock)(nil)

// jwtManagerMock delegates to per-test funcs. Tests assert on issued tokens
// through the repositories, so calls are not recorded here.
type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID, role string) (string, error)
	GenerateRefreshTokenFunc func() (string, string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock: GenerateAccessToken not stubbed")
	}
	return m.GenerateAccessTokenFunc(userID, role)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if m.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock: GenerateRefreshToken not stubbed")
	}
	return m.GenerateRefreshTokenFunc()
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock: ValidateAccessToken not stubbed")
	}
	return m.ValidateAccessTokenFunc(token)
}
