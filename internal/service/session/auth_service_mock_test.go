package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	authsvc "github.com/heartmarshall/positive-vibes/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	CreateProfileFunc func(ctx context.Context, userID uuid.UUID, username string) (*domain.Profile, error)
	RefreshFunc       func(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	SignInFunc        func(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error)
	SignOutFunc       func(ctx context.Context, userID uuid.UUID) error
	SignUpFunc        func(ctx context.Context, input authsvc.SignUpInput) (*authsvc.AuthResult, error)
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, string, error)

	calls struct {
		CreateProfile []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Username string
		}
		Refresh []struct {
			Ctx   context.Context
			Input authsvc.RefreshInput
		}
		SignIn []struct {
			Ctx   context.Context
			Input authsvc.SignInInput
		}
		SignOut []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SignUp []struct {
			Ctx   context.Context
			Input authsvc.SignUpInput
		}
		ValidateToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockCreateProfile sync.RWMutex
	lockRefresh       sync.RWMutex
	lockSignIn        sync.RWMutex
	lockSignOut       sync.RWMutex
	lockSignUp        sync.RWMutex
	lockValidateToken sync.RWMutex
}

func (mock *authServiceMock) CreateProfile(ctx context.Context, userID uuid.UUID, username string) (*domain.Profile, error) {
	if mock.CreateProfileFunc == nil {
		panic("authServiceMock.CreateProfileFunc: method is nil but authService.CreateProfile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Username string
	}{Ctx: ctx, UserID: userID, Username: username}
	mock.lockCreateProfile.Lock()
	mock.calls.CreateProfile = append(mock.calls.CreateProfile, callInfo)
	mock.lockCreateProfile.Unlock()
	return mock.CreateProfileFunc(ctx, userID, username)
}

func (mock *authServiceMock) Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input authsvc.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.SignInInput
	}{Ctx: ctx, Input: input}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, input)
}

func (mock *authServiceMock) SignOut(ctx context.Context, userID uuid.UUID) error {
	if mock.SignOutFunc == nil {
		panic("authServiceMock.SignOutFunc: method is nil but authService.SignOut was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, userID)
}

func (mock *authServiceMock) SignOutCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}

func (mock *authServiceMock) SignUp(ctx context.Context, input authsvc.SignUpInput) (*authsvc.AuthResult, error) {
	if mock.SignUpFunc == nil {
		panic("authServiceMock.SignUpFunc: method is nil but authService.SignUp was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.SignUpInput
	}{Ctx: ctx, Input: input}
	mock.lockSignUp.Lock()
	mock.calls.SignUp = append(mock.calls.SignUp, callInfo)
	mock.lockSignUp.Unlock()
	return mock.SignUpFunc(ctx, input)
}

func (mock *authServiceMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	if mock.ValidateTokenFunc == nil {
		panic("authServiceMock.ValidateTokenFunc: method is nil but authService.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}
