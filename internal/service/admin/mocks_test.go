package admin

import (
	"context"
	"sync"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

var (
	_ statsRepo   = &statsRepoMock{}
	_ profileRepo = &profileRepoMock{}
)

type statsRepoMock struct {
	AnalyticsFunc func(ctx context.Context) (*domain.AdminStats, error)
	TopUsersFunc  func(ctx context.Context, limit int) ([]domain.UserStat, error)

	calls struct {
		Analytics []struct{}
		TopUsers  []struct{ Limit int }
	}
	lockAnalytics sync.RWMutex
	lockTopUsers  sync.RWMutex
}

func (mock *statsRepoMock) Analytics(ctx context.Context) (*domain.AdminStats, error) {
	if mock.AnalyticsFunc == nil {
		panic("statsRepoMock.AnalyticsFunc: method is nil but statsRepo.Analytics was just called")
	}
	mock.lockAnalytics.Lock()
	mock.calls.Analytics = append(mock.calls.Analytics, struct{}{})
	mock.lockAnalytics.Unlock()
	return mock.AnalyticsFunc(ctx)
}

func (mock *statsRepoMock) AnalyticsCalls() []struct{} {
	mock.lockAnalytics.RLock()
	calls := mock.calls.Analytics
	mock.lockAnalytics.RUnlock()
	return calls
}

func (mock *statsRepoMock) TopUsers(ctx context.Context, limit int) ([]domain.UserStat, error) {
	if mock.TopUsersFunc == nil {
		panic("statsRepoMock.TopUsersFunc: method is nil but statsRepo.TopUsers was just called")
	}
	mock.lockTopUsers.Lock()
	mock.calls.TopUsers = append(mock.calls.TopUsers, struct{ Limit int }{Limit: limit})
	mock.lockTopUsers.Unlock()
	return mock.TopUsersFunc(ctx, limit)
}

func (mock *statsRepoMock) TopUsersCalls() []struct{ Limit int } {
	mock.lockTopUsers.RLock()
	calls := mock.calls.TopUsers
	mock.lockTopUsers.RUnlock()
	return calls
}

type profileRepoMock struct {
	GetByUsernameFunc     func(ctx context.Context, username string) (*domain.Profile, error)
	ListFunc              func(ctx context.Context) ([]domain.Profile, error)
	SetRoleByUsernameFunc func(ctx context.Context, username string, role domain.Role) (*domain.Profile, error)

	calls struct {
		SetRoleByUsername []struct {
			Username string
			Role     domain.Role
		}
	}
	lockSetRoleByUsername sync.RWMutex
}

func (mock *profileRepoMock) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	if mock.GetByUsernameFunc == nil {
		panic("profileRepoMock.GetByUsernameFunc: method is nil but profileRepo.GetByUsername was just called")
	}
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *profileRepoMock) List(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileRepoMock.ListFunc: method is nil but profileRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *profileRepoMock) SetRoleByUsername(ctx context.Context, username string, role domain.Role) (*domain.Profile, error) {
	if mock.SetRoleByUsernameFunc == nil {
		panic("profileRepoMock.SetRoleByUsernameFunc: method is nil but profileRepo.SetRoleByUsername was just called")
	}
	mock.lockSetRoleByUsername.Lock()
	mock.calls.SetRoleByUsername = append(mock.calls.SetRoleByUsername, struct {
		Username string
		Role     domain.Role
	}{Username: username, Role: role})
	mock.lockSetRoleByUsername.Unlock()
	return mock.SetRoleByUsernameFunc(ctx, username, role)
}

func (mock *profileRepoMock) SetRoleByUsernameCalls() []struct {
	Username string
	Role     domain.Role
} {
	mock.lockSetRoleByUsername.RLock()
	calls := mock.calls.SetRoleByUsername
	mock.lockSetRoleByUsername.RUnlock()
	return calls
}
