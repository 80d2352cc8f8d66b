package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc         func(ctx context.Context, userID uuid.UUID, username string, role domain.Role) (*domain.Profile, error)
	GetByUserIDFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UsernameExistsFunc func(ctx context.Context, username string) (bool, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Username string
			Role     domain.Role
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UsernameExists []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockCreate         sync.RWMutex
	lockGetByUserID    sync.RWMutex
	lockUsernameExists sync.RWMutex
}

func (mock *profileRepoMock) Create(ctx context.Context, userID uuid.UUID, username string, role domain.Role) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Username string
		Role     domain.Role
	}{Ctx: ctx, UserID: userID, Username: username, Role: role}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, username, role)
}

func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Username string
	Role     domain.Role
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *profileRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *profileRepoMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	if mock.UsernameExistsFunc == nil {
		panic("profileRepoMock.UsernameExistsFunc: method is nil but profileRepo.UsernameExists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUsernameExists.Lock()
	mock.calls.UsernameExists = append(mock.calls.UsernameExists, callInfo)
	mock.lockUsernameExists.Unlock()
	return mock.UsernameExistsFunc(ctx, username)
}

func (mock *profileRepoMock) UsernameExistsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUsernameExists.RLock()
	calls := mock.calls.UsernameExists
	mock.lockUsernameExists.RUnlock()
	return calls
}
