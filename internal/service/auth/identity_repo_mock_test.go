package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

var _ identityRepo = &identityRepoMock{}

type identityRepoMock struct {
	CreateFunc     func(ctx context.Context, email string, passwordHash string) (*domain.Identity, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Identity, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Identity, error)

	calls struct {
		Create []struct {
			Ctx          context.Context
			Email        string
			PasswordHash string
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByEmail sync.RWMutex
	lockGetByID    sync.RWMutex
}

func (mock *identityRepoMock) Create(ctx context.Context, email string, passwordHash string) (*domain.Identity, error) {
	if mock.CreateFunc == nil {
		panic("identityRepoMock.CreateFunc: method is nil but identityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Email        string
		PasswordHash string
	}{Ctx: ctx, Email: email, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, email, passwordHash)
}

func (mock *identityRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Email        string
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if mock.GetByEmailFunc == nil {
		panic("identityRepoMock.GetByEmailFunc: method is nil but identityRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *identityRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *identityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	if mock.GetByIDFunc == nil {
		panic("identityRepoMock.GetByIDFunc: method is nil but identityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *identityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
