package message

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

var (
	_ messageRepo = &messageRepoMock{}
	_ profileRepo = &profileRepoMock{}
	_ publisher   = &publisherMock{}
)

type messageRepoMock struct {
	CreateFunc         func(ctx context.Context, username, text string) (*domain.Message, error)
	ListByUsernameFunc func(ctx context.Context, username string) ([]domain.Message, error)

	calls struct {
		Create []struct {
			Username string
			Text     string
		}
		ListByUsername []struct {
			Username string
		}
	}
	lockCreate         sync.RWMutex
	lockListByUsername sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, username, text string) (*domain.Message, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Username string
		Text     string
	}{Username: username, Text: text})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, username, text)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Username string
	Text     string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *messageRepoMock) ListByUsername(ctx context.Context, username string) ([]domain.Message, error) {
	if mock.ListByUsernameFunc == nil {
		panic("messageRepoMock.ListByUsernameFunc: method is nil but messageRepo.ListByUsername was just called")
	}
	mock.lockListByUsername.Lock()
	mock.calls.ListByUsername = append(mock.calls.ListByUsername, struct{ Username string }{Username: username})
	mock.lockListByUsername.Unlock()
	return mock.ListByUsernameFunc(ctx, username)
}

func (mock *messageRepoMock) ListByUsernameCalls() []struct{ Username string } {
	mock.lockListByUsername.RLock()
	calls := mock.calls.ListByUsername
	mock.lockListByUsername.RUnlock()
	return calls
}

type profileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
	}
	return mock.GetByUserIDFunc(ctx, userID)
}

type publisherMock struct {
	PublishFunc func(ctx context.Context, m domain.Message) error

	calls struct {
		Publish []struct {
			M domain.Message
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(ctx context.Context, m domain.Message) error {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct{ M domain.Message }{M: m})
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, m)
}

func (mock *publisherMock) PublishCalls() []struct{ M domain.Message } {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
