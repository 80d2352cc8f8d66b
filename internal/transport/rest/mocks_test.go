package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/i18n"
	"github.com/heartmarshall/positive-vibes/internal/realtime"
	"github.com/heartmarshall/positive-vibes/internal/service/admin"
	"github.com/heartmarshall/positive-vibes/internal/service/dashboard"
	messagesvc "github.com/heartmarshall/positive-vibes/internal/service/message"
	"github.com/heartmarshall/positive-vibes/internal/service/session"
	"github.com/heartmarshall/positive-vibes/internal/share"
)

var (
	_ sessionService   = &sessionServiceMock{}
	_ messageService   = &messageServiceMock{}
	_ dashboardService = &dashboardServiceMock{}
	_ adminService     = &adminServiceMock{}
)

// ---------------------------------------------------------------------------
// sessionServiceMock
// ---------------------------------------------------------------------------

type sessionServiceMock struct {
	LoadFunc          func(ctx context.Context, accessToken, refreshToken string) (session.State, error)
	SignInFunc        func(ctx context.Context, email, password string) (session.State, error)
	SignUpFunc        func(ctx context.Context, email, password, username string) (session.State, error)
	CreateProfileFunc func(ctx context.Context, st session.State, username string) (session.State, error)
	SignOutFunc       func(ctx context.Context, sess *session.Session) (session.State, error)

	calls struct {
		Load []struct {
			AccessToken  string
			RefreshToken string
		}
		SignOut []struct {
			Sess *session.Session
		}
	}
	lockLoad    sync.RWMutex
	lockSignOut sync.RWMutex
}

func (mock *sessionServiceMock) Load(ctx context.Context, accessToken, refreshToken string) (session.State, error) {
	if mock.LoadFunc == nil {
		panic("sessionServiceMock.LoadFunc: method is nil but sessionService.Load was just called")
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, struct {
		AccessToken  string
		RefreshToken string
	}{AccessToken: accessToken, RefreshToken: refreshToken})
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, accessToken, refreshToken)
}

func (mock *sessionServiceMock) LoadCalls() []struct {
	AccessToken  string
	RefreshToken string
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *sessionServiceMock) SignIn(ctx context.Context, email, password string) (session.State, error) {
	if mock.SignInFunc == nil {
		panic("sessionServiceMock.SignInFunc: method is nil but sessionService.SignIn was just called")
	}
	return mock.SignInFunc(ctx, email, password)
}

func (mock *sessionServiceMock) SignUp(ctx context.Context, email, password, username string) (session.State, error) {
	if mock.SignUpFunc == nil {
		panic("sessionServiceMock.SignUpFunc: method is nil but sessionService.SignUp was just called")
	}
	return mock.SignUpFunc(ctx, email, password, username)
}

func (mock *sessionServiceMock) CreateProfile(ctx context.Context, st session.State, username string) (session.State, error) {
	if mock.CreateProfileFunc == nil {
		panic("sessionServiceMock.CreateProfileFunc: method is nil but sessionService.CreateProfile was just called")
	}
	return mock.CreateProfileFunc(ctx, st, username)
}

func (mock *sessionServiceMock) SignOut(ctx context.Context, sess *session.Session) (session.State, error) {
	if mock.SignOutFunc == nil {
		panic("sessionServiceMock.SignOutFunc: method is nil but sessionService.SignOut was just called")
	}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, struct{ Sess *session.Session }{Sess: sess})
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, sess)
}

func (mock *sessionServiceMock) SignOutCalls() []struct{ Sess *session.Session } {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// messageServiceMock
// ---------------------------------------------------------------------------

type messageServiceMock struct {
	SubmitFunc          func(ctx context.Context, input messagesvc.SubmitInput) (*domain.Message, error)
	ListForUsernameFunc func(ctx context.Context, username string) ([]domain.Message, error)
}

func (mock *messageServiceMock) Submit(ctx context.Context, input messagesvc.SubmitInput) (*domain.Message, error) {
	if mock.SubmitFunc == nil {
		panic("messageServiceMock.SubmitFunc: method is nil but messageService.Submit was just called")
	}
	return mock.SubmitFunc(ctx, input)
}

func (mock *messageServiceMock) ListForUsername(ctx context.Context, username string) ([]domain.Message, error) {
	if mock.ListForUsernameFunc == nil {
		panic("messageServiceMock.ListForUsernameFunc: method is nil but messageService.ListForUsername was just called")
	}
	return mock.ListForUsernameFunc(ctx, username)
}

// ---------------------------------------------------------------------------
// dashboardServiceMock
// ---------------------------------------------------------------------------

type dashboardServiceMock struct {
	OwnerFunc        func(ctx context.Context) (*domain.Profile, error)
	ListFunc         func(ctx context.Context, username string) ([]domain.Message, error)
	OpenFunc         func(ctx context.Context, username string) (*dashboard.Feed, realtime.Subscription, error)
	ShareFunc        func(ctx context.Context, owner string, messageID uuid.UUID, platform share.Platform, locale i18n.Locale) (share.Plan, error)
	PersonalLinkFunc func(username string) string
	ExportFunc       func(ctx context.Context) error
}

func (mock *dashboardServiceMock) Owner(ctx context.Context) (*domain.Profile, error) {
	if mock.OwnerFunc == nil {
		panic("dashboardServiceMock.OwnerFunc: method is nil but dashboardService.Owner was just called")
	}
	return mock.OwnerFunc(ctx)
}

func (mock *dashboardServiceMock) List(ctx context.Context, username string) ([]domain.Message, error) {
	if mock.ListFunc == nil {
		panic("dashboardServiceMock.ListFunc: method is nil but dashboardService.List was just called")
	}
	return mock.ListFunc(ctx, username)
}

func (mock *dashboardServiceMock) Open(ctx context.Context, username string) (*dashboard.Feed, realtime.Subscription, error) {
	if mock.OpenFunc == nil {
		panic("dashboardServiceMock.OpenFunc: method is nil but dashboardService.Open was just called")
	}
	return mock.OpenFunc(ctx, username)
}

func (mock *dashboardServiceMock) Share(ctx context.Context, owner string, messageID uuid.UUID, platform share.Platform, locale i18n.Locale) (share.Plan, error) {
	if mock.ShareFunc == nil {
		panic("dashboardServiceMock.ShareFunc: method is nil but dashboardService.Share was just called")
	}
	return mock.ShareFunc(ctx, owner, messageID, platform, locale)
}

func (mock *dashboardServiceMock) PersonalLink(username string) string {
	if mock.PersonalLinkFunc == nil {
		panic("dashboardServiceMock.PersonalLinkFunc: method is nil but dashboardService.PersonalLink was just called")
	}
	return mock.PersonalLinkFunc(username)
}

func (mock *dashboardServiceMock) Export(ctx context.Context) error {
	if mock.ExportFunc == nil {
		panic("dashboardServiceMock.ExportFunc: method is nil but dashboardService.Export was just called")
	}
	return mock.ExportFunc(ctx)
}

// ---------------------------------------------------------------------------
// adminServiceMock
// ---------------------------------------------------------------------------

type adminServiceMock struct {
	OverviewFunc func(ctx context.Context) (*admin.Overview, error)
	StatsFunc    func(ctx context.Context) (*domain.AdminStats, error)
	TopUsersFunc func(ctx context.Context) ([]domain.UserStat, error)
	UsersFunc    func(ctx context.Context) ([]domain.Profile, error)
	PromoteFunc  func(ctx context.Context, username string) (*admin.Overview, error)
}

func (mock *adminServiceMock) Overview(ctx context.Context) (*admin.Overview, error) {
	if mock.OverviewFunc == nil {
		panic("adminServiceMock.OverviewFunc: method is nil but adminService.Overview was just called")
	}
	return mock.OverviewFunc(ctx)
}

func (mock *adminServiceMock) Stats(ctx context.Context) (*domain.AdminStats, error) {
	if mock.StatsFunc == nil {
		panic("adminServiceMock.StatsFunc: method is nil but adminService.Stats was just called")
	}
	return mock.StatsFunc(ctx)
}

func (mock *adminServiceMock) TopUsers(ctx context.Context) ([]domain.UserStat, error) {
	if mock.TopUsersFunc == nil {
		panic("adminServiceMock.TopUsersFunc: method is nil but adminService.TopUsers was just called")
	}
	return mock.TopUsersFunc(ctx)
}

func (mock *adminServiceMock) Users(ctx context.Context) ([]domain.Profile, error) {
	if mock.UsersFunc == nil {
		panic("adminServiceMock.UsersFunc: method is nil but adminService.Users was just called")
	}
	return mock.UsersFunc(ctx)
}

func (mock *adminServiceMock) Promote(ctx context.Context, username string) (*admin.Overview, error) {
	if mock.PromoteFunc == nil {
		panic("adminServiceMock.PromoteFunc: method is nil but adminService.Promote was just called")
	}
	return mock.PromoteFunc(ctx, username)
}
