package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vgu-mess/mess-portal/internal/config"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/menu"
	"github.com/vgu-mess/mess-portal/internal/persistence"
	"github.com/vgu-mess/mess-portal/internal/repository"
)

// monday is 2026-10-19, a Monday.
var monday = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) record(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	usersPath   string
	users       repository.UserRepository
	sessionRepo repository.SessionRepository
	auth        *AuthService
	sessions    *SessionService
	menus       *MenuService
	reviews     *ReviewService
	events      *recorder
	clock       *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.json")
	users, err := repository.NewUserRepository(persistence.NewUserFile(path, zap.NewNop()))
	require.NoError(t, err)

	rec := &recorder{}
	dispatcher := events.NewInMemoryDispatcher(nil)
	for _, eventType := range events.AllEventTypes {
		dispatcher.Subscribe(eventType, rec.record)
	}

	clock := monday
	now := func() time.Time { return clock }

	cfg := config.Config{Auth: config.AuthConfig{AllowedDomain: "vgu.ac.in"}}
	auth := NewAuthService(cfg, AuthDependencies{UserRepo: users, Dispatcher: dispatcher})
	provider := menu.NewProvider()
	sessionRepo := repository.NewMemorySessionRepository()
	sessions := NewSessionService(SessionDependencies{
		SessionRepo: sessionRepo,
		Auth:        auth,
		Menu:        provider,
		Dispatcher:  dispatcher,
		Now:         now,
	})
	reviews := NewReviewService(ReviewDependencies{
		ReviewRepo: repository.NewMemoryReviewRepository(),
		Menu:       provider,
		Dispatcher: dispatcher,
		Now:        now,
	})

	return &fixture{
		usersPath:   path,
		users:       users,
		sessionRepo: sessionRepo,
		auth:        auth,
		sessions:    sessions,
		menus:       NewMenuService(provider, sessions, dispatcher, nil),
		reviews:     reviews,
		events:      rec,
		clock:       &clock,
	}
}

func validSignUp(email string) SignUpInput {
	return SignUpInput{
		Email:           email,
		Password:        "hunter2",
		ConfirmPassword: "hunter2",
		Name:            "Asha Verma",
		Enroll:          "VGU21CS001",
		Mobile:          "9876543210",
	}
}
