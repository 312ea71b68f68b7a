package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/menu"
	"github.com/vgu-mess/mess-portal/internal/repository"
)

const (
	announceLoggedIn  = "Login successful. Welcome to the mess portal"
	announceLoggedOut = "Logged out"
)

// SessionService drives the ANONYMOUS <-> AUTHENTICATED state machine of a
// browser session and holds its selected menu day.
type SessionService struct {
	sessions repository.SessionRepository
	auth     *AuthService
	menu     *menu.Provider
	events   events.Dispatcher
	now      func() time.Time
}

// SessionDependencies encapsulates requirements for the session service.
type SessionDependencies struct {
	SessionRepo repository.SessionRepository
	Auth        *AuthService
	Menu        *menu.Provider
	Dispatcher  events.Dispatcher
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewSessionService builds the service.
func NewSessionService(deps SessionDependencies) *SessionService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		sessions: deps.SessionRepo,
		auth:     deps.Auth,
		menu:     deps.Menu,
		events:   deps.Dispatcher,
		now:      now,
	}
}

// Start mints a new anonymous session. Nothing is stored until the session
// first changes state.
func (s *SessionService) Start() *domain.Session {
	return s.anonymous(uuid.NewString())
}

// Resolve loads the session with the given ID. An ID with nothing stored
// behind it is an anonymous session that has not changed state yet.
func (s *SessionService) Resolve(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return s.anonymous(id), nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) anonymous(id string) *domain.Session {
	return &domain.Session{ID: id, CreatedAt: s.now().UTC()}
}

// LogIn authenticates the credentials and, only on success, moves the
// session to AUTHENTICATED(email) with the selected day reset. Only an
// anonymous session may log in.
func (s *SessionService) LogIn(ctx context.Context, session *domain.Session, email, password string) (*domain.UserRecord, error) {
	if session.State() == domain.SessionStateAuthenticated {
		return nil, domain.ErrAlreadyAuthenticated
	}
	user, err := s.auth.LogIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	next := *session
	next.Authenticate(user.Email)
	if err := s.sessions.Save(ctx, &next); err != nil {
		return nil, err
	}
	*session = next

	s.publish(ctx, events.Event{
		Type:         events.EventUserLoggedIn,
		UserEmail:    user.Email,
		Announcement: announceLoggedIn,
	})
	return user, nil
}

// LogOut returns the session to ANONYMOUS and drops the selected day. The
// stored record is removed; the session ID stays usable as an anonymous one.
func (s *SessionService) LogOut(ctx context.Context, session *domain.Session) error {
	if session.State() != domain.SessionStateAuthenticated {
		return domain.ErrNotAuthenticated
	}
	email := session.UserEmail

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	session.Reset()

	s.publish(ctx, events.Event{
		Type:         events.EventUserLoggedOut,
		UserEmail:    email,
		Announcement: announceLoggedOut,
	})
	return nil
}

// SelectDay overrides the menu day for the rest of this login.
func (s *SessionService) SelectDay(ctx context.Context, session *domain.Session, day string) error {
	if session.State() != domain.SessionStateAuthenticated {
		return domain.ErrNotAuthenticated
	}
	if !s.menu.IsDay(day) {
		return domain.ErrUnknownDay
	}

	next := *session
	next.SelectedDay = day
	if err := s.sessions.Save(ctx, &next); err != nil {
		return err
	}
	*session = next
	return nil
}

// CurrentDay is the selected day, or today's weekday when none was chosen.
func (s *SessionService) CurrentDay(session *domain.Session) string {
	if session != nil && session.SelectedDay != "" {
		return session.SelectedDay
	}
	return menu.DayOf(s.now())
}

// Now returns the service clock's current time.
func (s *SessionService) Now() time.Time {
	return s.now()
}

func (s *SessionService) publish(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, event)
}
