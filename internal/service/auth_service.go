package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vgu-mess/mess-portal/internal/config"
	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/observability"
	"github.com/vgu-mess/mess-portal/internal/repository"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

const (
	announceSignedUp       = "Account created successfully. Please login"
	announceProfileUpdated = "Profile updated"
)

// SignUpInput carries the signup form.
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
	Enroll          string
	Mobile          string
	// ProfilePic is already base64 encoded; empty when no picture was uploaded.
	ProfilePic string
}

// AuthService coordinates signup, login and profile edits.
type AuthService struct {
	users         repository.UserRepository
	events        events.Dispatcher
	metrics       *observability.Metrics
	allowedDomain string
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:         deps.UserRepo,
		events:        deps.Dispatcher,
		metrics:       deps.Metrics,
		allowedDomain: cfg.Auth.AllowedDomain,
	}
}

// AllowedDomain returns the required email suffix.
func (s *AuthService) AllowedDomain() string {
	return s.allowedDomain
}

// SignUp creates an account. Checks run in a fixed order: duplicate email,
// then domain, then password confirmation.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*domain.UserRecord, error) {
	user, err := s.signUp(ctx, in)
	s.metrics.RecordSignup(outcome(err))
	return user, err
}

func (s *AuthService) signUp(ctx context.Context, in SignUpInput) (*domain.UserRecord, error) {
	exists, err := s.users.Exists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}
	if !strings.HasSuffix(in.Email, s.allowedDomain) {
		return nil, domain.ErrInvalidDomain
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	user := &domain.UserRecord{
		Email:      in.Email,
		Password:   in.Password,
		Name:       in.Name,
		Enroll:     in.Enroll,
		Mobile:     in.Mobile,
		ProfilePic: in.ProfilePic,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:         events.EventUserSignedUp,
		UserEmail:    user.Email,
		Announcement: announceSignedUp,
	})
	return user, nil
}

// LogIn checks the credentials against the stored record. Passwords are
// stored and compared as plaintext.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (*domain.UserRecord, error) {
	user, err := s.logIn(ctx, email, password)
	s.metrics.RecordLogin(outcome(err))
	return user, err
}

func (s *AuthService) logIn(ctx context.Context, email, password string) (*domain.UserRecord, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUnknownUser) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile changes name, enrollment and mobile only.
func (s *AuthService) UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) (*domain.UserRecord, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	updated := update.Apply(*user)
	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:         events.EventProfileUpdated,
		UserEmail:    email,
		Announcement: announceProfileUpdated,
	})
	return &updated, nil
}

// Profile returns the stored record for display.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.UserRecord, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, event)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return apperrors.ToDomainError(err).Code
}
