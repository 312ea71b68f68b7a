package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
)

func signedUpSession(t *testing.T, f *fixture) *domain.Session {
	t.Helper()
	_, err := f.auth.SignUp(context.Background(), validSignUp("asha@vgu.ac.in"))
	require.NoError(t, err)
	return f.sessions.Start()
}

func TestStartIsAnonymousAndNotStored(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	session := f.sessions.Start()
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.SessionStateAnonymous, session.State())
	assert.Empty(t, session.UserEmail)

	_, err := f.sessionRepo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	resolved, err := f.sessions.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
	assert.Equal(t, domain.SessionStateAnonymous, resolved.State())
}

func TestLogInAuthenticatesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session := signedUpSession(t, f)

	user, err := f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "asha@vgu.ac.in", user.Email)
	assert.Equal(t, domain.SessionStateAuthenticated, session.State())

	stored, err := f.sessions.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@vgu.ac.in", stored.UserEmail)
	assert.Contains(t, f.events.types(), events.EventUserLoggedIn)
}

func TestFailedLogInLeavesSessionAnonymous(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session := signedUpSession(t, f)

	_, err := f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, domain.SessionStateAnonymous, session.State())

	_, err = f.sessionRepo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLogInWhileAuthenticatedIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session := signedUpSession(t, f)
	_, err := f.auth.SignUp(ctx, validSignUp("ravi@vgu.ac.in"))
	require.NoError(t, err)

	_, err = f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)

	_, err = f.sessions.LogIn(ctx, session, "ravi@vgu.ac.in", "hunter2")
	assert.ErrorIs(t, err, domain.ErrAlreadyAuthenticated)
	assert.Equal(t, "asha@vgu.ac.in", session.UserEmail)

	stored, err := f.sessions.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@vgu.ac.in", stored.UserEmail)
}

func TestCurrentDayDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session := signedUpSession(t, f)
	_, err := f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "Monday", f.sessions.CurrentDay(session))
	*f.clock = monday.AddDate(0, 0, 2)
	assert.Equal(t, "Wednesday", f.sessions.CurrentDay(session))
}

func TestSelectDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session := signedUpSession(t, f)

	assert.ErrorIs(t, f.sessions.SelectDay(ctx, session, "Friday"), domain.ErrNotAuthenticated)

	_, err := f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)

	require.NoError(t, f.sessions.SelectDay(ctx, session, "Friday"))
	assert.Equal(t, "Friday", f.sessions.CurrentDay(session))

	assert.ErrorIs(t, f.sessions.SelectDay(ctx, session, "Caturday"), domain.ErrUnknownDay)
	assert.Equal(t, "Friday", f.sessions.CurrentDay(session))

	stored, err := f.sessions.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Friday", stored.SelectedDay)
}

func TestLogOutThenLogInResetsSelectedDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session := signedUpSession(t, f)

	_, err := f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)
	require.NoError(t, f.sessions.SelectDay(ctx, session, "Sunday"))

	require.NoError(t, f.sessions.LogOut(ctx, session))
	assert.Equal(t, domain.SessionStateAnonymous, session.State())
	assert.Empty(t, session.UserEmail)
	assert.ErrorIs(t, f.sessions.LogOut(ctx, session), domain.ErrNotAuthenticated)

	_, err = f.sessionRepo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "logout drops the stored record")
	resolved, err := f.sessions.Resolve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStateAnonymous, resolved.State())

	_, err = f.sessions.LogIn(ctx, session, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStateAuthenticated, session.State())
	assert.Equal(t, "Monday", f.sessions.CurrentDay(session))

	assert.Equal(t, []events.EventType{
		events.EventUserSignedUp,
		events.EventUserLoggedIn,
		events.EventUserLoggedOut,
		events.EventUserLoggedIn,
	}, f.events.types())
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := signedUpSession(t, f)
	second := f.sessions.Start()

	_, err := f.sessions.LogIn(ctx, first, "asha@vgu.ac.in", "hunter2")
	require.NoError(t, err)

	stored, err := f.sessions.Resolve(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStateAnonymous, stored.State())
}
