package domain

import "time"

// SessionState is the authentication state of a browser session.
type SessionState string

const (
	SessionStateAnonymous     SessionState = "ANONYMOUS"
	SessionStateAuthenticated SessionState = "AUTHENTICATED"
)

// Session is the transient state of one interactive visit.
type Session struct {
	ID          string    `json:"id"`
	LoggedIn    bool      `json:"logged_in"`
	UserEmail   string    `json:"user_email,omitempty"`
	SelectedDay string    `json:"selected_day,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// State derives the state machine position from the stored flags.
func (s *Session) State() SessionState {
	if s != nil && s.LoggedIn && s.UserEmail != "" {
		return SessionStateAuthenticated
	}
	return SessionStateAnonymous
}

// Authenticate moves the session to AUTHENTICATED(email). The selected day
// is session scoped and starts over on every login.
func (s *Session) Authenticate(email string) {
	s.LoggedIn = true
	s.UserEmail = email
	s.SelectedDay = ""
}

// Reset moves the session back to ANONYMOUS.
func (s *Session) Reset() {
	s.LoggedIn = false
	s.UserEmail = ""
	s.SelectedDay = ""
}
