package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vgu-mess/mess-portal/internal/config"
	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/service"
)

const (
	sessionKey = "mess_session"
	tokenKey   = "mess_session_token"
)

// SessionMiddleware resolves the caller's session from the session cookie
// or a bearer token, minting a fresh anonymous session and cookie when
// neither carries a valid token.
type SessionMiddleware struct {
	tokens   *TokenManager
	sessions *service.SessionService
	cfg      config.AuthConfig
	logger   *zap.Logger
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, sessions *service.SessionService, cfg config.AuthConfig, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, sessions: sessions, cfg: cfg, logger: logger}
}

// Handle attaches the session to the request.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	if raw := m.rawToken(c); raw != "" {
		session, err := m.resolve(c, raw)
		if err != nil {
			return err
		}
		if session != nil {
			c.Locals(sessionKey, session)
			c.Locals(tokenKey, raw)
			return c.Next()
		}
	}

	session := m.sessions.Start()
	token, err := m.tokens.GenerateToken(session.ID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(sessionKey, session)
	c.Locals(tokenKey, token)
	return c.Next()
}

// resolve returns nil without error when the token fails verification; the
// caller then mints a new one.
func (m *SessionMiddleware) resolve(c *fiber.Ctx, raw string) (*domain.Session, error) {
	id, err := m.tokens.ParseToken(raw)
	if err != nil {
		m.logger.Debug("discarding invalid session token", zap.Error(err))
		return nil, nil
	}
	return m.sessions.Resolve(c.UserContext(), id)
}

func (m *SessionMiddleware) rawToken(c *fiber.Ctx) string {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(m.cfg.SessionCookie)
}

// SessionFromContext retrieves the request's session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}

// TokenFromContext returns the session token in use for this request.
func TokenFromContext(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenKey).(string)
	return token
}
