package handlers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vgu-mess/mess-portal/internal/api/dto"
	"github.com/vgu-mess/mess-portal/internal/auth"
	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/service"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

const maxProfilePicBytes = 5 << 20

var allowedPicTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// AuthHandler exposes signup, login, logout and session state.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *service.SessionService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{auth: authService, sessions: sessions}
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	pic, err := profilePic(c, req.ProfilePic)
	if err != nil {
		return err
	}

	user, err := h.auth.SignUp(c.UserContext(), service.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Name:            req.Name,
		Enroll:          req.Enroll,
		Mobile:          req.Mobile,
		ProfilePic:      pic,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user":    dto.NewProfileResponse(user),
			"message": "Account created successfully. Please login.",
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.sessions.LogIn(c.UserContext(), session, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":    dto.NewProfileResponse(user),
			"session": h.sessionResponse(session),
			"auth":    dto.AuthResponse{Token: auth.TokenFromContext(c)},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	if err := h.sessions.LogOut(c.UserContext(), session); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.sessionResponse(session)})
}

// Session handles GET /session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	return c.JSON(fiber.Map{"data": h.sessionResponse(session)})
}

func (h *AuthHandler) sessionResponse(session *domain.Session) dto.SessionResponse {
	resp := dto.SessionResponse{
		State:    session.State(),
		LoggedIn: session.State() == domain.SessionStateAuthenticated,
		Email:    session.UserEmail,
	}
	if resp.LoggedIn {
		resp.CurrentDay = h.sessions.CurrentDay(session)
	}
	return resp
}

// profilePic returns the base64 picture from a multipart upload or, failing
// that, from the already-encoded form field.
func profilePic(c *fiber.Ctx, encoded string) (string, error) {
	if header, err := c.FormFile("profile_pic"); err == nil {
		if header.Size > maxProfilePicBytes {
			return "", apperrors.NewValidationError("profile picture too large", map[string]any{"max_bytes": maxProfilePicBytes})
		}
		file, err := header.Open()
		if err != nil {
			return "", apperrors.NewInternalError(err)
		}
		defer file.Close()

		raw, err := io.ReadAll(io.LimitReader(file, maxProfilePicBytes+1))
		if err != nil {
			return "", apperrors.NewInternalError(err)
		}
		if err := checkPicture(raw); err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(raw), nil
	}

	if encoded == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", apperrors.NewValidationError("profile_pic must be base64 encoded", nil)
	}
	if err := checkPicture(raw); err != nil {
		return "", err
	}
	return encoded, nil
}

func checkPicture(raw []byte) error {
	if len(raw) > maxProfilePicBytes {
		return apperrors.NewValidationError("profile picture too large", map[string]any{"max_bytes": maxProfilePicBytes})
	}
	if contentType := http.DetectContentType(raw); !allowedPicTypes[contentType] {
		return apperrors.NewValidationError("profile picture must be png or jpeg", map[string]any{"content_type": contentType})
	}
	return nil
}
