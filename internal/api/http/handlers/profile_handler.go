package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vgu-mess/mess-portal/internal/api/dto"
	"github.com/vgu-mess/mess-portal/internal/auth"
	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/service"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

// ProfileHandler serves the logged-in user's profile.
type ProfileHandler struct {
	auth *service.AuthService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: authService}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user, err := h.auth.Profile(c.UserContext(), currentEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(user)})
}

// Update handles PUT /profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.UpdateProfile(c.UserContext(), currentEmail(c), domain.ProfileUpdate{
		Name:   req.Name,
		Enroll: req.Enroll,
		Mobile: req.Mobile,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":    dto.NewProfileResponse(user),
			"message": "Profile updated",
		},
	})
}

// Picture handles GET /profile/picture.
func (h *ProfileHandler) Picture(c *fiber.Ctx) error {
	user, err := h.auth.Profile(c.UserContext(), currentEmail(c))
	if err != nil {
		return err
	}
	if !user.HasProfilePic() {
		return apperrors.NewNotFound("profile picture", nil)
	}

	raw, err := base64.StdEncoding.DecodeString(user.ProfilePic)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, http.DetectContentType(raw))
	return c.Send(raw)
}

// currentEmail is only meaningful behind auth.RequireAuthenticated.
func currentEmail(c *fiber.Ctx) string {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return ""
	}
	return session.UserEmail
}
