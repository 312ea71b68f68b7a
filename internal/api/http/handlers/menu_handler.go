package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vgu-mess/mess-portal/internal/api/dto"
	"github.com/vgu-mess/mess-portal/internal/auth"
	"github.com/vgu-mess/mess-portal/internal/service"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

const displayDateLayout = "Monday, 02 January 2006"

// MenuHandler exposes the mess menu.
type MenuHandler struct {
	menus    *service.MenuService
	sessions *service.SessionService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menus *service.MenuService, sessions *service.SessionService) *MenuHandler {
	return &MenuHandler{menus: menus, sessions: sessions}
}

// Current handles GET /menu.
func (h *MenuHandler) Current(c *fiber.Ctx) error {
	session, _ := auth.SessionFromContext(c)
	view, err := h.menus.Current(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MenuResponse{
		Day:          view.Day,
		Date:         view.Today.Format(displayDateLayout),
		Meals:        view.Meals,
		Announcement: view.Announcement,
	}})
}

// SelectDay handles PUT /menu/day.
func (h *MenuHandler) SelectDay(c *fiber.Ctx) error {
	var req dto.SelectDayRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	session, _ := auth.SessionFromContext(c)
	if err := h.sessions.SelectDay(c.UserContext(), session, req.Day); err != nil {
		return err
	}
	return h.Current(c)
}

// Week handles GET /menu/week.
func (h *MenuHandler) Week(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.menus.Week()})
}

// Day handles GET /menu/:day.
func (h *MenuHandler) Day(c *fiber.Ctx) error {
	day := c.Params("day")
	meals, err := h.menus.Day(day)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MenuResponse{Day: day, Meals: meals}})
}
