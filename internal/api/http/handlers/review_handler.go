package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vgu-mess/mess-portal/internal/api/dto"
	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/service"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

// ReviewHandler accepts daily food reviews.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler constructs handler.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Submit handles POST /reviews.
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	rating := domain.DefaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	review, err := h.reviews.Submit(c.UserContext(), service.ReviewInput{
		UserEmail: currentEmail(c),
		MenuDay:   req.MenuDay,
		Rating:    rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"review":  dto.NewReviewResponse(review),
			"message": "Thank you for your feedback!",
		},
	})
}

// Summary handles GET /reviews?date=YYYY-MM-DD.
func (h *ReviewHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.reviews.Summary(c.UserContext(), c.Query("date"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReviewSummaryResponse(summary)})
}
