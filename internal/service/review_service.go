package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/menu"
	"github.com/vgu-mess/mess-portal/internal/observability"
	"github.com/vgu-mess/mess-portal/internal/repository"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

const (
	announceReview = "Thank you for your feedback!"
	dateLayout     = "2006-01-02"
)

// ReviewInput carries a submitted food review.
type ReviewInput struct {
	UserEmail string
	// MenuDay defaults to today's weekday.
	MenuDay string
	Rating  int
	Comment string
}

// ReviewService records daily food reviews.
type ReviewService struct {
	reviews repository.ReviewRepository
	menu    *menu.Provider
	events  events.Dispatcher
	metrics *observability.Metrics
	now     func() time.Time
}

// ReviewDependencies encapsulates requirements for the review service.
type ReviewDependencies struct {
	ReviewRepo repository.ReviewRepository
	Menu       *menu.Provider
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Now        func() time.Time
}

// NewReviewService builds the service.
func NewReviewService(deps ReviewDependencies) *ReviewService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &ReviewService{
		reviews: deps.ReviewRepo,
		menu:    deps.Menu,
		events:  deps.Dispatcher,
		metrics: deps.Metrics,
		now:     now,
	}
}

// Submit validates and stores a review dated today.
func (s *ReviewService) Submit(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	now := s.now()
	menuDay := in.MenuDay
	if menuDay == "" {
		menuDay = menu.DayOf(now)
	}
	if !s.menu.IsDay(menuDay) {
		return nil, domain.ErrUnknownDay
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		UserEmail: in.UserEmail,
		Date:      now.Format(dateLayout),
		MenuDay:   menuDay,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.metrics.RecordReview()
	if s.events != nil {
		_ = s.events.Publish(ctx, events.Event{
			Type:         events.EventReviewSubmitted,
			UserEmail:    review.UserEmail,
			Announcement: announceReview,
			Payload: events.ReviewSubmittedPayload{
				ReviewID: review.ID,
				MenuDay:  review.MenuDay,
				Rating:   review.Rating,
			},
		})
	}
	return review, nil
}

// Summary aggregates the reviews for date (YYYY-MM-DD); empty means today.
func (s *ReviewService) Summary(ctx context.Context, date string) (*domain.ReviewSummary, error) {
	if date == "" {
		date = s.now().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD", map[string]any{"date": date})
	}

	reviews, err := s.reviews.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReviewSummary{Date: date, Count: len(reviews), Reviews: reviews}
	if len(reviews) > 0 {
		total := 0
		for _, r := range reviews {
			total += r.Rating
		}
		summary.Average = float64(total) / float64(len(reviews))
	}
	return summary, nil
}
