package dto

import (
	"time"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

// ReviewRequest submits today's food review. A nil rating takes the default.
type ReviewRequest struct {
	Rating  *int   `json:"rating" form:"rating"`
	Comment string `json:"comment" form:"comment"`
	MenuDay string `json:"menu_day" form:"menu_day"`
}

// ReviewResponse renders a stored review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	MenuDay   string    `json:"menu_day"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewSummaryResponse renders a day's reviews.
type ReviewSummaryResponse struct {
	Date    string           `json:"date"`
	Count   int              `json:"count"`
	Average float64          `json:"average"`
	Reviews []ReviewResponse `json:"reviews"`
}

// NewReviewResponse maps a review to its response.
func NewReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Date:      r.Date,
		MenuDay:   r.MenuDay,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// NewReviewSummaryResponse maps a summary to its response.
func NewReviewSummaryResponse(s *domain.ReviewSummary) ReviewSummaryResponse {
	out := ReviewSummaryResponse{
		Date:    s.Date,
		Count:   s.Count,
		Average: s.Average,
		Reviews: make([]ReviewResponse, 0, len(s.Reviews)),
	}
	for i := range s.Reviews {
		out.Reviews = append(out.Reviews, NewReviewResponse(&s.Reviews[i]))
	}
	return out
}
