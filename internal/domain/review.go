package domain

import "time"

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// Review is one user's rating of the day's food.
type Review struct {
	ID        string
	UserEmail string
	Date      string // YYYY-MM-DD
	MenuDay   string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ReviewSummary aggregates the reviews submitted on a date.
type ReviewSummary struct {
	Date    string
	Count   int
	Average float64
	Reviews []Review
}
