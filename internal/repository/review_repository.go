package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

const reviewDateLayout = "2006-01-02"

// ReviewRepository stores daily food reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByDate(ctx context.Context, date string) ([]domain.Review, error)
}

// Querier is the subset of *pgxpool.Pool the Postgres review store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type reviewRepository struct {
	pool Querier
}

// NewReviewRepository returns a Postgres-backed implementation.
func NewReviewRepository(pool Querier) ReviewRepository {
	return &reviewRepository{pool: pool}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (id, user_email, review_date, menu_day, rating, comment)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	date, err := time.Parse(reviewDateLayout, review.Date)
	if err != nil {
		return err
	}

	return r.pool.QueryRow(ctx, query,
		review.ID,
		review.UserEmail,
		date,
		review.MenuDay,
		review.Rating,
		review.Comment,
	).Scan(&review.CreatedAt)
}

func (r *reviewRepository) ListByDate(ctx context.Context, date string) ([]domain.Review, error) {
	const query = `
        SELECT id, user_email, review_date, menu_day, rating, comment, created_at
        FROM reviews WHERE review_date=$1
        ORDER BY created_at`

	day, err := time.Parse(reviewDateLayout, date)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Review, error) {
		var (
			review     domain.Review
			reviewDate time.Time
		)
		if err := row.Scan(
			&review.ID,
			&review.UserEmail,
			&reviewDate,
			&review.MenuDay,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return domain.Review{}, err
		}
		review.Date = reviewDate.Format(reviewDateLayout)
		return review, nil
	})
}

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
	now     func() time.Time
}

// NewMemoryReviewRepository keeps reviews in process memory.
func NewMemoryReviewRepository() ReviewRepository {
	return &memoryReviewRepository{now: time.Now}
}

func (r *memoryReviewRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.CreatedAt = r.now()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memoryReviewRepository) ListByDate(_ context.Context, date string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Review, 0)
	for _, review := range r.reviews {
		if review.Date == date {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
