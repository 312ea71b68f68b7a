package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

var reviewColumns = []string{"id", "user_email", "review_date", "menu_day", "rating", "comment", "created_at"}

func newMockReviewRepository(t *testing.T) (ReviewRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewReviewRepository(mock), mock
}

func TestPostgresReviewCreate(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockReviewRepository(t)

	createdAt := time.Date(2026, 10, 22, 13, 5, 0, 0, time.UTC)
	day := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs("3b8e5c1e-7f0a-4c55-9b0e-1f2d3c4b5a69", "asha@vgu.ac.in", day, "Thursday", 4, "Tasty dal").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	review := &domain.Review{
		ID:        "3b8e5c1e-7f0a-4c55-9b0e-1f2d3c4b5a69",
		UserEmail: "asha@vgu.ac.in",
		Date:      "2026-10-22",
		MenuDay:   "Thursday",
		Rating:    4,
		Comment:   "Tasty dal",
	}
	require.NoError(t, repo.Create(ctx, review))
	assert.Equal(t, createdAt, review.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewCreateRejectsBadDate(t *testing.T) {
	repo, mock := newMockReviewRepository(t)

	err := repo.Create(context.Background(), &domain.Review{ID: "1", Date: "22/10/2026"})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewListByDate(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockReviewRepository(t)

	day := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
	first := time.Date(2026, 10, 22, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, user_email, review_date`).
		WithArgs(day).
		WillReturnRows(pgxmock.NewRows(reviewColumns).
			AddRow("r1", "asha@vgu.ac.in", day, "Thursday", 5, "Poori was great", first).
			AddRow("r2", "ravi@vgu.ac.in", day, "Thursday", 2, "", first.Add(time.Hour)))

	got, err := repo.ListByDate(ctx, "2026-10-22")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Review{
		ID:        "r1",
		UserEmail: "asha@vgu.ac.in",
		Date:      "2026-10-22",
		MenuDay:   "Thursday",
		Rating:    5,
		Comment:   "Poori was great",
		CreatedAt: first,
	}, got[0])
	assert.Equal(t, "r2", got[1].ID)
	assert.Equal(t, "2026-10-22", got[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewListByDateEmpty(t *testing.T) {
	repo, mock := newMockReviewRepository(t)

	mock.ExpectQuery(`SELECT id, user_email, review_date`).
		WithArgs(time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(pgxmock.NewRows(reviewColumns))

	got, err := repo.ListByDate(context.Background(), "2026-10-23")
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewListByDateQueryError(t *testing.T) {
	repo, mock := newMockReviewRepository(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT id, user_email, review_date`).
		WithArgs(time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)).
		WillReturnError(boom)

	_, err := repo.ListByDate(context.Background(), "2026-10-22")
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.ListByDate(context.Background(), "not-a-date")
	assert.Error(t, err)
}
