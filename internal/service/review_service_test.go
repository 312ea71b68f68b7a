package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgu-mess/mess-portal/internal/domain"
	"github.com/vgu-mess/mess-portal/internal/events"
	apperrors "github.com/vgu-mess/mess-portal/pkg/util/errorutil"
)

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	review, err := f.reviews.Submit(ctx, ReviewInput{UserEmail: "asha@vgu.ac.in", Rating: 4, Comment: "  great poha  "})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "2026-10-19", review.Date)
	assert.Equal(t, "Monday", review.MenuDay)
	assert.Equal(t, "great poha", review.Comment)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, events.EventReviewSubmitted, f.events.events[0].Type)
	assert.Equal(t, "Thank you for your feedback!", f.events.events[0].Announcement)
}

func TestSubmitReviewValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.reviews.Submit(ctx, ReviewInput{UserEmail: "a@vgu.ac.in", Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}

	_, err := f.reviews.Submit(ctx, ReviewInput{UserEmail: "a@vgu.ac.in", Rating: 3, MenuDay: "Someday"})
	assert.ErrorIs(t, err, domain.ErrUnknownDay)
	assert.Empty(t, f.events.events)
}

func TestReviewSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	empty, err := f.reviews.Summary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", empty.Date)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.Average)

	for _, rating := range []int{5, 4, 2} {
		_, err := f.reviews.Submit(ctx, ReviewInput{UserEmail: "a@vgu.ac.in", Rating: rating})
		require.NoError(t, err)
	}
	*f.clock = monday.AddDate(0, 0, 1)
	_, err = f.reviews.Submit(ctx, ReviewInput{UserEmail: "a@vgu.ac.in", Rating: 1})
	require.NoError(t, err)

	summary, err := f.reviews.Summary(ctx, "2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 11.0/3.0, summary.Average, 1e-9)

	today, err := f.reviews.Summary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", today.Date)
	assert.Equal(t, 1, today.Count)
	assert.Equal(t, "Tuesday", today.Reviews[0].MenuDay)
}

func TestReviewSummaryBadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.reviews.Summary(context.Background(), "19/10/2026")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
