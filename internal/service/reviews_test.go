package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/deppfellow/bizdir/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewService() (*service.ReviewService, *testutil.MockReviewRepository, *testutil.MockBusinessRepository, *testutil.MockUserRepository) {
	reviews := new(testutil.MockReviewRepository)
	businesses := new(testutil.MockBusinessRepository)
	users := new(testutil.MockUserRepository)
	return service.NewReviewService(reviews, businesses, users), reviews, businesses, users
}

func TestReviewService_Create(t *testing.T) {
	t.Run("valid review", func(t *testing.T) {
		svc, reviews, businesses, users := newReviewService()
		r := testutil.NewReview(2, 1)

		businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
		reviews.On("Save", mock.Anything, r).Return(nil)

		require.NoError(t, svc.Create(context.Background(), r))
		reviews.AssertExpectations(t)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc, reviews, _, _ := newReviewService()
		r := testutil.NewReview(2, 1)
		r.Rating = 6

		err := svc.Create(context.Background(), r)

		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
		assert.Empty(t, reviews.Calls)
	})

	t.Run("dangling user", func(t *testing.T) {
		svc, reviews, businesses, users := newReviewService()
		r := testutil.NewReview(2, 99)

		businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		users.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

		err := svc.Create(context.Background(), r)

		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
		reviews.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestReviewService_UpdateCannotMoveReview(t *testing.T) {
	svc, reviews, _, _ := newReviewService()
	r := testutil.NewReview(3, 1)

	reviews.On("FindByID", mock.Anything, r.ID).Return(testutil.NewReview(2, 1), nil)

	_, err := svc.Update(context.Background(), r)

	assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
	reviews.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReviewService_UpdateRating(t *testing.T) {
	svc, reviews, _, _ := newReviewService()
	r := testutil.NewReview(2, 1)
	r.Rating = 2

	reviews.On("FindByID", mock.Anything, r.ID).Return(testutil.NewReview(2, 1), nil)
	reviews.On("Save", mock.Anything, mock.MatchedBy(func(saved *model.Review) bool {
		return saved.Rating == 2 && saved.ID == 20
	})).Return(nil)

	created, err := svc.Update(context.Background(), r)

	require.NoError(t, err)
	assert.False(t, created)
	reviews.AssertExpectations(t)
}

func TestReviewService_FindByUser(t *testing.T) {
	svc, reviews, _, _ := newReviewService()
	want := []model.Review{*testutil.NewReview(2, 1)}
	reviews.On("FindByUser", mock.Anything, int64(1)).Return(want, nil)

	got, err := svc.FindByUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
