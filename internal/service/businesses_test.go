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

type businessServiceDeps struct {
	businesses *testutil.MockBusinessRepository
	users      *testutil.MockUserRepository
	hours      *testutil.MockHoursRepository
	reviews    *testutil.MockReviewRepository
	posts      *testutil.MockPostRepository
}

func newBusinessService() (*service.BusinessService, businessServiceDeps) {
	deps := businessServiceDeps{
		businesses: new(testutil.MockBusinessRepository),
		users:      new(testutil.MockUserRepository),
		hours:      new(testutil.MockHoursRepository),
		reviews:    new(testutil.MockReviewRepository),
		posts:      new(testutil.MockPostRepository),
	}
	svc := service.NewBusinessService(deps.businesses, deps.users, deps.hours, deps.reviews, deps.posts)
	return svc, deps
}

func TestBusinessService_FindByID(t *testing.T) {
	svc, deps := newBusinessService()
	hours := []model.Hours{*testutil.NewHours(2)}
	reviews := []model.Review{*testutil.NewReview(2, 1)}
	posts := []model.Post{*testutil.NewPost(2)}

	deps.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
	deps.hours.On("FindByBusiness", mock.Anything, int64(2)).Return(hours, nil)
	deps.reviews.On("FindByBusiness", mock.Anything, int64(2)).Return(reviews, nil)
	deps.posts.On("FindByBusiness", mock.Anything, int64(2)).Return(posts, nil)

	b, err := svc.FindByID(context.Background(), 2)

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, "Fake name", b.BusinessName)
	assert.Equal(t, "fake email", b.Email)
	assert.Equal(t, "petshop", b.BusinessType)
	assert.Equal(t, hours, b.Hours)
	assert.Equal(t, reviews, b.Reviews)
	assert.Equal(t, posts, b.Posts)
}

func TestBusinessService_LookupMissReturnsNil(t *testing.T) {
	t.Run("by email", func(t *testing.T) {
		svc, deps := newBusinessService()
		deps.businesses.On("FindByEmail", mock.Anything, "fakeEmail@gmail.com").Return(nil, nil)

		b, err := svc.FindByEmail(context.Background(), "fakeEmail@gmail.com")

		assert.NoError(t, err)
		assert.Nil(t, b)
		deps.hours.AssertNotCalled(t, "FindByBusiness", mock.Anything, mock.Anything)
	})

	t.Run("by name", func(t *testing.T) {
		svc, deps := newBusinessService()
		deps.businesses.On("FindByName", mock.Anything, "No such shop").Return(nil, nil)

		b, err := svc.FindByName(context.Background(), "No such shop")

		assert.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestBusinessService_ReadPathAcceptsPartialRecords(t *testing.T) {
	svc, deps := newBusinessService()
	partial := &model.Business{ID: 3, BusinessName: "Nameless"}

	deps.businesses.On("FindByID", mock.Anything, int64(3)).Return(partial, nil)
	deps.hours.On("FindByBusiness", mock.Anything, int64(3)).Return(nil, nil)
	deps.reviews.On("FindByBusiness", mock.Anything, int64(3)).Return(nil, nil)
	deps.posts.On("FindByBusiness", mock.Anything, int64(3)).Return(nil, nil)

	b, err := svc.FindByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, b.Email)
	assert.NotNil(t, b.Hours)
	assert.NotNil(t, b.Reviews)
	assert.NotNil(t, b.Posts)
}

func TestBusinessService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *model.Business)
	}{
		{"missing name", func(b *model.Business) { b.BusinessName = "" }},
		{"missing email", func(b *model.Business) { b.Email = "" }},
		{"missing type", func(b *model.Business) { b.BusinessType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newBusinessService()
			b := testutil.NewBusiness()
			tt.mutate(b)

			err := svc.Create(context.Background(), b)

			assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
			assert.Empty(t, deps.businesses.Calls)
		})
	}
}

func TestBusinessService_CreateRejectsUnknownOwner(t *testing.T) {
	svc, deps := newBusinessService()
	b := testutil.NewBusiness()
	b.Owner = &model.UserRef{UserID: 8}
	deps.users.On("FindByID", mock.Anything, int64(8)).Return(nil, nil)

	err := svc.Create(context.Background(), b)

	assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
	deps.businesses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBusinessService_CreateRejectsTakenName(t *testing.T) {
	svc, deps := newBusinessService()
	b := testutil.NewBusiness()
	deps.businesses.On("FindByName", mock.Anything, "Fake name").Return(testutil.NewBusiness(), nil)

	err := svc.Create(context.Background(), b)

	assert.True(t, errors.Is(err, errs.ErrConflict))
	deps.businesses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBusinessService_Create(t *testing.T) {
	svc, deps := newBusinessService()
	b := testutil.NewBusiness()
	b.Owner = &model.UserRef{UserID: 1}

	deps.users.On("FindByID", mock.Anything, int64(1)).Return(testutil.NewUser(), nil)
	deps.businesses.On("FindByName", mock.Anything, b.BusinessName).Return(nil, nil)
	deps.businesses.On("FindByEmail", mock.Anything, b.Email).Return(nil, nil)
	deps.businesses.On("Save", mock.Anything, mock.MatchedBy(func(saved *model.Business) bool {
		return saved.ID == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Business).ID = 12
	}).Return(nil)

	require.NoError(t, svc.Create(context.Background(), b))
	assert.Equal(t, int64(12), b.ID)
	deps.businesses.AssertExpectations(t)
}

func TestBusinessService_Update(t *testing.T) {
	t.Run("existing business keeps its id", func(t *testing.T) {
		svc, deps := newBusinessService()
		b := testutil.NewBusiness()
		b.Location = "Herndon, VA"

		deps.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		deps.businesses.On("FindByName", mock.Anything, b.BusinessName).Return(testutil.NewBusiness(), nil)
		deps.businesses.On("FindByEmail", mock.Anything, b.Email).Return(testutil.NewBusiness(), nil)
		deps.businesses.On("Save", mock.Anything, b).Return(nil)

		created, err := svc.Update(context.Background(), b)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(2), b.ID)
	})

	t.Run("email owned by another business", func(t *testing.T) {
		svc, deps := newBusinessService()
		b := testutil.NewBusiness()
		other := testutil.NewBusiness()
		other.ID = 7

		deps.businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		deps.businesses.On("FindByName", mock.Anything, b.BusinessName).Return(nil, nil)
		deps.businesses.On("FindByEmail", mock.Anything, b.Email).Return(other, nil)

		_, err := svc.Update(context.Background(), b)

		assert.True(t, errors.Is(err, errs.ErrConflict))
	})

	t.Run("unknown id creates", func(t *testing.T) {
		svc, deps := newBusinessService()
		b := testutil.NewBusiness()
		b.ID = 50

		deps.businesses.On("FindByID", mock.Anything, int64(50)).Return(nil, nil)
		deps.businesses.On("FindByName", mock.Anything, b.BusinessName).Return(nil, nil)
		deps.businesses.On("FindByEmail", mock.Anything, b.Email).Return(nil, nil)
		deps.businesses.On("Save", mock.Anything, b).Return(nil)

		created, err := svc.Update(context.Background(), b)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(0), b.ID)
	})
}

func TestBusinessService_Delete(t *testing.T) {
	t.Run("valid business reaches the cascading repository delete", func(t *testing.T) {
		svc, deps := newBusinessService()
		deps.businesses.On("Delete", mock.Anything, int64(2)).Return(nil).Once()

		require.NoError(t, svc.Delete(context.Background(), testutil.NewBusiness()))
		deps.businesses.AssertExpectations(t)
	})

	t.Run("incomplete business is rejected before the repository", func(t *testing.T) {
		svc, deps := newBusinessService()
		b := testutil.NewBusiness()
		b.Email = ""

		err := svc.Delete(context.Background(), b)

		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
		deps.businesses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestBusinessService_ChildListsRequireBusiness(t *testing.T) {
	svc, deps := newBusinessService()
	deps.businesses.On("FindByID", mock.Anything, int64(40)).Return(nil, nil)

	_, err := svc.Posts(context.Background(), 40)

	assert.True(t, errors.Is(err, errs.ErrNotFound))
	deps.posts.AssertNotCalled(t, "FindByBusiness", mock.Anything, mock.Anything)
}
