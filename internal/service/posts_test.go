package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/deppfellow/bizdir/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostService_Create(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		posts := new(testutil.MockPostRepository)
		businesses := new(testutil.MockBusinessRepository)
		svc := service.NewPostService(posts, businesses)
		p := testutil.NewPost(2)

		businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
		posts.On("Save", mock.Anything, mock.MatchedBy(func(saved *model.Post) bool {
			return saved.PostID == 0
		})).Return(nil)

		require.NoError(t, svc.Create(context.Background(), p))
		posts.AssertExpectations(t)
	})

	t.Run("empty body", func(t *testing.T) {
		posts := new(testutil.MockPostRepository)
		businesses := new(testutil.MockBusinessRepository)
		svc := service.NewPostService(posts, businesses)
		p := testutil.NewPost(2)
		p.Body = " "

		err := svc.Create(context.Background(), p)

		assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
		assert.Empty(t, posts.Calls)
		assert.Empty(t, businesses.Calls)
	})
}

func TestPostService_UpdateKeepsCreationTime(t *testing.T) {
	posts := new(testutil.MockPostRepository)
	businesses := new(testutil.MockBusinessRepository)
	svc := service.NewPostService(posts, businesses)

	p := testutil.NewPost(2)
	p.CreatedTime = time.Time{}
	p.Body = "Closed for inventory"

	businesses.On("FindByID", mock.Anything, int64(2)).Return(testutil.NewBusiness(), nil)
	posts.On("FindByID", mock.Anything, p.PostID).Return(testutil.NewPost(2), nil)
	posts.On("Save", mock.Anything, p).Return(nil)

	created, err := svc.Update(context.Background(), p)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, testutil.NewPost(2).CreatedTime, p.CreatedTime)
}

func TestPostService_DeleteValidatesShape(t *testing.T) {
	posts := new(testutil.MockPostRepository)
	svc := service.NewPostService(posts, new(testutil.MockBusinessRepository))

	err := svc.Delete(context.Background(), &model.Post{PostID: 30})

	assert.True(t, errors.Is(err, errs.ErrInvalidRequest))
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
