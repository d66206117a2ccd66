package service

import (
	"context"

	"github.com/deppfellow/bizdir/internal/model"
	"github.com/hibiken/asynq"
)

// The interfaces below are what the services need from persistence. The
// pgx implementations live in the repository package.
//
// Find* methods return (nil, nil) when nothing matches. Save inserts when
// the entity's id is zero and updates otherwise.

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Save(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
	Favorites(ctx context.Context, userID int64) ([]model.BusinessRef, error)
	AddFavorite(ctx context.Context, userID, businessID int64) error
	RemoveFavorite(ctx context.Context, userID, businessID int64) error
}

type BusinessRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Business, error)
	FindAll(ctx context.Context) ([]model.Business, error)
	FindByEmail(ctx context.Context, email string) (*model.Business, error)
	FindByName(ctx context.Context, name string) (*model.Business, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]model.Business, error)
	Save(ctx context.Context, b *model.Business) error
	// Delete removes the business with its hours, reviews, posts and
	// favorite links atomically.
	Delete(ctx context.Context, id int64) error
}

type HoursRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Hours, error)
	FindAll(ctx context.Context) ([]model.Hours, error)
	FindByBusiness(ctx context.Context, businessID int64) ([]model.Hours, error)
	Save(ctx context.Context, h *model.Hours) error
	Delete(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Review, error)
	FindAll(ctx context.Context) ([]model.Review, error)
	FindByBusiness(ctx context.Context, businessID int64) ([]model.Review, error)
	FindByUser(ctx context.Context, userID int64) ([]model.Review, error)
	Save(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByBusiness(ctx context.Context, businessID int64) ([]model.Post, error)
	Save(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id int64) error
}

// TaskEnqueuer pushes background tasks. *asynq.Client satisfies it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
