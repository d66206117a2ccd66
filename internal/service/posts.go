package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
)

const postInvalidMessage = "Post must reference a business and have a body"

type PostService struct {
	posts      PostRepository
	businesses BusinessRepository
}

func NewPostService(posts PostRepository, businesses BusinessRepository) *PostService {
	return &PostService{posts: posts, businesses: businesses}
}

func (s *PostService) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) FindAll(ctx context.Context) ([]model.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) Create(ctx context.Context, p *model.Post) error {
	if !isPostValid(p) {
		return errs.NewInvalidRequestError("post", postInvalidMessage)
	}
	if err := requireBusiness(ctx, s.businesses, "post", p.Business); err != nil {
		return err
	}

	p.PostID = 0
	if err := s.posts.Save(ctx, p); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update saves p, creating it when PostID is zero or unknown.
func (s *PostService) Update(ctx context.Context, p *model.Post) (bool, error) {
	if !isPostValid(p) {
		return false, errs.NewInvalidRequestError("post", postInvalidMessage)
	}
	if err := requireBusiness(ctx, s.businesses, "post", p.Business); err != nil {
		return false, err
	}

	var existing *model.Post
	if p.PostID > 0 {
		found, err := s.posts.FindByID(ctx, p.PostID)
		if err != nil {
			return false, fmt.Errorf("failed to look up post %d: %w", p.PostID, err)
		}
		existing = found
	}
	if existing == nil {
		p.PostID = 0
	} else {
		p.CreatedTime = existing.CreatedTime
	}

	if err := s.posts.Save(ctx, p); err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}
	return existing == nil, nil
}

func (s *PostService) Delete(ctx context.Context, p *model.Post) error {
	if !isPostValid(p) {
		return errs.NewInvalidRequestError("post", postInvalidMessage)
	}
	if err := s.posts.Delete(ctx, p.PostID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
