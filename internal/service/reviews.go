package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
)

const reviewInvalidMessage = "Review must reference a business and a user and have a rating between 0 and 5"

type ReviewService struct {
	reviews    ReviewRepository
	businesses BusinessRepository
	users      UserRepository
}

func NewReviewService(reviews ReviewRepository, businesses BusinessRepository, users UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, businesses: businesses, users: users}
}

func (s *ReviewService) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

func (s *ReviewService) FindAll(ctx context.Context) ([]model.Review, error) {
	return s.reviews.FindAll(ctx)
}

func (s *ReviewService) FindByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	return s.reviews.FindByUser(ctx, userID)
}

func (s *ReviewService) Create(ctx context.Context, r *model.Review) error {
	if !isReviewValid(r) {
		return errs.NewInvalidRequestError("review", reviewInvalidMessage)
	}
	if err := s.requireRefs(ctx, r); err != nil {
		return err
	}

	r.ID = 0
	if err := s.reviews.Save(ctx, r); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update changes the rating and text of an existing review, or creates the
// review when its id is zero or unknown. The business and user of an
// existing review cannot change.
func (s *ReviewService) Update(ctx context.Context, r *model.Review) (bool, error) {
	if !isReviewValid(r) {
		return false, errs.NewInvalidRequestError("review", reviewInvalidMessage)
	}

	var existing *model.Review
	if r.ID > 0 {
		found, err := s.reviews.FindByID(ctx, r.ID)
		if err != nil {
			return false, fmt.Errorf("failed to look up review %d: %w", r.ID, err)
		}
		existing = found
	}

	if existing != nil {
		if existing.Business.ID != r.Business.ID || existing.User.UserID != r.User.UserID {
			return false, errs.NewInvalidRequestError("review", "The business and user of a review cannot change")
		}
	} else {
		if err := s.requireRefs(ctx, r); err != nil {
			return false, err
		}
		r.ID = 0
	}

	if err := s.reviews.Save(ctx, r); err != nil {
		return false, fmt.Errorf("failed to update review: %w", err)
	}
	return existing == nil, nil
}

func (s *ReviewService) Delete(ctx context.Context, r *model.Review) error {
	if !isReviewValid(r) {
		return errs.NewInvalidRequestError("review", reviewInvalidMessage)
	}
	if err := s.reviews.Delete(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (s *ReviewService) requireRefs(ctx context.Context, r *model.Review) error {
	if err := requireBusiness(ctx, s.businesses, "review", r.Business); err != nil {
		return err
	}
	return requireUser(ctx, s.users, "review", r.User)
}
