package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
)

const businessInvalidMessage = "Business name, email and type are required"

type BusinessService struct {
	businesses BusinessRepository
	users      UserRepository
	hours      HoursRepository
	reviews    ReviewRepository
	posts      PostRepository
}

func NewBusinessService(
	businesses BusinessRepository,
	users UserRepository,
	hours HoursRepository,
	reviews ReviewRepository,
	posts PostRepository,
) *BusinessService {
	return &BusinessService{
		businesses: businesses,
		users:      users,
		hours:      hours,
		reviews:    reviews,
		posts:      posts,
	}
}

// FindByID returns the business with its hours, reviews and posts.
func (s *BusinessService) FindByID(ctx context.Context, id int64) (*model.Business, error) {
	b, err := s.businesses.FindByID(ctx, id)
	return s.hydrate(ctx, b, err)
}

func (s *BusinessService) FindByEmail(ctx context.Context, email string) (*model.Business, error) {
	b, err := s.businesses.FindByEmail(ctx, email)
	return s.hydrate(ctx, b, err)
}

func (s *BusinessService) FindByName(ctx context.Context, name string) (*model.Business, error) {
	b, err := s.businesses.FindByName(ctx, name)
	return s.hydrate(ctx, b, err)
}

// FindAll lists businesses without their child collections.
func (s *BusinessService) FindAll(ctx context.Context) ([]model.Business, error) {
	return s.businesses.FindAll(ctx)
}

func (s *BusinessService) FindByOwner(ctx context.Context, ownerID int64) ([]model.Business, error) {
	return s.businesses.FindByOwner(ctx, ownerID)
}

func (s *BusinessService) Hours(ctx context.Context, businessID int64) ([]model.Hours, error) {
	if err := s.mustExist(ctx, businessID); err != nil {
		return nil, err
	}
	return s.hours.FindByBusiness(ctx, businessID)
}

func (s *BusinessService) Reviews(ctx context.Context, businessID int64) ([]model.Review, error) {
	if err := s.mustExist(ctx, businessID); err != nil {
		return nil, err
	}
	return s.reviews.FindByBusiness(ctx, businessID)
}

func (s *BusinessService) Posts(ctx context.Context, businessID int64) ([]model.Post, error) {
	if err := s.mustExist(ctx, businessID); err != nil {
		return nil, err
	}
	return s.posts.FindByBusiness(ctx, businessID)
}

func (s *BusinessService) Create(ctx context.Context, b *model.Business) error {
	if !isBusinessValid(b) {
		return errs.NewInvalidRequestError("business", businessInvalidMessage)
	}
	if err := s.checkOwner(ctx, b); err != nil {
		return err
	}

	b.ID = 0
	if err := s.checkConflicts(ctx, b); err != nil {
		return err
	}

	if err := s.businesses.Save(ctx, b); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	emptyChildren(b)
	return nil
}

// Update saves b, creating it when ID is zero or unknown.
func (s *BusinessService) Update(ctx context.Context, b *model.Business) (bool, error) {
	if !isBusinessValid(b) {
		return false, errs.NewInvalidRequestError("business", businessInvalidMessage)
	}
	if err := s.checkOwner(ctx, b); err != nil {
		return false, err
	}

	var existing *model.Business
	if b.ID > 0 {
		found, err := s.businesses.FindByID(ctx, b.ID)
		if err != nil {
			return false, fmt.Errorf("failed to look up business %d: %w", b.ID, err)
		}
		existing = found
	}
	if existing == nil {
		b.ID = 0
	}

	if err := s.checkConflicts(ctx, b); err != nil {
		return false, err
	}

	if err := s.businesses.Save(ctx, b); err != nil {
		return false, fmt.Errorf("failed to update business: %w", err)
	}
	emptyChildren(b)
	return existing == nil, nil
}

// Delete removes b along with its hours, reviews, posts and favorite links.
func (s *BusinessService) Delete(ctx context.Context, b *model.Business) error {
	if !isBusinessValid(b) {
		return errs.NewInvalidRequestError("business", businessInvalidMessage)
	}
	if err := s.businesses.Delete(ctx, b.ID); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	return nil
}

// hydrate attaches the child collections to a looked-up business.
func (s *BusinessService) hydrate(ctx context.Context, b *model.Business, err error) (*model.Business, error) {
	if err != nil || b == nil {
		return nil, err
	}

	if b.Hours, err = s.hours.FindByBusiness(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("failed to load hours of business %d: %w", b.ID, err)
	}
	if b.Reviews, err = s.reviews.FindByBusiness(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("failed to load reviews of business %d: %w", b.ID, err)
	}
	if b.Posts, err = s.posts.FindByBusiness(ctx, b.ID); err != nil {
		return nil, fmt.Errorf("failed to load posts of business %d: %w", b.ID, err)
	}
	emptyChildren(b)

	return b, nil
}

func (s *BusinessService) mustExist(ctx context.Context, id int64) error {
	b, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up business %d: %w", id, err)
	}
	if b == nil {
		return errs.NewNotFoundError("Business not found", true, nil)
	}
	return nil
}

func (s *BusinessService) checkOwner(ctx context.Context, b *model.Business) error {
	if b.Owner == nil {
		return nil
	}
	return requireUser(ctx, s.users, "business", b.Owner)
}

// checkConflicts rejects b when its name or email belongs to another business.
func (s *BusinessService) checkConflicts(ctx context.Context, b *model.Business) error {
	other, err := s.businesses.FindByName(ctx, b.BusinessName)
	if err != nil {
		return fmt.Errorf("failed to look up business name: %w", err)
	}
	if other != nil && other.ID != b.ID {
		code := "BUSINESS_NAME_TAKEN"
		return errs.NewConflictError("A business with this name already exists", true, &code)
	}

	other, err = s.businesses.FindByEmail(ctx, b.Email)
	if err != nil {
		return fmt.Errorf("failed to look up business email: %w", err)
	}
	if other != nil && other.ID != b.ID {
		code := "BUSINESS_EMAIL_TAKEN"
		return errs.NewConflictError("A business with this email already exists", true, &code)
	}

	return nil
}

func emptyChildren(b *model.Business) {
	if b.Reviews == nil {
		b.Reviews = []model.Review{}
	}
	if b.Hours == nil {
		b.Hours = []model.Hours{}
	}
	if b.Posts == nil {
		b.Posts = []model.Post{}
	}
}
