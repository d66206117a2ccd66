package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
)

const hoursInvalidMessage = "Hours must reference a business and have a day greater than zero"

type HoursService struct {
	hours      HoursRepository
	businesses BusinessRepository
}

func NewHoursService(hours HoursRepository, businesses BusinessRepository) *HoursService {
	return &HoursService{hours: hours, businesses: businesses}
}

func (s *HoursService) FindByID(ctx context.Context, id int64) (*model.Hours, error) {
	return s.hours.FindByID(ctx, id)
}

func (s *HoursService) FindAll(ctx context.Context) ([]model.Hours, error) {
	return s.hours.FindAll(ctx)
}

func (s *HoursService) Create(ctx context.Context, h *model.Hours) error {
	if !isHoursValid(h) {
		return errs.NewInvalidRequestError("hours", hoursInvalidMessage)
	}
	if err := requireBusiness(ctx, s.businesses, "hours", h.Business); err != nil {
		return err
	}

	h.HoursID = 0
	if err := s.hours.Save(ctx, h); err != nil {
		return fmt.Errorf("failed to create hours: %w", err)
	}
	return nil
}

// Update saves h, creating it when HoursID is zero or unknown.
func (s *HoursService) Update(ctx context.Context, h *model.Hours) (bool, error) {
	if !isHoursValid(h) {
		return false, errs.NewInvalidRequestError("hours", hoursInvalidMessage)
	}
	if err := requireBusiness(ctx, s.businesses, "hours", h.Business); err != nil {
		return false, err
	}

	existing, err := s.lookup(ctx, h.HoursID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		h.HoursID = 0
	}

	if err := s.hours.Save(ctx, h); err != nil {
		return false, fmt.Errorf("failed to update hours: %w", err)
	}
	return existing == nil, nil
}

func (s *HoursService) Delete(ctx context.Context, h *model.Hours) error {
	if !isHoursValid(h) {
		return errs.NewInvalidRequestError("hours", hoursInvalidMessage)
	}
	if err := s.hours.Delete(ctx, h.HoursID); err != nil {
		return fmt.Errorf("failed to delete hours: %w", err)
	}
	return nil
}

func (s *HoursService) lookup(ctx context.Context, id int64) (*model.Hours, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.hours.FindByID(ctx, id)
}
