package handler

import (
	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/labstack/echo/v4"
)

var errReviewNotFound = errs.NewNotFoundError("Review not found", true, nil)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

func (h *ReviewHandler) ListReviews(c echo.Context, _ *model.EmptyRequest) ([]model.Review, error) {
	return h.reviews.FindAll(c.Request().Context())
}

func (h *ReviewHandler) GetReview(c echo.Context, req *model.IDParam) (*model.Review, error) {
	r, err := h.reviews.FindByID(c.Request().Context(), req.ID)
	return orNotFound(r, err, errReviewNotFound)
}

// ListByUser returns every review the user wrote. An unknown user has none.
func (h *ReviewHandler) ListByUser(c echo.Context, req *model.UserParam) ([]model.Review, error) {
	return h.reviews.FindByUser(c.Request().Context(), req.UserID)
}

func (h *ReviewHandler) CreateReview(c echo.Context, req *model.ReviewRequest) (*model.Review, error) {
	r := req.ToReview()
	if err := h.reviews.Create(c.Request().Context(), r); err != nil {
		return nil, err
	}
	return r, nil
}

func (h *ReviewHandler) UpdateReview(c echo.Context, req *model.ReviewRequest) (*model.Review, bool, error) {
	r := req.ToReview()
	created, err := h.reviews.Update(c.Request().Context(), r)
	if err != nil {
		return nil, false, err
	}
	return r, created, nil
}

func (h *ReviewHandler) DeleteReview(c echo.Context, req *model.IDParam) (*model.Review, error) {
	ctx := c.Request().Context()

	r, err := h.reviews.FindByID(ctx, req.ID)
	if r, err = orNotFound(r, err, errReviewNotFound); err != nil {
		return nil, err
	}
	if err := h.reviews.Delete(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
