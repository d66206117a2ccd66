package handler

import (
	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/labstack/echo/v4"
)

var errBusinessNotFound = errs.NewNotFoundError("Business not found", true, nil)

type BusinessHandler struct {
	Handler
	businesses *service.BusinessService
}

func NewBusinessHandler(s *server.Server, businesses *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		Handler:    NewHandler(s),
		businesses: businesses,
	}
}

func (h *BusinessHandler) ListBusinesses(c echo.Context, _ *model.EmptyRequest) ([]model.Business, error) {
	return h.businesses.FindAll(c.Request().Context())
}

func (h *BusinessHandler) GetBusinessByID(c echo.Context, req *model.IDParam) (*model.Business, error) {
	b, err := h.businesses.FindByID(c.Request().Context(), req.ID)
	return orNotFound(b, err, errBusinessNotFound)
}

func (h *BusinessHandler) GetBusinessByEmail(c echo.Context, req *model.EmailParam) (*model.Business, error) {
	b, err := h.businesses.FindByEmail(c.Request().Context(), req.Email)
	return orNotFound(b, err, errBusinessNotFound)
}

func (h *BusinessHandler) GetBusinessByName(c echo.Context, req *model.NameParam) (*model.Business, error) {
	b, err := h.businesses.FindByName(c.Request().Context(), req.Name)
	return orNotFound(b, err, errBusinessNotFound)
}

func (h *BusinessHandler) ListByOwner(c echo.Context, req *model.OwnerParam) ([]model.Business, error) {
	return h.businesses.FindByOwner(c.Request().Context(), req.OwnerID)
}

func (h *BusinessHandler) ListHours(c echo.Context, req *model.IDParam) ([]model.Hours, error) {
	return h.businesses.Hours(c.Request().Context(), req.ID)
}

func (h *BusinessHandler) ListReviews(c echo.Context, req *model.IDParam) ([]model.Review, error) {
	return h.businesses.Reviews(c.Request().Context(), req.ID)
}

func (h *BusinessHandler) ListPosts(c echo.Context, req *model.IDParam) ([]model.Post, error) {
	return h.businesses.Posts(c.Request().Context(), req.ID)
}

func (h *BusinessHandler) CreateBusiness(c echo.Context, req *model.BusinessRequest) (*model.Business, error) {
	b := req.ToBusiness()
	if err := h.businesses.Create(c.Request().Context(), b); err != nil {
		return nil, err
	}
	return b, nil
}

func (h *BusinessHandler) UpdateBusiness(c echo.Context, req *model.BusinessRequest) (*model.Business, bool, error) {
	b := req.ToBusiness()
	created, err := h.businesses.Update(c.Request().Context(), b)
	if err != nil {
		return nil, false, err
	}
	return b, created, nil
}

// DeleteBusiness removes the business together with its hours, reviews,
// posts and favorite links.
func (h *BusinessHandler) DeleteBusiness(c echo.Context, req *model.IDParam) (*model.Business, error) {
	ctx := c.Request().Context()

	b, err := h.businesses.FindByID(ctx, req.ID)
	if b, err = orNotFound(b, err, errBusinessNotFound); err != nil {
		return nil, err
	}
	if err := h.businesses.Delete(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
