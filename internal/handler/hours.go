package handler

import (
	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/labstack/echo/v4"
)

var errHoursNotFound = errs.NewNotFoundError("Hours not found", true, nil)

type HoursHandler struct {
	Handler
	hours *service.HoursService
}

func NewHoursHandler(s *server.Server, hours *service.HoursService) *HoursHandler {
	return &HoursHandler{
		Handler: NewHandler(s),
		hours:   hours,
	}
}

func (h *HoursHandler) ListHours(c echo.Context, _ *model.EmptyRequest) ([]model.Hours, error) {
	return h.hours.FindAll(c.Request().Context())
}

func (h *HoursHandler) GetHours(c echo.Context, req *model.IDParam) (*model.Hours, error) {
	hours, err := h.hours.FindByID(c.Request().Context(), req.ID)
	return orNotFound(hours, err, errHoursNotFound)
}

func (h *HoursHandler) CreateHours(c echo.Context, req *model.HoursRequest) (*model.Hours, error) {
	hours := req.ToHours()
	if err := h.hours.Create(c.Request().Context(), hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func (h *HoursHandler) UpdateHours(c echo.Context, req *model.HoursRequest) (*model.Hours, bool, error) {
	hours := req.ToHours()
	created, err := h.hours.Update(c.Request().Context(), hours)
	if err != nil {
		return nil, false, err
	}
	return hours, created, nil
}

func (h *HoursHandler) DeleteHours(c echo.Context, req *model.IDParam) (*model.Hours, error) {
	ctx := c.Request().Context()

	hours, err := h.hours.FindByID(ctx, req.ID)
	if hours, err = orNotFound(hours, err, errHoursNotFound); err != nil {
		return nil, err
	}
	if err := h.hours.Delete(ctx, hours); err != nil {
		return nil, err
	}
	return hours, nil
}
