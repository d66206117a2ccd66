package handler

import (
	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/labstack/echo/v4"
)

var errUserNotFound = errs.NewNotFoundError("User not found", true, nil)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.EmptyRequest) ([]model.User, error) {
	return h.users.FindAll(c.Request().Context())
}

func (h *UserHandler) GetUserByID(c echo.Context, req *model.IDParam) (*model.User, error) {
	u, err := h.users.FindByID(c.Request().Context(), req.ID)
	return orNotFound(u, err, errUserNotFound)
}

func (h *UserHandler) GetUserByEmail(c echo.Context, req *model.EmailParam) (*model.User, error) {
	u, err := h.users.FindByEmail(c.Request().Context(), req.Email)
	return orNotFound(u, err, errUserNotFound)
}

func (h *UserHandler) GetUserByUsername(c echo.Context, req *model.UsernameParam) (*model.User, error) {
	u, err := h.users.FindByUsername(c.Request().Context(), req.Username)
	return orNotFound(u, err, errUserNotFound)
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (*model.User, error) {
	u := req.ToUser()
	if err := h.users.Create(c.Request().Context(), u); err != nil {
		return nil, err
	}
	return u, nil
}

func (h *UserHandler) UpdateUser(c echo.Context, req *model.UpdateUserRequest) (*model.User, bool, error) {
	u := req.ToUser()
	created, err := h.users.Update(c.Request().Context(), u, req.Active)
	if err != nil {
		return nil, false, err
	}
	return u, created, nil
}

// DeleteUser answers with the removed user.
func (h *UserHandler) DeleteUser(c echo.Context, req *model.IDParam) (*model.User, error) {
	ctx := c.Request().Context()

	u, err := h.users.FindByID(ctx, req.ID)
	if u, err = orNotFound(u, err, errUserNotFound); err != nil {
		return nil, err
	}
	if err := h.users.Delete(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (h *UserHandler) DeactivateUser(c echo.Context, req *model.IDParam) error {
	return h.users.Deactivate(c.Request().Context(), req.ID)
}

func (h *UserHandler) ListFavorites(c echo.Context, req *model.IDParam) ([]model.BusinessRef, error) {
	return h.users.Favorites(c.Request().Context(), req.ID)
}

func (h *UserHandler) AddFavorite(c echo.Context, req *model.FavoriteParams) error {
	return h.users.AddFavorite(c.Request().Context(), req.ID, req.BusinessID)
}

func (h *UserHandler) RemoveFavorite(c echo.Context, req *model.FavoriteParams) error {
	return h.users.RemoveFavorite(c.Request().Context(), req.ID, req.BusinessID)
}
