package handler

import (
	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/model"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
	"github.com/labstack/echo/v4"
)

var errPostNotFound = errs.NewNotFoundError("Post not found", true, nil)

type PostHandler struct {
	Handler
	posts *service.PostService
}

func NewPostHandler(s *server.Server, posts *service.PostService) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

func (h *PostHandler) ListPosts(c echo.Context, _ *model.EmptyRequest) ([]model.Post, error) {
	return h.posts.FindAll(c.Request().Context())
}

func (h *PostHandler) GetPost(c echo.Context, req *model.IDParam) (*model.Post, error) {
	p, err := h.posts.FindByID(c.Request().Context(), req.ID)
	return orNotFound(p, err, errPostNotFound)
}

func (h *PostHandler) CreatePost(c echo.Context, req *model.PostRequest) (*model.Post, error) {
	p := req.ToPost()
	if err := h.posts.Create(c.Request().Context(), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (h *PostHandler) UpdatePost(c echo.Context, req *model.PostRequest) (*model.Post, bool, error) {
	p := req.ToPost()
	created, err := h.posts.Update(c.Request().Context(), p)
	if err != nil {
		return nil, false, err
	}
	return p, created, nil
}

func (h *PostHandler) DeletePost(c echo.Context, req *model.IDParam) (*model.Post, error) {
	ctx := c.Request().Context()

	p, err := h.posts.FindByID(ctx, req.ID)
	if p, err = orNotFound(p, err, errPostNotFound); err != nil {
		return nil, err
	}
	if err := h.posts.Delete(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
