package handler

import (
	"net/http"

	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/service"
)

// Status codes of PUT endpoints.
const (
	StatusUpsertCreated = http.StatusCreated
	StatusUpsertUpdated = http.StatusNoContent
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Users      *UserHandler
	Businesses *BusinessHandler
	Hours      *HoursHandler
	Reviews    *ReviewHandler
	Posts      *PostHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Users:      NewUserHandler(s, services.Users),
		Businesses: NewBusinessHandler(s, services.Businesses),
		Hours:      NewHoursHandler(s, services.Hours),
		Reviews:    NewReviewHandler(s, services.Reviews),
		Posts:      NewPostHandler(s, services.Posts),
	}
}
