package router

import (
	"github.com/deppfellow/bizdir/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the directory itself:
// health, the docs page and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", handler.OpenAPIDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
