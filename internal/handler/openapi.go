package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/bizdir/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIDir holds openapi.html and openapi.json, served under /static.
const OpenAPIDir = "static"

// OpenAPIHandler serves the API explorer page.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves static/openapi.html uncached so doc edits show up
// on the next reload.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	templateBytes, err := os.ReadFile(OpenAPIDir + "/openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
