package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/bizdir/internal/middleware"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	defaultHealthTimeout = 5 * time.Second
)

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

type healthReport struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// dependency is one health check target. An optional dependency is reported but does
// not make the service unhealthy.
type dependency struct {
	name     string
	optional bool
	ping     func(context.Context) error
}

func (h *HealthHandler) dependencies() []dependency {
	var deps []dependency
	if h.server.DB != nil {
		deps = append(deps, dependency{name: "database", ping: h.server.DB.Pool.Ping})
	}
	if h.server.Redis != nil {
		// The directory keeps serving without its job queue.
		deps = append(deps, dependency{name: "redis", optional: true, ping: func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}})
	}
	return deps
}

// CheckHealth answers 200 when every required dependency responds and
// 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	timeout := defaultHealthTimeout
	var only []string
	if obs := h.server.Config.Observability; obs != nil {
		if obs.HealthChecks.Timeout > 0 {
			timeout = obs.HealthChecks.Timeout
		}
		only = obs.HealthChecks.Checks
	}

	report := healthReport{
		Status:      statusHealthy,
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]checkResult{},
	}

	for _, p := range h.dependencies() {
		if len(only) > 0 && !slices.Contains(only, p.name) {
			continue
		}

		result := runCheck(c.Request().Context(), p, timeout)
		report.Checks[p.name] = result
		if result.Status == statusHealthy {
			continue
		}

		logger.Error().
			Str("check", p.name).
			Str("response_time", result.ResponseTime).
			Str("error", result.Error).
			Msg("health check failed")
		h.recordFailure(map[string]any{
			"check_type":    p.name,
			"operation":     "health_check",
			"error_type":    p.name + "_unhealthy",
			"error_message": result.Error,
		})

		if !p.optional {
			report.Status = statusUnhealthy
		}
	}

	status := http.StatusOK
	if report.Status != statusHealthy {
		status = http.StatusServiceUnavailable
		h.recordFailure(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})
	}

	logger.Debug().Int("status", status).Dur("total_duration", time.Since(start)).Msg("health check done")
	return c.JSON(status, report)
}

func runCheck(parent context.Context, p dependency, timeout time.Duration) checkResult {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	started := time.Now()
	err := p.ping(ctx)

	result := checkResult{Status: statusHealthy, ResponseTime: time.Since(started).String()}
	if err != nil {
		result.Status = statusUnhealthy
		result.Error = err.Error()
	}
	return result
}

func (h *HealthHandler) recordFailure(attrs map[string]any) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}
