// Package handler is the HTTP layer of the directory.
//
// Handlers bind and validate the request through the validation package,
// call the matching service and turn its result into a response. Status
// mapping for failures is left to the global error handler.
package handler

import (
	"time"

	"github.com/deppfellow/bizdir/internal/errs"
	"github.com/deppfellow/bizdir/internal/middleware"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/deppfellow/bizdir/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is embedded by every concrete handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Payload is a pointer to a request struct that can validate itself. A new
// value is allocated for every request.
type Payload[T any] interface {
	*T
	validation.Validatable
}

type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// HandlerFuncUpsert reports whether the record was created rather than
// replaced.
type HandlerFuncUpsert[Req validation.Validatable, Res any] func(c echo.Context, req Req) (res Res, created bool, err error)

// responder writes a successful result. operation tags the request log
// line; annotate, when set, adds result specific trace attributes.
type responder struct {
	operation string
	write     func(c echo.Context, result any) error
	annotate  func(txn *newrelic.Transaction, result any)
}

func jsonResponder(status int) responder {
	return responder{
		operation: "handler",
		write: func(c echo.Context, result any) error {
			return c.JSON(status, result)
		},
	}
}

func noContentResponder(status int) responder {
	return responder{
		operation: "handler_no_content",
		write: func(c echo.Context, _ any) error {
			return c.NoContent(status)
		},
	}
}

type upsertResult struct {
	body    any
	created bool
}

// upsertResponder answers 201 with the stored record when the update
// created it and 204 when an existing record was replaced.
func upsertResponder() responder {
	return responder{
		operation: "handler_upsert",
		write: func(c echo.Context, result any) error {
			if r := result.(upsertResult); r.created {
				return c.JSON(StatusUpsertCreated, r.body)
			}
			return c.NoContent(StatusUpsertUpdated)
		},
		annotate: func(txn *newrelic.Transaction, result any) {
			txn.AddAttribute("upsert.created", result.(upsertResult).created)
		},
	}
}

// requestTrace times the phases of one request and mirrors them onto the
// New Relic transaction when there is one.
type requestTrace struct {
	txn    *newrelic.Transaction
	logger zerolog.Logger
	start  time.Time
}

func (t *requestTrace) phase(name string, took time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failed"
		t.logger.Warn().
			Err(err).
			Int("status", errs.StatusOf(err)).
			Dur(name+"_duration", took).
			Dur("total_duration", time.Since(t.start)).
			Msgf("request %s failed", name)
	}

	if t.txn == nil {
		return
	}
	if err != nil {
		t.txn.NoticeError(nrpkgerrors.Wrap(err))
	}
	t.txn.AddAttribute(name+".status", status)
	t.txn.AddAttribute(name+".duration_ms", took.Milliseconds())
}

// handleRequest is the pipeline shared by every endpoint.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	run func(c echo.Context, req Req) (any, error),
	out responder,
) error {
	route := c.Path()
	trace := &requestTrace{
		txn:   newrelic.FromContext(c.Request().Context()),
		start: time.Now(),
		logger: middleware.GetLogger(c).With().
			Str("operation", out.operation).
			Str("method", c.Request().Method).
			Str("route", route).
			Logger(),
	}
	if trace.txn != nil {
		trace.txn.AddAttribute("handler.name", route)
	}

	trace.logger.Debug().Msg("handling request")

	began := time.Now()
	err := validation.BindAndValidate(c, req)
	validationTook := time.Since(began)
	trace.phase("validation", validationTook, err)
	if err != nil {
		return err
	}

	began = time.Now()
	result, err := run(c, req)
	handlerTook := time.Since(began)
	trace.phase("handler", handlerTook, err)
	if err != nil {
		return err
	}

	if trace.txn != nil {
		trace.txn.AddAttribute("total.duration_ms", time.Since(trace.start).Milliseconds())
		if out.annotate != nil {
			out.annotate(trace.txn, result)
		}
	}

	trace.logger.Info().
		Dur("validation_duration", validationTook).
		Dur("handler_duration", handlerTook).
		Dur("total_duration", time.Since(trace.start)).
		Msg("request completed")

	return out.write(c, result)
}

// Handle registers a typed endpoint answering JSON with status.
//
//	g.GET("/id/:id", handler.Handle(h.Handler, h.GetUserByID, http.StatusOK))
func Handle[T any, Req Payload[T], Res any](h Handler, fn HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return fn(c, req)
		}, jsonResponder(status))
	}
}

func HandleNoContent[T any, Req Payload[T]](h Handler, fn HandlerFuncNoContent[Req], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return nil, fn(c, req)
		}, noContentResponder(status))
	}
}

// HandleUpsert registers a PUT endpoint answering 201 or 204.
func HandleUpsert[T any, Req Payload[T], Res any](h Handler, fn HandlerFuncUpsert[Req, Res]) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			res, created, err := fn(c, req)
			if err != nil {
				return nil, err
			}
			return upsertResult{body: res, created: created}, nil
		}, upsertResponder())
	}
}
