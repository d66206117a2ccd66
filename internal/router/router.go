// Package router builds the Echo instance: global middleware in order, the
// error handler, system routes and the directory's resource routes.
package router

import (
	"net/http"

	"github.com/deppfellow/bizdir/internal/handler"
	"github.com/deppfellow/bizdir/internal/middleware"
	"github.com/deppfellow/bizdir/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires every middleware and route. The returned Echo is the
// http.Handler passed to server.SetupHTTPServer.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: Recover wraps everything, the request id feeds the
	// context logger, the New Relic transaction must exist before
	// EnhanceTracing, and rejected requests are still logged.
	router.Use(
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerDirectoryRoutes(router, h)

	return router
}

func registerDirectoryRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated))
	users.PUT("", handler.HandleUpsert(h.Users.Handler, h.Users.UpdateUser))
	users.GET("/id/:id", handler.Handle(h.Users.Handler, h.Users.GetUserByID, http.StatusOK))
	users.DELETE("/id/:id", handler.Handle(h.Users.Handler, h.Users.DeleteUser, http.StatusOK))
	users.PATCH("/id/:id/deactivate", handler.HandleNoContent(h.Users.Handler, h.Users.DeactivateUser, http.StatusNoContent))
	users.GET("/id/:id/favorites", handler.Handle(h.Users.Handler, h.Users.ListFavorites, http.StatusOK))
	users.POST("/id/:id/favorites/:businessId", handler.HandleNoContent(h.Users.Handler, h.Users.AddFavorite, http.StatusNoContent))
	users.DELETE("/id/:id/favorites/:businessId", handler.HandleNoContent(h.Users.Handler, h.Users.RemoveFavorite, http.StatusNoContent))
	users.GET("/email/:email", handler.Handle(h.Users.Handler, h.Users.GetUserByEmail, http.StatusOK))
	users.GET("/username/:username", handler.Handle(h.Users.Handler, h.Users.GetUserByUsername, http.StatusOK))

	businesses := r.Group("/businesses")
	businesses.GET("", handler.Handle(h.Businesses.Handler, h.Businesses.ListBusinesses, http.StatusOK))
	businesses.POST("", handler.Handle(h.Businesses.Handler, h.Businesses.CreateBusiness, http.StatusCreated))
	businesses.PUT("", handler.HandleUpsert(h.Businesses.Handler, h.Businesses.UpdateBusiness))
	businesses.GET("/id/:id", handler.Handle(h.Businesses.Handler, h.Businesses.GetBusinessByID, http.StatusOK))
	businesses.DELETE("/id/:id", handler.Handle(h.Businesses.Handler, h.Businesses.DeleteBusiness, http.StatusOK))
	businesses.GET("/id/:id/hours", handler.Handle(h.Businesses.Handler, h.Businesses.ListHours, http.StatusOK))
	businesses.GET("/id/:id/reviews", handler.Handle(h.Businesses.Handler, h.Businesses.ListReviews, http.StatusOK))
	businesses.GET("/id/:id/posts", handler.Handle(h.Businesses.Handler, h.Businesses.ListPosts, http.StatusOK))
	businesses.GET("/email/:email", handler.Handle(h.Businesses.Handler, h.Businesses.GetBusinessByEmail, http.StatusOK))
	businesses.GET("/name/:name", handler.Handle(h.Businesses.Handler, h.Businesses.GetBusinessByName, http.StatusOK))
	businesses.GET("/owner/:ownerId", handler.Handle(h.Businesses.Handler, h.Businesses.ListByOwner, http.StatusOK))

	hours := r.Group("/hours")
	hours.GET("", handler.Handle(h.Hours.Handler, h.Hours.ListHours, http.StatusOK))
	hours.POST("", handler.Handle(h.Hours.Handler, h.Hours.CreateHours, http.StatusCreated))
	hours.PUT("", handler.HandleUpsert(h.Hours.Handler, h.Hours.UpdateHours))
	hours.GET("/id/:id", handler.Handle(h.Hours.Handler, h.Hours.GetHours, http.StatusOK))
	hours.DELETE("/id/:id", handler.Handle(h.Hours.Handler, h.Hours.DeleteHours, http.StatusOK))

	reviews := r.Group("/reviews")
	reviews.GET("", handler.Handle(h.Reviews.Handler, h.Reviews.ListReviews, http.StatusOK))
	reviews.POST("", handler.Handle(h.Reviews.Handler, h.Reviews.CreateReview, http.StatusCreated))
	reviews.PUT("", handler.HandleUpsert(h.Reviews.Handler, h.Reviews.UpdateReview))
	reviews.GET("/id/:id", handler.Handle(h.Reviews.Handler, h.Reviews.GetReview, http.StatusOK))
	reviews.DELETE("/id/:id", handler.Handle(h.Reviews.Handler, h.Reviews.DeleteReview, http.StatusOK))
	reviews.GET("/user/:userId", handler.Handle(h.Reviews.Handler, h.Reviews.ListByUser, http.StatusOK))

	posts := r.Group("/posts")
	posts.GET("", handler.Handle(h.Posts.Handler, h.Posts.ListPosts, http.StatusOK))
	posts.POST("", handler.Handle(h.Posts.Handler, h.Posts.CreatePost, http.StatusCreated))
	posts.PUT("", handler.HandleUpsert(h.Posts.Handler, h.Posts.UpdatePost))
	posts.GET("/id/:id", handler.Handle(h.Posts.Handler, h.Posts.GetPost, http.StatusOK))
	posts.DELETE("/id/:id", handler.Handle(h.Posts.Handler, h.Posts.DeletePost, http.StatusOK))
}
