// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/router/handler"
	"atelier/internal/domain/entity"
	"atelier/internal/observability"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds everything the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AccountHandler  *handler.AccountHandler
	ArticleHandler  *handler.ArticleHandler
	ProjectHandler  *handler.ProjectHandler
	OfferingHandler *handler.OfferingHandler
	InquiryHandler  *handler.InquiryHandler
	MediaHandler    *handler.MediaHandler
	HealthHandler   *handler.HealthHandler
	Metrics         *observability.Metrics
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	accountHandler  *handler.AccountHandler
	articleHandler  *handler.ArticleHandler
	projectHandler  *handler.ProjectHandler
	offeringHandler *handler.OfferingHandler
	inquiryHandler  *handler.InquiryHandler
	mediaHandler    *handler.MediaHandler
	healthHandler   *handler.HealthHandler
	metrics         *observability.Metrics
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		accountHandler:  params.AccountHandler,
		articleHandler:  params.ArticleHandler,
		projectHandler:  params.ProjectHandler,
		offeringHandler: params.OfferingHandler,
		inquiryHandler:  params.InquiryHandler,
		mediaHandler:    params.MediaHandler,
		healthHandler:   params.HealthHandler,
		metrics:         params.Metrics,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Content management is open to any authenticated account; account
// management and the inquiry inbox are admin only.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Operational endpoints
	e.GET("/health", r.healthHandler.Liveness)
	e.GET("/health/db", r.healthHandler.Database)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Credential and session lifecycle
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/recovery", r.authHandler.RequestRecovery)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Account management, admin only
	accountGroup := api.Group("/accounts")
	accountGroup.Use(authenticate)
	accountGroup.Use(adminOnly)
	{
		accountGroup.POST("", r.accountHandler.CreateAccount)
		accountGroup.GET("", r.accountHandler.ListAccounts)
		accountGroup.GET("/:id", r.accountHandler.GetAccount)
		accountGroup.PUT("/:id/active", r.accountHandler.SetActive)
	}

	// Self-service profile
	profileGroup := api.Group("/profile")
	profileGroup.Use(authenticate)
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
		profileGroup.PUT("", r.accountHandler.UpdateProfile)
		profileGroup.PUT("/password", r.accountHandler.ChangePassword)
	}

	// Articles: public reads, authenticated writes.
	// The static /all route must stay registered next to /:slug; echo
	// prefers static segments, which keeps the editorial listing reachable.
	articleGroup := api.Group("/articles")
	{
		articleGroup.GET("", r.articleHandler.ListPublished)
		articleGroup.GET("/all", r.articleHandler.ListAll, authenticate)
		articleGroup.GET("/:slug", r.articleHandler.GetBySlug)
		articleGroup.GET("/:slug/qr", r.articleHandler.ShareQR)
		articleGroup.POST("", r.articleHandler.Create, authenticate)
		articleGroup.PUT("/:slug", r.articleHandler.Update, authenticate)
		articleGroup.DELETE("/:slug", r.articleHandler.Delete, authenticate)
	}

	// Projects: public reads, authenticated writes
	projectGroup := api.Group("/projects")
	{
		projectGroup.GET("", r.projectHandler.List)
		projectGroup.GET("/:slug", r.projectHandler.GetBySlug)
		projectGroup.POST("", r.projectHandler.Create, authenticate)
		projectGroup.PUT("/:slug", r.projectHandler.Update, authenticate)
		projectGroup.DELETE("/:slug", r.projectHandler.Delete, authenticate)
	}

	// Offerings: public reads, authenticated writes
	offeringGroup := api.Group("/offerings")
	{
		offeringGroup.GET("", r.offeringHandler.ListActive)
		offeringGroup.GET("/all", r.offeringHandler.ListAll, authenticate)
		offeringGroup.GET("/:slug", r.offeringHandler.GetBySlug)
		offeringGroup.POST("", r.offeringHandler.Create, authenticate)
		offeringGroup.PUT("/:slug", r.offeringHandler.Update, authenticate)
		offeringGroup.DELETE("/:slug", r.offeringHandler.Delete, authenticate)
	}

	// Inquiries: public submission, admin inbox
	inquiryGroup := api.Group("/inquiries")
	{
		inquiryGroup.POST("", r.inquiryHandler.Submit)
		inquiryGroup.GET("", r.inquiryHandler.List, authenticate, adminOnly)
		inquiryGroup.PUT("/:id/handled", r.inquiryHandler.MarkHandled, authenticate, adminOnly)
	}

	// Media: presigned access for any authenticated account
	mediaGroup := api.Group("/media")
	mediaGroup.Use(authenticate)
	{
		mediaGroup.POST("/uploads", r.mediaHandler.CreateUploadTicket)
		mediaGroup.GET("/download", r.mediaHandler.ResolveDownload)
		mediaGroup.POST("/downloads", r.mediaHandler.ResolveDownloads)
	}
}
