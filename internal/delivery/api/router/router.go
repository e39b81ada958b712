// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageRoute = "/images/*"

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	AdminCatalogHandler *handler.AdminCatalogHandler
	AdminUserHandler    *handler.AdminUserHandler
	ImageHandler        *handler.ImageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	catalogHandler      *handler.CatalogHandler
	adminCatalogHandler *handler.AdminCatalogHandler
	adminUserHandler    *handler.AdminUserHandler
	imageHandler        *handler.ImageHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		catalogHandler:      params.CatalogHandler,
		adminCatalogHandler: params.AdminCatalogHandler,
		adminUserHandler:    params.AdminUserHandler,
		imageHandler:        params.ImageHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.metrics.Enabled() {
		e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// The caller's own account
	meGroup := authGroup.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.authHandler.Me)
		meGroup.PUT("/password", r.authHandler.ChangePassword)
	}

	// Stored images, public like the catalog that links them
	e.GET(imageRoute, r.imageHandler.ServeImage)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Public catalog reads
	{
		apiV1.GET("/categories", r.catalogHandler.ListCategories)
		apiV1.GET("/categories/:id", r.catalogHandler.GetCategory)
		apiV1.GET("/products", r.catalogHandler.ListProducts)
		apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	}

	// Administration requires authentication and the Administrator role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                          // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdministrator)) // Then, check for the role

	categoriesGroup := adminGroup.Group("/categories")
	{
		categoriesGroup.POST("", r.adminCatalogHandler.CreateCategory)
		categoriesGroup.PUT("/:id", r.adminCatalogHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.adminCatalogHandler.DeleteCategory)
	}

	productsGroup := adminGroup.Group("/products")
	{
		productsGroup.POST("", r.adminCatalogHandler.CreateProduct)
		productsGroup.PUT("/:id", r.adminCatalogHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.adminCatalogHandler.DeleteProduct)
		productsGroup.GET("/:id/label", r.adminCatalogHandler.ProductLabel)
	}

	usersGroup := adminGroup.Group("/users")
	{
		usersGroup.GET("/:id", r.adminUserHandler.GetUser)
		usersGroup.PUT("/:id/lockout", r.adminUserHandler.SetLockout)
	}
}
