// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	fixedController       *controller.FixedController
	analyticsController   *controller.AnalyticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	fixedController *controller.FixedController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		fixedController:       fixedController,
		analyticsController:   analyticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
		}

		// Transaction writes require auth; reads degrade to empty lists
		// for anonymous callers.
		transactions := v1.Group("/transactions")
		{
			transactions.POST("", r.authMiddleware.Authenticate(), r.transactionController.Create)
			transactions.DELETE("/:id", r.authMiddleware.Authenticate(), r.transactionController.Delete)
			transactions.GET("", r.authMiddleware.AuthenticateOptional(), r.transactionController.ListByMonth)
			transactions.GET("/recent", r.authMiddleware.AuthenticateOptional(), r.transactionController.ListRecent)
		}

		analytics := v1.Group("/analytics")
		analytics.Use(r.authMiddleware.AuthenticateOptional())
		{
			analytics.GET("/monthly-stats", r.analyticsController.MonthlyStats)
		}

		fixedGroup := v1.Group("/fixed")
		{
			r.setupFixedTypeRoutes(fixedGroup.Group("/expenses"), entity.FixedItemTypeExpense)
			r.setupFixedTypeRoutes(fixedGroup.Group("/incomes"), entity.FixedItemTypeIncome)

			// The snapshot check runs on every app open, authenticated or
			// not; anonymous calls are cheap no-ops.
			fixedGroup.POST("/ensure-snapshot", r.authMiddleware.AuthenticateOptional(), r.fixedController.EnsureSnapshot)
		}
	}
}

// setupFixedTypeRoutes wires one half of the recurring template (expense
// or income) under its route group.
func (r *Router) setupFixedTypeRoutes(group *gin.RouterGroup, itemType entity.FixedItemType) {
	group.POST("", r.authMiddleware.Authenticate(), r.fixedController.Create(itemType))
	group.DELETE("/:id", r.authMiddleware.Authenticate(), r.fixedController.Delete(itemType))
	group.GET("", r.authMiddleware.AuthenticateOptional(), r.fixedController.List(itemType))
	group.GET("/total", r.authMiddleware.AuthenticateOptional(), r.fixedController.Total(itemType))
	group.GET("/by-category", r.authMiddleware.AuthenticateOptional(), r.fixedController.ByCategory(itemType))
}
