// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/fixed"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies
// wired. The clock is injectable so tests can drive the month boundary.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	if clock == nil {
		clock = adapter.SystemClock{}
	}

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	fixedRepo := persistence.NewFixedItemRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	findOrCreateCategoryUseCase := category.NewFindOrCreateCategoryUseCase(categoryRepo)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, findOrCreateCategoryUseCase)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	listRecentUseCase := transaction.NewListRecentTransactionsUseCase(transactionRepo)
	listByMonthUseCase := transaction.NewListTransactionsByMonthUseCase(transactionRepo)

	// Dashboard use cases
	monthlyStatsUseCase := dashboard.NewGetMonthlyStatsUseCase(listByMonthUseCase)

	// Fixed template and snapshot use cases
	createFixedUseCase := fixed.NewCreateFixedItemUseCase(fixedRepo, findOrCreateCategoryUseCase)
	deleteFixedUseCase := fixed.NewDeleteFixedItemUseCase(fixedRepo)
	listFixedUseCase := fixed.NewListFixedItemsUseCase(fixedRepo)
	fixedTotalUseCase := fixed.NewGetFixedTotalForMonthUseCase(fixedRepo, snapshotRepo, clock)
	fixedBreakdownUseCase := fixed.NewGetFixedByCategoryForMonthUseCase(fixedRepo, snapshotRepo, clock)
	ensureSnapshotUseCase := fixed.NewEnsurePreviousMonthSnapshotUseCase(fixedRepo, snapshotRepo, clock)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	categoryController := controller.NewCategoryController(listCategoriesUseCase, findOrCreateCategoryUseCase)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		deleteTransactionUseCase,
		listRecentUseCase,
		listByMonthUseCase,
	)

	fixedController := controller.NewFixedController(
		createFixedUseCase,
		deleteFixedUseCase,
		listFixedUseCase,
		fixedTotalUseCase,
		fixedBreakdownUseCase,
		ensureSnapshotUseCase,
	)

	analyticsController := controller.NewAnalyticsController(monthlyStatsUseCase)

	// Middleware. Tests get a high login limit to avoid flakes.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		fixedController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
