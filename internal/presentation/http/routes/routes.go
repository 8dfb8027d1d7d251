package routes

import (
	"time"

	"github.com/abicrealty/voucher-api/internal/config"
	"github.com/abicrealty/voucher-api/internal/domain/entity"
	domainRepo "github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/internal/presentation/http/handler"
	"github.com/abicrealty/voucher-api/internal/presentation/http/middleware"
	"github.com/abicrealty/voucher-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Account       *handler.AccountHandler
	CashVoucher   *handler.CashVoucherHandler
	ChequeVoucher *handler.ChequeVoucherHandler
	Activity      *handler.ActivityHandler
	Report        *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	registerAccountRoutes(protected, h)
	registerCashVoucherRoutes(protected, h, deps)
	registerChequeVoucherRoutes(protected, h, deps)
	registerAdminRoutes(protected, h)
}

func registerAccountRoutes(protected *gin.RouterGroup, h *Handlers) {
	accounts := protected.Group("/accounts")
	{
		accounts.GET("", h.Account.List)
		accounts.POST("", h.Account.Create)
		accounts.GET("/:id", h.Account.Get)
		accounts.PUT("/:id", h.Account.Update)
		accounts.DELETE("/:id", h.Account.Delete)
	}
}

func registerCashVoucherRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	vouchers := protected.Group("/cash-vouchers")
	{
		vouchers.GET("", h.CashVoucher.List)
		// Voucher creation requires an idempotency key so a double submit
		// never burns two numbers
		vouchers.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.CashVoucher.Create)
		vouchers.GET("/generate-number", h.CashVoucher.GenerateNumber)
		vouchers.POST("/generate-number", h.CashVoucher.GenerateNumber)
		vouchers.GET("/:id", h.CashVoucher.Get)
		vouchers.PUT("/:id", h.CashVoucher.Update)
		vouchers.GET("/:id/export", h.CashVoucher.Export)
		vouchers.POST("/:id/approve", h.CashVoucher.Approve)
		vouchers.POST("/:id/mark-as-paid", h.CashVoucher.MarkPaid)
		vouchers.POST("/:id/cancel", h.CashVoucher.Cancel)
		vouchers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.CashVoucher.Delete)
	}
}

func registerChequeVoucherRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	vouchers := protected.Group("/cheque-vouchers")
	{
		vouchers.GET("", h.ChequeVoucher.List)
		vouchers.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.ChequeVoucher.Create)
		vouchers.GET("/generate-number", h.ChequeVoucher.GenerateNumber)
		vouchers.POST("/generate-number", h.ChequeVoucher.GenerateNumber)
		vouchers.GET("/:id", h.ChequeVoucher.Get)
		vouchers.PUT("/:id", h.ChequeVoucher.Update)
		vouchers.GET("/:id/export", h.ChequeVoucher.Export)
		vouchers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.ChequeVoucher.Delete)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/activity-logs", h.Activity.List)
		admin.GET("/reports/summary", h.Report.Summary)
	}
}
