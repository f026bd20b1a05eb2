package routes

import (
	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router mounts
type Handlers struct {
	Auth     *handler.AuthHandler
	Card     *handler.CardHandler
	Transfer *handler.TransferHandler
	User     *handler.UserHandler
	Health   *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, renderer *httperr.Renderer) {
	router.GET("/health", h.Health.Check)

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/sign-up", h.Auth.SignUp)
		authRoutes.POST("/sign-in", h.Auth.SignIn)
	}

	cardRoutes := router.Group("/api/cards", middleware.RequireAuthenticated(renderer))
	{
		cardRoutes.GET("/my-cards", h.Card.MyCards)
		cardRoutes.GET("/my-cards/active", h.Card.MyActiveCards)
		cardRoutes.POST("/create", h.Card.Create)
		cardRoutes.POST("/block/:id", h.Card.Block)
		cardRoutes.GET("/balance", h.Card.Balance)
		cardRoutes.POST("/transfer", h.Transfer.Transfer)
		cardRoutes.GET("/transactions", h.Transfer.MyTransactions)
		cardRoutes.GET("/transactions/:id", h.Transfer.GetTransaction)
	}

	adminCardRoutes := cardRoutes.Group("/admin", middleware.RequireRole(renderer, entity.RoleAdmin))
	{
		adminCardRoutes.GET("/all-cards", h.Card.AllCards)
		adminCardRoutes.POST("/create/:username", h.Card.CreateForUser)
		adminCardRoutes.DELETE("/delete/:id", h.Card.Delete)
		adminCardRoutes.POST("/update/:id", h.Card.Activate)
		adminCardRoutes.POST("/deposit/:id", h.Card.Deposit)
		adminCardRoutes.POST("/withdraw/:id", h.Card.Withdraw)
		adminCardRoutes.GET("/transactions", h.Transfer.AllTransactions)
		adminCardRoutes.GET("/transactions/pending", h.Transfer.PendingTransactions)
	}

	adminUserRoutes := router.Group("/api/admin/user",
		middleware.RequireAuthenticated(renderer),
		middleware.RequireRole(renderer, entity.RoleAdmin),
	)
	{
		adminUserRoutes.PUT("/create", h.User.Create)
		adminUserRoutes.PATCH("/role-update/:id", h.User.Update)
		adminUserRoutes.DELETE("/delete/:id", h.User.Delete)
		adminUserRoutes.GET("/:id", h.User.Get)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	tokens usecase.TokenUseCase,
	renderer *httperr.Renderer,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	// Order matters: the request id must exist before anything logs
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger, renderer))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Authenticate(tokens, renderer, logger))
}
