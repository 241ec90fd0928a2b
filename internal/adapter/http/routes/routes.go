package routes

import (
	"context"
	"log"
	"net/http"

	"claims_processor/internal/adapter/http/handlers"
	"claims_processor/internal/infrastructure/config"
	"claims_processor/internal/infrastructure/logger"
	"claims_processor/internal/usecase"
	"claims_processor/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := buildDependencies(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to wire dependencies", zap.Error(err))
	}
	defer deps.Close()

	router, err := NewRouter(cfg, deps, zlog)
	if err != nil {
		zlog.Fatal("Failed to build router", zap.Error(err))
	}

	zlog.Info("claims processor listening",
		zap.String("port", cfg.App.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("sequence_backend", cfg.Claims.SequenceBackend),
		zap.String("transition_policy", cfg.Claims.TransitionPolicy),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		zlog.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter builds the gin engine with every route mounted on the given dependencies.
func NewRouter(cfg config.Config, deps *dependencies, zlog *zap.Logger) (*gin.Engine, error) {
	guard, err := usecase.TransitionGuardFor(cfg.Claims.TransitionPolicy)
	if err != nil {
		return nil, err
	}

	numbers := usecase.NewClaimNumberGenerator(cfg.Claims.NumberPrefix, deps.allocator, nil)
	claimUseCase := usecase.NewClaimUseCase(
		deps.claims, deps.refs, numbers, guard, deps.events, zlog,
		usecase.WithClaimNumberAttempts(cfg.Claims.NumberMaxAttempts),
	)
	paymentUseCase := usecase.NewPaymentUseCase(deps.claims, deps.events, zlog)

	claimHandler := handlers.NewClaimHandler(claimUseCase, zlog)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, zlog)
	healthHandler := handlers.NewHealthHandler(deps.checks, zlog)

	router := gin.New()
	setMiddlewares(router, zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, claimHandler, paymentHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}
