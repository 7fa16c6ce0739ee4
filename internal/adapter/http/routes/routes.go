package routes

import (
	"context"
	"strconv"

	_ "mecanica_workorder/docs" // registers the swagger spec
	"mecanica_workorder/internal/adapter/http/handlers"
	"mecanica_workorder/internal/adapter/http/middleware"
	"mecanica_workorder/internal/adapter/persistence/repository"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run connects the configured store and serves the API until the listener
// fails.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, closeStore, err := repository.NewWorkOrderStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	summaryUseCase := usecase.NewWorkOrderSummaryUseCase(store, logger)
	workOrderHandler := handlers.NewWorkOrderHandler(summaryUseCase, cfg.QueryTimeout, logger)

	router := NewRouter(logger, workOrderHandler)

	addr := ":" + strconv.Itoa(cfg.Port)
	logger.Info("work order api listening", zap.String("addr", addr), zap.String("store", cfg.StoreDriver))
	return router.Run(addr)
}

// NewRouter builds the gin engine with middlewares, swagger and the v1 routes.
func NewRouter(logger *zap.Logger, workOrderHandler *handlers.WorkOrderHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", c.GetString(middleware.ContextRequestID)),
		)
		c.AbortWithStatus(500)
	}))
}
