package main

import (
	"context"
	"fmt"
	"os"

	_ "mecanica_workorder/docs"
	"mecanica_workorder/internal/adapter/http/routes"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Work Order API
// @version         1.0
// @description     Work order cost summaries for the latest maintenance record of a vehicle.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(context.Background(), cfg, log); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}
