package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"car_maintenance/internal/adapter/http/routes"
	"car_maintenance/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Car Maintenance API
// @version         1.0
// @description     Mechanic directory, booking scheduler and inspection reports.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}
