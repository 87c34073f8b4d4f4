package main

import (
	"log"
	_ "todotech_backend/docs"
	"todotech_backend/internal/adapter/http/routes"
	"todotech_backend/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Intent Service API
// @version         1.0
// @description     Payment intent gateway (Stripe and Mercado Pago) backed by DynamoDB.
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
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}
