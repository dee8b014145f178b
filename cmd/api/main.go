package main

import (
	_ "gestion_flota/docs"
	"gestion_flota/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fleet Maintenance API
// @version         1.0
// @description     Work orders, budgets and expense tracking for a vehicle fleet, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
