package main

import (
	_ "quotely/docs"
	"quotely/internal/adapter/http/routes"
	"quotely/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quotely API
// @version         1.0
// @description     Quote composition service (quotes, templates, projects, contacts, business domains) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Setup()
	routes.Run()
}
