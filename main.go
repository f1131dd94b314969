package main

import (
	"internhub/core/logger"
	"internhub/core/server"

	_ "internhub/docs" // Swagger docs
)

// @title InternHub API
// @version 1.0
// @description API backend for the InternHub university internship forum - companies post offers, students book interview slots.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@internhub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
