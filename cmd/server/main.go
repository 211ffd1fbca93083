package main

import (
	"fmt"
	"log"

	"modhub/backend/internal/config"
	"modhub/backend/internal/database"
	"modhub/backend/internal/handler"

	// Swagger imports
	_ "modhub/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           ModHub API
// @version         1.0
// @description     This is the API for the ModHub service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router, err := handler.NewRouter(database.DB)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := config.AppConfig.ListenAddr
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(addr))
}
