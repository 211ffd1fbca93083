package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"modhub/backend/internal/auth"
	"modhub/backend/internal/repository"
	"modhub/backend/internal/service"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
// Repository construction fails only on a model configuration error.
func NewRouter(db *gorm.DB) (*gin.Engine, error) {
	gameRepo, err := repository.NewGameRepository(db)
	if err != nil {
		return nil, err
	}
	modRepo, err := repository.NewModRepository(db)
	if err != nil {
		return nil, err
	}

	gameService := service.NewGameService(gameRepo)
	modService := service.NewModService(modRepo)

	games := NewGameHandler(gameService)
	mods := NewModHandler(modService, gameService)
	users := NewUserHandler(db)

	router := gin.Default()

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", users.RegisterUser)
			authRoutes.POST("/login", users.LoginUser)
		}

		// Game routes: reads are public, mutations require auth
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", games.GetGames)
			gameRoutes.GET("/:id", games.GetGameByID)
			gameRoutes.POST("", auth.AuthMiddleware(), games.CreateGame)
			gameRoutes.PUT("/:id", auth.AuthMiddleware(), games.UpdateGame)
			gameRoutes.DELETE("/:id", auth.AuthMiddleware(), games.DeleteGame)

			// Mod routes, nested under their game. The scoping guard runs
			// before auth so a parent mismatch reads as 404 either way.
			modRoutes := gameRoutes.Group("/:id/mods")
			modRoutes.Use(auth.ModBelongsToGame(db))
			{
				modRoutes.GET("", mods.GetMods)
				modRoutes.GET("/:modID", mods.GetModByID)
				modRoutes.POST("", auth.AuthMiddleware(), mods.CreateMod)
				modRoutes.PUT("/:modID", auth.AuthMiddleware(), mods.UpdateMod)
				modRoutes.DELETE("/:modID", auth.AuthMiddleware(), mods.DeleteMod)
			}
		}
	}

	return router, nil
}
