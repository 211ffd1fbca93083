package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"modhub/backend/internal/models"
)

// ModBelongsToGame rejects mod-scoped requests whose mod does not belong to
// the game in the path. A mismatch reads as 404: under that game, the mod
// does not exist. Requests without a mod ID pass through.
func ModBelongsToGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		modParam := c.Param("modID")
		if modParam == "" {
			c.Next()
			return
		}

		gameID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		modID, err := strconv.Atoi(modParam)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}

		var mod models.Mod
		if err := db.First(&mod, modID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		if mod.GameID != uint(gameID) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}

		c.Next()
	}
}
