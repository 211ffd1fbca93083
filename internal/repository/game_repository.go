package repository

import (
	"gorm.io/gorm"

	"modhub/backend/internal/models"
)

// GameRepository binds the generic engine to the Game model.
type GameRepository struct {
	*Repository[models.Game]
}

// NewGameRepository builds a game repository over db.
func NewGameRepository(db *gorm.DB) (*GameRepository, error) {
	base, err := New[models.Game](db)
	if err != nil {
		return nil, err
	}
	return &GameRepository{Repository: base}, nil
}
