package repository

import (
	"gorm.io/gorm"

	"modhub/backend/internal/models"
)

// ModRepository binds the generic engine to the Mod model.
type ModRepository struct {
	*Repository[models.Mod]
}

// NewModRepository builds a mod repository over db.
func NewModRepository(db *gorm.DB) (*ModRepository, error) {
	base, err := New[models.Mod](db)
	if err != nil {
		return nil, err
	}
	return &ModRepository{Repository: base}, nil
}
