package models

import "gorm.io/gorm"

// Mod represents a modification published for a specific game. The game
// reference is set at creation and never changes afterwards. Mods are
// soft-deleted.
type Mod struct {
	gorm.Model
	Ownable
	Name   string `gorm:"size:255;not null"`
	GameID uint   `gorm:"not null;index"`
	Game   *Game  `gorm:"foreignKey:GameID"`
}

// FillableFields is the allow-list of columns writable through create/update.
func (Mod) FillableFields() []string {
	return []string{"name", "user_id", "game_id"}
}
