package models

import "gorm.io/gorm"

// Game represents a game in the system. Games are soft-deleted.
type Game struct {
	gorm.Model
	Ownable
	Name string `gorm:"size:255;not null"`
	Mods []*Mod `gorm:"foreignKey:GameID"`
}

// FillableFields is the allow-list of columns writable through create/update.
func (Game) FillableFields() []string {
	return []string{"name", "user_id"}
}
