package models

import "time"

// User represents a user in the system. Users are not soft-deleted, so the
// model carries its own columns instead of embedding gorm.Model.
type User struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}

// GuardedFields lists columns that may never be written through create/update.
func (User) GuardedFields() []string {
	return []string{"id"}
}

// HiddenFields lists columns excluded from the writable set alongside guarded
// ones; the password hash is only ever set through the auth flow.
func (User) HiddenFields() []string {
	return []string{"password_hash"}
}
