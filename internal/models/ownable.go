package models

// Ownable provides the owning-user reference shared by every resource that
// belongs to a user. Embed it to get the user_id column and the relation.
type Ownable struct {
	UserID uint  `gorm:"not null;index"`
	User   *User `gorm:"foreignKey:UserID"`
}

// OwnerID returns the identifier of the owning user.
func (o Ownable) OwnerID() uint {
	return o.UserID
}
