package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	FullName string `gorm:"not null" json:"fullName"`
	Avatar   string `json:"avatar"`
	Role     string `gorm:"not null;default:user" json:"role"`

	// Relationships
	Projects   []Project  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Activities []Activity `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
