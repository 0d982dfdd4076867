package models

import "time"

type Project struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Status       string     `gorm:"not null;default:development" json:"status"` // "development", "staging", "production"
	CreatedAt    time.Time  `json:"createdAt"`
	LastDeployed *time.Time `json:"lastDeployed"`
	CostPerMonth float64    `gorm:"default:0" json:"costPerMonth"`
	UserID       uint       `gorm:"not null;index" json:"userId"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Services   []Service  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Activities []Activity `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
