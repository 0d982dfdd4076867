package models

import (
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Type      string         `gorm:"not null" json:"type"`                  // "compute", "database", "storage", "function", "network", "web3", "spatial", "3d_amp"
	Status    string         `gorm:"not null;default:active" json:"status"` // "active", "stopped", "error"
	ProjectID uint           `gorm:"not null;index" json:"projectId"`
	Config    datatypes.JSON `gorm:"type:jsonb" json:"config"`
	CreatedAt time.Time      `json:"createdAt"`

	// Relationships
	Project       Project         `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	ResourceUsage []ResourceUsage `gorm:"foreignKey:ServiceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
