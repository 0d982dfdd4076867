package models

import "time"

// ResourceUsage is an append-only utilization sample for one service.
// Rows are never updated; readers order by Timestamp descending.
type ResourceUsage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ServiceID    uint      `gorm:"not null;index" json:"serviceId"`
	CpuUsage     float64   `gorm:"default:0" json:"cpuUsage"`
	MemoryUsage  float64   `gorm:"default:0" json:"memoryUsage"`
	StorageUsage float64   `gorm:"default:0" json:"storageUsage"`
	NetworkUsage float64   `gorm:"default:0" json:"networkUsage"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
