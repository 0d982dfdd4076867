package models

import "time"

// ServiceHealthStatus is a coarse status-board row keyed by service type,
// independent of individual Service instances. At most one row per type.
type ServiceHealthStatus struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ServiceType string    `gorm:"uniqueIndex;not null" json:"serviceType"`
	Status      string    `gorm:"not null;default:operational" json:"status"` // "operational", "degraded", "outage"
	Uptime      float64   `gorm:"default:100" json:"uptime"`
	LastUpdated time.Time `gorm:"not null" json:"lastUpdated"`
}
