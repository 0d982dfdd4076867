package models

import "time"

// Activity is an append-only audit log entry. The user/project/service
// references are nullable so entries survive the entities they describe.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null" json:"type"` // e.g. "project_created", "deployment", "alert"
	Message   string    `gorm:"not null" json:"message"`
	UserID    *uint     `gorm:"index" json:"userId"`
	ProjectID *uint     `gorm:"index" json:"projectId"`
	ServiceID *uint     `json:"serviceId"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
