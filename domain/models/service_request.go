package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequest is carried only for the company relation; it has no
// endpoints of its own.
type ServiceRequest struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	CompanyID   uuid.UUID `gorm:"not null;index"`
	Description string    `gorm:"size:500"`
	Status      string    `gorm:"size:20;default:'open'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Company Company `gorm:"foreignKey:CompanyID"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
