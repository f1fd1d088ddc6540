package models

import (
	"time"

	"github.com/google/uuid"
)

// File is the metadata row for one stored blob. Path must reference exactly
// one live object in storage for as long as the row exists.
type File struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	CompanyID uuid.UUID `gorm:"not null;index"`
	UserID    uuid.UUID `gorm:"not null"` // uploader
	Name      string    `gorm:"size:255;not null"` // original client filename, sanitized
	HashName  string    `gorm:"size:255;not null"` // generated storage-safe name
	Path      string    `gorm:"size:500;not null;index"`
	MimeType  string    `gorm:"size:100"`
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time

	Company Company `gorm:"foreignKey:CompanyID"`
}

func (File) TableName() string {
	return "files"
}
