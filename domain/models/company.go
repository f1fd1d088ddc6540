package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanySizes are the accepted size classifications (Brazilian company
// size brackets, from micro-entrepreneur to large enterprise).
var CompanySizes = []string{"MEI", "ME", "EPP", "EMP", "EG"}

type Company struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID    uuid.UUID `gorm:"not null;index"` // owner, immutable after create
	Cnpj      string    `gorm:"size:14;uniqueIndex;not null"`
	LegalName string    `gorm:"size:255;uniqueIndex;not null"`
	TradeName string    `gorm:"size:255"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"`
	Phone     string    `gorm:"size:20;not null"`
	Address   string    `gorm:"size:255;not null"`
	Size      string    `gorm:"size:3;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User            User             `gorm:"foreignKey:UserID"`
	Files           []File           `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	ServiceRequests []ServiceRequest `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (Company) TableName() string {
	return "companies"
}

func IsValidCompanySize(size string) bool {
	for _, s := range CompanySizes {
		if s == size {
			return true
		}
	}
	return false
}
