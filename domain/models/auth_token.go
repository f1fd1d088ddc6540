package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the revocation record behind a bearer credential. The signed
// token carries this row's ID; deleting the row invalidates the credential on
// the next request. A user may hold several rows at once (multi-device).
type AuthToken struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID    uuid.UUID `gorm:"not null;index"`
	Name      string    `gorm:"size:255"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
