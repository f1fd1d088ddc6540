package services

import (
	"context"

	"github.com/google/uuid"

	"companydocs/domain/models"
)

// AuthService manages the bearer-token lifecycle. Login never reveals whether
// the email or the password was wrong; Logout revokes every active session of
// the caller, not just the presented one.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	// Authenticate resolves a bearer credential to its user, verifying the
	// signature and that the backing token record has not been revoked.
	Authenticate(ctx context.Context, bearer string) (*models.User, error)
}
