package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"companydocs/domain/apperrors"
	"companydocs/domain/models"
	"companydocs/domain/repositories"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
	"companydocs/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, jwtSecret string, tokenTTL time.Duration) services.AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// same failure as a wrong password, no account enumeration
			logger.WarnContext(ctx, "Login failed", "reason", "unknown email")
			return "", nil, apperrors.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Login lookup failed", "error", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.WarnContext(ctx, "Login failed", "reason", "password mismatch", "user_id", user.ID)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	// each login mints a new session; existing ones stay valid (multi-device)
	token := &models.AuthToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      "auth_token_" + user.ID.String(),
		CreatedAt: time.Now(),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		logger.ErrorContext(ctx, "Failed to persist auth token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	signed, err := utils.SignToken(user.ID, token.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return signed, user, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	// revokes every session for the user, not only the presenting one
	if err := s.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		logger.ErrorContext(ctx, "Failed to revoke tokens", "user_id", userID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "User logged out, all sessions revoked", "user_id", userID)
	return nil
}

func (s *AuthServiceImpl) Authenticate(ctx context.Context, bearer string) (*models.User, error) {
	userID, tokenID, err := utils.ParseToken(bearer, s.jwtSecret)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	// the revocation row must still exist; checked on every request so
	// logout takes effect immediately, no caching
	token, err := s.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if token.UserID != userID {
		logger.WarnContext(ctx, "Token user mismatch", "token_id", tokenID)
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}
