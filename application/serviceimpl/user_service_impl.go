package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"companydocs/domain/apperrors"
	"companydocs/domain/dto"
	"companydocs/domain/models"
	"companydocs/domain/repositories"
	"companydocs/domain/services"
	"companydocs/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) services.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if existing, _ := s.userRepo.GetByEmail(ctx, req.Email); existing != nil {
		logger.WarnContext(ctx, "Registration rejected, email taken", "email", req.Email)
		return nil, apperrors.NewValidationError("email", "email is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.IsDuplicate(err) {
			return nil, apperrors.NewValidationError("email", "email is already taken")
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID)

	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserServiceImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *UserServiceImpl) FindByName(ctx context.Context, name string) (*models.User, error) {
	return s.userRepo.GetByName(ctx, name)
}

func (s *UserServiceImpl) Update(ctx context.Context, callerID, targetID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if callerID != targetID {
		// reported as not-found so the caller cannot confirm the id exists
		logger.WarnContext(ctx, "User update denied", "caller_id", callerID, "target_id", targetID)
		return nil, apperrors.ErrNotFound
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to hash password", "error", err)
			return nil, err
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		ok, err := s.userRepo.Update(ctx, targetID, updates)
		if err != nil {
			if apperrors.IsDuplicate(err) {
				return nil, apperrors.NewValidationError("email", "email is already taken")
			}
			logger.ErrorContext(ctx, "Failed to update user", "user_id", targetID, "error", err)
			return nil, err
		}
		if !ok {
			return nil, apperrors.ErrNotFound
		}
	}

	return s.userRepo.GetByID(ctx, targetID)
}

func (s *UserServiceImpl) Delete(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID != targetID {
		logger.WarnContext(ctx, "User delete denied", "caller_id", callerID, "target_id", targetID)
		return apperrors.ErrNotFound
	}

	ok, err := s.userRepo.Delete(ctx, targetID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", targetID, "error", err)
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	logger.InfoContext(ctx, "User deleted", "user_id", targetID)
	return nil
}
