package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/repository"

	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo          repository.UserRepositoryInterface
	subscriptions repository.MembershipRepositoryInterface
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, subscriptions repository.MembershipRepositoryInterface) *UserService {
	return &UserService{
		repo:          repo,
		subscriptions: subscriptions,
	}
}

// GetUser returns a user as seen by viewerID (0 for anonymous callers)
func (s *UserService) GetUser(ctx context.Context, id, viewerID uint) (*UserSummary, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	subscribed := false
	if viewerID != 0 && viewerID != id {
		subscribed, err = s.subscriptions.Exists(ctx, viewerID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check subscription: %w", err)
		}
	}

	summary := toUserSummary(user, subscribed)
	return &summary, nil
}

// GetCurrentUser returns the authenticated user
func (s *UserService) GetCurrentUser(ctx context.Context, viewerID uint) (*UserSummary, error) {
	if viewerID == 0 {
		return nil, apperrors.ErrAuthenticationRequired
	}
	return s.GetUser(ctx, viewerID, viewerID)
}

// DeleteUser removes a user together with their recipes and memberships
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logger.WithContext(ctx).WithField("deleted_user_id", id).Info("User deleted")
	return nil
}
