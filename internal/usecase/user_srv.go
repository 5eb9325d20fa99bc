package usecase

import (
	"context"
	"fmt"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/data/repository"
	"pg-booking/internal/dto/request"
	"pg-booking/internal/dto/response"
	"pg-booking/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)

	// Admin endpoints
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserStats(ctx context.Context) (*response.UserStatsResponse, error)
	SetUserStatus(ctx context.Context, userID string, active bool) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), apperr.ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("get all users: %w", err)
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) GetUserStats(ctx context.Context) (*response.UserStatsResponse, error) {
	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	owners, err := s.userRepo.CountByRole(ctx, entity.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("count owners: %w", err)
	}

	clients, err := s.userRepo.CountByRole(ctx, entity.RoleClient)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}

	admins, err := s.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}

	return &response.UserStatsResponse{
		TotalUsers: total,
		Owners:     owners,
		Clients:    clients,
		Admins:     admins,
	}, nil
}

func (s *userService) SetUserStatus(ctx context.Context, userID string, active bool) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID format", apperr.ErrInvalid)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperr.ErrNotFound)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, active); err != nil {
		s.log.Error("Failed to update user status",
			zap.Error(err),
			zap.String("user_id", userID))
		return nil, fmt.Errorf("update user status: %w", err)
	}

	s.log.Info("User status updated",
		zap.String("user_id", userID),
		zap.Bool("active", active))

	user.IsActive = active
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID format", apperr.ErrInvalid)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, apperr.ErrNotFound)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
