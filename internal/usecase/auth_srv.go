package usecase

import (
	"context"
	"fmt"
	"time"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/data/repository"
	"pg-booking/internal/dto/request"
	"pg-booking/internal/dto/response"
	"pg-booking/pkg/apperr"
	"pg-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalid, utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrInvalid)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         entity.UserRole(req.Role),
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalid, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Same message whether the email or the password is wrong
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrInvalid)
	}

	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Wrong password for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrInvalid)
	}

	if !user.IsActive {
		s.log.Warn("Inactive account login attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: account is deactivated", apperr.ErrForbidden)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.issueToken(user)
}

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateToken(
		s.config.JWT.Secret, user.ID, string(user.Role), s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response.AuthResponse{
		UserID:    user.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}
