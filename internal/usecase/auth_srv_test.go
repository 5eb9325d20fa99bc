package usecase

import (
	"context"
	"testing"
	"time"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/dto/request"
	"pg-booking/pkg/apperr"
	"pg-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func activeUser(email, password string, role entity.UserRole) *entity.User {
	hash, _ := utils.HashPassword(password)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         "Priya Sharma",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
}

func TestRegister_Client(t *testing.T) {
	var created *entity.User
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, u *entity.User) error {
			created = u
			return nil
		},
	}

	svc := NewAuthService(newTestRepository(userRepo, nil, nil), testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Role:     "client",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleClient, resp.Role)
	assert.Equal(t, entity.RoleClient, created.Role)
	assert.True(t, created.IsActive)
	// Stored hash must never be the plaintext
	assert.NotEqual(t, "secret123", created.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	existing := activeUser("priya@example.com", "secret123", entity.RoleClient)
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return existing, nil
		},
	}

	svc := NewAuthService(newTestRepository(userRepo, nil, nil), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Role:     "client",
	})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc := NewAuthService(newTestRepository(&mockUserRepo{}, nil, nil), testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "secret123",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestLogin_Success(t *testing.T) {
	user := activeUser("priya@example.com", "secret123", entity.RoleOwner)
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(newTestRepository(userRepo, nil, nil), testConfig(), zap.NewNop())

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleOwner, resp.Role)

	// The token must round-trip through the parser
	claims, err := utils.ParseToken("test-secret", resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
	}

	svc := NewAuthService(newTestRepository(userRepo, nil, nil), testConfig(), zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_WrongPassword(t *testing.T) {
	user := activeUser("priya@example.com", "secret123", entity.RoleClient)
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(newTestRepository(userRepo, nil, nil), testConfig(), zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
	// Same message as an unknown email; no account probing
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	user := activeUser("priya@example.com", "secret123", entity.RoleClient)
	user.IsActive = false
	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(newTestRepository(userRepo, nil, nil), testConfig(), zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
