package usecase

import (
	"context"
	"testing"

	"pg-booking/internal/data/entity"
	"pg-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetProfile_NotFound(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
	}

	svc := NewUserService(userRepo, zap.NewNop())

	_, err := svc.GetProfile(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetUserStats(t *testing.T) {
	userRepo := &mockUserRepo{
		countAllFn: func(ctx context.Context) (int64, error) { return 12, nil },
		countByRoleFn: func(ctx context.Context, role entity.UserRole) (int64, error) {
			switch role {
			case entity.RoleOwner:
				return 3, nil
			case entity.RoleClient:
				return 8, nil
			default:
				return 1, nil
			}
		},
	}

	svc := NewUserService(userRepo, zap.NewNop())

	stats, err := svc.GetUserStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.Owners)
	assert.Equal(t, int64(8), stats.Clients)
	assert.Equal(t, int64(1), stats.Admins)
}

func TestSetUserStatus_Deactivate(t *testing.T) {
	user := activeUser("priya@example.com", "secret123", entity.RoleClient)

	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
		updStatusFn: func(ctx context.Context, id uuid.UUID, active bool) error {
			assert.False(t, active)
			return nil
		},
	}

	svc := NewUserService(userRepo, zap.NewNop())

	resp, err := svc.SetUserStatus(context.Background(), user.ID.String(), false)

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestSetUserStatus_InvalidID(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, zap.NewNop())

	_, err := svc.SetUserStatus(context.Background(), "not-a-uuid", true)

	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestDeleteUser_NotFound(t *testing.T) {
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
	}

	svc := NewUserService(userRepo, zap.NewNop())

	err := svc.DeleteUser(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
