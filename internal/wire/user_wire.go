package wire

import (
	"pg-booking/internal/adaptor"
	"pg-booking/internal/data/entity"
	"pg-booking/internal/data/repository"
	"pg-booking/pkg/middleware"
	"pg-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))

		// GET /api/me - Current user's profile (any role)
		r.Get("/api/me", userHandler.GetProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		// GET /api/admin/users - List all users (paginated)
		r.Get("/", userHandler.GetAllUsers)

		// GET /api/admin/users/stats - Aggregate user counts
		r.Get("/stats", userHandler.GetUserStats)

		// PUT /api/admin/users/{id}/status - Activate or deactivate an account
		r.Put("/{id}/status", userHandler.UpdateUserStatus)

		// DELETE /api/admin/users/{id} - Soft-delete an account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
