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

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/properties - Approved, available listings (no auth)
	r.Get("/api/properties", propertyHandler.GetPublicProperties)

	// ==================== OWNER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleOwner))

		// POST /api/properties - Create a listing (multipart with images)
		r.Post("/api/properties", propertyHandler.CreateProperty)

		// GET /api/owner/properties - Listings belonging to the caller
		r.Get("/api/owner/properties", propertyHandler.GetOwnerProperties)

		// GET /api/properties/{id} - One of the caller's own listings
		r.Get("/api/properties/{id}", propertyHandler.GetProperty)

		// PUT /api/properties/{id} - Partial update of the caller's listing
		r.Put("/api/properties/{id}", propertyHandler.UpdateProperty)

		// DELETE /api/properties/{id} - Remove the caller's listing
		r.Delete("/api/properties/{id}", propertyHandler.DeleteProperty)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		// PUT /api/properties/{id}/approve - Make a listing publicly bookable
		r.Put("/api/properties/{id}/approve", propertyHandler.ApproveProperty)

		// PUT /api/properties/{id}/reject - Withdraw approval with a reason
		r.Put("/api/properties/{id}/reject", propertyHandler.RejectProperty)

		// GET /api/admin/properties - All listings (paginated)
		r.Get("/api/admin/properties", propertyHandler.GetAllProperties)

		// GET /api/admin/properties/pending - Listings awaiting approval
		r.Get("/api/admin/properties/pending", propertyHandler.GetPendingProperties)

		// GET /api/admin/properties/approved - Approved listings
		r.Get("/api/admin/properties/approved", propertyHandler.GetApprovedProperties)
	})
}
