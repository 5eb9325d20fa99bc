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

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== CLIENT ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleClient))

		// POST /api/bookings - Reserve a property for a date range
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/client - Caller's own bookings
		r.Get("/api/bookings/client", bookingHandler.GetClientBookings)
	})

	// ==================== OWNER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleOwner))

		// GET /api/bookings/owner - Bookings against the caller's listings
		r.Get("/api/bookings/owner", bookingHandler.GetOwnerBookings)
	})

	// ==================== SHARED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleClient, entity.RoleOwner))

		// GET /api/bookings/{id} - Booking details for its client or owner
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id}/{action} - Owners confirm or cancel a pending
		// booking; clients may only cancel their own
		r.Put("/api/bookings/{id}/{action}", bookingHandler.UpdateBookingStatus)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		// GET /api/admin/bookings - All bookings (paginated)
		r.Get("/", bookingHandler.GetAllBookings)

		// GET /api/admin/bookings/stats - Aggregate booking counts
		r.Get("/stats", bookingHandler.GetBookingStats)
	})
}
