package adaptor

import (
	"encoding/json"
	"net/http"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/dto/request"
	"pg-booking/internal/dto/response"
	"pg-booking/internal/usecase"
	"pg-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (client only)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	clientID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), clientID, &req)
	if err != nil {
		respondError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetClientBookings handles GET /api/bookings/client (client only)
func (h *BookingHandler) GetClientBookings(w http.ResponseWriter, r *http.Request) {
	clientID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetClientBookings(r.Context(), clientID)
	if err != nil {
		respondError(w, h.log, err, "get client bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetOwnerBookings handles GET /api/bookings/owner (owner only)
func (h *BookingHandler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.GetOwnerBookings(r.Context(), ownerID)
	if err != nil {
		respondError(w, h.log, err, "get owner bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBookingStatus handles PUT /api/bookings/{id}/{action}. Owners may
// confirm or cancel a pending booking on their listing; clients may only
// cancel their own pending booking.
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	action := chi.URLParam(r, "action")

	var booking *response.BookingResponse
	var err error

	switch entity.UserRole(role) {
	case entity.RoleOwner:
		booking, err = h.service.TransitionBooking(r.Context(), userID, bookingID, action)
	case entity.RoleClient:
		if action != "cancel" {
			utils.ResponseForbidden(w, "Access denied")
			return
		}
		booking, err = h.service.CancelBooking(r.Context(), userID, bookingID)
	default:
		utils.ResponseForbidden(w, "Access denied")
		return
	}

	if err != nil {
		respondError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking "+string(booking.Status)+" successfully", booking)
}

// GetBooking handles GET /api/bookings/{id} (client or owner of the booking)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// GetAllBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetAllBookings(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingStats handles GET /api/admin/bookings/stats (admin only)
func (h *BookingHandler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetBookingStats(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get booking stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
