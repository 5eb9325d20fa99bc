package adaptor

import (
	"encoding/json"
	"net/http"

	"pg-booking/internal/dto/request"
	"pg-booking/internal/usecase"
	"pg-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/me (any authenticated user)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ==================== ADMIN METHODS ====================

// GetAllUsers handles GET /api/admin/users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetUserStats handles GET /api/admin/users/stats (admin only)
func (h *UserHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetUserStats(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get user stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// UpdateUserStatus handles PUT /api/admin/users/{id}/status (admin only)
func (h *UserHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.SetUserStatus(r.Context(), userID, *req.IsActive)
	if err != nil {
		respondError(w, h.log, err, "update user status")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// DeleteUser handles DELETE /api/admin/users/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		respondError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
