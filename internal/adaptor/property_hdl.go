package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pg-booking/internal/dto/request"
	"pg-booking/internal/usecase"
	"pg-booking/pkg/media"
	"pg-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadSize caps the in-memory part of a multipart listing form
const maxUploadSize = 32 << 20

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// openImages opens every uploaded "images" part. The returned closer must be
// deferred by the caller.
func openImages(r *http.Request) ([]media.File, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	var files []media.File
	var closers []func() error

	for _, header := range r.MultipartForm.File["images"] {
		f, err := header.Open()
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, func() {}, err
		}
		files = append(files, media.File{Name: header.Filename, Reader: f})
		closers = append(closers, f.Close)
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	return files, closeAll, nil
}

// splitAmenities turns the form's comma-separated amenities field into a
// trimmed string slice.
func splitAmenities(raw string) []string {
	if raw == "" {
		return nil
	}

	var amenities []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			amenities = append(amenities, item)
		}
	}
	return amenities
}

// CreateProperty handles POST /api/properties (owner, multipart)
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreatePropertyRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Type:        r.FormValue("type"),
		Location:    r.FormValue("location"),
		Amenities:   splitAmenities(r.FormValue("amenities")),
		Rules:       r.FormValue("rules"),
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{"Price": "Must be a number"})
			return
		}
		req.Price = &price
	}

	// Missing required fields come back as a structured field map
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	images, closeImages, err := openImages(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid image upload", nil)
		return
	}
	defer closeImages()

	property, err := h.service.CreateProperty(r.Context(), ownerID, &req, images)
	if err != nil {
		respondError(w, h.log, err, "create property")
		return
	}

	utils.ResponseCreated(w, "success", property)
}

// GetPublicProperties handles GET /api/properties (public)
func (h *PropertyHandler) GetPublicProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.GetPublicProperties(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get public properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetOwnerProperties handles GET /api/owner/properties (owner)
func (h *PropertyHandler) GetOwnerProperties(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	properties, err := h.service.GetOwnerProperties(r.Context(), ownerID)
	if err != nil {
		respondError(w, h.log, err, "get owner properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetProperty handles GET /api/properties/{id} (owner, own listing)
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	property, err := h.service.GetOwnedProperty(r.Context(), ownerID, propertyID)
	if err != nil {
		respondError(w, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// UpdateProperty handles PUT /api/properties/{id} (owner, own listing).
// Accepts multipart (fields + new images) or plain JSON.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.UpdatePropertyRequest
	var images []media.File

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}

		if err := decodeUpdateForm(r, &req); err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}

		var closeImages func()
		var err error
		images, closeImages, err = openImages(r)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid image upload", nil)
			return
		}
		defer closeImages()
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), ownerID, propertyID, &req, images)
	if err != nil {
		respondError(w, h.log, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// decodeUpdateForm maps present multipart fields onto the partial-update
// request; absent fields stay nil and remain untouched.
func decodeUpdateForm(r *http.Request, req *request.UpdatePropertyRequest) error {
	formValue := func(key string) *string {
		if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
			return &values[0]
		}
		return nil
	}

	req.Name = formValue("name")
	req.Description = formValue("description")
	req.Type = formValue("type")
	req.Location = formValue("location")
	req.Rules = formValue("rules")
	req.Status = formValue("status")

	if raw := formValue("amenities"); raw != nil {
		req.Amenities = splitAmenities(*raw)
	}

	if raw := formValue("price"); raw != nil {
		price, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			return strconv.ErrSyntax
		}
		req.Price = &price
	}

	return nil
}

// DeleteProperty handles DELETE /api/properties/{id} (owner, own listing)
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	if err := h.service.DeleteProperty(r.Context(), ownerID, propertyID); err != nil {
		respondError(w, h.log, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "Property deleted successfully", nil)
}

// ==================== ADMIN METHODS ====================

// GetAllProperties handles GET /api/admin/properties (admin only)
func (h *PropertyHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	properties, err := h.service.GetAllProperties(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetPendingProperties handles GET /api/admin/properties/pending (admin only)
func (h *PropertyHandler) GetPendingProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.GetPropertiesByApproval(r.Context(), false)
	if err != nil {
		respondError(w, h.log, err, "get pending properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetApprovedProperties handles GET /api/admin/properties/approved (admin only)
func (h *PropertyHandler) GetApprovedProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.GetPropertiesByApproval(r.Context(), true)
	if err != nil {
		respondError(w, h.log, err, "get approved properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// ApproveProperty handles PUT /api/properties/{id}/approve (admin only)
func (h *PropertyHandler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	property, err := h.service.ApproveProperty(r.Context(), propertyID)
	if err != nil {
		respondError(w, h.log, err, "approve property")
		return
	}

	utils.ResponseSuccess(w, "Property approved successfully", property)
}

// RejectProperty handles PUT /api/properties/{id}/reject (admin only)
func (h *PropertyHandler) RejectProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	// Reason is optional; an empty body falls back to the default message,
	// but a malformed body is still a client error
	var req request.RejectPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.RejectProperty(r.Context(), propertyID, req.Reason)
	if err != nil {
		respondError(w, h.log, err, "reject property")
		return
	}

	utils.ResponseSuccess(w, "Property rejected successfully", property)
}
