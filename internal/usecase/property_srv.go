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
	"pg-booking/pkg/media"
	"pg-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultRejectionReason is stored when an admin rejects without a message.
const defaultRejectionReason = "Property rejected by admin"

type PropertyService interface {
	// Owner endpoints
	CreateProperty(ctx context.Context, ownerID uuid.UUID, req *request.CreatePropertyRequest, images []media.File) (*response.PropertyResponse, error)
	GetOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]response.PropertyResponse, error)
	GetOwnedProperty(ctx context.Context, ownerID uuid.UUID, propertyID string) (*response.PropertyResponse, error)
	UpdateProperty(ctx context.Context, ownerID uuid.UUID, propertyID string, req *request.UpdatePropertyRequest, images []media.File) (*response.PropertyResponse, error)
	DeleteProperty(ctx context.Context, ownerID uuid.UUID, propertyID string) error

	// Public endpoints
	GetPublicProperties(ctx context.Context) ([]response.PropertyResponse, error)

	// Admin endpoints
	GetAllProperties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error)
	GetPropertiesByApproval(ctx context.Context, approved bool) ([]response.PropertyResponse, error)
	ApproveProperty(ctx context.Context, propertyID string) (*response.PropertyResponse, error)
	RejectProperty(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error)
}

type propertyService struct {
	repo     *repository.Repository
	uploader media.Uploader
	log      *zap.Logger
}

func NewPropertyService(repo *repository.Repository, uploader media.Uploader, log *zap.Logger) PropertyService {
	return &propertyService{
		repo:     repo,
		uploader: uploader,
		log:      log.With(zap.String("service", "property")),
	}
}

// uploadImages pushes every submitted image to the media host. Any failure
// aborts the whole batch so no listing is written with a partial image set.
func (s *propertyService) uploadImages(ctx context.Context, images []media.File) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.uploader.Upload(ctx, img)
		if err != nil {
			s.log.Error("Image upload failed", zap.Error(err), zap.String("file", img.Name))
			return nil, fmt.Errorf("upload images: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, ownerID uuid.UUID, req *request.CreatePropertyRequest, images []media.File) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalid, utils.FormatValidationErrors(errs))
	}

	// Upload first; a media host failure must leave no record behind
	imageURLs, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	property := &entity.Property{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Type:        entity.PropertyType(req.Type),
		Price:       *req.Price,
		Location:    req.Location,
		Amenities:   req.Amenities,
		Rules:       req.Rules,
		Images:      imageURLs,
		OwnerID:     ownerID,
		Status:      entity.PropertyStatusAvailable,
		IsApproved:  false,
	}

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info("Property created",
		zap.String("property_id", property.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.Int("images", len(imageURLs)),
	)

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) GetOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]response.PropertyResponse, error) {
	properties, err := s.repo.Property.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner properties: %w", err)
	}

	return response.PropertiesToResponse(properties), nil
}

func (s *propertyService) GetOwnedProperty(ctx context.Context, ownerID uuid.UUID, propertyID string) (*response.PropertyResponse, error) {
	property, err := s.findOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, ownerID uuid.UUID, propertyID string, req *request.UpdatePropertyRequest, images []media.File) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update property validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalid, utils.FormatValidationErrors(errs))
	}

	property, err := s.findOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, err
	}

	// New images are appended after the existing sequence
	if len(images) > 0 {
		imageURLs, err := s.uploadImages(ctx, images)
		if err != nil {
			return nil, err
		}
		property.Images = append(property.Images, imageURLs...)
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Type != nil {
		property.Type = entity.PropertyType(*req.Type)
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}
	if req.Rules != nil {
		property.Rules = *req.Rules
	}
	if req.Status != nil {
		property.Status = entity.PropertyStatus(*req.Status)
	}
	property.UpdatedAt = time.Now()

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", propertyID))
		return nil, fmt.Errorf("update property: %w", err)
	}

	s.log.Info("Property updated",
		zap.String("property_id", propertyID),
		zap.String("owner_id", ownerID.String()))

	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, ownerID uuid.UUID, propertyID string) error {
	property, err := s.findOwned(ctx, ownerID, propertyID)
	if err != nil {
		return err
	}

	if err := s.repo.Property.Delete(ctx, property.ID); err != nil {
		s.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", propertyID))
		return fmt.Errorf("delete property: %w", err)
	}

	return nil
}

func (s *propertyService) GetPublicProperties(ctx context.Context) ([]response.PropertyResponse, error) {
	properties, err := s.repo.Property.FindPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("get public properties: %w", err)
	}

	return response.PropertiesToResponse(properties), nil
}

func (s *propertyService) GetAllProperties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	properties, err := s.repo.Property.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get all properties: %w", err)
	}

	total, err := s.repo.Property.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}

	return response.NewPaginatedResponse(
		response.PropertiesToResponse(properties), req.Page, req.PerPage, total), nil
}

func (s *propertyService) GetPropertiesByApproval(ctx context.Context, approved bool) ([]response.PropertyResponse, error) {
	properties, err := s.repo.Property.FindByApproval(ctx, approved)
	if err != nil {
		return nil, fmt.Errorf("get properties by approval: %w", err)
	}

	return response.PropertiesToResponse(properties), nil
}

// ApproveProperty sets the approval flag and clears any rejection reason.
// Approvals and rejections are unrestricted toggles; admins may reverse
// earlier decisions.
func (s *propertyService) ApproveProperty(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	property, err := s.findByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Property.UpdateApproval(ctx, property.ID, true, nil); err != nil {
		s.log.Error("Failed to approve property",
			zap.Error(err),
			zap.String("property_id", propertyID))
		return nil, fmt.Errorf("approve property: %w", err)
	}

	s.log.Info("Property approved", zap.String("property_id", propertyID))

	property.IsApproved = true
	property.RejectionReason = nil
	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) RejectProperty(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error) {
	property, err := s.findByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = defaultRejectionReason
	}

	if err := s.repo.Property.UpdateApproval(ctx, property.ID, false, &reason); err != nil {
		s.log.Error("Failed to reject property",
			zap.Error(err),
			zap.String("property_id", propertyID))
		return nil, fmt.Errorf("reject property: %w", err)
	}

	s.log.Info("Property rejected",
		zap.String("property_id", propertyID),
		zap.String("reason", reason))

	property.IsApproved = false
	property.RejectionReason = &reason
	resp := response.PropertyToResponse(property)
	return &resp, nil
}

func (s *propertyService) findByID(ctx context.Context, propertyID string) (*entity.Property, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid property ID format", apperr.ErrInvalid)
	}

	property, err := s.repo.Property.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s: %w", propertyID, apperr.ErrNotFound)
	}

	return property, nil
}

func (s *propertyService) findOwned(ctx context.Context, ownerID uuid.UUID, propertyID string) (*entity.Property, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid property ID format", apperr.ErrInvalid)
	}

	property, err := s.repo.Property.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find property: %w", err)
	}
	if property == nil {
		// Scoped lookup: someone else's property reads as missing
		return nil, fmt.Errorf("property %s: %w", propertyID, apperr.ErrNotFound)
	}

	return property, nil
}
