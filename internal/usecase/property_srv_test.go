package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/dto/request"
	"pg-booking/pkg/apperr"
	"pg-booking/pkg/media"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func okUploader() *mockUploader {
	return &mockUploader{
		uploadFn: func(ctx context.Context, file media.File) (string, error) {
			return "https://cdn.example.com/" + file.Name, nil
		},
	}
}

func createPropertyRequest() *request.CreatePropertyRequest {
	price := 1200.0
	return &request.CreatePropertyRequest{
		Name:        "Sunrise PG Koramangala",
		Description: "Fully furnished rooms near the tech park",
		Type:        "PG",
		Price:       &price,
		Location:    "Bangalore",
		Amenities:   []string{"wifi", "laundry"},
		Rules:       "No smoking",
	}
}

func TestCreateProperty_StartsUnapproved(t *testing.T) {
	ownerID := uuid.New()

	var created *entity.Property
	propertyRepo := &mockPropertyRepo{
		createFn: func(ctx context.Context, p *entity.Property) error {
			created = p
			return nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	images := []media.File{
		{Name: "front.jpg", Reader: strings.NewReader("jpeg")},
		{Name: "room.jpg", Reader: strings.NewReader("jpeg")},
	}

	resp, err := svc.CreateProperty(context.Background(), ownerID, createPropertyRequest(), images)

	assert.NoError(t, err)
	assert.False(t, created.IsApproved)
	assert.Equal(t, entity.PropertyStatusAvailable, created.Status)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Len(t, resp.Images, 2)
	assert.Equal(t, "https://cdn.example.com/front.jpg", resp.Images[0])
}

func TestCreateProperty_MissingPrice(t *testing.T) {
	svc := NewPropertyService(newTestRepository(nil, &mockPropertyRepo{}, nil), okUploader(), zap.NewNop())

	req := createPropertyRequest()
	req.Price = nil

	_, err := svc.CreateProperty(context.Background(), uuid.New(), req, nil)

	assert.ErrorIs(t, err, apperr.ErrInvalid)
	assert.Contains(t, err.Error(), "Price")
}

func TestCreateProperty_UploadFailureAborts(t *testing.T) {
	createCalled := false
	propertyRepo := &mockPropertyRepo{
		createFn: func(ctx context.Context, p *entity.Property) error {
			createCalled = true
			return nil
		},
	}
	uploader := &mockUploader{
		uploadFn: func(ctx context.Context, file media.File) (string, error) {
			return "", errors.New("image host unreachable")
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), uploader, zap.NewNop())

	images := []media.File{{Name: "front.jpg", Reader: strings.NewReader("jpeg")}}
	_, err := svc.CreateProperty(context.Background(), uuid.New(), createPropertyRequest(), images)

	assert.Error(t, err)
	// No listing may be written when the image host fails
	assert.False(t, createCalled)
}

func TestUpdateProperty_MergesOnlyProvidedFields(t *testing.T) {
	ownerID := uuid.New()
	existing := sampleProperty(ownerID)
	existing.Description = "Old description"

	var updated *entity.Property
	propertyRepo := &mockPropertyRepo{
		findByIDOwnerFn: func(ctx context.Context, id, owner uuid.UUID) (*entity.Property, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, p *entity.Property) error {
			updated = p
			return nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	newPrice := 1500.0
	_, err := svc.UpdateProperty(context.Background(), ownerID, existing.ID.String(), &request.UpdatePropertyRequest{
		Price: &newPrice,
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Price)
	// Absent fields stay untouched
	assert.Equal(t, "Old description", updated.Description)
	assert.Equal(t, "Sunrise PG Koramangala", updated.Name)
}

func TestUpdateProperty_AppendsNewImages(t *testing.T) {
	ownerID := uuid.New()
	existing := sampleProperty(ownerID)
	existing.Images = []string{"https://cdn.example.com/old.jpg"}

	propertyRepo := &mockPropertyRepo{
		findByIDOwnerFn: func(ctx context.Context, id, owner uuid.UUID) (*entity.Property, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, p *entity.Property) error { return nil },
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	images := []media.File{{Name: "new.jpg", Reader: strings.NewReader("jpeg")}}
	resp, err := svc.UpdateProperty(context.Background(), ownerID, existing.ID.String(), &request.UpdatePropertyRequest{}, images)

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/old.jpg", "https://cdn.example.com/new.jpg"}, resp.Images)
}

func TestUpdateProperty_OtherOwnersListingReadsAsMissing(t *testing.T) {
	propertyRepo := &mockPropertyRepo{
		findByIDOwnerFn: func(ctx context.Context, id, owner uuid.UUID) (*entity.Property, error) {
			return nil, nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	_, err := svc.UpdateProperty(context.Background(), uuid.New(), uuid.New().String(), &request.UpdatePropertyRequest{}, nil)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestApproveProperty_ClearsRejectionReason(t *testing.T) {
	reason := "Incomplete photos"
	property := sampleProperty(uuid.New())
	property.IsApproved = false
	property.RejectionReason = &reason

	propertyRepo := &mockPropertyRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		updApprovalFn: func(ctx context.Context, id uuid.UUID, approved bool, r *string) error {
			assert.True(t, approved)
			assert.Nil(t, r)
			return nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	resp, err := svc.ApproveProperty(context.Background(), property.ID.String())

	assert.NoError(t, err)
	assert.True(t, resp.IsApproved)
	assert.Nil(t, resp.RejectionReason)
}

func TestRejectProperty_DefaultReason(t *testing.T) {
	property := sampleProperty(uuid.New())

	var storedReason *string
	propertyRepo := &mockPropertyRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		updApprovalFn: func(ctx context.Context, id uuid.UUID, approved bool, r *string) error {
			assert.False(t, approved)
			storedReason = r
			return nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	resp, err := svc.RejectProperty(context.Background(), property.ID.String(), "")

	assert.NoError(t, err)
	assert.False(t, resp.IsApproved)
	assert.NotNil(t, storedReason)
	assert.Equal(t, "Property rejected by admin", *storedReason)
}

func TestRejectProperty_CustomReason(t *testing.T) {
	property := sampleProperty(uuid.New())

	propertyRepo := &mockPropertyRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
			return property, nil
		},
		updApprovalFn: func(ctx context.Context, id uuid.UUID, approved bool, r *string) error {
			return nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	resp, err := svc.RejectProperty(context.Background(), property.ID.String(), "Blurry photos")

	assert.NoError(t, err)
	assert.Equal(t, "Blurry photos", *resp.RejectionReason)
}

func TestApproveProperty_NotFound(t *testing.T) {
	propertyRepo := &mockPropertyRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
			return nil, nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	_, err := svc.ApproveProperty(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetPublicProperties(t *testing.T) {
	propertyRepo := &mockPropertyRepo{
		findPublicFn: func(ctx context.Context) ([]*entity.Property, error) {
			return []*entity.Property{sampleProperty(uuid.New())}, nil
		},
	}

	svc := NewPropertyService(newTestRepository(nil, propertyRepo, nil), okUploader(), zap.NewNop())

	properties, err := svc.GetPublicProperties(context.Background())

	assert.NoError(t, err)
	assert.Len(t, properties, 1)
	assert.Equal(t, "Sunrise PG Koramangala", properties[0].Name)
}
