package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pg-booking/internal/dto/request"
	"pg-booking/internal/dto/response"
	"pg-booking/pkg/media"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --- Mock PropertyService ---

type mockPropertyService struct {
	rejectFn func(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error)
}

func (m *mockPropertyService) CreateProperty(ctx context.Context, ownerID uuid.UUID, req *request.CreatePropertyRequest, images []media.File) (*response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) GetOwnerProperties(ctx context.Context, ownerID uuid.UUID) ([]response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) GetOwnedProperty(ctx context.Context, ownerID uuid.UUID, propertyID string) (*response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) UpdateProperty(ctx context.Context, ownerID uuid.UUID, propertyID string, req *request.UpdatePropertyRequest, images []media.File) (*response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) DeleteProperty(ctx context.Context, ownerID uuid.UUID, propertyID string) error {
	return nil
}
func (m *mockPropertyService) GetPublicProperties(ctx context.Context) ([]response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) GetAllProperties(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PropertyResponse], error) {
	return nil, nil
}
func (m *mockPropertyService) GetPropertiesByApproval(ctx context.Context, approved bool) ([]response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) ApproveProperty(ctx context.Context, propertyID string) (*response.PropertyResponse, error) {
	return nil, nil
}
func (m *mockPropertyService) RejectProperty(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error) {
	return m.rejectFn(ctx, propertyID, reason)
}

func rejectRequest(propertyID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/properties/"+propertyID+"/reject", strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", propertyID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// --- Tests ---

func TestRejectProperty_MalformedBodyIsBadRequest(t *testing.T) {
	serviceCalled := false
	handler := NewPropertyHandler(&mockPropertyService{
		rejectFn: func(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error) {
			serviceCalled = true
			return nil, nil
		},
	}, zap.NewNop())

	rr := httptest.NewRecorder()
	handler.RejectProperty(rr, rejectRequest(uuid.New().String(), "{not json"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, serviceCalled)
}

func TestRejectProperty_EmptyBodyUsesDefaultReason(t *testing.T) {
	var gotReason string
	handler := NewPropertyHandler(&mockPropertyService{
		rejectFn: func(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error) {
			gotReason = reason
			return &response.PropertyResponse{ID: propertyID}, nil
		},
	}, zap.NewNop())

	rr := httptest.NewRecorder()
	handler.RejectProperty(rr, rejectRequest(uuid.New().String(), ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	// Empty reason reaches the service, which substitutes the default text
	assert.Equal(t, "", gotReason)
}

func TestRejectProperty_CustomReasonPassedThrough(t *testing.T) {
	var gotReason string
	handler := NewPropertyHandler(&mockPropertyService{
		rejectFn: func(ctx context.Context, propertyID, reason string) (*response.PropertyResponse, error) {
			gotReason = reason
			return &response.PropertyResponse{ID: propertyID}, nil
		},
	}, zap.NewNop())

	rr := httptest.NewRecorder()
	handler.RejectProperty(rr, rejectRequest(uuid.New().String(), `{"reason":"Blurry photos"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Blurry photos", gotReason)
}
