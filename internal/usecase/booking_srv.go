package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/data/repository"
	"pg-booking/internal/dto/request"
	"pg-booking/internal/dto/response"
	"pg-booking/pkg/apperr"
	"pg-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BookingService interface {
	// Client endpoints
	CreateBooking(ctx context.Context, clientID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetClientBookings(ctx context.Context, clientID uuid.UUID) ([]response.BookingResponse, error)
	CancelBooking(ctx context.Context, clientID uuid.UUID, bookingID string) (*response.BookingResponse, error)

	// Owner endpoints
	GetOwnerBookings(ctx context.Context, ownerID uuid.UUID) ([]response.BookingResponse, error)
	TransitionBooking(ctx context.Context, ownerID uuid.UUID, bookingID, action string) (*response.BookingResponse, error)

	// Shared
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingStats(ctx context.Context) (*response.BookingStatsResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// nightsBetween counts billable nights, rounding partial days up.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func (s *bookingService) CreateBooking(ctx context.Context, clientID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalid, utils.FormatValidationErrors(errs))
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid property ID format", apperr.ErrInvalid)
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date", apperr.ErrInvalid)
	}

	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date", apperr.ErrInvalid)
	}

	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", apperr.ErrInvalid)
	}

	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		s.log.Error("Failed to find property for booking",
			zap.Error(err),
			zap.String("property_id", req.PropertyID))
		return nil, fmt.Errorf("find property: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s: %w", req.PropertyID, apperr.ErrNotFound)
	}

	if !property.Bookable() {
		return nil, fmt.Errorf("%w: property not available for booking", apperr.ErrInvalid)
	}

	// Charge is fixed at creation; later price changes never touch it
	nights := nightsBetween(checkIn, checkOut)
	totalAmount := property.Price * float64(nights)

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PropertyID:  propertyID,
		ClientID:    clientID,
		OwnerID:     property.OwnerID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: totalAmount,
		Status:      entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("client_id", clientID.String()),
			zap.String("property_id", req.PropertyID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("client_id", clientID.String()),
		zap.String("property_id", req.PropertyID),
		zap.Int("nights", nights),
		zap.Float64("total_amount", totalAmount),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetClientBookings(ctx context.Context, clientID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetOwnerBookings(ctx context.Context, ownerID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

// TransitionBooking moves a pending booking to confirmed or cancelled on
// behalf of its owner. Both target states are terminal.
func (s *bookingService) TransitionBooking(ctx context.Context, ownerID uuid.UUID, bookingID, action string) (*response.BookingResponse, error) {
	var target entity.BookingStatus
	switch action {
	case "confirm":
		target = entity.BookingStatusConfirmed
	case "cancel":
		target = entity.BookingStatusCancelled
	default:
		return nil, fmt.Errorf("%w: invalid action %q", apperr.ErrInvalid, action)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format", apperr.ErrInvalid)
	}

	booking, err := s.repo.Booking.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		// Owner-scoped lookup: another owner's booking reads as missing
		return nil, fmt.Errorf("booking %s: %w", bookingID, apperr.ErrNotFound)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking status is %s, only pending bookings can be %sed",
			apperr.ErrInvalid, booking.Status, action)
	}

	return s.applyTransition(ctx, booking, target)
}

// CancelBooking lets the client withdraw a booking that is still pending.
func (s *bookingService) CancelBooking(ctx context.Context, clientID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format", apperr.ErrInvalid)
	}

	booking, err := s.repo.Booking.FindByIDAndClient(ctx, id, clientID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, apperr.ErrNotFound)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: cannot cancel a %s booking", apperr.ErrInvalid, booking.Status)
	}

	return s.applyTransition(ctx, booking, entity.BookingStatusCancelled)
}

// applyTransition performs the compare-and-swap from pending. A lost race
// surfaces as a conflict rather than silently overwriting the winner.
func (s *bookingService) applyTransition(ctx context.Context, booking *entity.Booking, target entity.BookingStatus) (*response.BookingResponse, error) {
	affected, err := s.repo.Booking.UpdateStatusIf(ctx, booking.ID, entity.BookingStatusPending, target)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if affected == 0 {
		s.log.Warn("Booking transition lost a race",
			zap.String("booking_id", booking.ID.String()),
			zap.String("target", string(target)))
		return nil, fmt.Errorf("%w: booking was updated concurrently", apperr.ErrConflict)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(target)))

	booking.Status = target
	booking.UpdatedAt = time.Now()
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// GetBooking returns the booking only to its client or its owner; anyone
// else sees not-found, never a hint that the booking exists.
func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format", apperr.ErrInvalid)
	}

	booking, err := s.repo.Booking.FindByIDForParticipant(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, apperr.ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(
		response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingStats(ctx context.Context) (*response.BookingStatsResponse, error) {
	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	pending, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}

	confirmed, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed bookings: %w", err)
	}

	cancelled, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("count cancelled bookings: %w", err)
	}

	return &response.BookingStatsResponse{
		TotalBookings:     total,
		PendingBookings:   pending,
		ConfirmedBookings: confirmed,
		CancelledBookings: cancelled,
	}, nil
}
