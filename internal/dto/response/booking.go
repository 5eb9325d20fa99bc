package response

import (
	"time"

	"pg-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	PropertyID   string               `json:"property_id"`
	ClientID     string               `json:"client_id"`
	OwnerID      string               `json:"owner_id"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	TotalAmount  float64              `json:"total_amount"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

type BookingStatsResponse struct {
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID.String(),
		PropertyID:   b.PropertyID.String(),
		ClientID:     b.ClientID.String(),
		OwnerID:      b.OwnerID.String(),
		CheckInDate:  b.CheckIn.Format("2006-01-02"),
		CheckOutDate: b.CheckOut.Format("2006-01-02"),
		TotalAmount:  b.TotalAmount,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
