package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking links a client, an owner, and a property for a date range.
// OwnerID is denormalized from the property at creation time and never
// re-resolved afterwards.
type Booking struct {
	BaseNoDelete
	PropertyID  uuid.UUID     `db:"property_id"`
	ClientID    uuid.UUID     `db:"client_id"`
	OwnerID     uuid.UUID     `db:"owner_id"`
	CheckIn     time.Time     `db:"check_in"`
	CheckOut    time.Time     `db:"check_out"`
	TotalAmount float64       `db:"total_amount"`
	Status      BookingStatus `db:"status"`
}
