package entity

import (
	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypePG        PropertyType = "PG"
	PropertyTypeHostel    PropertyType = "Hostel"
	PropertyTypeApartment PropertyType = "Apartment"
)

type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusBooked      PropertyStatus = "booked"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

type Property struct {
	BaseNoDelete
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Type            PropertyType   `db:"type"`
	Price           float64        `db:"price"`
	Location        string         `db:"location"`
	Amenities       []string       `db:"amenities"`
	Rules           string         `db:"rules"`
	Images          []string       `db:"images"`
	OwnerID         uuid.UUID      `db:"owner_id"`
	Status          PropertyStatus `db:"status"`
	IsApproved      bool           `db:"is_approved"`
	RejectionReason *string        `db:"rejection_reason"`
}

// Bookable reports whether the listing is publicly visible and open for
// booking: approved by an admin AND currently available.
func (p *Property) Bookable() bool {
	return p.IsApproved && p.Status == PropertyStatusAvailable
}
