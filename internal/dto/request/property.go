package request

// CreatePropertyRequest carries the multipart form fields of a new listing.
// Images travel separately as uploaded files.
type CreatePropertyRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=PG Hostel Apartment"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Location    string   `json:"location" validate:"required"`
	Amenities   []string `json:"amenities,omitempty"`
	Rules       string   `json:"rules,omitempty"`
}

// UpdatePropertyRequest is an explicit partial update: nil means "leave the
// field unchanged", so absent and zero-valued inputs are distinguishable.
type UpdatePropertyRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=PG Hostel Apartment"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Location    *string  `json:"location,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Rules       *string  `json:"rules,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=available booked maintenance"`
}

type RejectPropertyRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}
