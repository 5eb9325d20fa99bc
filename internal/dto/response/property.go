package response

import (
	"time"

	"pg-booking/internal/data/entity"
)

type PropertyResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Type            entity.PropertyType   `json:"type"`
	Price           float64               `json:"price"`
	Location        string                `json:"location"`
	Amenities       []string              `json:"amenities"`
	Rules           string                `json:"rules,omitempty"`
	Images          []string              `json:"images"`
	OwnerID         string                `json:"owner_id"`
	Status          entity.PropertyStatus `json:"status"`
	IsApproved      bool                  `json:"is_approved"`
	RejectionReason *string               `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func PropertyToResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		Type:            p.Type,
		Price:           p.Price,
		Location:        p.Location,
		Amenities:       p.Amenities,
		Rules:           p.Rules,
		Images:          p.Images,
		OwnerID:         p.OwnerID.String(),
		Status:          p.Status,
		IsApproved:      p.IsApproved,
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt,
	}
}

func PropertiesToResponse(properties []*entity.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		out[i] = PropertyToResponse(p)
	}
	return out
}
