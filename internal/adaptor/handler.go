package adaptor

import (
	"pg-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Property: NewPropertyHandler(service.Property, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}
