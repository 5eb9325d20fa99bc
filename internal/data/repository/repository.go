package repository

import (
	"pg-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Property PropertyRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Property: NewPropertyRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
