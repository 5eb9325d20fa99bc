package usecase

import (
	"pg-booking/internal/data/repository"
	"pg-booking/pkg/media"
	"pg-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Property PropertyService
	Booking  BookingService
}

func NewService(repo *repository.Repository, uploader media.Uploader, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Property: NewPropertyService(repo, uploader, log),
		Booking:  NewBookingService(repo, log),
	}
}
