// internal/wire/wire.go
package wire

import (
	"net/http"

	"pg-booking/internal/adaptor"
	"pg-booking/internal/data/repository"
	"pg-booking/internal/usecase"
	"pg-booking/pkg/media"
	"pg-booking/pkg/middleware"
	"pg-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, uploader media.Uploader, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, uploader, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, config, logger)
	wireProperty(r, handler.Property, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
