package wire

import (
	"pg-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create a client or owner account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Exchange credentials for a bearer token
	r.Post("/api/login", authHandler.Login)
}
