package middleware

import (
	"net/http"
	"strings"

	"pg-booking/internal/data/entity"
	"pg-booking/internal/data/repository"
	"pg-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token, loads the identity it references,
// and annotates the request context with the user ID and role. Authorization
// failures here are always 401; role checks happen later in RequireRole.
func Authenticate(userRepo repository.UserRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(secret, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// The token may outlive the account; reject if the user is gone
			user, err := userRepo.FindByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err),
					zap.String("user_id", claims.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token references missing user",
					zap.String("user_id", claims.UserID.String()))
				utils.ResponseUnauthorized(w, "User no longer exists")
				return
			}

			if !user.IsActive {
				logger.Warn("Deactivated account attempted access",
					zap.String("user_id", user.ID.String()))
				utils.ResponseForbidden(w, "Account is deactivated")
				return
			}

			// Role comes from the stored record, not the claim
			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole permits the request only when the authenticated role is in the
// allow-list. Must be chained after Authenticate.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleStr, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !allowed[entity.UserRole(roleStr)] {
				logger.Warn("Role not permitted for route",
					zap.String("role", roleStr),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
