package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// TokenValidator extracts and verifies bearer tokens.
type TokenValidator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) (*models.UserInfo, error)
	Name() string
}

// Provisioner maps a verified identity to a local user.
type Provisioner interface {
	EnsureProvisioned(ctx context.Context, provider string, info *models.UserInfo) (uuid.UUID, error)
}

// AuthMiddleware rejects requests without a valid bearer token with 401.
// The verified identity, and the local user id when provisioning succeeds, are stored in the context.
// Provisioning failures are logged and the request proceeds. provisioner may be nil.
func AuthMiddleware(validator TokenValidator, provisioner Provisioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.Log.With("request_id", RequestIDFromContext(ctx))

			tokenString, err := validator.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			info, err := validator.Validate(ctx, tokenString)
			if err != nil {
				log.Warnw("authorization failed", "provider", validator.Name(), "err", err)
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx = auth.WithUserInfo(ctx, info)

			if provisioner != nil {
				userID, err := provisioner.EnsureProvisioned(ctx, validator.Name(), info)
				if err != nil {
					log.Errorw("user provisioning failed", "provider", validator.Name(), "sub", info.Sub, "err", err)
				} else {
					ctx = auth.WithUserID(ctx, userID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
