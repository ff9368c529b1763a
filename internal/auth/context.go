package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

type contextKey int

const (
	userInfoKey contextKey = iota
	userIDKey
)

// WithUserInfo stores the verified identity in the context.
func WithUserInfo(ctx context.Context, info *models.UserInfo) context.Context {
	return context.WithValue(ctx, userInfoKey, info)
}

// UserInfoFromContext returns the verified identity, or nil for anonymous requests.
func UserInfoFromContext(ctx context.Context) *models.UserInfo {
	info, _ := ctx.Value(userInfoKey).(*models.UserInfo)
	return info
}

// WithUserID stores the id of the local user provisioned for the identity.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext returns the local user id, ok is false when provisioning did not happen.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
