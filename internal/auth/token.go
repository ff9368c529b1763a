// Package auth verifies bearer tokens and maps their claims to a caller identity.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingHeader   = errors.New("authorization header missing")
	ErrMalformedHeader = errors.New("invalid authorization header format")
)

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrMalformedHeader
	}

	return parts[1], nil
}

// bearer gives verifiers the header extraction method.
type bearer struct{}

func (bearer) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return GetTokenFromRequest(ctx, r)
}
