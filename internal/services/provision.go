package services

//go:generate mockgen -source=provision.go -destination=provision_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// ProvisionWriter upserts the local records of an external identity.
type ProvisionWriter interface {
	Provision(ctx context.Context, req models.ProvisionRequest) (*models.User, error)
}

// ProvisionCache remembers which local user an external identity maps to.
type ProvisionCache interface {
	Get(ctx context.Context, provider, providerAccountID string) (uuid.UUID, bool, error)
	Set(ctx context.Context, provider, providerAccountID string, userID uuid.UUID) error
	Delete(ctx context.Context, provider, providerAccountID string) error
}

// ProvisionService maps authenticated identities to local users.
type ProvisionService struct {
	writer ProvisionWriter
	cache  ProvisionCache
}

// NewProvisionService creates a new ProvisionService. cache may be nil.
func NewProvisionService(writer ProvisionWriter, cache ProvisionCache) *ProvisionService {
	return &ProvisionService{
		writer: writer,
		cache:  cache,
	}
}

// Provision creates or refreshes the user behind an identity.
func (s *ProvisionService) Provision(ctx context.Context, provider string, info *models.UserInfo) (*models.User, error) {
	if info == nil || info.Sub == "" || normalizeEmail(info.Email) == "" {
		return nil, ErrIdentityInvalid
	}

	user, err := s.writer.Provision(ctx, provisionRequest(provider, info))
	if err != nil {
		logger.Log.Errorw("failed to provision user", "provider", provider, "sub", info.Sub, "err", err)
		return nil, err
	}

	s.remember(ctx, provider, info.Sub, user.ID)
	return user, nil
}

// EnsureProvisioned returns the local user id of an identity, provisioning it on a cache miss.
func (s *ProvisionService) EnsureProvisioned(ctx context.Context, provider string, info *models.UserInfo) (uuid.UUID, error) {
	if info != nil && info.Sub != "" && s.cache != nil {
		userID, ok, err := s.cache.Get(ctx, provider, info.Sub)
		if err != nil {
			logger.Log.Warnw("provision cache lookup failed", "provider", provider, "err", err)
		}
		if ok {
			return userID, nil
		}
	}

	user, err := s.Provision(ctx, provider, info)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func (s *ProvisionService) remember(ctx context.Context, provider, sub string, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, provider, sub, userID); err != nil {
		logger.Log.Warnw("failed to cache provisioned identity", "provider", provider, "err", err)
	}
}

func provisionRequest(provider string, info *models.UserInfo) models.ProvisionRequest {
	return models.ProvisionRequest{
		Provider:          provider,
		ProviderAccountID: info.Sub,
		Email:             normalizeEmail(info.Email),
		Username:          usernameFor(info),
		EmailVerified:     info.EmailVerified,
		Profile: models.ProfileUpdate{
			DisplayName: optional(info.Name),
			FirstName:   optional(info.GivenName),
			LastName:    optional(info.FamilyName),
			AvatarURL:   optional(info.Picture),
		},
	}
}

// maxUsernameLen is the width of users.username.
const maxUsernameLen = 100

// usernameFor picks preferred_username, then nickname, then the local part of the email.
func usernameFor(info *models.UserInfo) string {
	username, _, _ := strings.Cut(normalizeEmail(info.Email), "@")
	for _, candidate := range []string{info.PreferredUsername, info.Nickname} {
		if c := strings.TrimSpace(candidate); c != "" {
			username = c
			break
		}
	}

	if r := []rune(username); len(r) > maxUsernameLen {
		username = string(r[:maxUsernameLen])
	}
	return username
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
