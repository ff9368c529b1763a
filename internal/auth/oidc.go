package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// Provider names of the supported identity providers.
const (
	Auth0Provider    = "auth0"
	KeycloakProvider = "keycloak"
)

const (
	defaultPlan          = "free"
	defaultRolesClaim    = "roles"
	keycloakRolesClaim   = "realm_access.roles"
	auth0JWKSPath        = "/.well-known/jwks.json"
	keycloakJWKSPath     = "/protocol/openid-connect/certs"
	auth0UserInfoPath    = "/userinfo"
	keycloakUserInfoPath = "/protocol/openid-connect/userinfo"
)

// UserInfoFetcher loads the profile of the token owner from the identity provider.
type UserInfoFetcher interface {
	Fetch(ctx context.Context, accessToken string) (*models.UserInfo, error)
}

// OIDCConfig configures an OIDC token verifier.
type OIDCConfig struct {
	Provider   string // auth0 or keycloak
	Issuer     string
	Audience   string // skipped when empty
	JWKSURL    string // derived from the issuer when empty
	RolesClaim string // claim name or dotted path holding the roles
	HTTPClient *http.Client
}

// OIDC verifies RS256 access tokens against the JSON Web Key Set of the issuer.
type OIDC struct {
	bearer
	name       string
	verifier   *oidc.IDTokenVerifier
	rolesClaim string
	userInfo   UserInfoFetcher
}

// NewOIDC creates a verifier. Keys are fetched lazily on first use and refreshed on unknown key ids.
// fetcher is optional and enriches the token claims with the userinfo response.
func NewOIDC(ctx context.Context, cfg OIDCConfig, fetcher UserInfoFetcher) (*OIDC, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("issuer is required")
	}

	issuer := strings.TrimSuffix(cfg.Issuer, "/")
	jwksURL := cfg.JWKSURL
	rolesClaim := cfg.RolesClaim

	switch cfg.Provider {
	case Auth0Provider:
		if jwksURL == "" {
			jwksURL = issuer + auth0JWKSPath
		}
		if rolesClaim == "" {
			rolesClaim = defaultRolesClaim
		}
	case KeycloakProvider:
		if jwksURL == "" {
			jwksURL = issuer + keycloakJWKSPath
		}
		if rolesClaim == "" {
			rolesClaim = keycloakRolesClaim
		}
	default:
		return nil, fmt.Errorf("unsupported identity provider %q", cfg.Provider)
	}

	if cfg.HTTPClient != nil {
		ctx = oidc.ClientContext(ctx, cfg.HTTPClient)
	}
	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)

	// Auth0 issuers carry a trailing slash in the iss claim.
	verifier := oidc.NewVerifier(cfg.Issuer, keySet, &oidc.Config{
		ClientID:          cfg.Audience,
		SkipClientIDCheck: cfg.Audience == "",
	})

	return &OIDC{
		name:       cfg.Provider,
		verifier:   verifier,
		rolesClaim: rolesClaim,
		userInfo:   fetcher,
	}, nil
}

// UserInfoURL returns the userinfo endpoint of an issuer for the given provider.
func UserInfoURL(provider, issuer string) string {
	issuer = strings.TrimSuffix(issuer, "/")
	if provider == KeycloakProvider {
		return issuer + keycloakUserInfoPath
	}
	return issuer + auth0UserInfoPath
}

func (o *OIDC) Name() string {
	return o.name
}

// Validate verifies the token and returns the identity it carries.
func (o *OIDC) Validate(ctx context.Context, tokenString string) (*models.UserInfo, error) {
	token, err := o.verifier.Verify(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	var claims map[string]any
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}

	info := &models.UserInfo{
		Sub:               token.Subject,
		Email:             stringClaim(claims, "email"),
		EmailVerified:     boolClaim(claims, "email_verified"),
		Name:              stringClaim(claims, "name"),
		GivenName:         stringClaim(claims, "given_name"),
		FamilyName:        stringClaim(claims, "family_name"),
		Nickname:          stringClaim(claims, "nickname"),
		PreferredUsername: stringClaim(claims, "preferred_username"),
		Picture:           stringClaim(claims, "picture"),
		Roles:             rolesClaim(claims, o.rolesClaim),
		Plan:              stringClaim(claims, "plan"),
	}
	if info.Plan == "" {
		info.Plan = defaultPlan
	}

	if o.userInfo != nil {
		profile, err := o.userInfo.Fetch(ctx, tokenString)
		if err != nil {
			logger.Log.Warnw("failed to fetch userinfo", "provider", o.name, "sub", info.Sub, "err", err)
		} else {
			info.Merge(profile)
		}
	}

	return info, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}

func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// rolesClaim reads a string list by claim name, falling back to a dotted path
// such as realm_access.roles. Anything else yields no roles.
func rolesClaim(claims map[string]any, claim string) []string {
	value, ok := claims[claim]
	if !ok {
		var node any = claims
		for _, part := range strings.Split(claim, ".") {
			m, isMap := node.(map[string]any)
			if !isMap {
				return []string{}
			}
			node = m[part]
		}
		value = node
	}

	list, ok := value.([]any)
	if !ok {
		return []string{}
	}

	roles := make([]string, 0, len(list))
	for _, item := range list {
		if role, ok := item.(string); ok {
			roles = append(roles, role)
		}
	}
	return roles
}
