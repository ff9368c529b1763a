package facades

import (
	"context"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"golang.org/x/oauth2"
)

// UserInfoHTTPFacade reads caller profiles from the userinfo endpoint of an identity provider.
type UserInfoHTTPFacade struct {
	provider *oidc.Provider
	client   *http.Client
}

// NewUserInfoHTTPFacade creates a facade for the given userinfo endpoint.
func NewUserInfoHTTPFacade(ctx context.Context, issuer, userInfoURL string, client *http.Client) *UserInfoHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}

	provider := (&oidc.ProviderConfig{
		IssuerURL:   issuer,
		UserInfoURL: userInfoURL,
	}).NewProvider(ctx)

	return &UserInfoHTTPFacade{provider: provider, client: client}
}

// Fetch returns the profile of the owner of accessToken.
func (f *UserInfoHTTPFacade) Fetch(ctx context.Context, accessToken string) (*models.UserInfo, error) {
	ctx = oidc.ClientContext(ctx, f.client)
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})

	resp, err := f.provider.UserInfo(ctx, tokenSource)
	if err != nil {
		logger.Log.Errorw("failed to fetch userinfo", "error", err)
		return nil, err
	}

	var info models.UserInfo
	if err := resp.Claims(&info); err != nil {
		logger.Log.Errorw("failed to decode userinfo", "error", err)
		return nil, err
	}

	if info.Sub == "" {
		info.Sub = resp.Subject
	}
	if info.Email == "" {
		info.Email = resp.Email
	}
	info.EmailVerified = info.EmailVerified || resp.EmailVerified

	return &info, nil
}
