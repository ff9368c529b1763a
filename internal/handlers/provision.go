package handlers

//go:generate mockgen -source=provision.go -destination=provision_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// UserProvisioner defines the interface that the service must implement.
type UserProvisioner interface {
	Provision(ctx context.Context, provider string, info *models.UserInfo) (*models.User, error)
}

// ProvisionOIDCRequest carries OIDC claims of an identity to provision
// swagger:model ProvisionOIDCRequest
type ProvisionOIDCRequest struct {
	// Identity provider, keycloak when omitted
	// example: keycloak
	Provider string `json:"provider" validate:"omitempty,oneof=auth0 keycloak local"`

	// Subject identifier at the identity provider
	// required: true
	Sub string `json:"sub"`

	// required: true
	Email string `json:"email" validate:"omitempty,email"`

	EmailVerified     bool   `json:"email_verified"`
	PreferredUsername string `json:"preferred_username"`
	Nickname          string `json:"nickname"`
	Name              string `json:"name"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	Picture           string `json:"picture" validate:"omitempty,url"`
}

// NewProvisionOIDCHandler returns an HTTP handler creating or refreshing the user behind OIDC claims.
// @Summary Provision user from OIDC claims (create or update)
// @Tags User
// @Accept json
// @Produce json
// @Param request body handlers.ProvisionOIDCRequest true "OIDC claims"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Router /v1/user/provision-oidc [post]
// @Security BearerAuth
func NewProvisionOIDCHandler(svc UserProvisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProvisionOIDCRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		provider := req.Provider
		if provider == "" {
			provider = auth.KeycloakProvider
		}

		user, err := svc.Provision(r.Context(), provider, &models.UserInfo{
			Sub:               req.Sub,
			Email:             req.Email,
			EmailVerified:     req.EmailVerified,
			PreferredUsername: req.PreferredUsername,
			Nickname:          req.Nickname,
			Name:              req.Name,
			GivenName:         req.GivenName,
			FamilyName:        req.FamilyName,
			Picture:           req.Picture,
		})
		if err != nil {
			requestLog(r).Errorw("failed to provision user from oidc claims", "provider", provider, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
