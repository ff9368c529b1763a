package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

const msgUserNotFound = "User not found"

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, create models.UserCreate) (*models.User, error)
}

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserByEmailGetter defines the interface that the service must implement.
type UserByEmailGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserByUsernameGetter defines the interface that the service must implement.
type UserByUsernameGetter interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserByOAuthAccountGetter defines the interface that the service must implement.
type UserByOAuthAccountGetter interface {
	GetUserByOAuthAccount(ctx context.Context, provider, providerAccountID string) (*models.User, error)
}

// OAuthAccountLinker defines the interface that the service must implement.
type OAuthAccountLinker interface {
	LinkOAuthAccount(ctx context.Context, userID uuid.UUID, provider, providerAccountID string) (*models.OAuthAccount, error)
}

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, update models.UserUpdate, password *string) (*models.User, error)
	UpsertProfile(ctx context.Context, profile models.ProfileUpdate) (*models.UserProfile, error)
}

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"omitempty,email,max=255"`

	// required: true
	// example: alice
	Username string `json:"username" validate:"omitempty,max=100"`

	// Optional password, stored as a bcrypt hash
	Password *string `json:"password"`

	EmailVerified bool `json:"emailVerified"`
}

// ProfileRequest holds the profile fields accepted on user update
// swagger:model ProfileRequest
type ProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=255"`
	FirstName   *string `json:"firstName" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatarUrl" validate:"omitempty,url"`
	Bio         *string `json:"bio"`
	Timezone    *string `json:"timezone" validate:"omitempty,max=50"`
}

// UpdateUserRequest represents the JSON body for updating a user, absent fields are kept
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Email         *string         `json:"email" validate:"omitempty,email,max=255"`
	Username      *string         `json:"username" validate:"omitempty,min=1,max=100"`
	Password      *string         `json:"password"`
	EmailVerified *bool           `json:"emailVerified"`
	Profile       *ProfileRequest `json:"profile"`
}

// LinkOAuthAccountRequest represents the JSON body for linking an identity provider account
// swagger:model LinkOAuthAccountRequest
type LinkOAuthAccountRequest struct {
	// required: true
	// example: keycloak
	Provider string `json:"provider" validate:"required,oneof=auth0 keycloak local"`

	// Subject identifier at the identity provider
	// required: true
	ProviderAccountID string `json:"providerAccountId" validate:"required,max=255"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List all users
// @Tags User
// @Produce json
// @Success 200 {array} models.User
// @Failure 400 {object} handlers.ErrorResponse "Error"
// @Router /v1/user [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a new user
// @Tags User
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Router /v1/user [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.CreateUser(r.Context(), models.UserCreate{
			Email:         req.Email,
			Username:      req.Username,
			Password:      req.Password,
			EmailVerified: req.EmailVerified,
		})
		if err != nil {
			requestLog(r).Errorw("failed to create user", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetMeHandler returns an HTTP handler returning the authenticated user.
// @Summary Get the authenticated user
// @Tags User
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			if info := auth.UserInfoFromContext(r.Context()); info != nil {
				requestLog(r).Warnw("identity has no local user", "sub", info.Sub)
			}
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		getUser(w, r, svc, userID)
	}
}

// NewGetUserHandler returns an HTTP handler fetching a user by id.
// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		getUser(w, r, svc, id)
	}
}

func getUser(w http.ResponseWriter, r *http.Request, svc UserGetter, id uuid.UUID) {
	user, err := svc.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// NewGetUserByEmailHandler returns an HTTP handler fetching a user by email.
// @Summary Get a user by email
// @Tags User
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/email/{email} [get]
// @Security BearerAuth
func NewGetUserByEmailHandler(svc UserByEmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
		writeUser(w, user, err)
	}
}

// NewGetUserByUsernameHandler returns an HTTP handler fetching a user by username.
// @Summary Get a user by username
// @Tags User
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/username/{username} [get]
// @Security BearerAuth
func NewGetUserByUsernameHandler(svc UserByUsernameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUserByUsername(r.Context(), chi.URLParam(r, "username"))
		writeUser(w, user, err)
	}
}

// NewGetUserByOAuthAccountHandler returns an HTTP handler fetching the user linked to an identity provider account.
// @Summary Get a user by OAuth account
// @Tags User
// @Produce json
// @Param provider path string true "Identity provider"
// @Param providerAccountId path string true "Subject at the identity provider"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/oauth/{provider}/{providerAccountId} [get]
// @Security BearerAuth
func NewGetUserByOAuthAccountHandler(svc UserByOAuthAccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUserByOAuthAccount(r.Context(),
			chi.URLParam(r, "provider"), chi.URLParam(r, "providerAccountId"))
		writeUser(w, user, err)
	}
}

func writeUser(w http.ResponseWriter, user *models.User, err error) {
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// NewUpdateUserHandler returns an HTTP handler applying a partial update to a user and its profile.
// @Summary Update a user
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		var req UpdateUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.UpdateUser(ctx, models.UserUpdate{
			ID:            id,
			Email:         req.Email,
			Username:      req.Username,
			EmailVerified: req.EmailVerified,
		}, req.Password)
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		if err != nil {
			requestLog(r).Errorw("failed to update user", "userID", id, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if p := req.Profile; p != nil {
			user.Profile, err = svc.UpsertProfile(ctx, models.ProfileUpdate{
				UserID:      id,
				DisplayName: p.DisplayName,
				FirstName:   p.FirstName,
				LastName:    p.LastName,
				AvatarURL:   p.AvatarURL,
				Bio:         p.Bio,
				Timezone:    p.Timezone,
			})
			if err != nil {
				requestLog(r).Errorw("failed to update profile", "userID", id, "error", err)
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user with everything it owns.
// @Summary Delete a user
// @Tags User
// @Param id path string true "User ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		err := svc.DeleteUser(r.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		}
		if err != nil {
			requestLog(r).Errorw("failed to delete user", "userID", id, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewLinkOAuthAccountHandler returns an HTTP handler linking an identity provider account to a user.
// @Summary Link an OAuth account to a user
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.LinkOAuthAccountRequest true "Account"
// @Success 201 {object} models.OAuthAccount
// @Failure 400 {object} handlers.ErrorResponse "Validation error or account linked to another user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /v1/user/{id}/oauth-accounts [post]
// @Security BearerAuth
func NewLinkOAuthAccountHandler(svc OAuthAccountLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		var req LinkOAuthAccountRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		account, err := svc.LinkOAuthAccount(r.Context(), id, req.Provider, req.ProviderAccountID)
		switch {
		case errors.Is(err, models.ErrNotFound):
			writeError(w, http.StatusNotFound, msgUserNotFound)
			return
		case errors.Is(err, models.ErrAlreadyExists):
			writeError(w, http.StatusBadRequest, "Account already linked to another user")
			return
		case err != nil:
			requestLog(r).Errorw("failed to link oauth account", "userID", id, "provider", req.Provider, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}
