package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestListUsersHandler(t *testing.T) {
	tests := []struct {
		name               string
		setupMocks         func(m *MockUserLister)
		expectedStatusCode int
	}{
		{
			name: "listed",
			setupMocks: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return([]models.User{{ID: uuid.New(), Email: "a@b.c"}}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "service error",
			setupMocks: func(m *MockUserLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockUserLister(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			NewListUsersHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/user", nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockUserCreator)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:        "created",
			requestBody: CreateUserRequest{Email: "alice@example.com", Username: "alice", Password: strPtr("s3cret")},
			setupMocks: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), models.UserCreate{
					Email:    "alice@example.com",
					Username: "alice",
					Password: strPtr("s3cret"),
				}).Return(&models.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid email",
			requestBody:        CreateUserRequest{Email: "alice", Username: "alice"},
			setupMocks:         func(m *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "email must be a valid email address",
		},
		{
			name:               "invalid json",
			requestBody:        "[]",
			setupMocks:         func(m *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Invalid request body",
		},
		{
			name:        "duplicate",
			requestBody: CreateUserRequest{Email: "alice@example.com", Username: "alice"},
			setupMocks: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, models.ErrAlreadyExists)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      models.ErrAlreadyExists.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockUserCreator(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			NewCreateUserHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPost, "/v1/user", tt.requestBody, nil))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, rr)["error"])
			}
		})
	}
}

func TestCreateUserHandler_HidesPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockUserCreator(ctrl)
	m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: uuid.New(), Email: "a@b.co", Username: "a", PasswordHash: strPtr("$2a$10$hash")}, nil)

	rr := httptest.NewRecorder()
	NewCreateUserHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPost, "/v1/user",
		CreateUserRequest{Email: "a@b.co", Username: "a", Password: strPtr("pw")}, nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestGetUserHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name               string
		id                 string
		setupMocks         func(m *MockUserGetter)
		expectedStatusCode int
	}{
		{
			name: "found",
			id:   id.String(),
			setupMocks: func(m *MockUserGetter) {
				m.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "absent",
			id:   id.String(),
			setupMocks: func(m *MockUserGetter) {
				m.EXPECT().GetUserByID(gomock.Any(), id).Return(nil, nil)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "malformed id",
			id:                 "42",
			setupMocks:         func(m *MockUserGetter) {},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "service error",
			id:   id.String(),
			setupMocks: func(m *MockUserGetter) {
				m.EXPECT().GetUserByID(gomock.Any(), id).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockUserGetter(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			NewGetUserHandler(m).ServeHTTP(rr, newRequest(t, http.MethodGet, "/v1/user/"+tt.id, nil, map[string]string{"id": tt.id}))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestGetMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	m := NewMockUserGetter(ctrl)
	m.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, Username: "me"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/user/me", nil)
	rr := httptest.NewRecorder()
	NewGetMeHandler(m).ServeHTTP(rr, req.WithContext(auth.WithUserID(req.Context(), id)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "me", decodeBody(t, rr)["username"])

	rr = httptest.NewRecorder()
	NewGetMeHandler(m).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/user/me", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUserByEmailAndUsernameHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	byEmail := NewMockUserByEmailGetter(ctrl)
	byEmail.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)
	byEmail.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	byUsername := NewMockUserByUsernameGetter(ctrl)
	byUsername.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(&models.User{Username: "alice"}, nil)
	byUsername.EXPECT().GetUserByUsername(gomock.Any(), "broken").Return(nil, assert.AnError)

	tests := []struct {
		name               string
		handler            http.HandlerFunc
		param              string
		value              string
		expectedStatusCode int
	}{
		{"email found", NewGetUserByEmailHandler(byEmail), "email", "alice@example.com", http.StatusOK},
		{"email absent", NewGetUserByEmailHandler(byEmail), "email", "ghost@example.com", http.StatusNotFound},
		{"username found", NewGetUserByUsernameHandler(byUsername), "username", "alice", http.StatusOK},
		{"username error", NewGetUserByUsernameHandler(byUsername), "username", "broken", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler.ServeHTTP(rr, newRequest(t, http.MethodGet, "/", nil, map[string]string{tt.param: tt.value}))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name               string
		id                 string
		requestBody        any
		setupMocks         func(m *MockUserUpdater)
		expectedStatusCode int
	}{
		{
			name:        "user fields only",
			id:          id.String(),
			requestBody: map[string]any{"username": "bob", "password": "new"},
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), models.UserUpdate{ID: id, Username: strPtr("bob")}, strPtr("new")).
					Return(&models.User{ID: id, Username: "bob"}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "with profile",
			id:          id.String(),
			requestBody: map[string]any{"profile": map[string]any{"displayName": "Bob", "timezone": "UTC"}},
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), models.UserUpdate{ID: id}, (*string)(nil)).
					Return(&models.User{ID: id}, nil)
				m.EXPECT().UpsertProfile(gomock.Any(), models.ProfileUpdate{UserID: id, DisplayName: strPtr("Bob"), Timezone: strPtr("UTC")}).
					Return(&models.UserProfile{UserID: id, DisplayName: strPtr("Bob")}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "profile error",
			id:          id.String(),
			requestBody: map[string]any{"profile": map[string]any{"bio": "hi"}},
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{ID: id}, nil)
				m.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "not found",
			id:          id.String(),
			requestBody: map[string]any{"username": "bob"},
			setupMocks: func(m *MockUserUpdater) {
				m.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "invalid email",
			id:                 id.String(),
			requestBody:        map[string]any{"email": "bob"},
			setupMocks:         func(m *MockUserUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "malformed id",
			id:                 "bob",
			requestBody:        map[string]any{},
			setupMocks:         func(m *MockUserUpdater) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockUserUpdater(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			NewUpdateUserHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPut, "/v1/user/"+tt.id, tt.requestBody, map[string]string{"id": tt.id}))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name               string
		id                 string
		setupMocks         func(m *MockUserDeleter)
		expectedStatusCode int
	}{
		{
			name: "deleted",
			id:   id.String(),
			setupMocks: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), id).Return(nil)
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name: "not found",
			id:   id.String(),
			setupMocks: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), id).Return(models.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "service error",
			id:   id.String(),
			setupMocks: func(m *MockUserDeleter) {
				m.EXPECT().DeleteUser(gomock.Any(), id).Return(assert.AnError)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "malformed id",
			id:                 "-",
			setupMocks:         func(m *MockUserDeleter) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockUserDeleter(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			NewDeleteUserHandler(m).ServeHTTP(rr, newRequest(t, http.MethodDelete, "/v1/user/"+tt.id, nil, map[string]string{"id": tt.id}))

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestGetUserByOAuthAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockUserByOAuthAccountGetter(ctrl)
	m.EXPECT().GetUserByOAuthAccount(gomock.Any(), "keycloak", "kc-1").Return(&models.User{Username: "alice"}, nil)
	m.EXPECT().GetUserByOAuthAccount(gomock.Any(), "auth0", "auth0|ghost").Return(nil, nil)

	tests := []struct {
		name               string
		provider           string
		account            string
		expectedStatusCode int
	}{
		{"linked", "keycloak", "kc-1", http.StatusOK},
		{"unlinked", "auth0", "auth0|ghost", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/", nil, map[string]string{"provider": tt.provider, "providerAccountId": tt.account})
			NewGetUserByOAuthAccountHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestLinkOAuthAccountHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name               string
		id                 string
		requestBody        any
		setupMocks         func(m *MockOAuthAccountLinker)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:        "linked",
			id:          id.String(),
			requestBody: LinkOAuthAccountRequest{Provider: "keycloak", ProviderAccountID: "kc-1"},
			setupMocks: func(m *MockOAuthAccountLinker) {
				m.EXPECT().LinkOAuthAccount(gomock.Any(), id, "keycloak", "kc-1").
					Return(&models.OAuthAccount{ID: uuid.New(), UserID: id, Provider: "keycloak", ProviderAccountID: "kc-1"}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "malformed id",
			id:                 "nope",
			requestBody:        LinkOAuthAccountRequest{Provider: "keycloak", ProviderAccountID: "kc-1"},
			setupMocks:         func(m *MockOAuthAccountLinker) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "id is required",
		},
		{
			name:               "unknown provider",
			id:                 id.String(),
			requestBody:        LinkOAuthAccountRequest{Provider: "github", ProviderAccountID: "gh-1"},
			setupMocks:         func(m *MockOAuthAccountLinker) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing account",
			id:                 id.String(),
			requestBody:        LinkOAuthAccountRequest{Provider: "auth0"},
			setupMocks:         func(m *MockOAuthAccountLinker) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "user absent",
			id:          id.String(),
			requestBody: LinkOAuthAccountRequest{Provider: "auth0", ProviderAccountID: "auth0|1"},
			setupMocks: func(m *MockOAuthAccountLinker) {
				m.EXPECT().LinkOAuthAccount(gomock.Any(), id, "auth0", "auth0|1").Return(nil, models.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "User not found",
		},
		{
			name:        "owned by another user",
			id:          id.String(),
			requestBody: LinkOAuthAccountRequest{Provider: "auth0", ProviderAccountID: "auth0|1"},
			setupMocks: func(m *MockOAuthAccountLinker) {
				m.EXPECT().LinkOAuthAccount(gomock.Any(), id, "auth0", "auth0|1").Return(nil, models.ErrAlreadyExists)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Account already linked to another user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockOAuthAccountLinker(ctrl)
			tt.setupMocks(m)

			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodPost, "/", tt.requestBody, map[string]string{"id": tt.id})
			NewLinkOAuthAccountHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody(t, rr)["error"])
			}
		})
	}
}
