package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	info := &models.UserInfo{Sub: "auth0|1", Email: "alice@example.com"}
	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(v *MockTokenValidator, p *MockProvisioner)
		expectedStatus   int
		expectedError    string
		expectNextCalled bool
		expectUserID     bool
	}{
		{
			name: "NoToken",
			mockSetup: func(v *MockTokenValidator, p *MockProvisioner) {
				v.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", auth.ErrMissingHeader)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Missing or invalid authorization header",
		},
		{
			name: "InvalidToken",
			mockSetup: func(v *MockTokenValidator, p *MockProvisioner) {
				v.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				v.EXPECT().Validate(gomock.Any(), "sometoken").Return(nil, errors.New("expired"))
				v.EXPECT().Name().Return("auth0").AnyTimes()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name: "ValidTokenProvisioned",
			mockSetup: func(v *MockTokenValidator, p *MockProvisioner) {
				v.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				v.EXPECT().Validate(gomock.Any(), "validtoken").Return(info, nil)
				v.EXPECT().Name().Return("auth0").AnyTimes()
				p.EXPECT().EnsureProvisioned(gomock.Any(), "auth0", info).Return(userID, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectUserID:     true,
		},
		{
			name: "ProvisioningFailureIsSwallowed",
			mockSetup: func(v *MockTokenValidator, p *MockProvisioner) {
				v.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				v.EXPECT().Validate(gomock.Any(), "validtoken").Return(info, nil)
				v.EXPECT().Name().Return("auth0").AnyTimes()
				p.EXPECT().EnsureProvisioned(gomock.Any(), "auth0", info).Return(uuid.Nil, errors.New("db down"))
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockValidator := NewMockTokenValidator(ctrl)
			mockProvisioner := NewMockProvisioner(ctrl)
			tt.mockSetup(mockValidator, mockProvisioner)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, info, auth.UserInfoFromContext(r.Context()))
				id, ok := auth.UserIDFromContext(r.Context())
				assert.Equal(t, tt.expectUserID, ok)
				if ok {
					assert.Equal(t, userID, id)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockValidator, mockProvisioner)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedError != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestAuthMiddleware_WithoutProvisioner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := NewMockTokenValidator(ctrl)
	mockValidator.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("t", nil)
	mockValidator.EXPECT().Validate(gomock.Any(), "t").Return(&models.UserInfo{Sub: "s"}, nil)

	handler := AuthMiddleware(mockValidator, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
