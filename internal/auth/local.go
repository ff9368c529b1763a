package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// LocalProvider is the provider name of tokens signed by JWT.
const LocalProvider = "local"

// JWT signs and validates HS256 tokens with a shared secret.
// It stands in for a real identity provider in development and tests.
type JWT struct {
	bearer
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
	Issuer    string
}

type localClaims struct {
	Email             string   `json:"email,omitempty"`
	EmailVerified     bool     `json:"email_verified,omitempty"`
	Name              string   `json:"name,omitempty"`
	GivenName         string   `json:"given_name,omitempty"`
	FamilyName        string   `json:"family_name,omitempty"`
	Nickname          string   `json:"nickname,omitempty"`
	PreferredUsername string   `json:"preferred_username,omitempty"`
	Picture           string   `json:"picture,omitempty"`
	Roles             []string `json:"roles,omitempty"`
	Plan              string   `json:"plan,omitempty"`
	jwt.RegisteredClaims
}

// Option configures a JWT.
type Option func(*JWT)

func WithSecretKey(key string) Option {
	return func(j *JWT) { j.SecretKey = key }
}

func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) { j.Exp = exp }
}

func WithIssuer(issuer string) Option {
	return func(j *JWT) { j.Issuer = issuer }
}

// NewJWT creates a new JWT instance. Tokens expire after an hour unless configured otherwise.
func NewJWT(opts ...Option) *JWT {
	j := &JWT{Exp: time.Hour, Issuer: "divergent-flow"}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *JWT) Name() string {
	return LocalProvider
}

// Generate creates a token carrying the given identity.
func (j *JWT) Generate(ctx context.Context, info *models.UserInfo) (string, error) {
	if info == nil || info.Sub == "" {
		return "", errors.New("subject is required")
	}

	now := time.Now()
	claims := localClaims{
		Email:             info.Email,
		EmailVerified:     info.EmailVerified,
		Name:              info.Name,
		GivenName:         info.GivenName,
		FamilyName:        info.FamilyName,
		Nickname:          info.Nickname,
		PreferredUsername: info.PreferredUsername,
		Picture:           info.Picture,
		Roles:             info.Roles,
		Plan:              info.Plan,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   info.Sub,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Validate checks signature, issuer and expiry and returns the identity of the token.
func (j *JWT) Validate(ctx context.Context, tokenString string) (*models.UserInfo, error) {
	var claims localClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("sub not found in token")
	}

	plan := claims.Plan
	if plan == "" {
		plan = defaultPlan
	}

	return &models.UserInfo{
		Sub:               claims.Subject,
		Email:             claims.Email,
		EmailVerified:     claims.EmailVerified,
		Name:              claims.Name,
		GivenName:         claims.GivenName,
		FamilyName:        claims.FamilyName,
		Nickname:          claims.Nickname,
		PreferredUsername: claims.PreferredUsername,
		Picture:           claims.Picture,
		Roles:             claims.Roles,
		Plan:              plan,
	}, nil
}
