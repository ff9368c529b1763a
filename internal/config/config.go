package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported identity providers.
const (
	ProviderAuth0    = "auth0"
	ProviderKeycloak = "keycloak"
	ProviderLocal    = "local"
)

// Config holds the application, database, auth, cache, broker and logging settings.
type Config struct {
	// Application
	AppHost       string
	AppPort       string
	AppEnv        string
	EnableSwagger bool
	CORSOrigins   []string

	// Logging
	LogLevel string
	LogDir   string

	// PostgreSQL
	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Auth
	AuthProvider    string
	AuthHTTPTimeout time.Duration

	Auth0Issuer     string
	Auth0Audience   string
	Auth0JWKSURL    string
	Auth0RolesClaim string

	OIDCIssuerURL string
	OIDCAudience  string
	OIDCJWKSURL   string

	JWTSecretKey string
	JWTExp       time.Duration
	JWTIssuer    string

	// Redis, optional provisioning cache
	RedisURL          string
	ProvisionCacheTTL time.Duration

	// Kafka, optional capture events
	KafkaBrokers      []string
	KafkaCaptureTopic string
}

// Load loads environment variables from the file at path, if it exists, and
// returns the resulting configuration. Variables already set in the environment win.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "0.0.0.0")
	cfg.AppPort = getEnv("APP_PORT", getEnv("PORT", "3001"))
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	if cfg.EnableSwagger, err = strconv.ParseBool(getEnv("ENABLE_SWAGGER", strconv.FormatBool(cfg.AppEnv != "production"))); err != nil {
		return nil, fmt.Errorf("ENABLE_SWAGGER: %w", err)
	}

	// Logging config
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", getEnv("LOG_LEVEL", "info"))
	cfg.LogDir = getEnv("LOG_DIR", "")

	// PostgreSQL config
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
		if err != nil {
			return nil, fmt.Errorf("POSTGRES_PORT: %w", err)
		}
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			getEnv("POSTGRES_USER", "user"),
			getEnv("POSTGRES_PASSWORD", "password"),
			getEnv("POSTGRES_HOST", "localhost"),
			pgPort,
			getEnv("POSTGRES_DB", "divflo"),
		)
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Auth config
	cfg.AuthProvider = strings.ToLower(getEnv("AUTH_PROVIDER", ProviderAuth0))
	if cfg.AuthHTTPTimeout, err = getSeconds("AUTH_HTTP_TIMEOUT_SECOND", 5); err != nil {
		return nil, err
	}

	cfg.Auth0Issuer = getEnv("AUTH0_ISSUER", "")
	cfg.Auth0Audience = getEnv("AUTH0_AUDIENCE", "")
	cfg.Auth0JWKSURL = getEnv("AUTH0_JWKS_URL", strings.TrimSuffix(cfg.Auth0Issuer, "/")+"/.well-known/jwks.json")
	cfg.Auth0RolesClaim = getEnv("AUTH0_ROLES_CLAIM", "roles")

	cfg.OIDCIssuerURL = getEnv("OIDC_ISSUER_URL", "")
	cfg.OIDCAudience = getEnv("OIDC_AUDIENCE", "")
	cfg.OIDCJWKSURL = getEnv("OIDC_JWKS_URL", strings.TrimSuffix(cfg.OIDCIssuerURL, "/")+"/protocol/openid-connect/certs")

	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", 3600); err != nil {
		return nil, err
	}
	cfg.JWTIssuer = getEnv("AUTH_ISSUER", "divergent-flow")

	switch cfg.AuthProvider {
	case ProviderAuth0:
		if cfg.Auth0Issuer == "" {
			return nil, fmt.Errorf("AUTH0_ISSUER is required for auth provider %q", cfg.AuthProvider)
		}
	case ProviderKeycloak:
		if cfg.OIDCIssuerURL == "" {
			return nil, fmt.Errorf("OIDC_ISSUER_URL is required for auth provider %q", cfg.AuthProvider)
		}
	case ProviderLocal:
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.AuthProvider)
	}

	// Redis config
	cfg.RedisURL = getEnv("REDIS_URL", "")
	if cfg.ProvisionCacheTTL, err = getSeconds("PROVISION_CACHE_TTL_SECOND", 300); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaCaptureTopic = getEnv("KAFKA_CAPTURE_TOPIC", "captures")

	return &cfg, nil
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getSeconds(key string, defaultValue int) (time.Duration, error) {
	v, err := getInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
