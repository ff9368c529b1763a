package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/divergent-flow/docs"
	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/config"
	"github.com/sbilibin2017/divergent-flow/internal/facades"
	"github.com/sbilibin2017/divergent-flow/internal/handlers"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/middlewares"
	"github.com/sbilibin2017/divergent-flow/internal/migrations"
	"github.com/sbilibin2017/divergent-flow/internal/repositories"
	"github.com/sbilibin2017/divergent-flow/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// versionService is the service name reported by /v1/version.
const versionService = "divergent-flow-core"

// defaultVersion is reported by /v1/version when the build sets no version.
const defaultVersion = "0.1.0"

// serviceVersion returns the version reported by /v1/version.
func serviceVersion() string {
	if buildVersion == "" || buildVersion == "N/A" {
		return defaultVersion
	}
	return buildVersion
}

// @title divergent-flow API
// @version 1.0.0
// @description CRUD API for captures and users with OIDC provisioning
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, optional Redis and Kafka, the token
// verifier and the HTTP server, then blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogDir); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Redis is optional, provisioning works without the cache
	var cache services.ProvisionCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, provisioning cache disabled", "error", err)
		} else {
			cache = repositories.NewProvisionCacheRepository(rdb, cfg.ProvisionCacheTTL)
		}
	}

	// Kafka is optional, capture events are skipped without a writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaCaptureTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	validator, err := newTokenValidator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize auth provider: %w", err)
	}
	logger.Log.Infof("Auth provider %s", validator.Name())

	// Initialize repositories
	captureReadRepo := repositories.NewCaptureReadRepository(db)
	captureWriteRepo := repositories.NewCaptureWriteRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	provisionRepo := repositories.NewProvisionRepository(db, middlewares.GetTxFromContext)
	versionRepo := repositories.NewVersionRepository(serviceVersion(), versionService)

	router := newRouter(routerConfig{
		db:            db,
		validator:     validator,
		captures:      services.NewCaptureService(captureReadRepo, captureWriteRepo, kafkaWriter),
		users:         services.NewUserService(userReadRepo, userWriteRepo, cache),
		provisioning:  services.NewProvisionService(provisionRepo, cache),
		version:       services.NewVersionService(versionRepo),
		corsOrigins:   cfg.CORSOrigins,
		enableSwagger: cfg.EnableSwagger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newTokenValidator builds the verifier of the configured identity provider.
func newTokenValidator(ctx context.Context, cfg *config.Config) (middlewares.TokenValidator, error) {
	client := &http.Client{Timeout: cfg.AuthHTTPTimeout}

	switch cfg.AuthProvider {
	case config.ProviderAuth0:
		fetcher := facades.NewUserInfoHTTPFacade(ctx, cfg.Auth0Issuer,
			auth.UserInfoURL(auth.Auth0Provider, cfg.Auth0Issuer), client)
		verifier, err := auth.NewOIDC(ctx, auth.OIDCConfig{
			Provider:   auth.Auth0Provider,
			Issuer:     cfg.Auth0Issuer,
			Audience:   cfg.Auth0Audience,
			JWKSURL:    cfg.Auth0JWKSURL,
			RolesClaim: cfg.Auth0RolesClaim,
			HTTPClient: client,
		}, fetcher)
		if err != nil {
			return nil, err
		}
		return verifier, nil
	case config.ProviderKeycloak:
		verifier, err := auth.NewOIDC(ctx, auth.OIDCConfig{
			Provider:   auth.KeycloakProvider,
			Issuer:     cfg.OIDCIssuerURL,
			Audience:   cfg.OIDCAudience,
			JWKSURL:    cfg.OIDCJWKSURL,
			HTTPClient: client,
		}, nil)
		if err != nil {
			return nil, err
		}
		return verifier, nil
	case config.ProviderLocal:
		return auth.NewJWT(
			auth.WithSecretKey(cfg.JWTSecretKey),
			auth.WithExpiration(cfg.JWTExp),
			auth.WithIssuer(cfg.JWTIssuer),
		), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.AuthProvider)
	}
}

type routerConfig struct {
	db            *sqlx.DB
	validator     middlewares.TokenValidator
	captures      *services.CaptureService
	users         *services.UserService
	provisioning  *services.ProvisionService
	version       *services.VersionService
	corsOrigins   []string
	enableSwagger bool
}

// newRouter wires handlers and middleware into the HTTP routing tree.
func newRouter(rc routerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(rc.corsOrigins))
	r.Use(middlewares.MetricsMiddleware)

	tx := middlewares.TxMiddleware(rc.db)

	// Public routes
	r.Get("/", handlers.NewRootHandler(rc.enableSwagger))
	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/healthz", handlers.NewHealthHandler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/v1/version", handlers.NewVersionHandler(rc.version))

	if rc.enableSwagger {
		r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
		})
		r.Get("/api-docs", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/api-docs/", http.StatusMovedPermanently)
		})
		r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))
	}

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(rc.validator, rc.provisioning))

		r.Route("/v1/capture", func(r chi.Router) {
			r.Get("/", handlers.NewListMyCapturesHandler(rc.captures))
			r.With(tx).Post("/", handlers.NewCreateCaptureHandler(rc.captures))
			r.Get("/user/{userId}", handlers.NewListUserCapturesHandler(rc.captures))
			r.Get("/{id}", handlers.NewGetCaptureHandler(rc.captures))
			r.With(tx).Put("/{id}", handlers.NewUpdateCaptureHandler(rc.captures))
			r.With(tx).Delete("/{id}", handlers.NewDeleteCaptureHandler(rc.captures))
		})

		r.Route("/v1/user", func(r chi.Router) {
			r.Get("/", handlers.NewListUsersHandler(rc.users))
			r.With(tx).Post("/", handlers.NewCreateUserHandler(rc.users))
			// provisioning commits its own transaction before the identity is cached
			r.Post("/provision-oidc", handlers.NewProvisionOIDCHandler(rc.provisioning))
			r.Get("/me", handlers.NewGetMeHandler(rc.users))
			r.Get("/email/{email}", handlers.NewGetUserByEmailHandler(rc.users))
			r.Get("/username/{username}", handlers.NewGetUserByUsernameHandler(rc.users))
			r.Get("/oauth/{provider}/{providerAccountId}", handlers.NewGetUserByOAuthAccountHandler(rc.users))
			r.Get("/{id}", handlers.NewGetUserHandler(rc.users))
			r.With(tx).Put("/{id}", handlers.NewUpdateUserHandler(rc.users))
			r.With(tx).Delete("/{id}", handlers.NewDeleteUserHandler(rc.users))
			r.With(tx).Post("/{id}/oauth-accounts", handlers.NewLinkOAuthAccountHandler(rc.users))
		})
	})

	return r
}
