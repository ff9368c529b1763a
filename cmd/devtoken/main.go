// Command devtoken prints a bearer token accepted by the API in local auth mode.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/config"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

type options struct {
	configPath string
	info       models.UserInfo
}

func main() {
	opts := parseFlags(os.Args[1:])

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	token, err := mintToken(context.Background(), cfg, &opts.info)
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}
	fmt.Println(token)
}

func parseFlags(args []string) options {
	var opts options
	fs := flag.NewFlagSet("devtoken", flag.ExitOnError)
	fs.StringVar(&opts.configPath, "c", "config.env", "Path to configuration file")
	fs.StringVar(&opts.info.Sub, "sub", "local|dev", "Subject of the token")
	fs.StringVar(&opts.info.Email, "email", "dev@example.com", "Email claim")
	fs.BoolVar(&opts.info.EmailVerified, "email-verified", true, "email_verified claim")
	fs.StringVar(&opts.info.PreferredUsername, "username", "", "preferred_username claim")
	fs.StringVar(&opts.info.Name, "name", "", "Display name claim")
	_ = fs.Parse(args)
	return opts
}

// mintToken signs info with the local secret, issuer and expiration of cfg.
func mintToken(ctx context.Context, cfg *config.Config, info *models.UserInfo) (string, error) {
	if cfg.AuthProvider != config.ProviderLocal {
		return "", errors.New("AUTH_PROVIDER must be local")
	}

	return auth.NewJWT(
		auth.WithSecretKey(cfg.JWTSecretKey),
		auth.WithExpiration(cfg.JWTExp),
		auth.WithIssuer(cfg.JWTIssuer),
	).Generate(ctx, info)
}
