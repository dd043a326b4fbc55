package config

import (
	"crypto/rand"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/service/authprovider"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const (
	AuthLocal    = "local"
	AuthSupabase = "supabase"
)

// AuthProvider holds CLI flags for the identity provider
type AuthProvider struct {
	backend     string
	supabaseURL string
	supabaseKey string `masq:"secret"`
	localSecret string `masq:"secret"`
}

// Flags returns CLI flags for auth provider configuration
func (x *AuthProvider) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "auth-provider",
			Usage:       "Auth provider (local or supabase)",
			Category:    "Authentication",
			Value:       AuthLocal,
			Sources:     cli.EnvVars("RISKBOARD_AUTH_PROVIDER"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "supabase-url",
			Usage:       "Supabase project URL, e.g. https://xyz.supabase.co",
			Category:    "Authentication",
			Sources:     cli.EnvVars("RISKBOARD_SUPABASE_URL", "SUPABASE_URL"),
			Destination: &x.supabaseURL,
		},
		&cli.StringFlag{
			Name:        "supabase-key",
			Usage:       "Supabase API key",
			Category:    "Authentication",
			Sources:     cli.EnvVars("RISKBOARD_SUPABASE_KEY", "SUPABASE_KEY"),
			Destination: &x.supabaseKey,
		},
		&cli.StringFlag{
			Name:        "local-jwt-secret",
			Usage:       "Signing secret for tokens issued by the local provider (random when empty)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("RISKBOARD_LOCAL_JWT_SECRET"),
			Destination: &x.localSecret,
		},
	}
}

func (x AuthProvider) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("supabase_url", x.supabaseURL),
		slog.Bool("supabase_key_set", x.supabaseKey != ""),
		slog.Bool("local_secret_set", x.localSecret != ""),
	)
}

// Configure builds the auth provider for the selected backend
func (x *AuthProvider) Configure() (interfaces.AuthProvider, error) {
	switch x.backend {
	case AuthSupabase:
		if x.supabaseURL == "" || x.supabaseKey == "" {
			return nil, goerr.Wrap(ErrMissingSetting, "supabase-url and supabase-key are required for supabase auth provider")
		}
		provider, err := authprovider.NewSupabase(x.supabaseURL, x.supabaseKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize supabase auth provider")
		}
		return provider, nil

	case AuthLocal:
		secret := []byte(x.localSecret)
		if len(secret) == 0 {
			secret = make([]byte, 32)
			if _, err := rand.Read(secret); err != nil {
				return nil, goerr.Wrap(err, "failed to generate signing secret")
			}
			logging.Default().Warn("local-jwt-secret not set, tokens will not survive a restart")
		}
		provider, err := authprovider.NewLocal(secret)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize local auth provider")
		}
		return provider, nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "unknown auth provider", goerr.V(BackendKey, x.backend))
	}
}
