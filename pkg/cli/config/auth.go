package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

// DefaultJWTSecret is a well-known development fallback. Production
// deployments must set --jwt-secret.
const DefaultJWTSecret = "your-secret-key"

// Auth holds CLI flags for token signing configuration
type Auth struct {
	jwtSecret string
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret key for signing JWT tokens",
			Category:    "Authentication",
			Sources:     cli.EnvVars("DIRTLOT_JWT_SECRET"),
			Destination: &x.jwtSecret,
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("jwt-secret.len", len(x.jwtSecret)),
	)
}

// JWTSecret returns the configured secret, falling back to the development
// default with a warning.
func (x *Auth) JWTSecret() string {
	if x.jwtSecret == "" {
		logging.Default().Warn("jwt-secret is not set, using insecure development default")
		return DefaultJWTSecret
	}
	return x.jwtSecret
}
