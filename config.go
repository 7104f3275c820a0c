package marketplace

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process needs at startup. Values come from the
// environment; a missing signing secret is fatal, nothing in this design
// hot-reloads the key later.
type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	DSN             string `envconfig:"DATABASE_DSN" default:"file::memory:?cache=shared"`
	SigningKey      string `envconfig:"JWT_SECRET"`
	TokenExpiration int    `envconfig:"JWT_EXPIRE_HOURS" default:"4"`
	Issuer          string `envconfig:"JWT_ISSUER" default:"marketplace"`
	AuthScheme      string `envconfig:"AUTH_SCHEME" default:"Bearer"`
	Debug           bool   `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

// Validate enforces the startup invariants. Call it before wiring anything;
// these failures abort the process rather than surface per-request.
func (c Config) Validate() error {
	if c.SigningKey == "" {
		return ErrMissingSigningKey
	}
	return nil
}

func (c Config) GetSigningKey() string {
	return c.SigningKey
}

// GetTokenExpiration is the token TTL in hours.
func (c Config) GetTokenExpiration() int {
	return c.TokenExpiration
}

func (c Config) GetIssuer() string {
	return c.Issuer
}

func (c Config) GetAuthScheme() string {
	return c.AuthScheme
}

func (c Config) GetDSN() string {
	return c.DSN
}
