package marketplace_test

import (
	"testing"

	"github.com/refashion/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := marketplace.Config{
		SigningKey:      "secret",
		TokenExpiration: 4,
		Issuer:          "marketplace",
		AuthScheme:      "Bearer",
	}

	assert.NoError(t, cfg.Validate())

	cfg.SigningKey = ""
	assert.ErrorIs(t, cfg.Validate(), marketplace.ErrMissingSigningKey)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := marketplace.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 4, cfg.GetTokenExpiration())
	assert.Equal(t, "marketplace", cfg.GetIssuer())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
	assert.Equal(t, "from-env", cfg.GetSigningKey())
	assert.NoError(t, cfg.Validate())
}
