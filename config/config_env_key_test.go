package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"googleOAuth": map[string]any{
			"clientSecret": "",
			"redirectUri":  "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEOAUTH_CLIENTSECRET", want: "googleOAuth.clientSecret"},
		{envKey: "GOOGLEOAUTH_REDIRECTURI", want: "googleOAuth.redirectUri"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{GoogleOAuth: &GoogleOAuthConfig{ClientID: "client"}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Token.DefaultTTL)
	assert.Equal(t, 30*time.Minute, cfg.Token.LoginTTL)
	assert.Equal(t, "openid email profile", cfg.GoogleOAuth.Scopes)
	assert.Equal(t, 10*time.Second, cfg.GoogleOAuth.Timeout)
	assert.Equal(t, "http://localhost:3000", cfg.Frontend.URL)
	require.NotNil(t, cfg.Auth)
}

func TestConfig_Validate(t *testing.T) {
	newValid := func() *Config {
		cfg := &Config{GoogleOAuth: &GoogleOAuthConfig{ClientID: "client"}}
		cfg.SecretKey.Access = "secret"
		cfg.applyDefaults()

		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, newValid().Validate())
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := newValid()
		cfg.SecretKey.Access = "  "

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secretKey.access")
	})

	t.Run("missing client id", func(t *testing.T) {
		cfg := newValid()
		cfg.GoogleOAuth.ClientID = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("negative ttl", func(t *testing.T) {
		cfg := newValid()
		cfg.Token.LoginTTL = -time.Minute

		assert.Error(t, cfg.Validate())
	})
}
