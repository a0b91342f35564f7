package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/insta")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("GOOGLE_CLIENT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/insta", cfg.DatabaseURL)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "disk", cfg.Storage.Backend)
	assert.Nil(t, cfg.Google)
}

func TestLoadBuildsDSNFromParts(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_USER", "insta")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "insta")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=pg user=insta password=pw dbname=insta port=6543 sslmode=disable", cfg.DatabaseURL)
}

func TestValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	cfg := &Config{JWTSecret: []byte("s"), Storage: StorageConfig{Backend: "r2"}}
	assert.Error(t, cfg.Validate())
	cfg.R2 = R2Config{AccountID: "acc", BucketName: "media"}
	assert.NoError(t, cfg.Validate())
	cfg.Storage.Backend = "ftp"
	assert.Error(t, cfg.Validate())
}

func TestNewGoogleConfig(t *testing.T) {
	assert.Nil(t, NewGoogleConfig("", "secret", ""))
	g := NewGoogleConfig("id", "secret", "http://localhost/cb")
	require.NotNil(t, g)
	assert.Equal(t, "id", g.Config.ClientID)
	assert.Len(t, g.Config.Scopes, 2)
}
