package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_USER", "")
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_NAME", "")
	t.Setenv("PG_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_ORIGIN", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("UPLOAD_MAX_BYTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.DB.User)
	require.Equal(t, "localhost", cfg.DB.Host)
	require.Equal(t, "db", cfg.DB.Name)
	require.Equal(t, 5432, cfg.DB.Port)
	require.Equal(t, 5000, cfg.HTTP.Port)
	require.Equal(t, "http://localhost:5173", cfg.HTTP.FrontendOrigin)
	require.Equal(t, "uploads", cfg.Uploads.Dir)
	require.Equal(t, int64(10<<20), cfg.Uploads.MaxBytes)
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv("PG_PASSWORD", "")
	t.Setenv("PG_USER", "postgres")
	t.Setenv("PG_NAME", "jobs")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PG_PASSWORD")
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "PG_PORT")
}

func TestDSN(t *testing.T) {
	c := DBConfig{User: "u", Host: "h", Name: "n", Password: "p", Port: 5433}
	require.Equal(t, "host=h user=u password=p dbname=n port=5433 sslmode=disable", c.DSN())
}
