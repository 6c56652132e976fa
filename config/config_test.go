package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseDSN(t *testing.T) {
	t.Run("url wins when set", func(t *testing.T) {
		c := DatabaseConfig{URL: "postgres://example:5432/app?sslmode=require", Host: "ignored"}
		assert.Equal(t, "postgres://example:5432/app?sslmode=require", c.DSN())
	})

	t.Run("built from components", func(t *testing.T) {
		c := DatabaseConfig{
			Host:     "db",
			Port:     "5433",
			User:     "vegas",
			Password: "secret",
			DBName:   "chat",
			SSLMode:  "disable",
		}
		assert.Equal(t, "postgres://vegas:secret@db:5433/chat?sslmode=disable", c.DSN())
	})
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRENDS_KEYWORD_LIMIT", "50")
	t.Setenv("MCP_SERVER_NAME", "capture-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Trends.KeywordLimit)
	assert.Equal(t, "capture-test", cfg.MCP.ServerName)
}

func TestLoad_BadKeywordLimitFallsBack(t *testing.T) {
	t.Setenv("TRENDS_KEYWORD_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Trends.KeywordLimit)
}
