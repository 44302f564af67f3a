package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatBureau/devops-portfolio/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":3000", cfg.Portfolio.Addr)
	assert.Equal(t, "0.0.0.0:3000", cfg.Dashboard.Addr)
	assert.Equal(t, "./logs/app.log", cfg.Portfolio.LogFile)
	assert.Equal(t, 50, cfg.Portfolio.LogTailLines)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
logLevel: DEBUG
metricsAddr: ":9090"
portfolio:
  addr: ":8080"
  postsFile: /srv/posts.json
  logTailLines: 10
server:
  writeTimeout: 30s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, ":8080", cfg.Portfolio.Addr)
	assert.Equal(t, "/srv/posts.json", cfg.Portfolio.PostsFile)
	assert.Equal(t, 10, cfg.Portfolio.LogTailLines)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "{this: is, not: valid yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "yaml"), err.Error())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"negative tail", func(c *config.Config) { c.Portfolio.LogTailLines = -1 }},
		{"negative timeout", func(c *config.Config) { c.Server.IdleTimeout = -time.Second }},
		{"metrics collides", func(c *config.Config) { c.MetricsAddr = c.Portfolio.Addr }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.ApplyDefaults()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
