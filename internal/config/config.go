package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel    string `yaml:"logLevel"`
	MetricsAddr string `yaml:"metricsAddr"` // prometheus listener, empty disables it

	Portfolio PortfolioConfig `yaml:"portfolio"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Server    ServerConfig    `yaml:"server"`
}

type PortfolioConfig struct {
	Addr         string `yaml:"addr"`
	SiteTitle    string `yaml:"siteTitle"`
	PublicDir    string `yaml:"publicDir"`
	ViewsDir     string `yaml:"viewsDir"`
	PostsFile    string `yaml:"postsFile"`
	LogFile      string `yaml:"logFile"`
	LogTailLines int    `yaml:"logTailLines"`
}

type DashboardConfig struct {
	Addr      string `yaml:"addr"`
	PublicDir string `yaml:"publicDir"`
}

type ServerConfig struct {
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`
}

// Load reads the YAML file at path, applies defaults and validates the
// result. A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	p := &c.Portfolio
	if p.Addr == "" {
		p.Addr = ":3000"
	}
	if p.SiteTitle == "" {
		p.SiteTitle = "Portfolio"
	}
	if p.PublicDir == "" {
		p.PublicDir = "./public"
	}
	if p.ViewsDir == "" {
		p.ViewsDir = "./views"
	}
	if p.PostsFile == "" {
		p.PostsFile = "./data/posts.json"
	}
	if p.LogFile == "" {
		p.LogFile = "./logs/app.log"
	}
	if p.LogTailLines == 0 {
		p.LogTailLines = 50
	}

	d := &c.Dashboard
	if d.Addr == "" {
		d.Addr = "0.0.0.0:3000"
	}
	if d.PublicDir == "" {
		d.PublicDir = "./public"
	}

	s := &c.Server
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 5 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 10 * time.Second
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = 60 * time.Second
	}
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logLevel: unknown level %q", c.LogLevel)
	}
	if c.Portfolio.LogTailLines < 0 {
		return fmt.Errorf("portfolio.logTailLines: must be positive, got %d", c.Portfolio.LogTailLines)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		return errors.New("server: timeouts must not be negative")
	}
	if c.MetricsAddr != "" && (c.MetricsAddr == c.Portfolio.Addr || c.MetricsAddr == c.Dashboard.Addr) {
		return fmt.Errorf("metricsAddr: %q collides with a site listener", c.MetricsAddr)
	}
	return nil
}
