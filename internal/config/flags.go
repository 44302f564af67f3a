package config

import (
	"github.com/spf13/pflag"
)

// Flags holds command-line overrides shared by both servers.
type Flags struct {
	ConfigPath  string
	Addr        string
	LogLevel    string
	MetricsAddr string
}

func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.ConfigPath, "config", "c", "./config.yaml", "Path to config file")
	fs.StringVar(&f.Addr, "addr", "", "Listen address, overrides the config file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "Prometheus listen address")
	return f
}

// Apply copies the flags that were set onto cfg. addr points at the listen
// address of the server being started.
func (f *Flags) Apply(cfg *Config, addr *string) error {
	if f.Addr != "" {
		*addr = f.Addr
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.MetricsAddr != "" {
		cfg.MetricsAddr = f.MetricsAddr
	}
	cfg.ApplyDefaults()
	return cfg.Validate()
}
