package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MatBureau/devops-portfolio/internal/config"
	"github.com/MatBureau/devops-portfolio/internal/logging"
	"github.com/MatBureau/devops-portfolio/internal/metrics"
	"github.com/MatBureau/devops-portfolio/internal/server"
	"github.com/MatBureau/devops-portfolio/internal/system"
)

func main() {
	flags := config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if err := flags.Apply(cfg, &cfg.Dashboard.Addr); err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(1)
	}
	logging.Setup(os.Stdout, cfg.LogLevel, "server", "dashboard")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New("dashboard")
	h := server.Dashboard(server.DashboardDeps{
		PublicDir: cfg.Dashboard.PublicDir,
		Probe:     &system.Probe{},
		Metrics:   m,
	})

	slog.Info("Server running", "addr", cfg.Dashboard.Addr)
	if err := server.Run(ctx, cfg.Dashboard.Addr, h, cfg.Server, cfg.MetricsAddr, m); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
