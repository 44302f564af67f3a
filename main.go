package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MatBureau/devops-portfolio/handlers"
	"github.com/MatBureau/devops-portfolio/internal/blog"
	"github.com/MatBureau/devops-portfolio/internal/config"
	"github.com/MatBureau/devops-portfolio/internal/cpusampler"
	"github.com/MatBureau/devops-portfolio/internal/logging"
	"github.com/MatBureau/devops-portfolio/internal/metrics"
	"github.com/MatBureau/devops-portfolio/internal/pages"
	"github.com/MatBureau/devops-portfolio/internal/server"
	"github.com/MatBureau/devops-portfolio/internal/system"
	"github.com/MatBureau/devops-portfolio/internal/visitlog"
)

func main() {
	flags := config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if err := flags.Apply(cfg, &cfg.Portfolio.Addr); err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(1)
	}
	logging.Setup(os.Stdout, cfg.LogLevel, "server", "portfolio")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Baseline for the first /api/cpu call is process start.
	sampler, err := cpusampler.New(ctx, cpusampler.HostSource{})
	if err != nil {
		slog.Error("failed to read cpu counters", "err", err)
		os.Exit(1)
	}

	renderer, err := pages.NewRenderer(cfg.Portfolio.ViewsDir, cfg.Portfolio.SiteTitle)
	if err != nil {
		slog.Error("failed to load templates", "err", err)
		os.Exit(1)
	}

	m := metrics.New("portfolio")
	journal := visitlog.New(cfg.Portfolio.LogFile)

	h := server.Portfolio(server.PortfolioDeps{
		Site: &handlers.Site{
			PublicDir: cfg.Portfolio.PublicDir,
			Journal:   journal,
			Renderer:  renderer,
			Posts:     blog.NewStore(cfg.Portfolio.PostsFile),
			Metrics:   m,
		},
		Sampler:  sampler,
		Probe:    &system.Probe{},
		Journal:  journal,
		TailSize: cfg.Portfolio.LogTailLines,
		Metrics:  m,
	})

	slog.Info("Server running", "addr", cfg.Portfolio.Addr)
	if err := server.Run(ctx, cfg.Portfolio.Addr, h, cfg.Server, cfg.MetricsAddr, m); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
