package server

import (
	"net/http"

	"github.com/MatBureau/devops-portfolio/handlers"
	"github.com/MatBureau/devops-portfolio/internal/cpusampler"
	"github.com/MatBureau/devops-portfolio/internal/metrics"
	"github.com/MatBureau/devops-portfolio/internal/system"
	"github.com/MatBureau/devops-portfolio/internal/visitlog"
)

type PortfolioDeps struct {
	Site     *handlers.Site
	Sampler  *cpusampler.Sampler
	Probe    *system.Probe
	Journal  *visitlog.Journal
	TailSize int
	Metrics  *metrics.Metrics
}

// Portfolio builds the portfolio site and its telemetry API.
func Portfolio(d PortfolioDeps) http.Handler {
	mux := http.NewServeMux()
	site := d.Site

	// --- Pages ---
	mux.HandleFunc("GET /{$}", site.File("home", "Home page visited", "index.html"))
	mux.HandleFunc("GET /dashboard", site.File("dashboard", "Dashboard visited", "pages", "dashboard.html"))
	mux.HandleFunc("GET /about", site.Wrapped("about", "About page visited", "pages", "about.html"))
	mux.HandleFunc("GET /projects", site.File("projects", "Projects page visited", "pages", "projects.html"))
	mux.HandleFunc("GET /contact", site.File("contact", "Contact page visited", "pages", "contact.html"))
	mux.HandleFunc("GET /blog", site.BlogIndex)
	mux.HandleFunc("GET /blog/{id}", site.BlogPost)

	// --- API ---
	mux.HandleFunc("GET /api/logs", handlers.LogsHandler(d.Journal, d.TailSize))
	mux.HandleFunc("GET /api/cpu", handlers.CPUHandler(d.Sampler, d.Metrics))
	mux.HandleFunc("GET /api/memory", handlers.MemHandler(d.Probe))
	mux.HandleFunc("GET /api/system", handlers.SystemHandler(d.Probe))

	mux.Handle("/", http.FileServer(http.Dir(site.PublicDir)))

	return handlers.LogMiddleware(mux, d.Metrics)
}

type DashboardDeps struct {
	PublicDir string
	Probe     *system.Probe
	Metrics   *metrics.Metrics
}

// Dashboard builds the dashboard status API.
func Dashboard(d DashboardDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.BannerHandler)
	mux.HandleFunc("GET /health", handlers.HealthHandler)
	mux.HandleFunc("GET /info", handlers.InfoHandler(d.Probe))
	mux.HandleFunc("GET /metrics", handlers.MetricsHandler(d.Probe))
	mux.HandleFunc("GET /logs", handlers.DashboardLogsHandler)

	mux.Handle("/", http.FileServer(http.Dir(d.PublicDir)))

	return handlers.LogMiddleware(mux, d.Metrics)
}
