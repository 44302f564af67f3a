package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MatBureau/devops-portfolio/internal/system"
)

const probeTimeout = 3 * time.Second

// probeHandler bounds collect by probeTimeout and writes its result as JSON.
func probeHandler[T any](collect func(context.Context) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()
		v, err := collect(ctx)
		writeJSON(w, v, err)
	}
}

func MemHandler(p *system.Probe) http.HandlerFunc {
	return probeHandler(p.CollectMemory)
}

func SystemHandler(p *system.Probe) http.HandlerFunc {
	return probeHandler(p.CollectSystem)
}

func InfoHandler(p *system.Probe) http.HandlerFunc {
	return probeHandler(p.CollectInfo)
}

func MetricsHandler(p *system.Probe) http.HandlerFunc {
	return probeHandler(p.CollectMetrics)
}
