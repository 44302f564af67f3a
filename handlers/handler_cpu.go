package handlers

import (
	"log/slog"
	"net/http"

	"github.com/MatBureau/devops-portfolio/internal/cpusampler"
	"github.com/MatBureau/devops-portfolio/internal/metrics"
)

type cpuResp struct {
	CPU int `json:"cpu"`
}

// CPUHandler reports utilization since the previous call.
func CPUHandler(s *cpusampler.Sampler, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pct, err := s.Query(r.Context())
		if err != nil {
			slog.Error("cpu sample failed", "err", err)
			writeJSON(w, nil, err)
			return
		}
		m.ObserveCPU(pct)
		writeJSON(w, cpuResp{CPU: pct}, nil)
	}
}
