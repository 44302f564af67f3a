package handlers

import (
	"net/http"
	"time"
)

const BannerText = "🚀 DevOps Engineer Dashboard API is Running"

var dashboardLogs = []string{
	"App started successfully",
	"Connected to database",
	"Health check passed",
	"Metrics collected",
}

type healthResp struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func BannerHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, BannerText)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResp{Status: "UP", Timestamp: time.Now().UTC()}, nil)
}

// DashboardLogsHandler serves the dashboard's fixed sample log feed.
func DashboardLogsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string][]string{"logs": dashboardLogs}, nil)
}
