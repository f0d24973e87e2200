package controllers

import (
	"net/http"

	"github.com/jerseyfront/jerseyfront/api/responses"
	"github.com/jerseyfront/jerseyfront/internal/catalog"
	"github.com/jerseyfront/jerseyfront/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Jerseyfront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the catalog snapshot has loaded at
// least once.
func HealthReady(cfg *config.Config, snapshot *catalog.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Jerseyfront-Env", cfg.App.Env)

		status := "ready"
		httpStatus := http.StatusOK
		if snapshot == nil || !snapshot.Loaded() {
			status = "catalog not loaded"
			httpStatus = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, httpStatus, map[string]string{"status": status})
	}
}
