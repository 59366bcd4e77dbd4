package handlers

import (
	"net/http"
	"time"
)

// HealthHandler reports liveness plus the active lookup-cache backend.
type HealthHandler struct {
	CacheBackend string
	Started      time.Time
}

type healthResponse struct {
	Status        string `json:"status"`
	Cache         string `json:"cache"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:        "ok",
		Cache:         h.CacheBackend,
		UptimeSeconds: int64(time.Since(h.Started).Seconds()),
	})
}
