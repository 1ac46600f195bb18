package handler

import (
	"net/http"
	"time"
)

type healthData struct {
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"` // seconds since process start
	Environment string  `json:"environment"`
}

// Health handles GET /health. It pings the database so the probe reflects
// actual serving capability, not just process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	writeSuccess(w, http.StatusOK, "WorkHub Pro API is running", healthData{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startedAt).Seconds(),
		Environment: h.environment,
	})
}
