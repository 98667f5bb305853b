package http

import (
	"net/http"

	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

const (
	statusOK       = "ok"
	statusNotReady = "not_ready"
)

// health is the liveness probe. It reports the build version and never
// touches storage.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  statusOK,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

// ready reports the outcome of the last storage probe made by the
// readiness worker.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if !h.services.HealthService.Ready() {
		utils.WriteJSON(w, models.HealthResponse{Status: statusNotReady}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: statusOK}, http.StatusOK)
}
