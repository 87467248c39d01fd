package http

import (
	"net/http"
	"time"

	"github.com/orgdeskhq/orgdesk/pkg/httpx"
	"github.com/orgdeskhq/orgdesk/pkg/orgsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe
//	@Description	Always returns 200 while the process is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	orgsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, orgsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
