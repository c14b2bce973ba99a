package http

import (
	"net/http"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe returning service health plus the state of the database connection
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rentsdk.HealthResponse	"status, uptime, version, database"
//	@Failure		503	{object}	rentsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := "ok"
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := rentsdk.HealthResponse{
			Status:   overallStatus,
			Uptime:   time.Since(startTime).String(),
			Version:  version,
			Database: database,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
