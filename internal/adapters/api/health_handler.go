package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherclient.app/internal/ports"
)

// HealthResponse aggregates the component checks
type HealthResponse struct {
	Status     string                       `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests.
// Any unhealthy component turns the response into a 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	statusCode := http.StatusOK
	for _, component := range components {
		if component.Status != "healthy" {
			response.Status = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}
