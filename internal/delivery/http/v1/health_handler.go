package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the fixed liveness payload. No dependency is checked;
// the mail subsystem being down does not make the site unhealthy.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler registers the health route
func NewHealthHandler(api *gin.RouterGroup) {
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "ok",
			Message:   "Soa Bango API est en ligne",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
}
