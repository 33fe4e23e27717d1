package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Version string `json:"version,omitempty"`
}

// HealthController answers liveness probes. It never touches the store,
// so it keeps answering while the database is unavailable.
type HealthController struct {
	version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

func (h *HealthController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
	})
}

func (h *HealthController) Home(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the book catalog 📚"})
}
