package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Handler serves the health endpoints.
type Handler struct {
	snapshotPath string
}

func NewHandler(snapshotPath string) *Handler {
	return &Handler{snapshotPath: snapshotPath}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "alive"}))
}

// ReadinessCheck verifies the snapshot file is reachable, since every
// operation depends on it.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if _, err := os.Stat(h.snapshotPath); err != nil {
		c.JSON(http.StatusServiceUnavailable, NewErrorResponse("snapshot file unavailable"))
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"status": "ready"}))
}
