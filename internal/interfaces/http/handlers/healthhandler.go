package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/utils"
	"ticketdesk/internal/shared/version"
)

// HealthStatus is the /healthz payload.
type HealthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Version string `json:"version"`
}

type HealthHandler struct {
	backendMode string
}

func NewHealthHandler(backendMode string) *HealthHandler {
	return &HealthHandler{backendMode: backendMode}
}

// HealthCheck handles GET /healthz
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", HealthStatus{
		Status:  "ok",
		Backend: h.backendMode,
		Version: version.Current(),
	})
}
