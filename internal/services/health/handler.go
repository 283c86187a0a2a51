package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes mounts liveness and readiness probes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.GET("/ready", h.ready)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, h.Svc.Status())
}

func (h *Handler) ready(c *gin.Context) {
	ok, results := h.Svc.Ready(c.Request.Context())
	if !ok {
		respond.JSON(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": results})
		return
	}
	respond.OK(c, gin.H{"status": "ready", "checks": results})
}
