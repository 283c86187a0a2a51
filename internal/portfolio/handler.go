package portfolio

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler exposes the read-only portfolio routes.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches portfolio routes to the /api group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.root)
	rg.GET("/profile", h.profile)
	rg.GET("/skills", h.skills)
	rg.GET("/experience", h.experience)
	rg.GET("/projects", h.projects)
	rg.GET("/portfolio", h.record)
	rg.GET("/portfolio/:section", h.section)
}

func (h *Handler) root(c *gin.Context) {
	respond.OK(c, gin.H{"message": RootMessage})
}

func (h *Handler) profile(c *gin.Context) {
	respond.OK(c, h.Svc.Profile())
}

func (h *Handler) skills(c *gin.Context) {
	respond.OK(c, h.Svc.Skills())
}

func (h *Handler) experience(c *gin.Context) {
	respond.OK(c, h.Svc.Experience())
}

func (h *Handler) projects(c *gin.Context) {
	respond.OK(c, h.Svc.Projects())
}

func (h *Handler) record(c *gin.Context) {
	respond.OK(c, h.Svc.Record())
}

func (h *Handler) section(c *gin.Context) {
	name := c.Param("section")
	data, err := h.Svc.Section(name)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "section not found", gin.H{"section": name})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load section", nil)
		return
	}
	respond.OK(c, data)
}
