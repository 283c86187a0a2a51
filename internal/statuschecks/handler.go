package statuschecks

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires the legacy status endpoints to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/status", h.create)
	rg.GET("/status", h.list)
}

// createRequest only checks shape: client_name must be present and a string.
// Empty names are stored as given.
type createRequest struct {
	ClientName *string `json:"client_name"`
}

func (r createRequest) clientName() (string, error) {
	if r.ClientName == nil {
		return "", fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	return *r.ClientName, nil
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body: client_name must be a string", nil)
		return
	}
	name, err := req.clientName()
	if err != nil {
		writeError(c, err, "")
		return
	}
	middleware.AddLogField(c, "client_name", name)

	check, err := h.Svc.Create(c.Request.Context(), name)
	if err != nil {
		writeError(c, err, "failed to store status check")
		return
	}
	middleware.AddLogField(c, "status_check_id", check.ID)
	respond.Created(c, check)
}

func (h *Handler) list(c *gin.Context) {
	checks, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list status checks")
		return
	}
	respond.OK(c, checks)
}

func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrStoreUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "store_unavailable", message, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", message, nil)
	}
}
