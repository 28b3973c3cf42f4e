package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inventorypro/backend/internal/interfaces/http/dto"
)

// StoragePinger reports the health of the storage backend
type StoragePinger interface {
	Ping() error
}

// SystemHandler handles health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	storage  StoragePinger
	fallback bool
}

// NewSystemHandler creates a new SystemHandler. fallback marks a
// process running on the SQLite fallback store.
func NewSystemHandler(storage StoragePinger, fallback bool) *SystemHandler {
	return &SystemHandler{storage: storage, fallback: fallback}
}

// HealthResponse reports service and storage health
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Health reports service health including the active storage backend
func (h *SystemHandler) Health(c *gin.Context) {
	storage := "postgres"
	if h.fallback {
		storage = "sqlite"
	}

	if err := h.storage.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(dto.ErrCodeStorageUnavailable, "Storage backend is not reachable"))
		return
	}

	h.Success(c, HealthResponse{Status: "ok", Storage: storage})
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
	}
}
