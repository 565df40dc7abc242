package handlers

import (
	"net/http"
	"strconv"
	"time"

	"production-scheduler-backend/internal/database"
	"production-scheduler-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports database connectivity and whether shift calendar data is loaded
type HealthHandler struct {
	db      *gorm.DB
	version string
	now     func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	if version == "" {
		version = "dev"
	}
	return &HealthHandler{db: db, version: version, now: time.Now}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Database connectivity plus the size of the loaded shift calendar
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
		Version:   h.version,
		Services:  map[string]string{},
	}

	if err := database.Ping(h.db); err != nil {
		resp.Status = "unhealthy"
		resp.Services["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp.Services["database"] = "healthy"

	// An empty calendar leaves every machine unstaffed, so it degrades the status without failing it
	templates, err := h.count(c, &models.ShiftTemplate{})
	switch {
	case err != nil:
		resp.Services["calendar"] = "error: " + err.Error()
		resp.Status = "degraded"
	case templates == 0:
		resp.Services["calendar"] = "empty"
		resp.Status = "degraded"
	default:
		resp.Services["calendar"] = strconv.FormatInt(templates, 10) + " shift templates"
	}

	c.JSON(http.StatusOK, resp)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Ready once the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	status := http.StatusOK
	services := map[string]string{"database": "ready"}
	if err := database.Ping(h.db); err != nil {
		status = http.StatusServiceUnavailable
		services["database"] = "not ready: " + err.Error()
	}

	c.JSON(status, gin.H{
		"ready":     status == http.StatusOK,
		"timestamp": h.now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": h.now()})
}

func (h *HealthHandler) count(c *gin.Context, model interface{}) (int64, error) {
	var n int64
	err := h.db.WithContext(c.Request.Context()).Model(model).Count(&n).Error
	return n, err
}
