package handlers

import (
	"net/http"
	"strconv"

	"production-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChartSessionHandler handles HTTP requests for stored chart sessions
type ChartSessionHandler struct {
	chartService service.ChartSessionServiceInterface
}

// NewChartSessionHandler creates a new chart session handler
func NewChartSessionHandler(chartService service.ChartSessionServiceInterface) *ChartSessionHandler {
	return &ChartSessionHandler{
		chartService: chartService,
	}
}

// StoreChartData handles POST /chart-data
// @Summary Store chart data
// @Description Store a chart and machine payload as the caller's only active session
// @Tags chart-data
// @Accept json
// @Produce json
// @Param request body service.StoreSessionRequest true "Chart session"
// @Success 201 {object} SuccessResponse{data=service.ChartSessionResponse}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /chart-data [post]
func (h *ChartSessionHandler) StoreChartData(c *gin.Context) {
	var req service.StoreSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.chartService.StoreSession(c, identityFrom(c), &req)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: session})
}

// GetChartData handles GET /chart-data
// @Summary Get the active chart session
// @Description Return the caller's active chart session
// @Tags chart-data
// @Produce json
// @Success 200 {object} SuccessResponse{data=service.ChartSessionResponse}
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "No active session"
// @Security BearerAuth
// @Router /chart-data [get]
func (h *ChartSessionHandler) GetChartData(c *gin.Context) {
	session, err := h.chartService.GetActiveSession(c, identityFrom(c).Email)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, session)
}

// ListChartHistory handles GET /chart-data/history
// @Summary List stored chart sessions
// @Description Return the caller's newest chart sessions without their payloads
// @Tags chart-data
// @Produce json
// @Param limit query int false "Number of sessions (default 20, max 100)"
// @Success 200 {object} SuccessResponse{data=[]service.ChartSessionSummary}
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /chart-data/history [get]
func (h *ChartSessionHandler) ListChartHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "limit must be an integer")
			return
		}
		limit = parsed
	}

	sessions, err := h.chartService.ListSessions(c, identityFrom(c).Email, limit)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, sessions)
}
