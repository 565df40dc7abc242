package handlers

import (
	"net/http"

	"production-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SchedulerHandler handles HTTP requests for scheduler runs
type SchedulerHandler struct {
	schedulerService service.SchedulerServiceInterface
}

// NewSchedulerHandler creates a new scheduler handler
func NewSchedulerHandler(schedulerService service.SchedulerServiceInterface) *SchedulerHandler {
	return &SchedulerHandler{
		schedulerService: schedulerService,
	}
}

// GetAccess handles GET /scheduler/access
// @Summary Get scheduler run access
// @Description Return which scheduling profiles the caller may run and the profile an advanced request resolves to
// @Tags scheduler
// @Produce json
// @Success 200 {object} SuccessResponse{data=service.AccessResponse}
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /scheduler/access [get]
func (h *SchedulerHandler) GetAccess(c *gin.Context) {
	respondOK(c, h.schedulerService.Access(identityFrom(c)))
}

// Run handles POST /scheduler/run
// @Summary Run the scheduler
// @Description Validate orders, schedule the valid ones on the machine pool and store the chart as the caller's active session.
// @Description A run that hits the processing time limit returns 200 with outcome "timed_out" and a partial result.
// @Tags scheduler
// @Accept json
// @Produce json
// @Param request body service.RunRequest true "Orders and run options"
// @Success 200 {object} SuccessResponse{data=service.RunResponse}
// @Failure 400 {object} ErrorResponse "Invalid request or no valid orders"
// @Failure 403 {object} ErrorResponse "Run access denied"
// @Failure 409 {object} ErrorResponse "A run is already in progress"
// @Failure 413 {object} ErrorResponse "Batch too large"
// @Failure 500 {object} ErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /scheduler/run [post]
func (h *SchedulerHandler) Run(c *gin.Context) {
	var req service.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.schedulerService.Run(c, identityFrom(c), &req)
	if err != nil {
		var data interface{}
		if resp != nil {
			data = resp
		}
		respondError(c, err, data)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: resp})
}
