package handlers

import (
	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for employee schedules
type ScheduleHandler struct {
	scheduleService service.EmployeeScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.EmployeeScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// GetEmployeeSchedule handles GET /schedule?employee_code=&from=&to=
// @Summary Get an employee schedule
// @Description Return the explicit daily schedule rows of an employee for an inclusive date range, ascending by date
// @Tags schedule
// @Produce json
// @Param employee_code query string true "Employee code"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=service.EmployeeScheduleResponse}
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Failure 500 {object} ErrorResponse "Persistence failure"
// @Security BearerAuth
// @Router /schedule [get]
func (h *ScheduleHandler) GetEmployeeSchedule(c *gin.Context) {
	employeeCode := c.Query("employee_code")
	if employeeCode == "" {
		respondBadRequest(c, "employee_code is required")
		return
	}
	from, err := calendar.ParseDate(c.Query("from"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	to, err := calendar.ParseDate(c.Query("to"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	if from.IsZero() || to.IsZero() {
		respondBadRequest(c, "from and to are required")
		return
	}

	schedule, err := h.scheduleService.FetchEmployeeSchedule(c, employeeCode, from, to)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, schedule)
}
