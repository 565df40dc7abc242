package handlers

import (
	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for shift resolution
type CalendarHandler struct {
	calendarService service.CalendarServiceInterface
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService service.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// Resolve handles GET /calendar/resolve?subject=&date=
// @Summary Resolve a shift
// @Description Resolve the shift of an employee or operator team on a date: override, then holiday, then rotation
// @Tags calendar
// @Produce json
// @Param subject query string true "Employee code or operator team"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=calendar.Resolution}
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Failure 500 {object} ErrorResponse "Invalid calendar data"
// @Security BearerAuth
// @Router /calendar/resolve [get]
func (h *CalendarHandler) Resolve(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		respondBadRequest(c, "subject is required")
		return
	}
	date, err := calendar.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	if date.IsZero() {
		respondBadRequest(c, "date is required")
		return
	}

	resolution, err := h.calendarService.Resolve(c, subject, date)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, resolution)
}

// Windows handles GET /calendar/windows?subject=&from=&to=
// @Summary List shift windows
// @Description List the effective shift windows of a subject starting within an inclusive date range
// @Tags calendar
// @Produce json
// @Param subject query string true "Employee code or operator team"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=[]calendar.Window}
// @Failure 400 {object} ErrorResponse "Missing or invalid parameters"
// @Security BearerAuth
// @Router /calendar/windows [get]
func (h *CalendarHandler) Windows(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		respondBadRequest(c, "subject is required")
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

	windows, err := h.calendarService.Windows(c, subject, from, to)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	respondOK(c, windows)
}
