package service

import (
	"context"
	"strings"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/chart"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/repository"
)

// EmployeeScheduleService reads explicit daily schedules of employees
type EmployeeScheduleService struct {
	repo repository.DailyScheduleRepositoryInterface
}

// NewEmployeeScheduleService creates a new employee schedule service
func NewEmployeeScheduleService(repo repository.DailyScheduleRepositoryInterface) *EmployeeScheduleService {
	return &EmployeeScheduleService{repo: repo}
}

// ScheduleEntry is one day of an employee schedule
type ScheduleEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	ShiftName string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Color     string `json:"color"`
	Overnight bool   `json:"overnight"`
}

// EmployeeScheduleResponse wraps the entries of one employee
type EmployeeScheduleResponse struct {
	EmployeeCode string          `json:"employee_code"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	Schedule     []ScheduleEntry `json:"schedule"`
}

// FetchEmployeeSchedule returns the schedule rows of an employee for the inclusive
// date range, ascending by date. Rows without a color get the default run color.
func (s *EmployeeScheduleService) FetchEmployeeSchedule(ctx context.Context, employeeCode string, from, to calendar.Date) (*EmployeeScheduleResponse, error) {
	employeeCode = strings.TrimSpace(employeeCode)
	if employeeCode == "" {
		return nil, apperrors.NewValidationError("employee_code", "is required")
	}
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.ErrInvalidDate
	}
	if from.After(to) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	rows, err := s.repo.GetByEmployeeAndRange(ctx, employeeCode, from.Time, to.Time)
	if err != nil {
		return nil, apperrors.NewPersistenceError("fetch employee schedule", err)
	}

	entries := make([]ScheduleEntry, len(rows))
	for i, row := range rows {
		color := row.Color
		if color == "" {
			color = chart.RunColor
		}
		entries[i] = ScheduleEntry{
			ID:        row.ID.String(),
			Date:      calendar.NewDate(time.Time(row.WorkDate)).String(),
			ShiftName: row.ShiftName,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			Color:     color,
			Overnight: row.Overnight,
		}
	}

	return &EmployeeScheduleResponse{
		EmployeeCode: employeeCode,
		From:         from.String(),
		To:           to.String(),
		Schedule:     entries,
	}, nil
}
