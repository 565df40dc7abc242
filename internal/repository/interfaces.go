package repository

import (
	"context"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CalendarRepositoryInterface defines the interface for calendar repository operations
type CalendarRepositoryInterface interface {
	calendar.Source
	UpsertTemplate(ctx context.Context, t *models.ShiftTemplate) error
	UpsertRotationStep(ctx context.Context, s *models.RotationStep) error
	UpsertAssignment(ctx context.Context, a *models.ShiftAssignment) error
	CreateHoliday(ctx context.Context, h *models.Holiday) error
}

// DailyScheduleRepositoryInterface defines the interface for daily schedule repository operations
type DailyScheduleRepositoryInterface interface {
	GetByEmployeeAndRange(ctx context.Context, employeeCode string, from, to time.Time) ([]models.DailySchedule, error)
	Upsert(ctx context.Context, schedule *models.DailySchedule) error
}

// ChartSessionRepositoryInterface defines the interface for chart session repository operations
type ChartSessionRepositoryInterface interface {
	Store(ctx context.Context, session *models.ChartSession) error
	GetActive(ctx context.Context, sessionName string) (*models.ChartSession, error)
	ListBySessionName(ctx context.Context, sessionName string, limit int) ([]models.ChartSession, error)
}

var (
	_ CalendarRepositoryInterface      = (*CalendarRepository)(nil)
	_ DailyScheduleRepositoryInterface = (*DailyScheduleRepository)(nil)
	_ ChartSessionRepositoryInterface  = (*ChartSessionRepository)(nil)
)
