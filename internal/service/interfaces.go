package service

import (
	"context"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/chart"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchedulerServiceInterface defines the interface for scheduler runs
type SchedulerServiceInterface interface {
	Access(identity Identity) *AccessResponse
	Run(ctx context.Context, identity Identity, req *RunRequest) (*RunResponse, error)
}

// ChartSessionServiceInterface defines the interface for stored chart sessions
type ChartSessionServiceInterface interface {
	StoreSession(ctx context.Context, identity Identity, req *StoreSessionRequest) (*ChartSessionResponse, error)
	StoreChart(ctx context.Context, identity Identity, sessionID string, view chart.TimelineView, data *chart.Data, machines *chart.MachineData) (*ChartSessionResponse, error)
	GetActiveSession(ctx context.Context, email string) (*ChartSessionResponse, error)
	ListSessions(ctx context.Context, email string, limit int) ([]ChartSessionSummary, error)
}

// EmployeeScheduleServiceInterface defines the interface for employee schedule lookups
type EmployeeScheduleServiceInterface interface {
	FetchEmployeeSchedule(ctx context.Context, employeeCode string, from, to calendar.Date) (*EmployeeScheduleResponse, error)
}

// CalendarServiceInterface defines the interface for shift resolution
type CalendarServiceInterface interface {
	Resolve(ctx context.Context, subject string, date calendar.Date) (*calendar.Resolution, error)
	Windows(ctx context.Context, subject string, from, to calendar.Date) ([]calendar.Window, error)
}

var (
	_ SchedulerServiceInterface        = (*SchedulerService)(nil)
	_ ChartSessionServiceInterface     = (*ChartSessionService)(nil)
	_ EmployeeScheduleServiceInterface = (*EmployeeScheduleService)(nil)
	_ CalendarServiceInterface         = (*CalendarService)(nil)
)
