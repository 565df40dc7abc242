package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"production-scheduler-backend/internal/calendar"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/logger"
)

const maxWindowRangeDays = 93

// CalendarService resolves shifts against a fresh calendar snapshot per request
type CalendarService struct {
	source calendar.Source
	loc    *time.Location
}

// NewCalendarService creates a new calendar service
func NewCalendarService(source calendar.Source, loc *time.Location) *CalendarService {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarService{source: source, loc: loc}
}

// Resolve returns the shift, holiday or nothing that applies to subject on date
func (s *CalendarService) Resolve(ctx context.Context, subject string, date calendar.Date) (*calendar.Resolution, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject", "is required")
	}
	if date.IsZero() {
		return nil, apperrors.ErrInvalidDate
	}

	cal, err := s.load(ctx, date, date)
	if err != nil {
		return nil, err
	}
	resolution := cal.Resolve(subject, date)
	return &resolution, nil
}

// Windows lists the effective shift windows of subject starting within [from, to]
func (s *CalendarService) Windows(ctx context.Context, subject string, from, to calendar.Date) ([]calendar.Window, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject", "is required")
	}
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.ErrInvalidDate
	}
	if from.After(to) || calendar.DaysBetween(from, to) > maxWindowRangeDays {
		return nil, apperrors.ErrInvalidTimeRange
	}

	cal, err := s.load(ctx, from, to)
	if err != nil {
		return nil, err
	}
	windows := cal.Windows(subject, from, to)
	if windows == nil {
		windows = []calendar.Window{}
	}
	return windows, nil
}

func (s *CalendarService) load(ctx context.Context, from, to calendar.Date) (*calendar.Calendar, error) {
	cal, err := calendar.Load(ctx, s.source, from, to, calendar.Options{
		Location: s.loc,
		Logger:   logger.WithContext(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}
	return cal, nil
}
