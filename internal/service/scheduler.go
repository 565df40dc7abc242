package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/chart"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/logger"
	"production-scheduler-backend/internal/scheduling"
)

// SchedulerSettings is the static part of every run
type SchedulerSettings struct {
	Config   scheduling.Config
	Machines []scheduling.Machine
	Location *time.Location
}

// SchedulerService orchestrates validation, access resolution, the engine and session storage
type SchedulerService struct {
	source    calendar.Source
	sessions  ChartSessionServiceInterface
	validator scheduling.Validator
	settings  SchedulerSettings
	now       func() time.Time
	inflight  sync.Map
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(source calendar.Source, sessions ChartSessionServiceInterface, validator scheduling.Validator, settings SchedulerSettings) *SchedulerService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &SchedulerService{
		source:    source,
		sessions:  sessions,
		validator: validator,
		settings:  settings,
		now:       time.Now,
	}
}

// SetClock replaces time.Now for run timestamps and timeout accounting
func (s *SchedulerService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// RunRequest represents the request to run the scheduler
type RunRequest struct {
	Orders       []scheduling.Order `json:"orders"`
	Profile      scheduling.Profile `json:"profile,omitempty"`
	StartAt      *time.Time         `json:"start_at,omitempty"`
	TimelineView chart.TimelineView `json:"timeline_view,omitempty"`
	SessionID    string             `json:"session_id,omitempty"`
}

// RejectedOrder is an input order that failed validation
type RejectedOrder struct {
	Index      int      `json:"index"`
	OrderID    string   `json:"order_id,omitempty"`
	PartNumber string   `json:"part_number"`
	Errors     []string `json:"errors"`
}

// AccessResponse reports what the caller may run
type AccessResponse struct {
	Access           scheduling.RunAccess       `json:"access"`
	Codes            scheduling.PermissionCodes `json:"codes"`
	EffectiveProfile scheduling.Profile         `json:"effective_profile,omitempty"`
	Disabled         bool                       `json:"disabled"`
}

// RunResponse is the outcome of a scheduler run
type RunResponse struct {
	RequestedProfile scheduling.Profile    `json:"requested_profile"`
	Profile          scheduling.Profile    `json:"profile"`
	Outcome          scheduling.RunOutcome `json:"outcome"`
	Result           *scheduling.Result    `json:"result,omitempty"`
	Rejected         []RejectedOrder       `json:"rejected"`
	Chart            *chart.Data           `json:"chart,omitempty"`
	Machines         *chart.MachineData    `json:"machines,omitempty"`
	Session          *ChartSessionResponse `json:"session,omitempty"`
}

// Access resolves the caller's run access from its permission codes
func (s *SchedulerService) Access(identity Identity) *AccessResponse {
	codes := scheduling.CodesFromPermissions(identity.Permissions)
	access := scheduling.DeriveRunPermissionsFromCodes(codes)
	resp := &AccessResponse{
		Access:   access,
		Codes:    codes,
		Disabled: !access.Any(),
	}
	if access.Any() {
		resp.EffectiveProfile = scheduling.ResolveProfileForExecution(scheduling.ProfileAdvanced, access)
	}
	return resp
}

// Run validates the orders, schedules the valid ones on the machine pool and stores
// the chart as the caller's active session. A rejected batch or a storage failure
// returns the response built so far together with the error.
func (s *SchedulerService) Run(ctx context.Context, identity Identity, req *RunRequest) (*RunResponse, error) {
	log := logger.WithContext(ctx).WithField("component", "scheduler")
	access := scheduling.RunAccessFromPermissions(identity.Permissions)

	// The chart session is keyed by email, so a run without one could never be stored
	if strings.TrimSpace(identity.Email) == "" {
		return nil, apperrors.ErrUserEmailNotFound
	}
	key := chart.SessionName(identity.Email)
	_, loading := s.inflight.LoadOrStore(key, struct{}{})
	if !loading {
		defer s.inflight.Delete(key)
	}

	if scheduling.IsRunActionDisabled(scheduling.RunActionState{
		OrdersCount: len(req.Orders),
		Loading:     loading,
		Access:      access,
	}) {
		switch {
		case !access.Any():
			return nil, apperrors.ErrRunAccessDenied
		case loading:
			return nil, apperrors.ErrRunInProgress
		default:
			return nil, apperrors.ErrNoValidOrders
		}
	}

	cfg := s.settings.Config
	if limit := cfg.BatchSizeLimit; limit > 0 && len(req.Orders) > limit {
		log.Warnf("Rejecting scheduler run with %d orders (limit %d)", len(req.Orders), limit)
		return &RunResponse{Outcome: scheduling.RunBatchTooLarge, Rejected: []RejectedOrder{}},
			apperrors.NewBatchTooLargeError(len(req.Orders), limit)
	}

	requested := req.Profile
	if requested == "" {
		requested = scheduling.ProfileAdvanced
	}
	if !requested.IsValid() {
		return nil, apperrors.NewValidationError("profile", "must be one of basic, advanced")
	}
	view := req.TimelineView
	if view == "" {
		view = chart.ViewWeek
	}
	if !view.IsValid() {
		return nil, apperrors.ErrInvalidTimelineView
	}
	profile := scheduling.ResolveProfileForExecution(requested, access)
	if profile != requested {
		log.Infof("Downgrading %s run to %s for %s", requested, profile, identity.Email)
	}
	cfg = profile.Apply(cfg)

	resp := &RunResponse{
		RequestedProfile: requested,
		Profile:          profile,
		Rejected:         []RejectedOrder{},
	}

	valid := make([]scheduling.Order, 0, len(req.Orders))
	for i, order := range req.Orders {
		order.PartNumber = strings.TrimSpace(order.PartNumber)
		if res := s.validator.Validate(order); !res.IsValid {
			resp.Rejected = append(resp.Rejected, RejectedOrder{
				Index:      i,
				OrderID:    order.ID,
				PartNumber: order.PartNumber,
				Errors:     res.Errors,
			})
			continue
		}
		valid = append(valid, order)
	}
	if len(valid) == 0 {
		return resp, apperrors.ErrNoValidOrders
	}
	if len(resp.Rejected) > 0 {
		log.Warnf("Rejected %d of %d orders during validation", len(resp.Rejected), len(req.Orders))
	}
	orders := scheduling.SortOrders(valid)

	start := s.now().In(s.settings.Location).Truncate(time.Minute)
	if req.StartAt != nil && !req.StartAt.IsZero() {
		start = req.StartAt.In(s.settings.Location)
	}
	cfg = cfg.Normalized()

	first := calendar.NewDate(start).AddDays(-1)
	last := calendar.NewDate(start).AddDays(cfg.HorizonDays + 1)
	cal, err := calendar.Load(ctx, s.source, first, last, calendar.Options{
		Location: s.settings.Location,
		Logger:   log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}

	engine := scheduling.NewEngine(cfg, cal, scheduling.WithLogger(log), scheduling.WithClock(s.now))
	result, err := engine.Schedule(ctx, orders, s.settings.Machines, start)
	if err != nil {
		if apperrors.IsBatchTooLarge(err) {
			resp.Outcome = scheduling.RunBatchTooLarge
			resp.Result = result
			return resp, err
		}
		return nil, fmt.Errorf("scheduling failed: %w", err)
	}
	resp.Outcome = result.Outcome
	resp.Result = result
	if result.TimedOut {
		log.Warnf("Scheduler run %s: %d orders unprocessed", apperrors.ErrSchedulingTimeout, len(result.Unprocessed))
	}

	resp.Chart, resp.Machines = chart.Build(result, chart.Options{
		Machines:    s.settings.Machines,
		Config:      cfg,
		Profile:     profile,
		GeneratedAt: s.now().UTC(),
	})

	session, err := s.sessions.StoreChart(ctx, identity, req.SessionID, view, resp.Chart, resp.Machines)
	if err != nil {
		var persistErr *apperrors.PersistenceError
		if !errors.As(err, &persistErr) {
			err = apperrors.NewPersistenceError("store chart session", err)
		}
		return resp, err
	}
	resp.Session = session

	log.Infof("Scheduler run finished: outcome=%s scheduled=%d unscheduled=%d unprocessed=%d passes=%d",
		result.Outcome, len(result.Scheduled), len(result.Unscheduled), len(result.Unprocessed), result.Passes)
	return resp, nil
}
