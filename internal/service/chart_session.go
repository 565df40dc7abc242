package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"production-scheduler-backend/internal/chart"
	"production-scheduler-backend/internal/database/models"
	apperrors "production-scheduler-backend/internal/errors"
	"production-scheduler-backend/internal/logger"
	"production-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultSessionHistory = 20
	maxSessionHistory     = 100
)

// Identity is the caller as materialised by the auth middleware
type Identity struct {
	UserID      string
	Email       string
	Permissions []string
}

// ChartSessionService handles business logic for stored chart sessions
type ChartSessionService struct {
	repo      repository.ChartSessionRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewChartSessionService creates a new chart session service
func NewChartSessionService(repo repository.ChartSessionRepositoryInterface, validator *validator.Validate) *ChartSessionService {
	return &ChartSessionService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// StoreSessionRequest represents the request to store a chart session
type StoreSessionRequest struct {
	SessionID    string          `json:"session_id" validate:"omitempty,max=100"`
	TimelineView string          `json:"timeline_view" validate:"omitempty,max=20"`
	ChartData    json.RawMessage `json:"chart_data" validate:"required"`
	MachineData  json.RawMessage `json:"machine_data" validate:"required"`
}

// ChartSessionResponse represents a stored chart session
type ChartSessionResponse struct {
	ID            uuid.UUID       `json:"id"`
	UserID        string          `json:"user_id"`
	SessionName   string          `json:"session_name"`
	SessionID     string          `json:"session_id"`
	TimelineView  string          `json:"timeline_view"`
	ChartData     json.RawMessage `json:"chart_data"`
	MachineData   json.RawMessage `json:"machine_data"`
	SyncTimestamp string          `json:"sync_timestamp"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at"`
}

// ChartSessionSummary is a history entry without the payloads
type ChartSessionSummary struct {
	ID            uuid.UUID `json:"id"`
	SessionID     string    `json:"session_id"`
	TimelineView  string    `json:"timeline_view"`
	SyncTimestamp string    `json:"sync_timestamp"`
	IsActive      bool      `json:"is_active"`
}

// StoreSession makes the given chart the caller's only active session
func (s *ChartSessionService) StoreSession(ctx context.Context, identity Identity, req *StoreSessionRequest) (*ChartSessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if strings.TrimSpace(identity.Email) == "" {
		return nil, apperrors.ErrUserEmailNotFound
	}

	view := chart.TimelineView(req.TimelineView)
	if view == "" {
		view = chart.ViewWeek
	}
	if !view.IsValid() {
		return nil, apperrors.ErrInvalidTimelineView
	}
	if !json.Valid(req.ChartData) {
		return nil, apperrors.NewValidationError("chart_data", "must be valid JSON")
	}
	if !json.Valid(req.MachineData) {
		return nil, apperrors.NewValidationError("machine_data", "must be valid JSON")
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := &models.ChartSession{
		UserID:        identity.UserID,
		SessionName:   chart.SessionName(identity.Email),
		SessionID:     sessionID,
		TimelineView:  string(view),
		ChartData:     datatypes.JSON(req.ChartData),
		MachineData:   datatypes.JSON(req.MachineData),
		SyncTimestamp: s.now().UTC(),
	}
	session.Stamp(identity.UserID)

	if err := s.repo.Store(ctx, session); err != nil {
		logger.WithContext(ctx).Errorf("Failed to store chart session %s: %v", session.SessionName, err)
		return nil, apperrors.NewPersistenceError("store chart session", err)
	}

	return toChartSessionResponse(session), nil
}

// StoreChart serialises a built chart and stores it as the caller's active session
func (s *ChartSessionService) StoreChart(ctx context.Context, identity Identity, sessionID string, view chart.TimelineView, data *chart.Data, machines *chart.MachineData) (*ChartSessionResponse, error) {
	chartJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart data: %w", err)
	}
	machineJSON, err := json.Marshal(machines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode machine data: %w", err)
	}
	return s.StoreSession(ctx, identity, &StoreSessionRequest{
		SessionID:    sessionID,
		TimelineView: string(view),
		ChartData:    chartJSON,
		MachineData:  machineJSON,
	})
}

// GetActiveSession returns the active session of the user with the given email
func (s *ChartSessionService) GetActiveSession(ctx context.Context, email string) (*ChartSessionResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrUserEmailNotFound
	}
	session, err := s.repo.GetActive(ctx, chart.SessionName(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChartSessionNotFound
		}
		return nil, apperrors.NewPersistenceError("get chart session", err)
	}
	return toChartSessionResponse(session), nil
}

// ListSessions returns the newest stored sessions of a user, active or not
func (s *ChartSessionService) ListSessions(ctx context.Context, email string, limit int) ([]ChartSessionSummary, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrUserEmailNotFound
	}
	if limit < 1 || limit > maxSessionHistory {
		limit = defaultSessionHistory
	}
	sessions, err := s.repo.ListBySessionName(ctx, chart.SessionName(email), limit)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list chart sessions", err)
	}

	summaries := make([]ChartSessionSummary, len(sessions))
	for i, session := range sessions {
		summaries[i] = ChartSessionSummary{
			ID:            session.ID,
			SessionID:     session.SessionID,
			TimelineView:  session.TimelineView,
			SyncTimestamp: session.SyncTimestamp.Format(time.RFC3339),
			IsActive:      session.IsActive,
		}
	}
	return summaries, nil
}

func toChartSessionResponse(session *models.ChartSession) *ChartSessionResponse {
	return &ChartSessionResponse{
		ID:            session.ID,
		UserID:        session.UserID,
		SessionName:   session.SessionName,
		SessionID:     session.SessionID,
		TimelineView:  session.TimelineView,
		ChartData:     json.RawMessage(session.ChartData),
		MachineData:   json.RawMessage(session.MachineData),
		SyncTimestamp: session.SyncTimestamp.Format(time.RFC3339),
		IsActive:      session.IsActive,
		CreatedAt:     session.CreatedAt.Format(time.RFC3339),
	}
}
