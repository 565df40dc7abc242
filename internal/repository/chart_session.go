package repository

import (
	"context"
	"errors"
	"fmt"

	"production-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const storeSessionRetries = 5

// ChartSessionRepository handles database operations for stored chart sessions
type ChartSessionRepository struct {
	db *gorm.DB
}

// NewChartSessionRepository creates a new chart session repository
func NewChartSessionRepository(db *gorm.DB) *ChartSessionRepository {
	return &ChartSessionRepository{db: db}
}

// Store makes session the only active row for its session name. The previous
// active rows are locked and deactivated in the same transaction as the insert.
// A concurrent writer that wins the race trips the partial unique index and the
// transaction is retried.
func (r *ChartSessionRepository) Store(ctx context.Context, session *models.ChartSession) error {
	var err error
	for attempt := 0; attempt < storeSessionRetries; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var locked []models.ChartSession
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").
				Where("session_name = ? AND is_active = ?", session.SessionName, true).
				Find(&locked).Error; err != nil {
				return fmt.Errorf("lock active sessions: %w", err)
			}
			if len(locked) > 0 {
				if err := tx.Model(&models.ChartSession{}).
					Where("session_name = ? AND is_active = ?", session.SessionName, true).
					Update("is_active", false).Error; err != nil {
					return fmt.Errorf("deactivate sessions: %w", err)
				}
			}
			session.IsActive = true
			if err := tx.Create(session).Error; err != nil {
				return fmt.Errorf("insert session: %w", err)
			}
			return nil
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		session.ID = uuid.Nil
	}
	return err
}

// GetActive returns the active session for a session name
func (r *ChartSessionRepository) GetActive(ctx context.Context, sessionName string) (*models.ChartSession, error) {
	var session models.ChartSession
	err := r.db.WithContext(ctx).
		Where("session_name = ? AND is_active = ?", sessionName, true).
		Order("created_at DESC").
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListBySessionName returns the newest sessions for a session name, active or not
func (r *ChartSessionRepository) ListBySessionName(ctx context.Context, sessionName string, limit int) ([]models.ChartSession, error) {
	var sessions []models.ChartSession
	err := r.db.WithContext(ctx).
		Where("session_name = ?", sessionName).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
