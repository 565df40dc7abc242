package repository

import (
	"context"
	"fmt"
	"time"

	"production-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyScheduleRepository handles database operations for employee daily schedules
type DailyScheduleRepository struct {
	db *gorm.DB
}

// NewDailyScheduleRepository creates a new daily schedule repository
func NewDailyScheduleRepository(db *gorm.DB) *DailyScheduleRepository {
	return &DailyScheduleRepository{db: db}
}

// GetByEmployeeAndRange returns the schedule rows of an employee with work_date in
// [from, to], ascending by date
func (r *DailyScheduleRepository) GetByEmployeeAndRange(ctx context.Context, employeeCode string, from, to time.Time) ([]models.DailySchedule, error) {
	var schedules []models.DailySchedule
	err := r.db.WithContext(ctx).
		Where("employee_code = ? AND work_date >= ? AND work_date <= ?", employeeCode, from, to).
		Order("work_date ASC").
		Find(&schedules).Error
	return schedules, err
}

// Upsert creates or replaces the schedule of an employee on one date. An empty origin is stored as manual.
func (r *DailyScheduleRepository) Upsert(ctx context.Context, schedule *models.DailySchedule) error {
	if schedule.Origin == "" {
		schedule.Origin = models.ScheduleOriginManual
	}
	if !schedule.Origin.IsValid() {
		return fmt.Errorf("unknown schedule origin %q", schedule.Origin)
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_code"}, {Name: "work_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"shift_name", "start_time", "end_time", "color", "overnight", "origin", "updated_at", "updated_by"}),
	}).Create(schedule).Error
}
