package repository

import (
	"context"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CalendarRepository reads and writes shift calendar data. It serves as the
// calendar.Source of the scheduler.
type CalendarRepository struct {
	db *gorm.DB
}

var _ calendar.Source = (*CalendarRepository)(nil)

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// GetShiftTemplates returns every shift template
func (r *CalendarRepository) GetShiftTemplates(ctx context.Context) ([]calendar.ShiftTemplate, error) {
	var rows []models.ShiftTemplate
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]calendar.ShiftTemplate, 0, len(rows))
	for _, t := range rows {
		out = append(out, calendar.ShiftTemplate{ID: t.Code, Name: t.Name, TeamLabel: t.TeamLabel})
	}
	return out, nil
}

// GetRotationSteps returns the steps of a template ordered by step_order
func (r *CalendarRepository) GetRotationSteps(ctx context.Context, templateID string) ([]calendar.RotationStep, error) {
	var rows []models.RotationStep
	err := r.db.WithContext(ctx).
		Where("template_code = ?", templateID).
		Order("step_order ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]calendar.RotationStep, 0, len(rows))
	for _, s := range rows {
		out = append(out, calendar.RotationStep{
			TemplateID: s.TemplateCode,
			StepOrder:  s.StepOrder,
			ShiftName:  s.ShiftName,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Overnight:  s.Overnight,
			DayOff:     s.DayOff,
			Color:      s.Color,
		})
	}
	return out, nil
}

// GetShiftAssignments returns every subject-to-template binding
func (r *CalendarRepository) GetShiftAssignments(ctx context.Context) ([]calendar.Assignment, error) {
	var rows []models.ShiftAssignment
	if err := r.db.WithContext(ctx).Order("subject_code").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]calendar.Assignment, 0, len(rows))
	for _, a := range rows {
		out = append(out, calendar.Assignment{
			SubjectCode: a.SubjectCode,
			TemplateID:  a.TemplateCode,
			AnchorDate:  calendar.NewDate(time.Time(a.AnchorDate)),
			GroupCode:   a.GroupCode,
		})
	}
	return out, nil
}

// GetOverrides returns daily schedules in [from, to] as calendar overrides
func (r *CalendarRepository) GetOverrides(ctx context.Context, from, to calendar.Date) ([]calendar.Override, error) {
	var rows []models.DailySchedule
	err := r.db.WithContext(ctx).
		Where("work_date >= ? AND work_date <= ?", from.Time, to.Time).
		Order("work_date ASC").
		Order("updated_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]calendar.Override, 0, len(rows))
	for _, s := range rows {
		out = append(out, calendar.Override{
			ID:          s.ID.String(),
			SubjectCode: s.EmployeeCode,
			WorkDate:    calendar.NewDate(time.Time(s.WorkDate)),
			ShiftName:   s.ShiftName,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Color:       s.Color,
			Overnight:   s.Overnight,
		})
	}
	return out, nil
}

// GetHolidays returns holidays dated in [from, to] plus every recurring holiday
func (r *CalendarRepository) GetHolidays(ctx context.Context, from, to calendar.Date) ([]calendar.Holiday, error) {
	var rows []models.Holiday
	err := r.db.WithContext(ctx).
		Where("(holiday_date >= ? AND holiday_date <= ?) OR recurrence <> ''", from.Time, to.Time).
		Order("holiday_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]calendar.Holiday, 0, len(rows))
	for _, h := range rows {
		out = append(out, calendar.Holiday{
			Date:       calendar.NewDate(time.Time(h.HolidayDate)),
			Name:       h.Name,
			GroupCode:  h.GroupCode,
			Recurrence: h.Recurrence,
		})
	}
	return out, nil
}

// UpsertTemplate creates or updates a template keyed by code
func (r *CalendarRepository) UpsertTemplate(ctx context.Context, t *models.ShiftTemplate) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "team_label", "updated_at"}),
	}).Create(t).Error
}

// UpsertRotationStep creates or updates a step keyed by (template_code, step_order)
func (r *CalendarRepository) UpsertRotationStep(ctx context.Context, s *models.RotationStep) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "template_code"}, {Name: "step_order"}},
		DoUpdates: clause.AssignmentColumns([]string{"shift_name", "start_time", "end_time", "overnight", "day_off", "color", "updated_at"}),
	}).Create(s).Error
}

// UpsertAssignment creates or updates the assignment of a subject
func (r *CalendarRepository) UpsertAssignment(ctx context.Context, a *models.ShiftAssignment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"template_code", "anchor_date", "group_code", "updated_at"}),
	}).Create(a).Error
}

// CreateHoliday inserts a holiday
func (r *CalendarRepository) CreateHoliday(ctx context.Context, h *models.Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

