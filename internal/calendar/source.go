package calendar

import (
	"context"
	"sort"
)

// ShiftTemplate is a named rotation pattern worked by an operator team
type ShiftTemplate struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	TeamLabel string `json:"team_label" yaml:"team_label"`
}

// RotationStep is one cycle day of a template's rotation
type RotationStep struct {
	TemplateID string `json:"template_id" yaml:"template_id"`
	StepOrder  int    `json:"step_order" yaml:"step_order"`
	ShiftName  string `json:"shift_name" yaml:"shift_name"`
	StartTime  string `json:"start_time" yaml:"start_time"`
	EndTime    string `json:"end_time" yaml:"end_time"`
	Overnight  bool   `json:"overnight" yaml:"overnight"`
	DayOff     bool   `json:"day_off" yaml:"day_off"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Assignment binds a subject (employee code or operator team) to a template
type Assignment struct {
	SubjectCode string `json:"subject_code" yaml:"subject_code"`
	TemplateID  string `json:"template_id" yaml:"template_id"`
	AnchorDate  Date   `json:"anchor_date" yaml:"anchor_date"`
	GroupCode   string `json:"group_code,omitempty" yaml:"group_code,omitempty"`
}

// Override replaces the rotation-derived shift of a subject on one date
type Override struct {
	ID          string `json:"id" yaml:"id"`
	SubjectCode string `json:"subject_code" yaml:"subject_code"`
	WorkDate    Date   `json:"work_date" yaml:"work_date"`
	ShiftName   string `json:"shift_name" yaml:"shift_name"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	EndTime     string `json:"end_time" yaml:"end_time"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	Overnight   bool   `json:"overnight" yaml:"overnight"`
}

// Holiday marks a non-working date, globally or for one group.
// Recurrence, when set, is a 5-field cron expression and the holiday applies on every
// day the expression fires on or after Date.
type Holiday struct {
	Date       Date   `json:"date" yaml:"date"`
	Name       string `json:"name" yaml:"name"`
	GroupCode  string `json:"group_code,omitempty" yaml:"group_code,omitempty"`
	Recurrence string `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
}

// Source is the read-only calendar data store
type Source interface {
	GetShiftTemplates(ctx context.Context) ([]ShiftTemplate, error)
	GetRotationSteps(ctx context.Context, templateID string) ([]RotationStep, error)
	GetShiftAssignments(ctx context.Context) ([]Assignment, error)
	GetOverrides(ctx context.Context, from, to Date) ([]Override, error)
	GetHolidays(ctx context.Context, from, to Date) ([]Holiday, error)
}

// MemorySource serves calendar data from memory (CLI plan files, tests)
type MemorySource struct {
	Templates   []ShiftTemplate `json:"templates" yaml:"templates"`
	Steps       []RotationStep  `json:"rotation_steps" yaml:"rotation_steps"`
	Assignments []Assignment    `json:"assignments" yaml:"assignments"`
	Overrides   []Override      `json:"overrides" yaml:"overrides"`
	Holidays    []Holiday       `json:"holidays" yaml:"holidays"`
}

var _ Source = (*MemorySource)(nil)

func (m *MemorySource) GetShiftTemplates(_ context.Context) ([]ShiftTemplate, error) {
	return append([]ShiftTemplate(nil), m.Templates...), nil
}

func (m *MemorySource) GetRotationSteps(_ context.Context, templateID string) ([]RotationStep, error) {
	var steps []RotationStep
	for _, s := range m.Steps {
		if s.TemplateID == templateID {
			steps = append(steps, s)
		}
	}
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].StepOrder < steps[j].StepOrder })
	return steps, nil
}

func (m *MemorySource) GetShiftAssignments(_ context.Context) ([]Assignment, error) {
	return append([]Assignment(nil), m.Assignments...), nil
}

func (m *MemorySource) GetOverrides(_ context.Context, from, to Date) ([]Override, error) {
	var out []Override
	for _, o := range m.Overrides {
		if !o.WorkDate.Before(from) && !o.WorkDate.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemorySource) GetHolidays(_ context.Context, from, to Date) ([]Holiday, error) {
	var out []Holiday
	for _, h := range m.Holidays {
		if h.Recurrence != "" || (!h.Date.Before(from) && !h.Date.After(to)) {
			out = append(out, h)
		}
	}
	return out, nil
}
