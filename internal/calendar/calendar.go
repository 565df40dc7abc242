package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	apperrors "production-scheduler-backend/internal/errors"
)

// Kind classifies a shift resolution
type Kind string

const (
	KindNone    Kind = "none"
	KindShift   Kind = "shift"
	KindHoliday Kind = "holiday"
)

// Resolution origin
const (
	OriginOverride = "override"
	OriginHoliday  = "holiday"
	OriginRotation = "rotation"
)

// Resolution is the outcome of resolving a subject's shift on a date
type Resolution struct {
	Kind    Kind    `json:"kind"`
	Origin  string  `json:"origin,omitempty"`
	Window  *Window `json:"window,omitempty"`
	Holiday string  `json:"holiday,omitempty"`
}

// Logger receives non-fatal calendar data warnings
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Options configures Load
type Options struct {
	Location *time.Location
	Logger   Logger
}

type rotation struct {
	template ShiftTemplate
	steps    []resolvedStep
}

type resolvedStep struct {
	RotationStep
	start, end Clock
}

type overrideKey struct {
	subject string
	date    string
}

type resolvedOverride struct {
	Override
	start, end Clock
}

// Calendar is an immutable snapshot of calendar data for a date range
type Calendar struct {
	loc         *time.Location
	from, to    Date
	rotations   map[string]*rotation
	assignments map[string]Assignment
	overrides   map[overrideKey]resolvedOverride
	holidays    []holidayRule
}

// Load reads templates, rotations, assignments, overrides and holidays for [from, to] from src
// and validates them. Rotation steps must form a contiguous 0..N-1 sequence per template.
func Load(ctx context.Context, src Source, from, to Date, opts Options) (*Calendar, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	cal := &Calendar{
		loc:         loc,
		from:        from,
		to:          to,
		rotations:   make(map[string]*rotation),
		assignments: make(map[string]Assignment),
		overrides:   make(map[overrideKey]resolvedOverride),
	}

	templates, err := src.GetShiftTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift templates: %w", err)
	}
	for _, t := range templates {
		steps, err := src.GetRotationSteps(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load rotation steps for template %s: %w", t.Name, err)
		}
		rot, err := buildRotation(t, steps)
		if err != nil {
			return nil, err
		}
		cal.rotations[t.ID] = rot
	}

	assignments, err := src.GetShiftAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift assignments: %w", err)
	}
	for _, a := range assignments {
		rot, ok := cal.rotations[a.TemplateID]
		if !ok {
			return nil, fmt.Errorf("%w: subject %s references unknown template %s", apperrors.ErrInvalidRotation, a.SubjectCode, a.TemplateID)
		}
		if len(rot.steps) == 0 {
			return nil, fmt.Errorf("%w: template %s has no rotation steps", apperrors.ErrInvalidRotation, rot.template.Name)
		}
		cal.assignments[a.SubjectCode] = a
	}

	// One day of slack on the left so overnight shifts starting the day before are visible.
	overrides, err := src.GetOverrides(ctx, from.AddDays(-1), to)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule overrides: %w", err)
	}
	for _, o := range overrides {
		start, err := ParseClock(o.StartTime)
		if err != nil {
			return nil, fmt.Errorf("override %s/%s: %w", o.SubjectCode, o.WorkDate, err)
		}
		end, err := ParseClock(o.EndTime)
		if err != nil {
			return nil, fmt.Errorf("override %s/%s: %w", o.SubjectCode, o.WorkDate, err)
		}
		key := overrideKey{subject: o.SubjectCode, date: o.WorkDate.String()}
		if _, dup := cal.overrides[key]; dup && opts.Logger != nil {
			opts.Logger.Warnf("duplicate schedule override for %s on %s, keeping the latest", o.SubjectCode, o.WorkDate)
		}
		cal.overrides[key] = resolvedOverride{Override: o, start: start, end: end}
	}

	holidays, err := src.GetHolidays(ctx, from.AddDays(-1), to)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	for _, h := range holidays {
		rule, err := newHolidayRule(h)
		if err != nil {
			return nil, err
		}
		cal.holidays = append(cal.holidays, rule)
	}

	return cal, nil
}

func buildRotation(t ShiftTemplate, steps []RotationStep) (*rotation, error) {
	sorted := append([]RotationStep(nil), steps...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StepOrder < sorted[j].StepOrder })

	rot := &rotation{template: t, steps: make([]resolvedStep, 0, len(sorted))}
	for i, s := range sorted {
		if s.StepOrder != i {
			return nil, fmt.Errorf("%w: template %s expected step %d, found %d", apperrors.ErrInvalidRotation, t.Name, i, s.StepOrder)
		}
		rs := resolvedStep{RotationStep: s}
		if !s.DayOff {
			var err error
			if rs.start, err = ParseClock(s.StartTime); err != nil {
				return nil, fmt.Errorf("template %s step %d: %w", t.Name, i, err)
			}
			if rs.end, err = ParseClock(s.EndTime); err != nil {
				return nil, fmt.Errorf("template %s step %d: %w", t.Name, i, err)
			}
		}
		rot.steps = append(rot.steps, rs)
	}
	return rot, nil
}

// Location is the time zone windows are expressed in
func (c *Calendar) Location() *time.Location { return c.loc }

// Range returns the loaded date range
func (c *Calendar) Range() (Date, Date) { return c.from, c.to }

// Resolve returns the shift of subject on date. An override wins over everything,
// a holiday blanks the day, otherwise the rotation step for the cycle day applies.
func (c *Calendar) Resolve(subject string, date Date) Resolution {
	if o, ok := c.overrides[overrideKey{subject: subject, date: date.String()}]; ok {
		w := NewWindow(o.ShiftName, date, o.start, o.end, o.Overnight, c.loc)
		w.Color = o.Color
		w.Team = subject
		return Resolution{Kind: KindShift, Origin: OriginOverride, Window: &w}
	}

	assignment, assigned := c.assignments[subject]
	group := ""
	if assigned {
		group = assignment.GroupCode
	}
	for _, h := range c.holidays {
		if h.matches(date, group) {
			return Resolution{Kind: KindHoliday, Origin: OriginHoliday, Holiday: h.Name}
		}
	}

	if !assigned {
		return Resolution{Kind: KindNone}
	}
	rot := c.rotations[assignment.TemplateID]
	n := len(rot.steps)
	idx := DaysBetween(assignment.AnchorDate, date) % n
	if idx < 0 {
		idx += n
	}
	step := rot.steps[idx]
	if step.DayOff {
		return Resolution{Kind: KindNone, Origin: OriginRotation}
	}
	w := NewWindow(step.ShiftName, date, step.start, step.end, step.Overnight, c.loc)
	w.Color = step.Color
	w.Team = subject
	return Resolution{Kind: KindShift, Origin: OriginRotation, Window: &w}
}

// Windows lists the effective shift windows of subject that start on a date in [from, to],
// ordered by start time.
func (c *Calendar) Windows(subject string, from, to Date) []Window {
	var out []Window
	for d := from; !d.After(to); d = d.AddDays(1) {
		if r := c.Resolve(subject, d); r.Kind == KindShift {
			out = append(out, *r.Window)
		}
	}
	return out
}

// WindowsBetween lists the windows of subject that intersect [from, to), including a window
// that started the previous day and runs overnight into from.
func (c *Calendar) WindowsBetween(subject string, from, to time.Time) []Window {
	first := NewDate(from.In(c.loc)).AddDays(-1)
	last := NewDate(to.In(c.loc))
	var out []Window
	for _, w := range c.Windows(subject, first, last) {
		if w.Overlaps(from, to) {
			out = append(out, w)
		}
	}
	return out
}
