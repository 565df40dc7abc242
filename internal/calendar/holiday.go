package calendar

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

type holidayRule struct {
	Holiday
	schedule cron.Schedule
}

func newHolidayRule(h Holiday) (holidayRule, error) {
	rule := holidayRule{Holiday: h}
	if h.Recurrence == "" {
		return rule, nil
	}
	sched, err := cronParser.Parse(h.Recurrence)
	if err != nil {
		return rule, fmt.Errorf("holiday %q recurrence %q: %w", h.Name, h.Recurrence, err)
	}
	rule.schedule = sched
	return rule, nil
}

// matches reports whether the rule marks date as a holiday for group
func (r holidayRule) matches(date Date, group string) bool {
	if r.GroupCode != "" && r.GroupCode != group {
		return false
	}
	if r.schedule == nil {
		return r.Date.Equal(date)
	}
	if !r.Date.IsZero() && date.Before(r.Date) {
		return false
	}
	dayStart := date.In(time.UTC)
	next := r.schedule.Next(dayStart.Add(-time.Second))
	return next.Before(dayStart.Add(24 * time.Hour))
}
