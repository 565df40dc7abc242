package calendar

import (
	"time"
)

// Window is an effective shift interval [Start, End) anchored on the day it starts.
type Window struct {
	ShiftName string    `json:"shift_name"`
	Date      Date      `json:"date"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Overnight bool      `json:"overnight"`
	Color     string    `json:"color,omitempty"`
	Team      string    `json:"team,omitempty"`
}

// NewWindow builds the effective window for a shift starting on date.
// A window flagged overnight, or whose end is not after its start, ends on the following day.
func NewWindow(name string, date Date, start, end Clock, overnight bool, loc *time.Location) Window {
	spans := overnight || end <= start
	endDate := date
	if spans {
		endDate = date.AddDays(1)
	}
	return Window{
		ShiftName: name,
		Date:      date,
		Start:     date.At(start, loc),
		End:       endDate.At(end, loc),
		Overnight: spans,
	}
}

// Duration is the length of the window
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t lies in [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Covers reports whether [from, to) lies entirely inside the window
func (w Window) Covers(from, to time.Time) bool {
	return !from.Before(w.Start) && !to.After(w.End)
}

// Overlaps reports whether [from, to) intersects the window
func (w Window) Overlaps(from, to time.Time) bool {
	return from.Before(w.End) && w.Start.Before(to)
}
