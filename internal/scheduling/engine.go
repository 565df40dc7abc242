package scheduling

import (
	"context"
	"sort"
	"time"

	"production-scheduler-backend/internal/calendar"
	apperrors "production-scheduler-backend/internal/errors"
)

// ShiftProvider yields the effective shift windows of an operator team
type ShiftProvider interface {
	WindowsBetween(subject string, from, to time.Time) []calendar.Window
}

// Logger is the subset of the application logger the engine writes to
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Engine places orders onto machines inside shift windows
type Engine struct {
	cfg    Config
	shifts ShiftProvider
	logger Logger
	now    func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock replaces time.Now for timeout accounting
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a new scheduling engine
func NewEngine(cfg Config, shifts ShiftProvider, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg.Normalized(),
		shifts: shifts,
		logger: nopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration
func (e *Engine) Config() Config {
	return e.cfg
}

type machineState struct {
	Machine
	index   int
	windows []calendar.Window
	busy    intervalList
}

type candidate struct {
	at      time.Time
	machine int
}

func (c candidate) after(o candidate) bool {
	if c.at.Equal(o.at) {
		return c.machine > o.machine
	}
	return c.at.After(o.at)
}

type orderState struct {
	index     int
	order     Order
	eligible  []*machineState
	cursor    candidate
	hasCursor bool
	attempts  int
	passes    int
}

type run struct {
	*Engine
	ctx      context.Context
	started  time.Time
	from     time.Time
	to       time.Time
	loc      *time.Location
	machines []*machineState
	setups   intervalList
	result   *Result
}

// Schedule places orders, in the given order, on the machine pool starting at from.
// The returned error is non-nil only when the batch exceeds the size limit; a timeout
// yields a partial Result with TimedOut set.
func (e *Engine) Schedule(ctx context.Context, orders []Order, machines []Machine, from time.Time) (*Result, error) {
	started := e.now()
	to := from.AddDate(0, 0, e.cfg.HorizonDays)
	result := &Result{
		Outcome:     RunCompleted,
		Assignments: []Assignment{},
		Scheduled:   []OrderOutcome{},
		Unscheduled: []OrderOutcome{},
		Unprocessed: []OrderOutcome{},
		Outcomes:    make([]OrderOutcome, len(orders)),
		HorizonFrom: from,
		HorizonTo:   to,
	}

	if len(orders) > e.cfg.BatchSizeLimit {
		e.logger.Warnf("Rejecting batch of %d orders (limit %d)", len(orders), e.cfg.BatchSizeLimit)
		result.Outcome = RunBatchTooLarge
		result.Outcomes = []OrderOutcome{}
		return result, apperrors.NewBatchTooLargeError(len(orders), e.cfg.BatchSizeLimit)
	}

	r := &run{
		Engine:  e,
		ctx:     ctx,
		started: started,
		from:    from,
		to:      to,
		loc:     from.Location(),
		result:  result,
	}
	r.loadMachines(machines)

	pending := make([]*orderState, 0, len(orders))
	for i, o := range orders {
		st := &orderState{index: i, order: o}
		for _, m := range r.machines {
			if o.EligibleMachines == nil || o.EligibleMachines.Has(m.Name) {
				st.eligible = append(st.eligible, m)
			}
		}
		result.Outcomes[i] = OrderOutcome{OrderIndex: i, OrderID: o.ID, PartNumber: o.PartNumber, Kind: OutcomeDeferred}
		pending = append(pending, st)
	}

	e.logger.Infof("Scheduling %d orders on %d machines from %s to %s", len(orders), len(machines), from.Format(time.RFC3339), to.Format(time.RFC3339))

	for pass := 1; pass <= e.cfg.MaxRescheduleAttempts && len(pending) > 0 && !result.TimedOut; pass++ {
		result.Passes = pass
		var deferred []*orderState
		for i, st := range pending {
			if r.expired() {
				result.TimedOut = true
				result.Outcome = RunTimedOut
				for _, left := range append(deferred, pending[i:]...) {
					r.record(left, OutcomeDeferred, ReasonTimeout)
				}
				e.logger.Warnf("Scheduling timed out after %s in pass %d", e.now().Sub(started), pass)
				break
			}
			st.passes++
			switch kind, reason := r.place(st); kind {
			case OutcomeDeferred:
				deferred = append(deferred, st)
			default:
				r.record(st, kind, reason)
			}
		}
		if !result.TimedOut {
			pending = deferred
		}
	}
	if !result.TimedOut {
		for _, st := range pending {
			r.record(st, OutcomeFailed, ReasonAttemptsExhausted)
		}
	}

	sort.SliceStable(result.Assignments, func(i, j int) bool {
		a, b := result.Assignments[i], result.Assignments[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.Machine < b.Machine
	})
	for _, oc := range result.Outcomes {
		switch {
		case oc.Kind == OutcomeScheduled:
			result.Scheduled = append(result.Scheduled, oc)
		case oc.Reason == ReasonTimeout:
			result.Unprocessed = append(result.Unprocessed, oc)
		default:
			result.Unscheduled = append(result.Unscheduled, oc)
		}
	}
	result.Duration = e.now().Sub(started)
	e.logger.Infof("Scheduling finished: %d scheduled, %d unscheduled, %d unprocessed in %d passes",
		len(result.Scheduled), len(result.Unscheduled), len(result.Unprocessed), result.Passes)
	return result, nil
}

func (r *run) expired() bool {
	if r.ctx != nil && r.ctx.Err() != nil {
		return true
	}
	return r.now().Sub(r.started) >= r.cfg.MaxProcessingTime
}

func (r *run) loadMachines(machines []Machine) {
	r.result.CapacityMinutes = make(map[string]float64, len(machines))
	for i, m := range machines {
		ms := &machineState{Machine: m, index: i}
		var capacity time.Duration
		if r.shifts != nil {
			for _, w := range r.shifts.WindowsBetween(m.OperatorTeam, r.from, r.to) {
				if w.Start.Before(r.from) {
					w.Start = r.from
				}
				if w.End.After(r.to) {
					w.End = r.to
				}
				if w.Start.Before(w.End) {
					ms.windows = append(ms.windows, w)
					capacity += w.End.Sub(w.Start)
				}
			}
		}
		sort.SliceStable(ms.windows, func(a, b int) bool {
			return ms.windows[a].Start.Before(ms.windows[b].Start)
		})
		r.result.CapacityMinutes[m.Name] = capacity.Minutes()
		r.machines = append(r.machines, ms)
	}
}

func (r *run) record(st *orderState, kind OutcomeKind, reason string) {
	oc := &r.result.Outcomes[st.index]
	oc.Kind = kind
	oc.Reason = reason
	oc.Attempts = st.attempts
	oc.Passes = st.passes
}

// place probes candidate start instants for one order. The per-order probe
// budget applies per pass and the cursor carries over to the next pass.
func (r *run) place(st *orderState) (OutcomeKind, string) {
	if len(st.eligible) == 0 {
		return OutcomeFailed, ReasonNoEligibleMachines
	}
	cands := r.candidates(st)
	if len(cands) == 0 {
		return OutcomeFailed, ReasonNoFeasibleSlot
	}
	for probes, c := range cands {
		if probes >= r.cfg.MaxSetupSlotAttempts {
			r.logger.Debugf("Deferring order %d (%s) after %d probes", st.index, st.order.PartNumber, probes)
			return OutcomeDeferred, ""
		}
		st.attempts++
		st.cursor = c
		st.hasCursor = true
		m := r.machines[c.machine]
		segments, ok := r.plan(st, m, c.at)
		if !ok {
			continue
		}
		r.commit(st, m, segments)
		return OutcomeScheduled, ""
	}
	return OutcomeFailed, ReasonNoFeasibleSlot
}

// candidates lists start instants after the order's cursor, chronologically
// across its eligible machines with pool order breaking ties.
func (r *run) candidates(st *orderState) []candidate {
	var out []candidate
	for _, m := range st.eligible {
		seen := make(map[int64]struct{})
		add := func(t time.Time) {
			if !r.inWindows(m, t) {
				return
			}
			c := candidate{at: t, machine: m.index}
			if st.hasCursor && !c.after(st.cursor) {
				return
			}
			key := t.UnixNano()
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
		for _, w := range m.windows {
			add(w.Start)
			day := calendar.NewDate(w.Start.In(r.loc))
			for t := day.At(r.cfg.SetupWindowStart, r.loc); t.Before(w.End); {
				add(t)
				day = day.AddDays(1)
				t = day.At(r.cfg.SetupWindowStart, r.loc)
			}
		}
		for _, t := range m.busy.endsBetween(r.from, r.to) {
			add(t)
		}
		for _, t := range r.setups.endsBetween(r.from, r.to) {
			add(t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[j].after(out[i])
	})
	return out
}

func (r *run) inWindows(m *machineState, t time.Time) bool {
	return r.windowAt(m, t) >= 0
}

func (r *run) windowAt(m *machineState, t time.Time) int {
	for i, w := range m.windows {
		if w.Contains(t) {
			return i
		}
	}
	return -1
}

func (r *run) setupDuration(o Order) time.Duration {
	minutes := o.SetupMinutes
	if minutes <= 0 {
		minutes = r.cfg.DefaultSetupMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func (r *run) cycleDuration(o Order) time.Duration {
	minutes := o.CycleMinutes
	if minutes <= 0 {
		minutes = r.cfg.DefaultCycleMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// setupAllowed applies the daily setup window to a setup in shift. A shift that
// never meets the setup window, such as a night shift, sets up anywhere inside itself.
func (r *run) setupAllowed(shift calendar.Window, start, end time.Time) bool {
	return r.inSetupWindow(start, end) || !r.meetsSetupWindow(shift)
}

func (r *run) setupWindows(around time.Time) []calendar.Window {
	day := calendar.NewDate(around.In(r.loc))
	out := make([]calendar.Window, 0, 3)
	for _, d := range []calendar.Date{day.AddDays(-1), day, day.AddDays(1)} {
		out = append(out, calendar.NewWindow("setup", d, r.cfg.SetupWindowStart, r.cfg.SetupWindowEnd, false, r.loc))
	}
	return out
}

// inSetupWindow reports whether [start, end) falls inside the daily setup window
func (r *run) inSetupWindow(start, end time.Time) bool {
	for _, w := range r.setupWindows(start) {
		if w.Covers(start, end) {
			return true
		}
	}
	return false
}

func (r *run) meetsSetupWindow(shift calendar.Window) bool {
	for _, w := range r.setupWindows(shift.Start) {
		if w.Overlaps(shift.Start, shift.End) {
			return true
		}
	}
	return false
}

// plan tries to place the whole order on m starting at at. The first segment
// carries the setup phase; run time is packed as whole pieces into the shift
// windows that follow, and the machine stays reserved for the order until its
// last piece completes.
func (r *run) plan(st *orderState, m *machineState, at time.Time) ([]Assignment, bool) {
	wi := r.windowAt(m, at)
	if wi < 0 {
		return nil, false
	}
	o := st.order
	setup := r.setupDuration(o)
	cycle := r.cycleDuration(o)
	continued := false
	if r.cfg.AllowBatchContinuity {
		if prev, ok := m.busy.lastEndingBy(at); ok && prev.part == o.PartNumber {
			setup = 0
			continued = true
		}
	}

	setupEnd := at.Add(setup)
	if setup > 0 {
		if !m.windows[wi].Covers(at, setupEnd) || !r.setupAllowed(m.windows[wi], at, setupEnd) {
			return nil, false
		}
		if r.setups.overlapCount(at, setupEnd) >= r.cfg.MaxConcurrentSetups {
			return nil, false
		}
	}

	var segments []Assignment
	remaining := o.OrderQuantity
	cursor := setupEnd
	for i := wi; i < len(m.windows) && remaining > 0; i++ {
		w := m.windows[i]
		segStart := cursor
		if w.Start.After(segStart) {
			segStart = w.Start
		}
		fit := 0
		if segStart.Before(w.End) {
			fit = int(w.End.Sub(segStart) / cycle)
		}
		if fit <= 0 {
			if i == wi {
				return nil, false
			}
			continue
		}
		if fit > remaining {
			fit = remaining
		}
		segEnd := segStart.Add(time.Duration(fit) * cycle)
		segments = append(segments, Assignment{
			OrderIndex: st.index,
			OrderID:    o.ID,
			PartNumber: o.PartNumber,
			Machine:    m.Name,
			Phase:      PhaseRun,
			Start:      segStart,
			SetupEnd:   segStart,
			End:        segEnd,
			Pieces:     fit,
			Batch:      len(segments),
			ShiftName:  w.ShiftName,
		})
		remaining -= fit
		cursor = segEnd
	}
	if remaining > 0 || len(segments) == 0 {
		return nil, false
	}
	if !m.busy.free(at, cursor) {
		return nil, false
	}

	first := &segments[0]
	first.Start = at
	first.SetupEnd = setupEnd
	first.Continued = continued
	if setup > 0 {
		first.Phase = PhaseSetup
	}
	return segments, true
}

func (r *run) commit(st *orderState, m *machineState, segments []Assignment) {
	first, last := segments[0], segments[len(segments)-1]
	m.busy.insert(interval{start: first.Start, end: last.End, order: st.index, part: st.order.PartNumber})
	if first.HasSetup() {
		r.setups.insert(interval{start: first.Start, end: first.SetupEnd, order: st.index, part: st.order.PartNumber})
	}
	r.result.Assignments = append(r.result.Assignments, segments...)

	oc := &r.result.Outcomes[st.index]
	start, end := first.Start, last.End
	oc.Machine = m.Name
	oc.Start = &start
	oc.Completion = &end
	if !st.order.DueDate.IsZero() {
		oc.Late = end.After(st.order.DueDate.AddDays(1).In(r.loc))
	}
	r.logger.Debugf("Placed order %d (%s) on %s from %s to %s in %d segment(s)",
		st.index, st.order.PartNumber, m.Name, start.Format(time.RFC3339), end.Format(time.RFC3339), len(segments))
}
