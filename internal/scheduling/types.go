package scheduling

import (
	"encoding/json"
	"sort"
	"time"

	"production-scheduler-backend/internal/calendar"
)

// Priority ranks orders; High is scheduled first
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityNormal Priority = "Normal"
	PriorityLow    Priority = "Low"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityNormal:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// MachineSet is a set of machine names. A nil set means "not given".
type MachineSet map[string]struct{}

// NewMachineSet builds a set from names
func NewMachineSet(names ...string) MachineSet {
	set := make(MachineSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Has reports membership
func (s MachineSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members sorted
func (s MachineSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON encodes the set as a sorted array
func (s MachineSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes an array of names; null leaves the set nil
func (s *MachineSet) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = nil
		return nil
	}
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	*s = NewMachineSet(names...)
	return nil
}

// Order is one manufacturing job request
type Order struct {
	ID               string        `json:"id,omitempty"`
	PartNumber       string        `json:"partNumber" validate:"required,notblank"`
	OrderQuantity    int           `json:"orderQuantity" validate:"gt=0"`
	Priority         Priority      `json:"priority" validate:"oneof=High Normal Low"`
	DueDate          calendar.Date `json:"dueDate" validate:"required"`
	EligibleMachines MachineSet    `json:"eligibleMachines,omitempty"`
	SetupMinutes     int           `json:"setupMinutes,omitempty" validate:"gte=0"`
	CycleMinutes     int           `json:"cycleMinutes,omitempty" validate:"gte=0"`
}

// Machine is a fixed-pool resource worked by an operator team
type Machine struct {
	Name         string `json:"name"`
	OperatorTeam string `json:"operatorTeam"`
}

// Phase of an assignment segment
type Phase string

const (
	PhaseSetup Phase = "setup"
	PhaseRun   Phase = "run"
)

// Assignment maps an order, or a sub-batch of it, to a machine interval.
// A setup-phase segment spends [Start, SetupEnd) preparing the machine and runs until End.
type Assignment struct {
	OrderIndex int       `json:"orderIndex"`
	OrderID    string    `json:"orderId,omitempty"`
	PartNumber string    `json:"partNumber"`
	Machine    string    `json:"machine"`
	Phase      Phase     `json:"phase"`
	Start      time.Time `json:"start"`
	SetupEnd   time.Time `json:"setupEnd"`
	End        time.Time `json:"end"`
	Pieces     int       `json:"pieces"`
	Batch      int       `json:"batch"`
	ShiftName  string    `json:"shiftName,omitempty"`
	Continued  bool      `json:"continued,omitempty"`
}

// HasSetup reports whether the segment includes a setup phase
func (a Assignment) HasSetup() bool {
	return a.SetupEnd.After(a.Start)
}

// OutcomeKind tags the per-order result
type OutcomeKind string

const (
	OutcomeScheduled OutcomeKind = "scheduled"
	OutcomeDeferred  OutcomeKind = "deferred"
	OutcomeFailed    OutcomeKind = "failed"
)

// OrderOutcome is the tagged result for a single order
type OrderOutcome struct {
	OrderIndex int         `json:"orderIndex"`
	OrderID    string      `json:"orderId,omitempty"`
	PartNumber string      `json:"partNumber"`
	Kind       OutcomeKind `json:"kind"`
	Machine    string      `json:"machine,omitempty"`
	Start      *time.Time  `json:"start,omitempty"`
	Completion *time.Time  `json:"completion,omitempty"`
	Late       bool        `json:"late,omitempty"`
	Attempts   int         `json:"attempts"`
	Passes     int         `json:"passes"`
	Reason     string      `json:"reason,omitempty"`
}

// RunOutcome distinguishes how a run ended
type RunOutcome string

const (
	RunCompleted     RunOutcome = "completed"
	RunTimedOut      RunOutcome = "timed_out"
	RunBatchTooLarge RunOutcome = "batch_too_large"
)

// Result is the engine output for one run
type Result struct {
	Outcome     RunOutcome     `json:"outcome"`
	Assignments []Assignment   `json:"assignments"`
	Scheduled   []OrderOutcome `json:"scheduled"`
	Unscheduled []OrderOutcome `json:"unscheduled"`
	Unprocessed []OrderOutcome `json:"unprocessed"`
	Outcomes    []OrderOutcome `json:"outcomes"`
	TimedOut    bool           `json:"timedOut"`
	Passes      int            `json:"passes"`
	HorizonFrom time.Time      `json:"horizonFrom"`
	HorizonTo   time.Time      `json:"horizonTo"`
	Duration    time.Duration  `json:"durationNs"`

	// CapacityMinutes is the shift time each machine had inside the horizon
	CapacityMinutes map[string]float64 `json:"capacityMinutes,omitempty"`
}

// Failure reasons
const (
	ReasonNoEligibleMachines = "no eligible machines"
	ReasonNoFeasibleSlot     = "no feasible slot within planning horizon"
	ReasonAttemptsExhausted  = "reschedule attempts exhausted"
	ReasonTimeout            = "scheduling timeout"
)
