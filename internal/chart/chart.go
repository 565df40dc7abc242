package chart

import (
	"fmt"
	"strings"
	"time"

	"production-scheduler-backend/internal/scheduling"
)

// TimelineView is the zoom level the chart was produced for
type TimelineView string

const (
	ViewDay   TimelineView = "day"
	ViewWeek  TimelineView = "week"
	ViewMonth TimelineView = "month"
)

// IsValid checks if the TimelineView is valid
func (v TimelineView) IsValid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

const (
	SetupColor = "#F59E0B"
	RunColor   = "#3B82F6"
	LateColor  = "#EF4444"
)

// Task is one bar on the machine timeline
type Task struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	OrderIndex int              `json:"orderIndex"`
	OrderID    string           `json:"orderId,omitempty"`
	PartNumber string           `json:"partNumber"`
	Machine    string           `json:"machine"`
	Phase      scheduling.Phase `json:"phase"`
	Start      time.Time        `json:"start"`
	SetupEnd   time.Time        `json:"setupEnd"`
	End        time.Time        `json:"end"`
	Pieces     int              `json:"pieces"`
	Batch      int              `json:"batch"`
	ShiftName  string           `json:"shiftName,omitempty"`
	Color      string           `json:"color"`
	Late       bool             `json:"late,omitempty"`
}

// SchedulingResults summarises a run next to its tasks
type SchedulingResults struct {
	Outcome     scheduling.RunOutcome     `json:"outcome"`
	Profile     scheduling.Profile        `json:"profile"`
	TotalOrders int                       `json:"totalOrders"`
	Scheduled   int                       `json:"scheduled"`
	Unscheduled int                       `json:"unscheduled"`
	Unprocessed int                       `json:"unprocessed"`
	TimedOut    bool                      `json:"timedOut"`
	Passes      int                       `json:"passes"`
	HorizonFrom time.Time                 `json:"horizonFrom"`
	HorizonTo   time.Time                 `json:"horizonTo"`
	GeneratedAt time.Time                 `json:"generatedAt"`
	Orders      []scheduling.OrderOutcome `json:"orders"`
}

// Data is the chart payload persisted with a session
type Data struct {
	Tasks             []Task            `json:"tasks"`
	SchedulingResults SchedulingResults `json:"schedulingResults"`
}

// MachineLoad is the per-machine utilisation summary
type MachineLoad struct {
	Machine            string  `json:"machine"`
	OperatorTeam       string  `json:"operatorTeam"`
	Tasks              int     `json:"tasks"`
	Orders             int     `json:"orders"`
	SetupMinutes       float64 `json:"setupMinutes"`
	RunMinutes         float64 `json:"runMinutes"`
	CapacityMinutes    float64 `json:"capacityMinutes"`
	UtilizationPercent float64 `json:"utilizationPercent"`
	OperatorHours      float64 `json:"operatorHours"`
}

// MachineData is the machine panel payload persisted with a session
type MachineData struct {
	Machines        []MachineLoad `json:"machines"`
	PersonsPerShift int           `json:"personsPerShift"`
}

// Options carries what Build needs besides the result
type Options struct {
	Machines    []scheduling.Machine
	Config      scheduling.Config
	Profile     scheduling.Profile
	GeneratedAt time.Time
}

// Build turns engine output into chart and machine payloads
func Build(result *scheduling.Result, opts Options) (*Data, *MachineData) {
	data := &Data{Tasks: []Task{}}
	if result == nil {
		return data, &MachineData{Machines: []MachineLoad{}, PersonsPerShift: opts.Config.PersonsPerShift}
	}

	late := make(map[int]bool, len(result.Outcomes))
	for _, oc := range result.Outcomes {
		late[oc.OrderIndex] = oc.Late
	}

	for _, a := range result.Assignments {
		color := RunColor
		if a.HasSetup() {
			color = SetupColor
		}
		if late[a.OrderIndex] {
			color = LateColor
		}
		data.Tasks = append(data.Tasks, Task{
			ID:         fmt.Sprintf("%s-%d-%d", a.Machine, a.OrderIndex, a.Batch),
			Name:       taskName(a),
			OrderIndex: a.OrderIndex,
			OrderID:    a.OrderID,
			PartNumber: a.PartNumber,
			Machine:    a.Machine,
			Phase:      a.Phase,
			Start:      a.Start,
			SetupEnd:   a.SetupEnd,
			End:        a.End,
			Pieces:     a.Pieces,
			Batch:      a.Batch,
			ShiftName:  a.ShiftName,
			Color:      color,
			Late:       late[a.OrderIndex],
		})
	}

	data.SchedulingResults = SchedulingResults{
		Outcome:     result.Outcome,
		Profile:     opts.Profile,
		TotalOrders: len(result.Outcomes),
		Scheduled:   len(result.Scheduled),
		Unscheduled: len(result.Unscheduled),
		Unprocessed: len(result.Unprocessed),
		TimedOut:    result.TimedOut,
		Passes:      result.Passes,
		HorizonFrom: result.HorizonFrom,
		HorizonTo:   result.HorizonTo,
		GeneratedAt: opts.GeneratedAt,
		Orders:      result.Outcomes,
	}

	return data, buildMachineData(result, opts)
}

func taskName(a scheduling.Assignment) string {
	if a.Batch > 0 {
		return fmt.Sprintf("%s (batch %d)", a.PartNumber, a.Batch+1)
	}
	return a.PartNumber
}

func buildMachineData(result *scheduling.Result, opts Options) *MachineData {
	// Results stored before per-machine capacity was recorded fall back to a flat shift per day
	days := result.HorizonTo.Sub(result.HorizonFrom).Hours() / 24
	flat := days * float64(opts.Config.ShiftLengthHours) * 60

	loads := make([]MachineLoad, len(opts.Machines))
	index := make(map[string]int, len(opts.Machines))
	for i, m := range opts.Machines {
		capacity := flat
		if result.CapacityMinutes != nil {
			capacity = result.CapacityMinutes[m.Name]
		}
		loads[i] = MachineLoad{Machine: m.Name, OperatorTeam: m.OperatorTeam, CapacityMinutes: capacity}
		index[m.Name] = i
	}

	orders := make(map[string]map[int]struct{})
	for _, a := range result.Assignments {
		i, ok := index[a.Machine]
		if !ok {
			continue
		}
		l := &loads[i]
		l.Tasks++
		l.SetupMinutes += a.SetupEnd.Sub(a.Start).Minutes()
		l.RunMinutes += a.End.Sub(a.SetupEnd).Minutes()
		if orders[a.Machine] == nil {
			orders[a.Machine] = make(map[int]struct{})
		}
		orders[a.Machine][a.OrderIndex] = struct{}{}
	}

	for i := range loads {
		l := &loads[i]
		l.Orders = len(orders[l.Machine])
		busy := l.SetupMinutes + l.RunMinutes
		if l.CapacityMinutes > 0 {
			l.UtilizationPercent = roundTo(busy/l.CapacityMinutes*100, 2)
		}
		l.OperatorHours = roundTo(busy/60*float64(opts.Config.PersonsPerShift), 2)
	}

	return &MachineData{Machines: loads, PersonsPerShift: opts.Config.PersonsPerShift}
}

func roundTo(v float64, places int) float64 {
	p := 1.0
	for i := 0; i < places; i++ {
		p *= 10
	}
	return float64(int64(v*p+0.5)) / p
}

// SessionName derives the per-user session key from an email address
func SessionName(email string) string {
	return "chart_" + strings.ToLower(strings.TrimSpace(email))
}
