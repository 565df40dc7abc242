package chart

import (
	"testing"
	"time"

	"production-scheduler-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *scheduling.Result {
	from := time.Date(2025, time.January, 6, 6, 0, 0, 0, time.UTC)
	return &scheduling.Result{
		Outcome:     scheduling.RunCompleted,
		HorizonFrom: from,
		HorizonTo:   from.AddDate(0, 0, 2),
		Passes:      1,
		Assignments: []scheduling.Assignment{
			{OrderIndex: 0, PartNumber: "P1", Machine: "VMC01", Phase: scheduling.PhaseSetup,
				Start: from, SetupEnd: from.Add(time.Hour), End: from.Add(2 * time.Hour), Pieces: 12},
			{OrderIndex: 1, PartNumber: "P2", Machine: "VMC01", Phase: scheduling.PhaseRun,
				Start: from.Add(2 * time.Hour), SetupEnd: from.Add(2 * time.Hour), End: from.Add(3 * time.Hour), Pieces: 12, Batch: 1},
		},
		Outcomes: []scheduling.OrderOutcome{
			{OrderIndex: 0, PartNumber: "P1", Kind: scheduling.OutcomeScheduled},
			{OrderIndex: 1, PartNumber: "P2", Kind: scheduling.OutcomeScheduled, Late: true},
			{OrderIndex: 2, PartNumber: "P3", Kind: scheduling.OutcomeFailed, Reason: scheduling.ReasonNoFeasibleSlot},
		},
		Scheduled:   make([]scheduling.OrderOutcome, 2),
		Unscheduled: make([]scheduling.OrderOutcome, 1),
	}
}

func TestBuild(t *testing.T) {
	cfg := scheduling.DefaultConfig()
	machines := []scheduling.Machine{
		{Name: "VMC01", OperatorTeam: "production"},
		{Name: "VMC02", OperatorTeam: "production"},
	}

	data, machineData := Build(sampleResult(), Options{Machines: machines, Config: cfg, Profile: scheduling.ProfileAdvanced})

	require.Len(t, data.Tasks, 2)
	assert.Equal(t, "VMC01-0-0", data.Tasks[0].ID)
	assert.Equal(t, SetupColor, data.Tasks[0].Color)
	assert.Equal(t, "P2 (batch 2)", data.Tasks[1].Name)
	assert.Equal(t, LateColor, data.Tasks[1].Color)
	assert.True(t, data.Tasks[1].Late)

	res := data.SchedulingResults
	assert.Equal(t, scheduling.RunCompleted, res.Outcome)
	assert.Equal(t, scheduling.ProfileAdvanced, res.Profile)
	assert.Equal(t, 3, res.TotalOrders)
	assert.Equal(t, 2, res.Scheduled)
	assert.Equal(t, 1, res.Unscheduled)

	require.Len(t, machineData.Machines, 2)
	vmc1 := machineData.Machines[0]
	assert.Equal(t, 2, vmc1.Tasks)
	assert.Equal(t, 2, vmc1.Orders)
	assert.Equal(t, 60.0, vmc1.SetupMinutes)
	assert.Equal(t, 120.0, vmc1.RunMinutes)
	assert.Equal(t, 960.0, vmc1.CapacityMinutes)
	assert.Equal(t, 18.75, vmc1.UtilizationPercent)
	assert.Equal(t, 6.0, vmc1.OperatorHours)

	assert.Zero(t, machineData.Machines[1].Tasks)
	assert.Equal(t, cfg.PersonsPerShift, machineData.PersonsPerShift)
}

func TestBuild_CapacityFromShiftWindows(t *testing.T) {
	result := sampleResult()
	result.CapacityMinutes = map[string]float64{"VMC01": 480}
	machines := []scheduling.Machine{
		{Name: "VMC01", OperatorTeam: "production"},
		{Name: "VMC02", OperatorTeam: "night"},
	}

	_, machineData := Build(result, Options{Machines: machines, Config: scheduling.DefaultConfig()})

	require.Len(t, machineData.Machines, 2)
	assert.Equal(t, 480.0, machineData.Machines[0].CapacityMinutes)
	assert.Equal(t, 37.5, machineData.Machines[0].UtilizationPercent)
	assert.Zero(t, machineData.Machines[1].CapacityMinutes)
	assert.Zero(t, machineData.Machines[1].UtilizationPercent)
}

func TestBuild_NilResult(t *testing.T) {
	data, machineData := Build(nil, Options{})

	assert.NotNil(t, data.Tasks)
	assert.Empty(t, data.Tasks)
	assert.Empty(t, machineData.Machines)
}

func TestSessionName(t *testing.T) {
	assert.Equal(t, "chart_jane.doe@example.com", SessionName("  Jane.Doe@Example.com "))
}

func TestTimelineView(t *testing.T) {
	assert.True(t, ViewWeek.IsValid())
	assert.False(t, TimelineView("year").IsValid())
}
