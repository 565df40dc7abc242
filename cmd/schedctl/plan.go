package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/scheduling"

	"gopkg.in/yaml.v3"
)

// planFile is the YAML document read by run, validate and resolve
type planFile struct {
	Timezone string                `yaml:"timezone"`
	StartAt  string                `yaml:"start_at"`
	Profile  scheduling.Profile    `yaml:"profile"`
	Config   planConfig            `yaml:"config"`
	Machines []planMachine         `yaml:"machines"`
	Calendar calendar.MemorySource `yaml:"calendar"`
	Orders   []planOrder           `yaml:"orders"`
}

type planMachine struct {
	Name         string `yaml:"name"`
	OperatorTeam string `yaml:"operator_team"`
}

type planOrder struct {
	ID               string        `yaml:"id"`
	PartNumber       string        `yaml:"part_number"`
	OrderQuantity    int           `yaml:"quantity"`
	Priority         string        `yaml:"priority"`
	DueDate          calendar.Date `yaml:"due_date"`
	EligibleMachines []string      `yaml:"eligible_machines"`
	SetupMinutes     int           `yaml:"setup_minutes"`
	CycleMinutes     int           `yaml:"cycle_minutes"`
}

// planConfig overrides the engine defaults. Zero values keep the default.
type planConfig struct {
	HorizonDays           int    `yaml:"horizon_days"`
	MaxConcurrentSetups   int    `yaml:"max_concurrent_setups"`
	MaxSetupSlotAttempts  int    `yaml:"max_setup_slot_attempts"`
	AllowBatchContinuity  *bool  `yaml:"allow_batch_continuity"`
	SetupWindowStart      string `yaml:"setup_window_start"`
	SetupWindowEnd        string `yaml:"setup_window_end"`
	ShiftLengthHours      int    `yaml:"shift_length_hours"`
	PersonsPerShift       int    `yaml:"persons_per_shift"`
	MaxProcessingTimeMs   int    `yaml:"max_processing_time_ms"`
	BatchSizeLimit        int    `yaml:"batch_size_limit"`
	MaxRescheduleAttempts int    `yaml:"max_reschedule_attempts"`
	DefaultSetupMinutes   int    `yaml:"default_setup_minutes"`
	DefaultCycleMinutes   int    `yaml:"default_cycle_minutes"`
}

func loadPlan(path string) (*planFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	var plan planFile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return &plan, nil
}

func (p *planFile) location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// start returns the plan's start time, or now truncated to the minute
func (p *planFile) start(loc *time.Location, now time.Time) (time.Time, error) {
	if strings.TrimSpace(p.StartAt) == "" {
		return now.In(loc).Truncate(time.Minute), nil
	}
	t, err := time.ParseInLocation(time.RFC3339, p.StartAt, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_at %q: %w", p.StartAt, err)
	}
	return t.In(loc), nil
}

func (p *planFile) engineConfig() (scheduling.Config, error) {
	cfg := scheduling.DefaultConfig()
	c := p.Config
	setInt := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	setInt(&cfg.HorizonDays, c.HorizonDays)
	setInt(&cfg.MaxConcurrentSetups, c.MaxConcurrentSetups)
	setInt(&cfg.MaxSetupSlotAttempts, c.MaxSetupSlotAttempts)
	setInt(&cfg.ShiftLengthHours, c.ShiftLengthHours)
	setInt(&cfg.PersonsPerShift, c.PersonsPerShift)
	setInt(&cfg.BatchSizeLimit, c.BatchSizeLimit)
	setInt(&cfg.MaxRescheduleAttempts, c.MaxRescheduleAttempts)
	setInt(&cfg.DefaultSetupMinutes, c.DefaultSetupMinutes)
	setInt(&cfg.DefaultCycleMinutes, c.DefaultCycleMinutes)
	if c.MaxProcessingTimeMs > 0 {
		cfg.MaxProcessingTime = time.Duration(c.MaxProcessingTimeMs) * time.Millisecond
	}
	if c.AllowBatchContinuity != nil {
		cfg.AllowBatchContinuity = *c.AllowBatchContinuity
	}
	if c.SetupWindowStart != "" {
		clock, err := calendar.ParseClock(c.SetupWindowStart)
		if err != nil {
			return cfg, fmt.Errorf("setup_window_start: %w", err)
		}
		cfg.SetupWindowStart = clock
	}
	if c.SetupWindowEnd != "" {
		clock, err := calendar.ParseClock(c.SetupWindowEnd)
		if err != nil {
			return cfg, fmt.Errorf("setup_window_end: %w", err)
		}
		cfg.SetupWindowEnd = clock
	}
	return cfg, nil
}

func (p *planFile) machines() []scheduling.Machine {
	out := make([]scheduling.Machine, 0, len(p.Machines))
	for _, m := range p.Machines {
		out = append(out, scheduling.Machine{Name: m.Name, OperatorTeam: m.OperatorTeam})
	}
	return out
}

func (p *planFile) orders() []scheduling.Order {
	out := make([]scheduling.Order, 0, len(p.Orders))
	for i, o := range p.Orders {
		id := o.ID
		if id == "" {
			id = fmt.Sprintf("order-%d", i+1)
		}
		order := scheduling.Order{
			ID:            id,
			PartNumber:    o.PartNumber,
			OrderQuantity: o.OrderQuantity,
			Priority:      scheduling.Priority(o.Priority),
			DueDate:       o.DueDate,
			SetupMinutes:  o.SetupMinutes,
			CycleMinutes:  o.CycleMinutes,
		}
		if len(o.EligibleMachines) > 0 {
			order.EligibleMachines = scheduling.NewMachineSet(o.EligibleMachines...)
		}
		out = append(out, order)
	}
	return out
}
