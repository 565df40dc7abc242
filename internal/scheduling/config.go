package scheduling

import (
	"time"

	"production-scheduler-backend/internal/calendar"
)

// Config bundles every tunable of a scheduling run
type Config struct {
	MaxConcurrentSetups   int
	MaxSetupSlotAttempts  int
	AllowBatchContinuity  bool
	SetupWindowStart      calendar.Clock
	SetupWindowEnd        calendar.Clock
	ShiftLengthHours      int
	PersonsPerShift       int
	MaxProcessingTime     time.Duration
	BatchSizeLimit        int
	MaxRescheduleAttempts int
	DefaultSetupMinutes   int
	DefaultCycleMinutes   int
	HorizonDays           int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		MaxConcurrentSetups:   2,
		MaxSetupSlotAttempts:  300,
		AllowBatchContinuity:  true,
		SetupWindowStart:      calendar.Clock(6 * 60),
		SetupWindowEnd:        calendar.Clock(22 * 60),
		ShiftLengthHours:      8,
		PersonsPerShift:       2,
		MaxProcessingTime:     240 * time.Second,
		BatchSizeLimit:        5000,
		MaxRescheduleAttempts: 10,
		DefaultSetupMinutes:   60,
		DefaultCycleMinutes:   5,
		HorizonDays:           14,
	}
}

// Normalized fills non-positive numeric fields with defaults
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.MaxConcurrentSetups <= 0 {
		c.MaxConcurrentSetups = d.MaxConcurrentSetups
	}
	if c.MaxSetupSlotAttempts <= 0 {
		c.MaxSetupSlotAttempts = d.MaxSetupSlotAttempts
	}
	if c.ShiftLengthHours <= 0 {
		c.ShiftLengthHours = d.ShiftLengthHours
	}
	if c.PersonsPerShift <= 0 {
		c.PersonsPerShift = d.PersonsPerShift
	}
	if c.MaxProcessingTime <= 0 {
		c.MaxProcessingTime = d.MaxProcessingTime
	}
	if c.BatchSizeLimit <= 0 {
		c.BatchSizeLimit = d.BatchSizeLimit
	}
	if c.MaxRescheduleAttempts <= 0 {
		c.MaxRescheduleAttempts = d.MaxRescheduleAttempts
	}
	if c.DefaultSetupMinutes < 0 {
		c.DefaultSetupMinutes = d.DefaultSetupMinutes
	}
	if c.DefaultCycleMinutes <= 0 {
		c.DefaultCycleMinutes = d.DefaultCycleMinutes
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = d.HorizonDays
	}
	return c
}

// Profile is the scheduling invocation mode
type Profile string

const (
	ProfileBasic    Profile = "basic"
	ProfileAdvanced Profile = "advanced"
)

// IsValid checks if the Profile is valid
func (p Profile) IsValid() bool {
	return p == ProfileBasic || p == ProfileAdvanced
}

// Apply narrows cfg to what the profile may use. Basic runs a single pass
// and always re-incurs setups; advanced runs the configuration as given.
func (p Profile) Apply(cfg Config) Config {
	if p == ProfileBasic {
		cfg.AllowBatchContinuity = false
		cfg.MaxRescheduleAttempts = 1
	}
	return cfg
}
