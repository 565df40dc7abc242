package config

import (
	"fmt"
	"strings"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/scheduling"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Timezone    string `mapstructure:"TIMEZONE"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Machine pool
	MachinePrefix       string `mapstructure:"MACHINE_PREFIX"`
	MachinePoolSize     int    `mapstructure:"MACHINE_POOL_SIZE"`
	MachineOperatorTeam string `mapstructure:"MACHINE_OPERATOR_TEAM"`

	// Scheduling
	PlanningHorizonDays   int    `mapstructure:"PLANNING_HORIZON_DAYS"`
	DefaultSetupMinutes   int    `mapstructure:"DEFAULT_SETUP_MINUTES"`
	DefaultCycleMinutes   int    `mapstructure:"DEFAULT_CYCLE_MINUTES"`
	MaxConcurrentSetups   int    `mapstructure:"SCHED_MAX_CONCURRENT_SETUPS"`
	MaxSetupSlotAttempts  int    `mapstructure:"SCHED_MAX_SETUP_SLOT_ATTEMPTS"`
	AllowBatchContinuity  bool   `mapstructure:"SCHED_ALLOW_BATCH_CONTINUITY"`
	SetupWindowStart      string `mapstructure:"SCHED_SETUP_WINDOW_START"`
	SetupWindowEnd        string `mapstructure:"SCHED_SETUP_WINDOW_END"`
	ShiftLengthHours      int    `mapstructure:"SCHED_SHIFT_LENGTH_HOURS"`
	PersonsPerShift       int    `mapstructure:"SCHED_PERSONS_PER_SHIFT"`
	MaxProcessingTimeMs   int    `mapstructure:"SCHED_MAX_PROCESSING_TIME_MS"`
	BatchSizeLimit        int    `mapstructure:"SCHED_BATCH_SIZE_LIMIT"`
	MaxRescheduleAttempts int    `mapstructure:"SCHED_MAX_RESCHEDULE_ATTEMPTS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "UTC")

	// Database defaults. DATABASE_URL needs a registered key for AutomaticEnv to reach Unmarshal.
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "production_scheduler")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Machine pool defaults
	v.SetDefault("MACHINE_PREFIX", "VMC")
	v.SetDefault("MACHINE_POOL_SIZE", 10)
	v.SetDefault("MACHINE_OPERATOR_TEAM", "production")

	// Scheduling defaults
	d := scheduling.DefaultConfig()
	v.SetDefault("PLANNING_HORIZON_DAYS", d.HorizonDays)
	v.SetDefault("DEFAULT_SETUP_MINUTES", d.DefaultSetupMinutes)
	v.SetDefault("DEFAULT_CYCLE_MINUTES", d.DefaultCycleMinutes)
	v.SetDefault("SCHED_MAX_CONCURRENT_SETUPS", d.MaxConcurrentSetups)
	v.SetDefault("SCHED_MAX_SETUP_SLOT_ATTEMPTS", d.MaxSetupSlotAttempts)
	v.SetDefault("SCHED_ALLOW_BATCH_CONTINUITY", d.AllowBatchContinuity)
	v.SetDefault("SCHED_SETUP_WINDOW_START", d.SetupWindowStart.String())
	v.SetDefault("SCHED_SETUP_WINDOW_END", d.SetupWindowEnd.String())
	v.SetDefault("SCHED_SHIFT_LENGTH_HOURS", d.ShiftLengthHours)
	v.SetDefault("SCHED_PERSONS_PER_SHIFT", d.PersonsPerShift)
	v.SetDefault("SCHED_MAX_PROCESSING_TIME_MS", int(d.MaxProcessingTime/time.Millisecond))
	v.SetDefault("SCHED_BATCH_SIZE_LIMIT", d.BatchSizeLimit)
	v.SetDefault("SCHED_MAX_RESCHEDULE_ATTEMPTS", d.MaxRescheduleAttempts)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.MachinePoolSize <= 0 {
		return fmt.Errorf("MACHINE_POOL_SIZE must be positive")
	}

	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}

	if _, err := config.SchedulingConfig(); err != nil {
		return err
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location returns the plant time zone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SchedulingConfig builds the engine configuration
func (c *Config) SchedulingConfig() (scheduling.Config, error) {
	start, err := calendar.ParseClock(c.SetupWindowStart)
	if err != nil {
		return scheduling.Config{}, fmt.Errorf("SCHED_SETUP_WINDOW_START: %w", err)
	}
	end, err := calendar.ParseClock(c.SetupWindowEnd)
	if err != nil {
		return scheduling.Config{}, fmt.Errorf("SCHED_SETUP_WINDOW_END: %w", err)
	}
	return scheduling.Config{
		MaxConcurrentSetups:   c.MaxConcurrentSetups,
		MaxSetupSlotAttempts:  c.MaxSetupSlotAttempts,
		AllowBatchContinuity:  c.AllowBatchContinuity,
		SetupWindowStart:      start,
		SetupWindowEnd:        end,
		ShiftLengthHours:      c.ShiftLengthHours,
		PersonsPerShift:       c.PersonsPerShift,
		MaxProcessingTime:     time.Duration(c.MaxProcessingTimeMs) * time.Millisecond,
		BatchSizeLimit:        c.BatchSizeLimit,
		MaxRescheduleAttempts: c.MaxRescheduleAttempts,
		DefaultSetupMinutes:   c.DefaultSetupMinutes,
		DefaultCycleMinutes:   c.DefaultCycleMinutes,
		HorizonDays:           c.PlanningHorizonDays,
	}, nil
}

// Machines builds the configured machine pool, e.g. "VMC 1" through "VMC 10"
func (c *Config) Machines() []scheduling.Machine {
	prefix := strings.TrimSpace(c.MachinePrefix)
	pool := make([]scheduling.Machine, 0, c.MachinePoolSize)
	for i := 1; i <= c.MachinePoolSize; i++ {
		pool = append(pool, scheduling.Machine{
			Name:         fmt.Sprintf("%s %d", prefix, i),
			OperatorTeam: c.MachineOperatorTeam,
		})
	}
	return pool
}
