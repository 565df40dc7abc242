package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/config"
	"production-scheduler-backend/internal/database"
	"production-scheduler-backend/internal/database/models"
	"production-scheduler-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedFile is one YAML file under the data directory. Calendar sections use the
// same layout as schedctl plan files; overrides become employee daily schedules.
type SeedFile struct {
	calendar.MemorySource `yaml:",inline"`
}

// seedStats counts what a load wrote
type seedStats struct {
	Templates      int
	Steps          int
	Assignments    int
	Holidays       int
	HolidaysSkip   int
	DailySchedules int
}

func main() {
	logrus.Info("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	stats, err := loadDataFromYAMLFiles(context.Background(), db, dataDir)
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.Infof("📋 Shift templates: %d", stats.Templates)
	logrus.Infof("📋 Rotation steps: %d", stats.Steps)
	logrus.Infof("📋 Shift assignments: %d", stats.Assignments)
	logrus.Infof("📋 Holidays: %d created, %d already present", stats.Holidays, stats.HolidaysSkip)
	logrus.Infof("📋 Daily schedules: %d", stats.DailySchedules)
	logrus.Info("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles merges every seed file and writes it. The merged data is
// loaded as a calendar first so a broken rotation never reaches the database.
func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) (*seedStats, error) {
	seed, err := loadSeedFiles(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed files: %w", err)
	}
	today := calendar.NewDate(time.Now())
	if _, err := calendar.Load(ctx, &seed.MemorySource, today, today, calendar.Options{}); err != nil {
		return nil, fmt.Errorf("invalid calendar data: %w", err)
	}

	stats := &seedStats{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		calendarRepo := repository.NewCalendarRepository(tx)
		scheduleRepo := repository.NewDailyScheduleRepository(tx)

		for _, t := range seed.Templates {
			template := &models.ShiftTemplate{Code: t.ID, Name: t.Name, TeamLabel: t.TeamLabel}
			template.Stamp(models.SeedActor)
			if err := calendarRepo.UpsertTemplate(ctx, template); err != nil {
				return fmt.Errorf("failed to upsert template %s: %w", t.ID, err)
			}
			stats.Templates++
		}
		for _, s := range seed.Steps {
			step := &models.RotationStep{
				TemplateCode: s.TemplateID,
				StepOrder:    s.StepOrder,
				ShiftName:    s.ShiftName,
				StartTime:    s.StartTime,
				EndTime:      s.EndTime,
				Overnight:    s.Overnight,
				DayOff:       s.DayOff,
				Color:        s.Color,
			}
			step.Stamp(models.SeedActor)
			if err := calendarRepo.UpsertRotationStep(ctx, step); err != nil {
				return fmt.Errorf("failed to upsert step %d of %s: %w", s.StepOrder, s.TemplateID, err)
			}
			stats.Steps++
		}
		for _, a := range seed.Assignments {
			assignment := &models.ShiftAssignment{
				SubjectCode:  a.SubjectCode,
				TemplateCode: a.TemplateID,
				AnchorDate:   datatypes.Date(a.AnchorDate.Time),
				GroupCode:    a.GroupCode,
			}
			assignment.Stamp(models.SeedActor)
			if err := calendarRepo.UpsertAssignment(ctx, assignment); err != nil {
				return fmt.Errorf("failed to upsert assignment of %s: %w", a.SubjectCode, err)
			}
			stats.Assignments++
		}
		for _, h := range seed.Holidays {
			created, err := createHoliday(ctx, tx, calendarRepo, h)
			if err != nil {
				return fmt.Errorf("failed to create holiday %s: %w", h.Name, err)
			}
			if created {
				stats.Holidays++
			} else {
				stats.HolidaysSkip++
			}
		}
		for _, o := range seed.Overrides {
			schedule := &models.DailySchedule{
				EmployeeCode: o.SubjectCode,
				WorkDate:     datatypes.Date(o.WorkDate.Time),
				ShiftName:    o.ShiftName,
				StartTime:    o.StartTime,
				EndTime:      o.EndTime,
				Color:        o.Color,
				Overnight:    o.Overnight,
				Origin:       models.ScheduleOriginSeed,
			}
			schedule.Stamp(models.SeedActor)
			if err := scheduleRepo.Upsert(ctx, schedule); err != nil {
				return fmt.Errorf("failed to upsert schedule of %s on %s: %w", o.SubjectCode, o.WorkDate, err)
			}
			stats.DailySchedules++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	var merged SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && (strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			var file SeedFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			merged.Templates = append(merged.Templates, file.Templates...)
			merged.Steps = append(merged.Steps, file.Steps...)
			merged.Assignments = append(merged.Assignments, file.Assignments...)
			merged.Overrides = append(merged.Overrides, file.Overrides...)
			merged.Holidays = append(merged.Holidays, file.Holidays...)
		}
		return nil
	})

	return &merged, err
}

// createHoliday inserts h unless a holiday with the same date, name and group exists
func createHoliday(ctx context.Context, tx *gorm.DB, repo *repository.CalendarRepository, h calendar.Holiday) (bool, error) {
	var existing models.Holiday
	err := tx.WithContext(ctx).
		Where("holiday_date = ? AND name = ? AND group_code = ?", datatypes.Date(h.Date.Time), h.Name, h.GroupCode).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query holiday: %w", err)
	}

	holiday := &models.Holiday{
		HolidayDate: datatypes.Date(h.Date.Time),
		Name:        h.Name,
		GroupCode:   h.GroupCode,
		Recurrence:  h.Recurrence,
	}
	holiday.Stamp(models.SeedActor)
	if err := repo.CreateHoliday(ctx, holiday); err != nil {
		return false, err
	}
	return true, nil
}
