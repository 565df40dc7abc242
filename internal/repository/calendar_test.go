package repository

import (
	"context"
	"testing"

	"production-scheduler-backend/internal/calendar"
	"production-scheduler-backend/internal/database/models"
	"production-scheduler-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarRepository_RoundTrip(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewCalendarRepository(db)
	factories := testutils.NewFactorySet()
	ctx := context.Background()

	tpl := factories.ShiftTemplate.WithCode("rot-a")
	require.NoError(t, repo.UpsertTemplate(ctx, tpl))
	require.NoError(t, repo.UpsertRotationStep(ctx, factories.RotationStep.Shift("rot-a", 1, "Night", "22:00", "06:00")))
	require.NoError(t, repo.UpsertRotationStep(ctx, factories.RotationStep.Shift("rot-a", 0, "Morning", "06:00", "14:00")))
	require.NoError(t, repo.UpsertRotationStep(ctx, factories.RotationStep.DayOff("rot-a", 2)))
	require.NoError(t, repo.UpsertAssignment(ctx, &models.ShiftAssignment{
		SubjectCode:  "E100",
		TemplateCode: "rot-a",
		AnchorDate:   testutils.Day("2025-01-06"),
	}))
	require.NoError(t, repo.CreateHoliday(ctx, &models.Holiday{HolidayDate: testutils.Day("2025-01-10"), Name: "Plant shutdown"}))
	require.NoError(t, repo.CreateHoliday(ctx, &models.Holiday{HolidayDate: testutils.Day("2020-12-25"), Name: "Christmas", Recurrence: "0 0 25 12 *"}))
	require.NoError(t, repo.CreateHoliday(ctx, &models.Holiday{HolidayDate: testutils.Day("2025-03-01"), Name: "Out of range"}))

	templates, err := repo.GetShiftTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "rot-a", templates[0].ID)

	steps, err := repo.GetRotationSteps(ctx, "rot-a")
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "Morning", steps[0].ShiftName)
	assert.True(t, steps[1].Overnight)
	assert.True(t, steps[2].DayOff)

	assignments, err := repo.GetShiftAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "2025-01-06", assignments[0].AnchorDate.String())

	holidays, err := repo.GetHolidays(ctx, calendar.MustParseDate("2025-01-01"), calendar.MustParseDate("2025-01-31"))
	require.NoError(t, err)
	names := make([]string, 0, len(holidays))
	for _, h := range holidays {
		names = append(names, h.Name)
	}
	assert.ElementsMatch(t, []string{"Plant shutdown", "Christmas"}, names)

	// Re-seeding the same step updates it in place
	updated := factories.RotationStep.Shift("rot-a", 0, "Early", "05:00", "13:00")
	require.NoError(t, repo.UpsertRotationStep(ctx, updated))
	steps, err = repo.GetRotationSteps(ctx, "rot-a")
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "Early", steps[0].ShiftName)
}

func TestCalendarRepository_ServesCalendarLoad(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewCalendarRepository(db)
	factories := testutils.NewFactorySet()
	ctx := context.Background()

	require.NoError(t, repo.UpsertTemplate(ctx, factories.ShiftTemplate.WithCode("day")))
	require.NoError(t, repo.UpsertRotationStep(ctx, factories.RotationStep.Shift("day", 0, "Day", "06:00", "14:00")))
	require.NoError(t, repo.UpsertAssignment(ctx, &models.ShiftAssignment{
		SubjectCode:  "E100",
		TemplateCode: "day",
		AnchorDate:   testutils.Day("2025-01-01"),
	}))
	require.NoError(t, NewDailyScheduleRepository(db).Upsert(ctx, factories.DailySchedule.Create("E100", "2025-01-07")))

	cal, err := calendar.Load(ctx, repo, calendar.MustParseDate("2025-01-06"), calendar.MustParseDate("2025-01-08"), calendar.Options{})
	require.NoError(t, err)

	res := cal.Resolve("E100", calendar.MustParseDate("2025-01-07"))
	assert.Equal(t, calendar.KindShift, res.Kind)
	assert.Equal(t, calendar.OriginOverride, res.Origin)
	require.NotNil(t, res.Window)
	assert.Equal(t, "Morning", res.Window.ShiftName)

	res = cal.Resolve("E100", calendar.MustParseDate("2025-01-06"))
	assert.Equal(t, calendar.OriginRotation, res.Origin)
}

func TestDailyScheduleRepository_UpsertAndRange(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewDailyScheduleRepository(db)
	factories := testutils.NewFactorySet()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, factories.DailySchedule.Create("E100", "2025-01-08")))
	require.NoError(t, repo.Upsert(ctx, factories.DailySchedule.Create("E100", "2025-01-06")))
	require.NoError(t, repo.Upsert(ctx, factories.DailySchedule.Create("E200", "2025-01-06")))
	require.NoError(t, repo.Upsert(ctx, factories.DailySchedule.Create("E100", "2025-01-20")))

	replacement := factories.DailySchedule.Create("E100", "2025-01-06")
	replacement.ShiftName = "Night"
	replacement.StartTime = "22:00"
	replacement.EndTime = "06:00"
	replacement.Overnight = true
	require.NoError(t, repo.Upsert(ctx, replacement))

	from := calendar.MustParseDate("2025-01-06")
	to := calendar.MustParseDate("2025-01-10")
	rows, err := repo.GetByEmployeeAndRange(ctx, "E100", from.Time, to.Time)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Night", rows[0].ShiftName)
	assert.True(t, rows[0].Overnight)
	assert.Equal(t, "Morning", rows[1].ShiftName)

	rows, err = repo.GetByEmployeeAndRange(ctx, "E300", from.Time, to.Time)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDailyScheduleRepository_Origin(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewDailyScheduleRepository(db)
	factories := testutils.NewFactorySet()
	ctx := context.Background()

	blank := factories.DailySchedule.Create("E100", "2025-01-06")
	blank.Origin = ""
	require.NoError(t, repo.Upsert(ctx, blank))
	assert.Equal(t, models.ScheduleOriginManual, blank.Origin)

	bogus := factories.DailySchedule.Create("E100", "2025-01-07")
	bogus.Origin = "spreadsheet"
	assert.ErrorContains(t, repo.Upsert(ctx, bogus), `unknown schedule origin "spreadsheet"`)

	rows, err := repo.GetByEmployeeAndRange(ctx, "E100", calendar.MustParseDate("2025-01-01").Time, calendar.MustParseDate("2025-01-31").Time)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
