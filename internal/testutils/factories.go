package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"production-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Day returns the datatypes.Date of a YYYY-MM-DD literal
func Day(s string) datatypes.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return datatypes.Date(t)
}

// ShiftTemplateFactory provides methods to create test shift templates
type ShiftTemplateFactory struct{}

// NewShiftTemplateFactory creates a new shift template factory
func NewShiftTemplateFactory() *ShiftTemplateFactory {
	return &ShiftTemplateFactory{}
}

// Create creates a template with a unique code
func (f *ShiftTemplateFactory) Create() *models.ShiftTemplate {
	code := "tpl-" + uuid.NewString()[:8]
	return &models.ShiftTemplate{
		Code:      code,
		Name:      "Template " + code,
		TeamLabel: "Production",
	}
}

// WithCode creates a template with a specific code
func (f *ShiftTemplateFactory) WithCode(code string) *models.ShiftTemplate {
	t := f.Create()
	t.Code = code
	return t
}

// RotationStepFactory provides methods to create test rotation steps
type RotationStepFactory struct{}

// NewRotationStepFactory creates a new rotation step factory
func NewRotationStepFactory() *RotationStepFactory {
	return &RotationStepFactory{}
}

// Shift creates a working step
func (f *RotationStepFactory) Shift(templateCode string, order int, name, start, end string) *models.RotationStep {
	return &models.RotationStep{
		TemplateCode: templateCode,
		StepOrder:    order,
		ShiftName:    name,
		StartTime:    start,
		EndTime:      end,
		Overnight:    end <= start,
	}
}

// DayOff creates a rest step
func (f *RotationStepFactory) DayOff(templateCode string, order int) *models.RotationStep {
	return &models.RotationStep{
		TemplateCode: templateCode,
		StepOrder:    order,
		DayOff:       true,
	}
}

// DailyScheduleFactory provides methods to create test daily schedules
type DailyScheduleFactory struct{}

// NewDailyScheduleFactory creates a new daily schedule factory
func NewDailyScheduleFactory() *DailyScheduleFactory {
	return &DailyScheduleFactory{}
}

// Create creates a morning shift for employeeCode on date
func (f *DailyScheduleFactory) Create(employeeCode, date string) *models.DailySchedule {
	return &models.DailySchedule{
		EmployeeCode: employeeCode,
		WorkDate:     Day(date),
		ShiftName:    "Morning",
		StartTime:    "06:00",
		EndTime:      "14:00",
		Origin:       models.ScheduleOriginManual,
	}
}

// ChartSessionFactory provides methods to create test chart sessions
type ChartSessionFactory struct{}

// NewChartSessionFactory creates a new chart session factory
func NewChartSessionFactory() *ChartSessionFactory {
	return &ChartSessionFactory{}
}

// Create creates an unsaved session for email
func (f *ChartSessionFactory) Create(email string) *models.ChartSession {
	chartData, _ := json.Marshal(map[string]interface{}{"tasks": []interface{}{}})
	machineData, _ := json.Marshal(map[string]interface{}{"machines": []interface{}{}})
	return &models.ChartSession{
		BaseModel:     models.BaseModel{CreatedBy: "u-1", UpdatedBy: "u-1"},
		UserID:        "u-1",
		SessionName:   fmt.Sprintf("chart_%s", email),
		SessionID:     uuid.NewString(),
		TimelineView:  "week",
		ChartData:     datatypes.JSON(chartData),
		MachineData:   datatypes.JSON(machineData),
		SyncTimestamp: time.Now().UTC(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	ShiftTemplate *ShiftTemplateFactory
	RotationStep  *RotationStepFactory
	DailySchedule *DailyScheduleFactory
	ChartSession  *ChartSessionFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		ShiftTemplate: NewShiftTemplateFactory(),
		RotationStep:  NewRotationStepFactory(),
		DailySchedule: NewDailyScheduleFactory(),
		ChartSession:  NewChartSessionFactory(),
	}
}
