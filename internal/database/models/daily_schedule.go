package models

import (
	"gorm.io/datatypes"
)

// DailySchedule is the explicit shift of one employee on one date. It
// overrides the rotation-derived shift for that date.
type DailySchedule struct {
	BaseModel
	EmployeeCode string         `json:"employee_code" gorm:"size:50;not null;uniqueIndex:idx_daily_schedules_employee_date" validate:"required,max=50"`
	WorkDate     datatypes.Date `json:"work_date" gorm:"not null;uniqueIndex:idx_daily_schedules_employee_date;index"`
	ShiftName    string         `json:"shift_name" gorm:"size:50"`
	StartTime    string         `json:"start_time" gorm:"size:8"`
	EndTime      string         `json:"end_time" gorm:"size:8"`
	Color        string         `json:"color,omitempty" gorm:"size:20"`
	Overnight    bool           `json:"overnight" gorm:"default:false"`
	Origin       ScheduleOrigin `json:"origin" gorm:"type:varchar(20);default:'manual'"`
}

// TableName returns the table name for DailySchedule
func (DailySchedule) TableName() string {
	return "employee_daily_schedules"
}
