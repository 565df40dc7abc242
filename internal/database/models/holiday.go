package models

import (
	"gorm.io/datatypes"
)

// Holiday marks a non-working date, globally or for one employee group
type Holiday struct {
	BaseModel
	HolidayDate datatypes.Date `json:"holiday_date" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	GroupCode   string         `json:"group_code,omitempty" gorm:"size:50;index"`
	Recurrence  string         `json:"recurrence,omitempty" gorm:"size:100"`
}

// TableName returns the table name for Holiday
func (Holiday) TableName() string {
	return "holidays"
}
