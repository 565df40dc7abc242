package models

import (
	"gorm.io/datatypes"
)

// ShiftTemplate is a named rotation pattern worked by an operator team
type ShiftTemplate struct {
	BaseModel
	Code      string `json:"code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Name      string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	TeamLabel string `json:"team_label" gorm:"size:100" validate:"max=100"`

	// Relationships
	Steps []RotationStep `json:"steps,omitempty" gorm:"foreignKey:TemplateCode;references:Code;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftTemplate
func (ShiftTemplate) TableName() string {
	return "shift_templates"
}

// RotationStep is one cycle day of a template rotation
type RotationStep struct {
	BaseModel
	TemplateCode string `json:"template_code" gorm:"size:50;not null;uniqueIndex:idx_rotation_steps_template_order" validate:"required"`
	StepOrder    int    `json:"step_order" gorm:"not null;uniqueIndex:idx_rotation_steps_template_order" validate:"min=0"`
	ShiftName    string `json:"shift_name" gorm:"size:50"`
	StartTime    string `json:"start_time" gorm:"size:8"`
	EndTime      string `json:"end_time" gorm:"size:8"`
	Overnight    bool   `json:"overnight" gorm:"default:false"`
	DayOff       bool   `json:"day_off" gorm:"default:false"`
	Color        string `json:"color,omitempty" gorm:"size:20"`
}

// TableName returns the table name for RotationStep
func (RotationStep) TableName() string {
	return "rotation_steps"
}

// ShiftAssignment binds an employee or operator team to a rotation
type ShiftAssignment struct {
	BaseModel
	SubjectCode  string         `json:"subject_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	TemplateCode string         `json:"template_code" gorm:"size:50;not null;index" validate:"required"`
	AnchorDate   datatypes.Date `json:"anchor_date" gorm:"not null"`
	GroupCode    string         `json:"group_code,omitempty" gorm:"size:50;index"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
