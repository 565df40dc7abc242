package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChartSession holds one stored scheduler run for a user. At most one row
// per session name is active.
type ChartSession struct {
	BaseModel
	UserID        string         `json:"user_id" gorm:"size:100;not null;index"`
	SessionName   string         `json:"session_name" gorm:"size:255;not null;index;uniqueIndex:idx_chart_sessions_active,where:is_active = true"`
	SessionID     string         `json:"session_id" gorm:"size:100;not null"`
	TimelineView  string         `json:"timeline_view" gorm:"size:20;not null;default:'week'"`
	ChartData     datatypes.JSON `json:"chart_data"`
	MachineData   datatypes.JSON `json:"machine_data"`
	SyncTimestamp time.Time      `json:"sync_timestamp"`
	IsActive      bool           `json:"is_active" gorm:"not null;default:false;index"`
}

// TableName returns the table name for ChartSession
func (ChartSession) TableName() string {
	return "chart_sessions"
}
