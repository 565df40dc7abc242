package models

// ScheduleOrigin records where a daily schedule row came from
type ScheduleOrigin string

const (
	ScheduleOriginManual ScheduleOrigin = "manual"
	ScheduleOriginImport ScheduleOrigin = "import"
	ScheduleOriginSeed   ScheduleOrigin = "seed"
)

// IsValid checks if the ScheduleOrigin is valid
func (s ScheduleOrigin) IsValid() bool {
	switch s {
	case ScheduleOriginManual, ScheduleOriginImport, ScheduleOriginSeed:
		return true
	}
	return false
}
