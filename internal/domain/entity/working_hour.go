package entity

import "time"

// WorkingHour is a recurring weekly interval [StartTime, EndTime) on one weekday.
// Rows are soft-deleted through IsActive.
type WorkingHour struct {
	ID        int          `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int          `gorm:"not null;index:idx_working_hours_doctor_day" json:"doctor_id"`
	DayOfWeek time.Weekday `gorm:"type:smallint;not null;index:idx_working_hours_doctor_day" json:"day_of_week"`
	StartTime TimeOfDay    `gorm:"type:time;not null" json:"start_time"`
	EndTime   TimeOfDay    `gorm:"type:time;not null" json:"end_time"`
	IsActive  bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkingHour) TableName() string {
	return "working_hours"
}

// IsValid reports whether the rule describes a non-empty interval within one day.
// EndTime may be 24:00, the end of the day.
func (w *WorkingHour) IsValid() bool {
	return w.StartTime.Valid() && w.EndTime <= endOfDay && w.StartTime < w.EndTime &&
		w.DayOfWeek >= time.Sunday && w.DayOfWeek <= time.Saturday
}

// Contains reports whether t falls within [StartTime, EndTime)
func (w *WorkingHour) Contains(t TimeOfDay) bool {
	return t >= w.StartTime && t < w.EndTime
}
