package entity

import "time"

// AvailabilityBlock marks a doctor unavailable for [StartDateTime, EndDateTime).
type AvailabilityBlock struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID      int       `gorm:"not null;index" json:"doctor_id"`
	StartDateTime time.Time `gorm:"type:timestamptz;not null;index" json:"start_date_time"`
	EndDateTime   time.Time `gorm:"type:timestamptz;not null" json:"end_date_time"`
	Description   string    `gorm:"type:varchar(200)" json:"description,omitempty"`
	Reason        string    `gorm:"type:varchar(500)" json:"reason,omitempty"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AvailabilityBlock) TableName() string {
	return "availability_blocks"
}

func (b *AvailabilityBlock) IsValid() bool {
	return b.StartDateTime.Before(b.EndDateTime)
}

// Covers reports whether StartDateTime <= t < EndDateTime
func (b *AvailabilityBlock) Covers(t time.Time) bool {
	return !t.Before(b.StartDateTime) && t.Before(b.EndDateTime)
}

// TouchesDate reports whether the calendar date of day lies between the block's
// start date and end date inclusive, both evaluated in day's location.
func (b *AvailabilityBlock) TouchesDate(day time.Time) bool {
	loc := day.Location()
	d := dateOf(day)
	return !d.Before(dateOf(b.StartDateTime.In(loc))) && !d.After(dateOf(b.EndDateTime.In(loc)))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
