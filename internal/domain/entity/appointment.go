package entity

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = 1
	AppointmentStatusConfirmed AppointmentStatus = 2
	AppointmentStatusCompleted AppointmentStatus = 3
	AppointmentStatusCancelled AppointmentStatus = 4
	AppointmentStatusNoShow    AppointmentStatus = 5
)

var appointmentStatusNames = map[AppointmentStatus]string{
	AppointmentStatusScheduled: "scheduled",
	AppointmentStatusConfirmed: "confirmed",
	AppointmentStatusCompleted: "completed",
	AppointmentStatusCancelled: "cancelled",
	AppointmentStatusNoShow:    "no_show",
}

func (s AppointmentStatus) String() string {
	if name, ok := appointmentStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// ParseAppointmentStatus maps a status name back to its value
func ParseAppointmentStatus(name string) (AppointmentStatus, error) {
	for status, n := range appointmentStatusNames {
		if strings.EqualFold(n, name) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown appointment status %q", name)
}

// Appointment is a booked engagement between one doctor and one patient at
// AppointmentDate + AppointmentTime.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	PatientID       int               `gorm:"not null;index" json:"patient_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime TimeOfDay         `gorm:"type:time;not null" json:"appointment_time"`
	Notes           string            `gorm:"type:varchar(500)" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:smallint;not null;default:1;index" json:"status"`
	IsConfirmed     bool              `gorm:"not null;default:false" json:"is_confirmed"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OccupiesSlot reports whether the appointment blocks its (date, time) slot.
// Only cancelled appointments free their slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != AppointmentStatusCancelled
}

// StartsAt returns the full appointment date-time in loc
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	y, m, d := a.AppointmentDate.Date()
	return a.AppointmentTime.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

// allowedTransitions lists, per target status, the statuses it may be reached from
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusConfirmed: {AppointmentStatusScheduled},
	AppointmentStatusCancelled: {AppointmentStatusScheduled, AppointmentStatusConfirmed},
	AppointmentStatusCompleted: {AppointmentStatusScheduled, AppointmentStatusConfirmed},
	AppointmentStatusNoShow:    {AppointmentStatusScheduled, AppointmentStatusConfirmed},
}

// TransitionSources returns the statuses from which target may be reached
func TransitionSources(target AppointmentStatus) []AppointmentStatus {
	return allowedTransitions[target]
}

// CanTransitionTo checks whether the appointment may move to target
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	for _, from := range allowedTransitions[target] {
		if a.Status == from {
			return true
		}
	}
	return false
}
