package repository

import (
	"time"

	"hospital-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

// DoctorScheduleRepository is the read side consumed by the availability engine.
type DoctorScheduleRepository interface {
	// GetDoctorWithSchedule loads a doctor with working hours and availability
	// blocks. Returns nil, nil when the doctor does not exist.
	GetDoctorWithSchedule(db *gorm.DB, doctorID int) (*entity.Doctor, error)
	// HasConflictingAppointment reports whether a non-cancelled appointment
	// exists for the doctor on date at exactly at.
	HasConflictingAppointment(db *gorm.DB, doctorID int, date time.Time, at entity.TimeOfDay) (bool, error)
	// FindBookedTimes returns the times of all non-cancelled appointments of the doctor on date.
	FindBookedTimes(db *gorm.DB, doctorID int, date time.Time) ([]entity.TimeOfDay, error)
}
