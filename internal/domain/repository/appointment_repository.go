package repository

import (
	"hospital-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int, status *entity.AppointmentStatus) ([]entity.Appointment, error)
	// UpdateStatus moves the appointment to status only if its current status is one
	// of from. Returns affected rows: 1 = moved, 0 = status changed concurrently.
	UpdateStatus(db *gorm.DB, id int, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error)
}
