package repository

import (
	"errors"
	"time"

	"hospital-appointment/internal/domain/entity"
	domainRepo "hospital-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

const sqlDateLayout = "2006-01-02"

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

// GetDoctorWithSchedule preloads rules in insertion order so that callers see a
// deterministic ordering.
func (r *doctorScheduleRepository) GetDoctorWithSchedule(db *gorm.DB, doctorID int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.
		Preload("WorkingHours", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("working_hours.id ASC")
		}).
		Preload("AvailabilityBlocks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("availability_blocks.start_date_time ASC, availability_blocks.id ASC")
		}).
		Where("id = ?", doctorID).
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorScheduleRepository) HasConflictingAppointment(db *gorm.DB, doctorID int, date time.Time, at entity.TimeOfDay) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
			doctorID, date.Format(sqlDateLayout), at, entity.AppointmentStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorScheduleRepository) FindBookedTimes(db *gorm.DB, doctorID int, date time.Time) ([]entity.TimeOfDay, error) {
	var times []entity.TimeOfDay
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status <> ?",
			doctorID, date.Format(sqlDateLayout), entity.AppointmentStatusCancelled).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}
