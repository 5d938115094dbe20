package repository

import (
	"hospital-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type WorkingHourRepository interface {
	Create(db *gorm.DB, workingHour *entity.WorkingHour) error
	FindByID(db *gorm.DB, id int) (*entity.WorkingHour, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.WorkingHour, error)
	Update(db *gorm.DB, workingHour *entity.WorkingHour) error
	Deactivate(db *gorm.DB, id int) (int64, error)
}
