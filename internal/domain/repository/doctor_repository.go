package repository

import (
	"hospital-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID string) (*entity.Doctor, error)
	FindAllActive(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
}
