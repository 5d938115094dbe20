package repository

import (
	"hospital-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilityBlockRepository interface {
	Create(db *gorm.DB, block *entity.AvailabilityBlock) error
	FindByID(db *gorm.DB, id int) (*entity.AvailabilityBlock, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.AvailabilityBlock, error)
	Update(db *gorm.DB, block *entity.AvailabilityBlock) error
	Deactivate(db *gorm.DB, id int) (int64, error)
}
