package repository

import (
	"hospital-appointment/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByUserID(db *gorm.DB, userID string) (*entity.Patient, error)
}
