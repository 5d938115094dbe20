package repository

import (
	"errors"

	"hospital-appointment/internal/domain/entity"
	domainRepo "hospital-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specialization").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAllActive returns active doctors only.
// Supports optional filters: doctor name and specialization.
func (r *doctorRepository) FindAllActive(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.
		Joins("JOIN specializations ON specializations.id = doctors.specialization_id").
		Where("doctors.is_active = ?", true)

	if filter != nil {
		if filter.Name != "" {
			like := "%" + filter.Name + "%"
			query = query.Where("(doctors.first_name ILIKE ? OR doctors.last_name ILIKE ?)", like, like)
		}
		if filter.Specialization != "" {
			query = query.Where("specializations.name ILIKE ?", "%"+filter.Specialization+"%")
		}
	}

	err := query.
		Preload("Specialization").
		Order("doctors.last_name ASC, doctors.first_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
