package repository

import (
	"errors"

	"hospital-appointment/internal/domain/entity"
	domainRepo "hospital-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type workingHourRepository struct{}

func NewWorkingHourRepository() domainRepo.WorkingHourRepository {
	return &workingHourRepository{}
}

func (r *workingHourRepository) Create(db *gorm.DB, workingHour *entity.WorkingHour) error {
	return db.Create(workingHour).Error
}

func (r *workingHourRepository) FindByID(db *gorm.DB, id int) (*entity.WorkingHour, error) {
	var workingHour entity.WorkingHour
	err := db.Where("id = ?", id).First(&workingHour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workingHour, nil
}

func (r *workingHourRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.WorkingHour, error) {
	var workingHours []entity.WorkingHour
	err := db.Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC, start_time ASC, id ASC").
		Find(&workingHours).Error
	if err != nil {
		return nil, err
	}
	return workingHours, nil
}

func (r *workingHourRepository) Update(db *gorm.DB, workingHour *entity.WorkingHour) error {
	return db.Save(workingHour).Error
}

// Deactivate soft-deletes a working hour. Returns affected rows: 0 = already inactive or missing.
func (r *workingHourRepository) Deactivate(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.WorkingHour{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
