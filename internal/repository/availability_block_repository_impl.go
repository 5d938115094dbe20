package repository

import (
	"errors"

	"hospital-appointment/internal/domain/entity"
	domainRepo "hospital-appointment/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilityBlockRepository struct{}

func NewAvailabilityBlockRepository() domainRepo.AvailabilityBlockRepository {
	return &availabilityBlockRepository{}
}

func (r *availabilityBlockRepository) Create(db *gorm.DB, block *entity.AvailabilityBlock) error {
	return db.Create(block).Error
}

func (r *availabilityBlockRepository) FindByID(db *gorm.DB, id int) (*entity.AvailabilityBlock, error) {
	var block entity.AvailabilityBlock
	err := db.Where("id = ?", id).First(&block).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &block, nil
}

func (r *availabilityBlockRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.AvailabilityBlock, error) {
	var blocks []entity.AvailabilityBlock
	err := db.Where("doctor_id = ?", doctorID).
		Order("start_date_time DESC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *availabilityBlockRepository) Update(db *gorm.DB, block *entity.AvailabilityBlock) error {
	return db.Save(block).Error
}

func (r *availabilityBlockRepository) Deactivate(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.AvailabilityBlock{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
