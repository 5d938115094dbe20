package usecase

import (
	"context"
	"time"

	"hospital-appointment/internal/delivery/http/middleware"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// currentDoctor resolves the doctor profile of the calling user
func currentDoctor(ctx context.Context, db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) (*entity.Doctor, string, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, "", ErrUnauthenticated
	}

	doctor, err := doctorRepo.FindByUserID(db.WithContext(ctx), userID)
	if err != nil {
		log.Warnf("Failed to find doctor for user %s: %+v", userID, err)
		return nil, "", err
	}
	if doctor == nil {
		return nil, "", ErrDoctorNotFound
	}
	return doctor, userID, nil
}

// currentPatient resolves the patient profile of the calling user
func currentPatient(ctx context.Context, db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) (*entity.Patient, string, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, "", ErrUnauthenticated
	}

	patient, err := patientRepo.FindByUserID(db.WithContext(ctx), userID)
	if err != nil {
		log.Warnf("Failed to find patient for user %s: %+v", userID, err)
		return nil, "", err
	}
	if patient == nil {
		return nil, "", ErrPatientNotFound
	}
	return patient, userID, nil
}

// parseDate parses a yyyy-MM-dd calendar date at midnight in loc
func parseDate(value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return date, nil
}

// parseClock parses a strict HH:mm time of day
func parseClock(value string) (entity.TimeOfDay, error) {
	if len(value) != 5 {
		return 0, ErrInvalidTimeFormat
	}
	tod, err := entity.ParseTimeOfDay(value)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return tod, nil
}
