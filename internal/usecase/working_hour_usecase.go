package usecase

import (
	"context"
	"strconv"
	"time"

	"hospital-appointment/internal/converter"
	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"
	"hospital-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WorkingHourUsecase lets a doctor manage their recurring weekly hours
type WorkingHourUsecase interface {
	GetMine(ctx context.Context) (*dto.WorkingHourListResponse, error)
	Create(ctx context.Context, req *dto.WorkingHourRequest) (*dto.WorkingHourResponse, error)
	Update(ctx context.Context, id int, req *dto.WorkingHourRequest) (*dto.WorkingHourResponse, error)
	Deactivate(ctx context.Context, id int) error
}

type workingHourUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	workingHourRepo repository.WorkingHourRepository
	auditService    service.AuditService
}

func NewWorkingHourUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	workingHourRepo repository.WorkingHourRepository,
	auditService service.AuditService,
) WorkingHourUsecase {
	return &workingHourUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		workingHourRepo: workingHourRepo,
		auditService:    auditService,
	}
}

func (u *workingHourUsecase) GetMine(ctx context.Context) (*dto.WorkingHourListResponse, error) {
	doctor, _, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	workingHours, err := u.workingHourRepo.FindByDoctorID(u.db.WithContext(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find working hours for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.WorkingHourListResponse{
		WorkingHours: converter.WorkingHoursToResponses(workingHours),
		Total:        len(workingHours),
	}, nil
}

func (u *workingHourUsecase) Create(ctx context.Context, req *dto.WorkingHourRequest) (*dto.WorkingHourResponse, error) {
	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	workingHour := &entity.WorkingHour{DoctorID: doctor.ID, IsActive: true}
	if err := applyWorkingHourRequest(workingHour, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.workingHourRepo.Create(tx, workingHour); err != nil {
		u.log.Warnf("Failed to create working hour: %+v", err)
		return nil, err
	}

	resp := converter.WorkingHourToResponse(workingHour)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionWorkingHourCreate,
		"working_hour", strconv.Itoa(workingHour.ID), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *workingHourUsecase) Update(ctx context.Context, id int, req *dto.WorkingHourRequest) (*dto.WorkingHourResponse, error) {
	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	workingHour, err := u.findOwned(ctx, doctor.ID, id)
	if err != nil {
		return nil, err
	}
	before := converter.WorkingHourToResponse(workingHour)

	if err := applyWorkingHourRequest(workingHour, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.workingHourRepo.Update(tx, workingHour); err != nil {
		u.log.Warnf("Failed to update working hour %d: %+v", id, err)
		return nil, err
	}

	resp := converter.WorkingHourToResponse(workingHour)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionWorkingHourUpdate,
		"working_hour", strconv.Itoa(id), before, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// Deactivate soft-deletes the working hour. Deactivating twice is a no-op.
func (u *workingHourUsecase) Deactivate(ctx context.Context, id int) error {
	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return err
	}

	if _, err := u.findOwned(ctx, doctor.ID, id); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.workingHourRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate working hour %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return nil
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionWorkingHourDisable,
		"working_hour", strconv.Itoa(id), map[string]bool{"is_active": true}, map[string]bool{"is_active": false}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *workingHourUsecase) findOwned(ctx context.Context, doctorID, id int) (*entity.WorkingHour, error) {
	workingHour, err := u.workingHourRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find working hour %d: %+v", id, err)
		return nil, err
	}
	if workingHour == nil {
		return nil, ErrWorkingHourNotFound
	}
	if workingHour.DoctorID != doctorID {
		return nil, ErrNotOwner
	}
	return workingHour, nil
}

func applyWorkingHourRequest(workingHour *entity.WorkingHour, req *dto.WorkingHourRequest) error {
	start, err := parseClock(req.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidTimeRange
	}

	if req.DayOfWeek != nil {
		workingHour.DayOfWeek = time.Weekday(*req.DayOfWeek)
	}
	workingHour.StartTime = start
	workingHour.EndTime = end
	if req.IsActive != nil {
		workingHour.IsActive = *req.IsActive
	}
	return nil
}
