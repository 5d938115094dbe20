package usecase

import (
	"context"
	"strconv"
	"time"

	"hospital-appointment/config"
	"hospital-appointment/internal/converter"
	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"
	"hospital-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AvailabilityBlockUsecase lets a doctor block out date-time spans
type AvailabilityBlockUsecase interface {
	GetMine(ctx context.Context) (*dto.AvailabilityBlockListResponse, error)
	Create(ctx context.Context, req *dto.AvailabilityBlockRequest) (*dto.AvailabilityBlockResponse, error)
	Update(ctx context.Context, id int, req *dto.AvailabilityBlockRequest) (*dto.AvailabilityBlockResponse, error)
	Deactivate(ctx context.Context, id int) error
}

type availabilityBlockUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	blockRepo    repository.AvailabilityBlockRepository
	auditService service.AuditService
	loc          *time.Location
}

func NewAvailabilityBlockUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	blockRepo repository.AvailabilityBlockRepository,
	auditService service.AuditService,
	cfg config.AvailabilityConfig,
) AvailabilityBlockUsecase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityBlockUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		blockRepo:    blockRepo,
		auditService: auditService,
		loc:          loc,
	}
}

func (u *availabilityBlockUsecase) GetMine(ctx context.Context) (*dto.AvailabilityBlockListResponse, error) {
	doctor, _, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	blocks, err := u.blockRepo.FindByDoctorID(u.db.WithContext(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find availability blocks for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.AvailabilityBlockListResponse{
		AvailabilityBlocks: converter.AvailabilityBlocksToResponses(blocks, u.loc),
		Total:              len(blocks),
	}, nil
}

func (u *availabilityBlockUsecase) Create(ctx context.Context, req *dto.AvailabilityBlockRequest) (*dto.AvailabilityBlockResponse, error) {
	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	block := &entity.AvailabilityBlock{DoctorID: doctor.ID, IsActive: true}
	if err := applyAvailabilityBlockRequest(block, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blockRepo.Create(tx, block); err != nil {
		u.log.Warnf("Failed to create availability block: %+v", err)
		return nil, err
	}

	resp := converter.AvailabilityBlockToResponse(block, u.loc)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAvailabilityCreate,
		"availability_block", strconv.Itoa(block.ID), resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *availabilityBlockUsecase) Update(ctx context.Context, id int, req *dto.AvailabilityBlockRequest) (*dto.AvailabilityBlockResponse, error) {
	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	block, err := u.findOwned(ctx, doctor.ID, id)
	if err != nil {
		return nil, err
	}
	before := converter.AvailabilityBlockToResponse(block, u.loc)

	if err := applyAvailabilityBlockRequest(block, req); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blockRepo.Update(tx, block); err != nil {
		u.log.Warnf("Failed to update availability block %d: %+v", id, err)
		return nil, err
	}

	resp := converter.AvailabilityBlockToResponse(block, u.loc)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAvailabilityUpdate,
		"availability_block", strconv.Itoa(id), before, resp); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// Deactivate soft-deletes the block. Deactivating twice is a no-op.
func (u *availabilityBlockUsecase) Deactivate(ctx context.Context, id int) error {
	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return err
	}

	if _, err := u.findOwned(ctx, doctor.ID, id); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.blockRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate availability block %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return nil
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAvailabilityDisable,
		"availability_block", strconv.Itoa(id), map[string]bool{"is_active": true}, map[string]bool{"is_active": false}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *availabilityBlockUsecase) findOwned(ctx context.Context, doctorID, id int) (*entity.AvailabilityBlock, error) {
	block, err := u.blockRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find availability block %d: %+v", id, err)
		return nil, err
	}
	if block == nil {
		return nil, ErrAvailabilityBlockNotFound
	}
	if block.DoctorID != doctorID {
		return nil, ErrNotOwner
	}
	return block, nil
}

func applyAvailabilityBlockRequest(block *entity.AvailabilityBlock, req *dto.AvailabilityBlockRequest) error {
	if !req.StartDateTime.Before(req.EndDateTime) {
		return ErrInvalidTimeRange
	}

	block.StartDateTime = req.StartDateTime
	block.EndDateTime = req.EndDateTime
	block.Description = req.Description
	block.Reason = req.Reason
	if req.IsActive != nil {
		block.IsActive = *req.IsActive
	}
	return nil
}
