package usecase

import (
	"context"
	"strconv"

	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"
	"hospital-appointment/internal/observability/metrics"
	"hospital-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// appointmentStatusChanger moves appointments between statuses with a
// conditional update and an audit entry in one transaction.
type appointmentStatusChanger struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	metrics         *metrics.BookingMetrics
}

func (c *appointmentStatusChanger) change(ctx context.Context, userID string, appointment *entity.Appointment, from []entity.AppointmentStatus, to entity.AppointmentStatus) error {
	if !statusIn(appointment.Status, from) {
		return ErrInvalidStatusTransition
	}

	tx := c.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := c.appointmentRepo.UpdateStatus(tx, appointment.ID, from, to)
	if err != nil {
		c.log.Warnf("Failed to update appointment %d status: %+v", appointment.ID, err)
		return err
	}
	if affected == 0 {
		// status changed by a concurrent request
		return ErrInvalidStatusTransition
	}

	if err := c.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentStatus,
		"appointment", strconv.Itoa(appointment.ID), appointment.Status.String(), to.String()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		c.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	c.metrics.ObserveTransition(to.String())
	c.log.Infof("Appointment %d status changed: %s -> %s", appointment.ID, appointment.Status, to)

	appointment.Status = to
	if to == entity.AppointmentStatusConfirmed {
		appointment.IsConfirmed = true
	}
	return nil
}

func statusIn(status entity.AppointmentStatus, set []entity.AppointmentStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
