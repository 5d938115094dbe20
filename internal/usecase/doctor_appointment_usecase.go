package usecase

import (
	"context"

	"hospital-appointment/internal/converter"
	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"
	"hospital-appointment/internal/observability/metrics"
	"hospital-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DoctorAppointmentAction names a decision a doctor takes on an appointment
type DoctorAppointmentAction string

const (
	ActionApprove  DoctorAppointmentAction = "approve"
	ActionReject   DoctorAppointmentAction = "reject"
	ActionCancel   DoctorAppointmentAction = "cancel"
	ActionComplete DoctorAppointmentAction = "complete"
	ActionNoShow   DoctorAppointmentAction = "no-show"
)

// doctorActionTransition lists, per action, the accepted current statuses and the target
var doctorActionTransition = map[DoctorAppointmentAction]struct {
	from []entity.AppointmentStatus
	to   entity.AppointmentStatus
}{
	ActionApprove:  {[]entity.AppointmentStatus{entity.AppointmentStatusScheduled}, entity.AppointmentStatusConfirmed},
	ActionReject:   {[]entity.AppointmentStatus{entity.AppointmentStatusScheduled}, entity.AppointmentStatusCancelled},
	ActionCancel:   {entity.TransitionSources(entity.AppointmentStatusCancelled), entity.AppointmentStatusCancelled},
	ActionComplete: {entity.TransitionSources(entity.AppointmentStatusCompleted), entity.AppointmentStatusCompleted},
	ActionNoShow:   {entity.TransitionSources(entity.AppointmentStatusNoShow), entity.AppointmentStatusNoShow},
}

// ParseDoctorAppointmentAction validates an action name from the URL
func ParseDoctorAppointmentAction(name string) (DoctorAppointmentAction, bool) {
	action := DoctorAppointmentAction(name)
	_, ok := doctorActionTransition[action]
	return action, ok
}

type DoctorAppointmentUsecase interface {
	GetMyAppointments(ctx context.Context, status string) (*dto.AppointmentListResponse, error)
	Decide(ctx context.Context, appointmentID int, action DoctorAppointmentAction) (*dto.AppointmentResponse, error)
}

type doctorAppointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	status          *appointmentStatusChanger
}

func NewDoctorAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	m *metrics.BookingMetrics,
) DoctorAppointmentUsecase {
	return &doctorAppointmentUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		status: &appointmentStatusChanger{
			db:              db,
			log:             log,
			appointmentRepo: appointmentRepo,
			auditService:    auditService,
			metrics:         m,
		},
	}
}

// GetMyAppointments lists the calling doctor's appointments, optionally by status name
func (u *doctorAppointmentUsecase) GetMyAppointments(ctx context.Context, status string) (*dto.AppointmentListResponse, error) {
	doctor, _, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	var filter *entity.AppointmentStatus
	if status != "" {
		parsed, err := entity.ParseAppointmentStatus(status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		filter = &parsed
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctor.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Decide applies action to one of the calling doctor's appointments
func (u *doctorAppointmentUsecase) Decide(ctx context.Context, appointmentID int, action DoctorAppointmentAction) (*dto.AppointmentResponse, error) {
	transition, ok := doctorActionTransition[action]
	if !ok {
		return nil, ErrInvalidStatusTransition
	}

	doctor, userID, err := currentDoctor(ctx, u.db, u.log, u.doctorRepo)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctor.ID {
		return nil, ErrNotOwner
	}

	if err := u.status.change(ctx, userID, appointment, transition.from, transition.to); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
