package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-appointment/config"
	"hospital-appointment/internal/converter"
	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"
	"hospital-appointment/internal/observability/metrics"
	"hospital-appointment/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// appointmentSlotIndex is the partial unique index over non-cancelled
// (doctor_id, appointment_date, appointment_time)
const appointmentSlotIndex = "uq_appointments_doctor_slot"

type PatientAppointmentUsecase interface {
	Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
}

type patientAppointmentUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	patientRepo         repository.PatientRepository
	doctorRepo          repository.DoctorRepository
	appointmentRepo     repository.AppointmentRepository
	availabilityService service.AvailabilityService
	reservationService  *service.SlotReservationService
	auditService        service.AuditService
	metrics             *metrics.BookingMetrics
	status              *appointmentStatusChanger
	loc                 *time.Location
	now                 func() time.Time
}

func NewPatientAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	availabilityService service.AvailabilityService,
	reservationService *service.SlotReservationService,
	auditService service.AuditService,
	m *metrics.BookingMetrics,
	cfg config.AvailabilityConfig,
) PatientAppointmentUsecase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &patientAppointmentUsecase{
		db:                  db,
		log:                 log,
		patientRepo:         patientRepo,
		doctorRepo:          doctorRepo,
		appointmentRepo:     appointmentRepo,
		availabilityService: availabilityService,
		reservationService:  reservationService,
		auditService:        auditService,
		metrics:             m,
		status: &appointmentStatusChanger{
			db:              db,
			log:             log,
			appointmentRepo: appointmentRepo,
			auditService:    auditService,
			metrics:         m,
		},
		loc: loc,
		now: time.Now,
	}
}

// Book creates a Scheduled appointment for the calling patient.
//
// Flow:
// 1. Parse the requested date-time and reject the past
// 2. Hold the slot in Redis so concurrent requests for it fail fast
// 3. Re-check the slot with the availability engine
// 4. Insert appointment + audit log in one transaction; the unique slot
// index rejects anything that slipped past the hold
func (u *patientAppointmentUsecase) Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, userID, err := currentPatient(ctx, u.db, u.log, u.patientRepo)
	if err != nil {
		return nil, err
	}

	day, err := parseDate(req.Date, u.loc)
	if err != nil {
		return nil, err
	}
	tod, err := parseClock(req.Time)
	if err != nil {
		return nil, err
	}
	startsAt := tod.On(day)
	if !startsAt.After(u.now()) {
		u.metrics.ObserveBooking("rejected_past")
		return nil, ErrAppointmentInPast
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsActive {
		return nil, ErrDoctorNotFound
	}

	hold, err := u.reservationService.Reserve(ctx, req.DoctorID, day, tod)
	if err != nil {
		if errors.Is(err, service.ErrSlotReserved) {
			u.metrics.ObserveBooking("conflict")
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := u.reservationService.Release(releaseCtx, hold); err != nil {
			// the hold expires on its own
			u.log.Warnf("Failed to release slot hold %s (non-fatal): %+v", hold.Key, err)
		}
	}()

	available, err := u.availabilityService.IsDoctorAvailable(ctx, req.DoctorID, startsAt)
	if err != nil {
		return nil, err
	}
	if !available {
		u.metrics.ObserveBooking("unavailable")
		return nil, ErrSlotNotAvailable
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       patient.ID,
		AppointmentDate: day,
		AppointmentTime: tod,
		Notes:           req.Notes,
		Status:          entity.AppointmentStatusScheduled,
		IsConfirmed:     false,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, appointmentSlotIndex) {
			u.metrics.ObserveBooking("conflict")
			return nil, ErrSlotNotAvailable
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAppointmentBook,
		"appointment", strconv.Itoa(appointment.ID), converter.AppointmentToResponse(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.ObserveBooking("created")
	u.log.Infof("Appointment booked: id=%d, doctor=%d, patient=%d, at=%s %s",
		appointment.ID, appointment.DoctorID, appointment.PatientID, req.Date, tod)

	appointment.Doctor = *doctor
	appointment.Patient = *patient
	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns all appointments of the logged-in patient
func (u *patientAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patient, _, err := currentPatient(ctx, u.db, u.log, u.patientRepo)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Cancel cancels a Scheduled or Confirmed appointment owned by the patient
func (u *patientAppointmentUsecase) Cancel(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
	patient, userID, err := currentPatient(ctx, u.db, u.log, u.patientRepo)
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
	if appointment.PatientID != patient.ID {
		return nil, ErrNotOwner
	}

	err = u.status.change(ctx, userID, appointment,
		entity.TransitionSources(entity.AppointmentStatusCancelled), entity.AppointmentStatusCancelled)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
