package usecase

import (
	"testing"
	"time"

	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorAppointmentFixture(t *testing.T, appointments ...*entity.Appointment) (DoctorAppointmentUsecase, sqlmock.Sqlmock, *fakeAppointmentRepo, *fakeAuditRepo) {
	t.Helper()
	db, mock := setupMockDB(t)
	log := newTestLogger()
	doctors := &fakeDoctorRepo{doctors: map[int]*entity.Doctor{
		1: {ID: 1, UserID: strPtr("doctor-user"), IsActive: true},
		2: {ID: 2, UserID: strPtr("other-doctor"), IsActive: true},
	}}
	repo := newFakeAppointmentRepo(appointments...)
	audit := &fakeAuditRepo{}

	uc := NewDoctorAppointmentUsecase(db, log, doctors, repo, service.NewAuditService(log, audit), nil)
	return uc, mock, repo, audit
}

func doctorAppointment(id, doctorID int, status entity.AppointmentStatus) *entity.Appointment {
	return &entity.Appointment{
		ID:              id,
		DoctorID:        doctorID,
		PatientID:       10,
		AppointmentDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		AppointmentTime: entity.NewTimeOfDay(9, 0),
		Status:          status,
	}
}

func TestDecide_Transitions(t *testing.T) {
	tests := []struct {
		action  DoctorAppointmentAction
		from    entity.AppointmentStatus
		want    entity.AppointmentStatus
		wantErr error
	}{
		{ActionApprove, entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed, nil},
		{ActionApprove, entity.AppointmentStatusConfirmed, 0, ErrInvalidStatusTransition},
		{ActionReject, entity.AppointmentStatusScheduled, entity.AppointmentStatusCancelled, nil},
		{ActionReject, entity.AppointmentStatusConfirmed, 0, ErrInvalidStatusTransition},
		{ActionCancel, entity.AppointmentStatusConfirmed, entity.AppointmentStatusCancelled, nil},
		{ActionCancel, entity.AppointmentStatusCancelled, 0, ErrInvalidStatusTransition},
		{ActionComplete, entity.AppointmentStatusConfirmed, entity.AppointmentStatusCompleted, nil},
		{ActionComplete, entity.AppointmentStatusNoShow, 0, ErrInvalidStatusTransition},
		{ActionNoShow, entity.AppointmentStatusScheduled, entity.AppointmentStatusNoShow, nil},
		{ActionNoShow, entity.AppointmentStatusCompleted, 0, ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(string(tt.action)+"_from_"+tt.from.String(), func(t *testing.T) {
			uc, mock, repo, audit := newDoctorAppointmentFixture(t, doctorAppointment(1, 1, tt.from))
			if tt.wantErr == nil {
				mock.ExpectBegin()
				mock.ExpectCommit()
			}

			resp, err := uc.Decide(asUser("doctor-user", entity.RoleIDDoctor), 1, tt.action)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.appointments[1].Status)
				assert.Empty(t, audit.logs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want.String(), resp.Status)
				assert.Equal(t, tt.want, repo.appointments[1].Status)
				assert.Equal(t, tt.want == entity.AppointmentStatusConfirmed, resp.IsConfirmed)
				require.Len(t, audit.logs, 1)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDecide_Ownership(t *testing.T) {
	uc, _, repo, _ := newDoctorAppointmentFixture(t, doctorAppointment(1, 2, entity.AppointmentStatusScheduled))

	_, err := uc.Decide(asUser("doctor-user", entity.RoleIDDoctor), 1, ActionApprove)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, entity.AppointmentStatusScheduled, repo.appointments[1].Status)

	_, err = uc.Decide(asUser("doctor-user", entity.RoleIDDoctor), 7, ActionApprove)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = uc.Decide(asUser("patient-user", entity.RoleIDDoctor), 1, ActionApprove)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestParseDoctorAppointmentAction(t *testing.T) {
	for _, name := range []string{"approve", "reject", "cancel", "complete", "no-show"} {
		action, ok := ParseDoctorAppointmentAction(name)
		assert.True(t, ok, name)
		assert.Equal(t, DoctorAppointmentAction(name), action)
	}
	_, ok := ParseDoctorAppointmentAction("reschedule")
	assert.False(t, ok)
}

func TestDoctorGetMyAppointments_StatusFilter(t *testing.T) {
	uc, _, _, _ := newDoctorAppointmentFixture(t,
		doctorAppointment(1, 1, entity.AppointmentStatusScheduled),
		doctorAppointment(2, 1, entity.AppointmentStatusConfirmed),
		doctorAppointment(3, 2, entity.AppointmentStatusScheduled),
	)
	ctx := asUser("doctor-user", entity.RoleIDDoctor)

	all, err := uc.GetMyAppointments(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	scheduled, err := uc.GetMyAppointments(ctx, "Scheduled")
	require.NoError(t, err)
	require.Equal(t, 1, scheduled.Total)
	assert.Equal(t, 1, scheduled.Appointments[0].ID)

	_, err = uc.GetMyAppointments(ctx, "pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
