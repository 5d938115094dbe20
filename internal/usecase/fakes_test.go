package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-appointment/internal/delivery/http/middleware"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testLoc = time.FixedZone("TRT", 3*60*60)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func asUser(userID string, roleID int) context.Context {
	return middleware.WithIdentity(context.Background(), &jwt.Claims{UserID: userID, RoleID: roleID})
}

type fakeDoctorRepo struct {
	doctors map[int]*entity.Doctor
}

func (r *fakeDoctorRepo) FindByID(_ *gorm.DB, id int) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) FindByUserID(_ *gorm.DB, userID string) (*entity.Doctor, error) {
	for _, d := range r.doctors {
		if d.UserID != nil && *d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAllActive(_ *gorm.DB, _ *entity.DoctorFilter) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, d := range r.doctors {
		if d.IsActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[int]*entity.Patient
}

func (r *fakePatientRepo) FindByID(_ *gorm.DB, id int) (*entity.Patient, error) {
	return r.patients[id], nil
}

func (r *fakePatientRepo) FindByUserID(_ *gorm.DB, userID string) (*entity.Patient, error) {
	for _, p := range r.patients {
		if p.UserID != nil && *p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

type fakeAppointmentRepo struct {
	appointments map[int]*entity.Appointment
	createErr    error
	// staleUpdate simulates a concurrent status change between read and update
	staleUpdate bool
}

func newFakeAppointmentRepo(appointments ...*entity.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: map[int]*entity.Appointment{}}
	for _, a := range appointments {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (r *fakeAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	appointment.ID = len(r.appointments) + 100
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ *gorm.DB, id int) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(_ *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByDoctorID(_ *gorm.DB, doctorID int, status *entity.AppointmentStatus) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && (status == nil || a.Status == *status) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ *gorm.DB, id int, from []entity.AppointmentStatus, to entity.AppointmentStatus) (int64, error) {
	a, ok := r.appointments[id]
	if !ok || r.staleUpdate || !statusIn(a.Status, from) {
		return 0, nil
	}
	a.Status = to
	if to == entity.AppointmentStatusConfirmed {
		a.IsConfirmed = true
	}
	return 1, nil
}

type fakeAuditRepo struct {
	logs []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(_ *gorm.DB, log *entity.AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}

type fakeAvailabilityService struct {
	available bool
	err       error
	dates     []time.Time
	openDates []time.Time
	slots     []time.Time

	gotDaysAhead int
	gotAt        time.Time
}

func (s *fakeAvailabilityService) GetAvailableDates(_ context.Context, _ int, daysAhead int) ([]time.Time, error) {
	s.gotDaysAhead = daysAhead
	return s.dates, s.err
}

func (s *fakeAvailabilityService) GetOpenDates(_ context.Context, _ int, daysAhead int) ([]time.Time, error) {
	s.gotDaysAhead = daysAhead
	return s.openDates, s.err
}

func (s *fakeAvailabilityService) GetAvailableTimeSlots(_ context.Context, _ int, date time.Time) ([]time.Time, error) {
	s.gotAt = date
	return s.slots, s.err
}

func (s *fakeAvailabilityService) IsDoctorAvailable(_ context.Context, _ int, at time.Time) (bool, error) {
	s.gotAt = at
	return s.available, s.err
}

func strPtr(s string) *string { return &s }
