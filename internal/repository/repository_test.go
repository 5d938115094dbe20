package repository

import (
	"testing"
	"time"

	"hospital-appointment/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestDoctorScheduleRepository_GetDoctorWithSchedule(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewDoctorScheduleRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "is_active"}).
			AddRow(7, "Ayse", "Kaya", true))
	mock.ExpectQuery(`SELECT \* FROM "working_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "day_of_week", "start_time", "end_time", "is_active"}).
			AddRow(1, 7, 1, "09:00:00", "12:00:00", true).
			AddRow(2, 7, 1, "13:00:00", "17:00:00", true))
	mock.ExpectQuery(`SELECT \* FROM "availability_blocks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "is_active"}))

	doctor, err := repo.GetDoctorWithSchedule(db, 7)

	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, 7, doctor.ID)
	require.Len(t, doctor.WorkingHours, 2)
	assert.Equal(t, time.Monday, doctor.WorkingHours[0].DayOfWeek)
	assert.Equal(t, entity.NewTimeOfDay(9, 0), doctor.WorkingHours[0].StartTime)
	assert.Equal(t, entity.NewTimeOfDay(17, 0), doctor.WorkingHours[1].EndTime)
	assert.Empty(t, doctor.AvailabilityBlocks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorScheduleRepository_GetDoctorWithSchedule_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorScheduleRepository()

	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	doctor, err := repo.GetDoctorWithSchedule(db, 404)

	assert.NoError(t, err)
	assert.Nil(t, doctor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorScheduleRepository_HasConflictingAppointment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorScheduleRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WithArgs(7, "2025-03-10", "10:00:00", entity.AppointmentStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	conflict, err := repo.HasConflictingAppointment(db, 7, date, entity.NewTimeOfDay(10, 0))

	require.NoError(t, err)
	assert.True(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorScheduleRepository_FindBookedTimes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorScheduleRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT "appointment_time" FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).
			AddRow("09:30:00").
			AddRow("14:00:00"))

	times, err := repo.FindBookedTimes(db, 7, date)

	require.NoError(t, err)
	assert.Equal(t, []entity.TimeOfDay{entity.NewTimeOfDay(9, 30), entity.NewTimeOfDay(14, 0)}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkingHourRepository_Deactivate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkingHourRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "working_hours" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.Deactivate(db, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_UpdateStatus_NoRowsWhenStatusMoved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAppointmentRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatus(db, 12,
		entity.TransitionSources(entity.AppointmentStatusConfirmed),
		entity.AppointmentStatusConfirmed)

	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
