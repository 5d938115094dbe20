package converter

import (
	"testing"
	"time"

	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSlotsToResponses(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	slots := []time.Time{
		time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 16, 30, 0, 0, loc),
	}

	assert.Equal(t, []dto.TimeSlotResponse{
		{Date: "2025-03-10", Time: "09:00"},
		{Date: "2025-03-10", Time: "16:30"},
	}, SlotsToResponses(slots))
	assert.Equal(t, []string{"2025-03-10"}, DatesToStrings(slots[:1]))
	assert.Empty(t, SlotsToResponses(nil))
}

func TestAppointmentToResponse(t *testing.T) {
	appointment := &entity.Appointment{
		ID:              5,
		DoctorID:        1,
		PatientID:       2,
		AppointmentDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: entity.NewTimeOfDay(10, 30),
		Status:          entity.AppointmentStatusConfirmed,
		IsConfirmed:     true,
		Doctor:          entity.Doctor{ID: 1, FirstName: "Ayse", LastName: "Kaya"},
	}

	resp := AppointmentToResponse(appointment)

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "10:30", resp.Time)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Ayse Kaya", resp.DoctorName)
	assert.Empty(t, resp.PatientName)
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestWorkingHourToResponse(t *testing.T) {
	wh := &entity.WorkingHour{
		ID:        3,
		DoctorID:  1,
		DayOfWeek: time.Monday,
		StartTime: entity.NewTimeOfDay(9, 0),
		EndTime:   entity.NewTimeOfDay(17, 0),
		IsActive:  true,
	}

	resp := WorkingHourToResponse(wh)

	assert.Equal(t, 1, resp.DayOfWeek)
	assert.Equal(t, "Monday", resp.DayName)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
}
