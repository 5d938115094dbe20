package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/usecase"
	"hospital-appointment/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityUsecase struct {
	dates        []string
	slots        *dto.TimeSlotListResponse
	check        *dto.AvailabilityCheckResponse
	err          error
	gotDaysAhead *int
	gotMode      string
}

func (s *stubAvailabilityUsecase) GetAvailableDates(_ context.Context, _ int, daysAhead *int, mode string) ([]string, error) {
	s.gotDaysAhead = daysAhead
	s.gotMode = mode
	return s.dates, s.err
}

func (s *stubAvailabilityUsecase) GetAvailableTimeSlots(_ context.Context, _ int, _ string) (*dto.TimeSlotListResponse, error) {
	return s.slots, s.err
}

func (s *stubAvailabilityUsecase) CheckAvailability(_ context.Context, _ int, _ string, _ string) (*dto.AvailabilityCheckResponse, error) {
	return s.check, s.err
}

type stubPatientAppointmentUsecase struct {
	booked *dto.AppointmentResponse
	err    error
}

func (s *stubPatientAppointmentUsecase) Book(_ context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.booked, s.err
}

func (s *stubPatientAppointmentUsecase) GetMyAppointments(_ context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, s.err
}

func (s *stubPatientAppointmentUsecase) Cancel(_ context.Context, _ int) (*dto.AppointmentResponse, error) {
	return s.booked, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, router *mux.Router, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func availabilityRouter(uc usecase.AvailabilityUsecase) *mux.Router {
	h := NewAvailabilityHandler(uc)
	r := mux.NewRouter()
	r.HandleFunc("/doctors/{id}/available-dates", h.GetAvailableDates)
	r.HandleFunc("/doctors/{id}/available-time-slots", h.GetAvailableTimeSlots)
	r.HandleFunc("/doctors/{id}/availability", h.CheckAvailability)
	return r
}

func TestAvailabilityHandler_GetAvailableDates(t *testing.T) {
	uc := &stubAvailabilityUsecase{dates: []string{}}
	router := availabilityRouter(uc)

	rec, env := serve(t, router, http.MethodGet, "/doctors/1/available-dates", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Nil(t, uc.gotDaysAhead)

	rec, _ = serve(t, router, http.MethodGet, "/doctors/1/available-dates?daysAhead=7&mode=open", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotDaysAhead)
	assert.Equal(t, 7, *uc.gotDaysAhead)
	assert.Equal(t, "open", uc.gotMode)

	rec, _ = serve(t, router, http.MethodGet, "/doctors/1/available-dates?daysAhead=week", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, router, http.MethodGet, "/doctors/abc/available-dates", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.err = usecase.ErrInvalidDaysAhead
	rec, _ = serve(t, router, http.MethodGet, "/doctors/1/available-dates?daysAhead=999", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityHandler_SlotsAndCheck(t *testing.T) {
	uc := &stubAvailabilityUsecase{
		slots: &dto.TimeSlotListResponse{DoctorID: 1, Date: "2025-03-10", Slots: []dto.TimeSlotResponse{{Date: "2025-03-10", Time: "09:00"}}},
		check: &dto.AvailabilityCheckResponse{DoctorID: 1, Date: "2025-03-10", Time: "09:00", Available: true},
	}
	router := availabilityRouter(uc)

	rec, env := serve(t, router, http.MethodGet, "/doctors/1/available-time-slots?date=2025-03-10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"doctor_id":1,"date":"2025-03-10","slots":[{"date":"2025-03-10","time":"09:00"}]}`, string(env.Data))

	rec, env = serve(t, router, http.MethodGet, "/doctors/1/availability?date=2025-03-10&time=09:00", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"doctor_id":1,"date":"2025-03-10","time":"09:00","available":true}`, string(env.Data))

	uc.err = usecase.ErrInvalidTimeFormat
	rec, _ = serve(t, router, http.MethodGet, "/doctors/1/availability?date=2025-03-10&time=9", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.err = errors.New("connection refused")
	rec, env = serve(t, router, http.MethodGet, "/doctors/1/available-time-slots?date=2025-03-10", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}

func TestPatientAppointmentHandler_Book(t *testing.T) {
	uc := &stubPatientAppointmentUsecase{booked: &dto.AppointmentResponse{ID: 100, Status: "scheduled"}}
	h := NewPatientAppointmentHandler(uc, validator.NewValidator())
	router := mux.NewRouter()
	router.HandleFunc("/appointments", h.Book).Methods(http.MethodPost)

	valid := `{"doctor_id":1,"date":"2025-03-12","time":"09:30"}`

	rec, env := serve(t, router, http.MethodPost, "/appointments", valid)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	rec, env = serve(t, router, http.MethodPost, "/appointments", `{"doctor_id":1,"date":"12/03/2025","time":"09:30"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)

	rec, _ = serve(t, router, http.MethodPost, "/appointments", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	statuses := map[error]int{
		usecase.ErrSlotNotAvailable:  http.StatusConflict,
		usecase.ErrAppointmentInPast: http.StatusBadRequest,
		usecase.ErrDoctorNotFound:    http.StatusNotFound,
		usecase.ErrUnauthenticated:   http.StatusUnauthorized,
		errors.New("boom"):           http.StatusInternalServerError,
	}
	for err, want := range statuses {
		uc.err = err
		rec, _ = serve(t, router, http.MethodPost, "/appointments", valid)
		assert.Equal(t, want, rec.Code, err.Error())
	}
}

func TestDoctorAppointmentHandler_UnknownAction(t *testing.T) {
	h := NewDoctorAppointmentHandler(nil)
	router := mux.NewRouter()
	router.HandleFunc("/appointments/{id}/{action}", h.Decide)

	rec, _ := serve(t, router, http.MethodPost, "/appointments/1/reschedule", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = serve(t, router, http.MethodPost, "/appointments/x/approve", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
