package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/usecase"
	"hospital-appointment/pkg/response"
	"hospital-appointment/pkg/validator"

	"github.com/gorilla/mux"
)

// PatientAppointmentHandler serves the booking endpoints of the calling patient
type PatientAppointmentHandler struct {
	appointmentUsecase usecase.PatientAppointmentUsecase
	validator          *validator.CustomValidator
}

func NewPatientAppointmentHandler(appointmentUsecase usecase.PatientAppointmentUsecase, validator *validator.CustomValidator) *PatientAppointmentHandler {
	return &PatientAppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *PatientAppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		writeAppointmentError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *PatientAppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *PatientAppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), appointmentID)
	if err != nil {
		writeAppointmentError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

// DoctorAppointmentHandler serves the appointment decisions of the calling doctor
type DoctorAppointmentHandler struct {
	appointmentUsecase usecase.DoctorAppointmentUsecase
}

func NewDoctorAppointmentHandler(appointmentUsecase usecase.DoctorAppointmentUsecase) *DoctorAppointmentHandler {
	return &DoctorAppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

func (h *DoctorAppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeAppointmentError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Decide handles POST /doctor/appointments/{id}/{action}
func (h *DoctorAppointmentHandler) Decide(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	action, ok := usecase.ParseDoctorAppointmentAction(vars["action"])
	if !ok {
		response.NotFound(w, "Unknown appointment action")
		return
	}

	appointment, err := h.appointmentUsecase.Decide(r.Context(), appointmentID, action)
	if err != nil {
		writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrUnauthenticated:
		response.Unauthorized(w, "Unauthorized")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient profile not found")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrNotOwner:
		response.Forbidden(w, "Appointment belongs to another user")
	case usecase.ErrSlotNotAvailable:
		response.Conflict(w, "Slot is not available")
	case usecase.ErrInvalidStatusTransition:
		response.Conflict(w, "Appointment status does not allow this action")
	case usecase.ErrAppointmentInPast:
		response.BadRequest(w, "Appointment must be in the future")
	case usecase.ErrInvalidStatus:
		response.BadRequest(w, "Invalid appointment status")
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrInvalidTimeFormat:
		response.BadRequest(w, "Invalid time format, use HH:MM")
	default:
		response.InternalServerError(w, fallback)
	}
}
