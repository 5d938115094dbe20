package handler

import (
	"net/http"
	"strconv"

	"hospital-appointment/internal/usecase"
	"hospital-appointment/pkg/response"

	"github.com/gorilla/mux"
)

// AvailabilityHandler serves the public availability queries of a doctor
type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetAvailableDates handles GET /doctors/{id}/available-dates?daysAhead=N&mode=schedule|open
func (h *AvailabilityHandler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var daysAhead *int
	if raw := r.URL.Query().Get("daysAhead"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid daysAhead, must be an integer")
			return
		}
		daysAhead = &n
	}

	dates, err := h.availabilityUsecase.GetAvailableDates(r.Context(), doctorID, daysAhead, r.URL.Query().Get("mode"))
	if err != nil {
		h.writeError(w, err, "Failed to get available dates")
		return
	}

	response.Success(w, http.StatusOK, "Available dates retrieved successfully", dates)
}

// GetAvailableTimeSlots handles GET /doctors/{id}/available-time-slots?date=yyyy-MM-dd
func (h *AvailabilityHandler) GetAvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	slots, err := h.availabilityUsecase.GetAvailableTimeSlots(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

// CheckAvailability handles GET /doctors/{id}/availability?date=yyyy-MM-dd&time=HH:mm
func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	query := r.URL.Query()
	result, err := h.availabilityUsecase.CheckAvailability(r.Context(), doctorID, query.Get("date"), query.Get("time"))
	if err != nil {
		h.writeError(w, err, "Failed to check availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability checked successfully", result)
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
	case usecase.ErrInvalidTimeFormat:
		response.BadRequest(w, "Invalid time format, use HH:MM")
	case usecase.ErrInvalidDaysAhead:
		response.BadRequest(w, "daysAhead is out of range")
	case usecase.ErrInvalidMode:
		response.BadRequest(w, "Invalid mode, use schedule or open")
	default:
		response.InternalServerError(w, fallback)
	}
}
