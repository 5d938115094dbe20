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

// WorkingHourHandler lets a doctor manage their weekly working hours
type WorkingHourHandler struct {
	workingHourUsecase usecase.WorkingHourUsecase
	validator          *validator.CustomValidator
}

func NewWorkingHourHandler(workingHourUsecase usecase.WorkingHourUsecase, validator *validator.CustomValidator) *WorkingHourHandler {
	return &WorkingHourHandler{
		workingHourUsecase: workingHourUsecase,
		validator:          validator,
	}
}

func (h *WorkingHourHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	workingHours, err := h.workingHourUsecase.GetMine(r.Context())
	if err != nil {
		writeScheduleError(w, err, "Failed to get working hours")
		return
	}

	response.Success(w, http.StatusOK, "Working hours retrieved successfully", workingHours)
}

func (h *WorkingHourHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.WorkingHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHour, err := h.workingHourUsecase.Create(r.Context(), &req)
	if err != nil {
		writeScheduleError(w, err, "Failed to create working hour")
		return
	}

	response.Success(w, http.StatusCreated, "Working hour created successfully", workingHour)
}

func (h *WorkingHourHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid working hour ID")
		return
	}

	var req dto.WorkingHourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	workingHour, err := h.workingHourUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeScheduleError(w, err, "Failed to update working hour")
		return
	}

	response.Success(w, http.StatusOK, "Working hour updated successfully", workingHour)
}

func (h *WorkingHourHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid working hour ID")
		return
	}

	if err := h.workingHourUsecase.Deactivate(r.Context(), id); err != nil {
		writeScheduleError(w, err, "Failed to deactivate working hour")
		return
	}

	response.Success(w, http.StatusOK, "Working hour deactivated successfully", nil)
}

// AvailabilityBlockHandler lets a doctor manage blocked-out periods
type AvailabilityBlockHandler struct {
	blockUsecase usecase.AvailabilityBlockUsecase
	validator    *validator.CustomValidator
}

func NewAvailabilityBlockHandler(blockUsecase usecase.AvailabilityBlockUsecase, validator *validator.CustomValidator) *AvailabilityBlockHandler {
	return &AvailabilityBlockHandler{
		blockUsecase: blockUsecase,
		validator:    validator,
	}
}

func (h *AvailabilityBlockHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.blockUsecase.GetMine(r.Context())
	if err != nil {
		writeScheduleError(w, err, "Failed to get availability blocks")
		return
	}

	response.Success(w, http.StatusOK, "Availability blocks retrieved successfully", blocks)
}

func (h *AvailabilityBlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AvailabilityBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	block, err := h.blockUsecase.Create(r.Context(), &req)
	if err != nil {
		writeScheduleError(w, err, "Failed to create availability block")
		return
	}

	response.Success(w, http.StatusCreated, "Availability block created successfully", block)
}

func (h *AvailabilityBlockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid availability block ID")
		return
	}

	var req dto.AvailabilityBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	block, err := h.blockUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeScheduleError(w, err, "Failed to update availability block")
		return
	}

	response.Success(w, http.StatusOK, "Availability block updated successfully", block)
}

func (h *AvailabilityBlockHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid availability block ID")
		return
	}

	if err := h.blockUsecase.Deactivate(r.Context(), id); err != nil {
		writeScheduleError(w, err, "Failed to deactivate availability block")
		return
	}

	response.Success(w, http.StatusOK, "Availability block deactivated successfully", nil)
}

func writeScheduleError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrUnauthenticated:
		response.Unauthorized(w, "Unauthorized")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor profile not found")
	case usecase.ErrWorkingHourNotFound:
		response.NotFound(w, "Working hour not found")
	case usecase.ErrAvailabilityBlockNotFound:
		response.NotFound(w, "Availability block not found")
	case usecase.ErrNotOwner:
		response.Forbidden(w, "Resource belongs to another doctor")
	case usecase.ErrInvalidTimeRange:
		response.BadRequest(w, "Start must be before end")
	case usecase.ErrInvalidTimeFormat:
		response.BadRequest(w, "Invalid time format, use HH:MM")
	default:
		response.InternalServerError(w, fallback)
	}
}
