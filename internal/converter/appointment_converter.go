package converter

import (
	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		Date:        appointment.AppointmentDate.Format(dto.DateLayout),
		Time:        appointment.AppointmentTime.String(),
		Notes:       appointment.Notes,
		Status:      appointment.Status.String(),
		IsConfirmed: appointment.IsConfirmed,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	// Include names if relations were loaded
	if appointment.Doctor.ID != 0 {
		response.DoctorName = appointment.Doctor.FullName()
	}
	if appointment.Patient.ID != 0 {
		response.PatientName = appointment.Patient.FullName()
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
