package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID int    `json:"doctor_id" validate:"required,gte=1"`
	Date     string `json:"date" validate:"required,date"`  // Format: YYYY-MM-DD
	Time     string `json:"time" validate:"required,clock"` // Format: HH:MM
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int       `json:"id"`
	DoctorID    int       `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	PatientID   int       `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
