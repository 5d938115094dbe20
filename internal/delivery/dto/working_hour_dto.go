package dto

import "time"

// Request DTOs

// WorkingHourRequest is used for both create and full update
type WorkingHourRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"` // 0 = Sunday
	StartTime string `json:"start_time" validate:"required,clock"`        // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required,clock"`          // Format: HH:MM
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type WorkingHourResponse struct {
	ID        int       `json:"id"`
	DoctorID  int       `json:"doctor_id"`
	DayOfWeek int       `json:"day_of_week"`
	DayName   string    `json:"day_name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkingHourListResponse struct {
	WorkingHours []WorkingHourResponse `json:"working_hours"`
	Total        int                   `json:"total"`
}
