package dto

import "time"

// Request DTOs

// AvailabilityBlockRequest is used for both create and full update.
// Date-times are RFC 3339.
type AvailabilityBlockRequest struct {
	StartDateTime time.Time `json:"start_date_time" validate:"required"`
	EndDateTime   time.Time `json:"end_date_time" validate:"required"`
	Description   string    `json:"description" validate:"omitempty,max=200"`
	Reason        string    `json:"reason" validate:"omitempty,max=500"`
	IsActive      *bool     `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type AvailabilityBlockResponse struct {
	ID            int       `json:"id"`
	DoctorID      int       `json:"doctor_id"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	Description   string    `json:"description,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type AvailabilityBlockListResponse struct {
	AvailabilityBlocks []AvailabilityBlockResponse `json:"availability_blocks"`
	Total              int                         `json:"total"`
}
