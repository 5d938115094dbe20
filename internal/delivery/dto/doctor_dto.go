package dto

// Response DTOs

type DoctorResponse struct {
	ID             int    `json:"id"`
	FullName       string `json:"full_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Specialization string `json:"specialization"`
	Biography      string `json:"biography,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
	IsActive       bool   `json:"is_active"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
