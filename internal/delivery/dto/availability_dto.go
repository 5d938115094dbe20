package dto

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Date-level query modes
const (
	AvailabilityModeSchedule = "schedule"
	AvailabilityModeOpen     = "open"
)

type TimeSlotResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type TimeSlotListResponse struct {
	DoctorID int                `json:"doctor_id"`
	Date     string             `json:"date"`
	Slots    []TimeSlotResponse `json:"slots"`
}

type AvailabilityCheckResponse struct {
	DoctorID  int    `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
