package converter

import (
	"time"

	"hospital-appointment/internal/delivery/dto"
)

// DatesToStrings formats dates as yyyy-MM-dd
func DatesToStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(dto.DateLayout)
	}
	return out
}

// SlotsToResponses splits slot start times into date and HH:mm parts
func SlotsToResponses(slots []time.Time) []dto.TimeSlotResponse {
	out := make([]dto.TimeSlotResponse, len(slots))
	for i, s := range slots {
		out[i] = dto.TimeSlotResponse{
			Date: s.Format(dto.DateLayout),
			Time: s.Format(dto.ClockLayout),
		}
	}
	return out
}
