package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotRequest struct {
	DoctorID int    `json:"doctor_id" validate:"required,gte=1"`
	Date     string `json:"date" validate:"required,date"`
	Time     string `json:"time" validate:"required,clock"`
}

func TestValidator_DateAndClock(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     slotRequest
		invalid map[string]string
	}{
		{
			name: "valid",
			req:  slotRequest{DoctorID: 1, Date: "2025-03-10", Time: "09:30"},
		},
		{
			name:    "bad date",
			req:     slotRequest{DoctorID: 1, Date: "10/03/2025", Time: "09:30"},
			invalid: map[string]string{"date": "date must be a date formatted yyyy-MM-dd"},
		},
		{
			name:    "bad clock",
			req:     slotRequest{DoctorID: 1, Date: "2025-03-10", Time: "9:30"},
			invalid: map[string]string{"time": "time must be a time formatted HH:mm"},
		},
		{
			name:    "hour out of range",
			req:     slotRequest{DoctorID: 1, Date: "2025-03-10", Time: "24:00"},
			invalid: map[string]string{"time": "time must be a time formatted HH:mm"},
		},
		{
			name: "missing fields",
			req:  slotRequest{},
			invalid: map[string]string{
				"doctor_id": "doctor_id is required",
				"date":      "date is required",
				"time":      "time is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.invalid, v.FormatValidationErrors(err))
		})
	}
}
