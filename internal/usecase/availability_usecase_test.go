package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-appointment/config"
	"hospital-appointment/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAvailabilityUsecase(svc *fakeAvailabilityService) AvailabilityUsecase {
	return NewAvailabilityUsecase(newTestLogger(), svc, config.AvailabilityConfig{
		DefaultDaysAhead: 30,
		MaxDaysAhead:     60,
		Location:         testLoc,
	})
}

func TestGetAvailableDates_HorizonAndMode(t *testing.T) {
	svc := &fakeAvailabilityService{
		dates:     []time.Time{time.Date(2025, 3, 10, 0, 0, 0, 0, testLoc), time.Date(2025, 3, 17, 0, 0, 0, 0, testLoc)},
		openDates: []time.Time{time.Date(2025, 3, 17, 0, 0, 0, 0, testLoc)},
	}
	uc := newTestAvailabilityUsecase(svc)
	ctx := context.Background()

	dates, err := uc.GetAvailableDates(ctx, 1, nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10", "2025-03-17"}, dates)
	assert.Equal(t, 30, svc.gotDaysAhead)

	seven := 7
	open, err := uc.GetAvailableDates(ctx, 1, &seven, dto.AvailabilityModeOpen)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-17"}, open)
	assert.Equal(t, 7, svc.gotDaysAhead)

	for _, bad := range []int{-1, 61} {
		n := bad
		_, err = uc.GetAvailableDates(ctx, 1, &n, "")
		assert.ErrorIs(t, err, ErrInvalidDaysAhead)
	}

	_, err = uc.GetAvailableDates(ctx, 1, nil, "busy")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestGetAvailableTimeSlots_FormatsSlots(t *testing.T) {
	svc := &fakeAvailabilityService{slots: []time.Time{
		time.Date(2025, 3, 10, 9, 0, 0, 0, testLoc),
		time.Date(2025, 3, 10, 9, 30, 0, 0, testLoc),
	}}
	uc := newTestAvailabilityUsecase(svc)

	resp, err := uc.GetAvailableTimeSlots(context.Background(), 1, "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, []dto.TimeSlotResponse{{Date: "2025-03-10", Time: "09:00"}, {Date: "2025-03-10", Time: "09:30"}}, resp.Slots)
	assert.True(t, time.Date(2025, 3, 10, 0, 0, 0, 0, testLoc).Equal(svc.gotAt))

	_, err = uc.GetAvailableTimeSlots(context.Background(), 1, "2025-13-01")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestCheckAvailability(t *testing.T) {
	svc := &fakeAvailabilityService{available: true}
	uc := newTestAvailabilityUsecase(svc)
	ctx := context.Background()

	resp, err := uc.CheckAvailability(ctx, 1, "2025-03-10", "14:30")
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "14:30", resp.Time)
	assert.True(t, time.Date(2025, 3, 10, 14, 30, 0, 0, testLoc).Equal(svc.gotAt))

	_, err = uc.CheckAvailability(ctx, 1, "2025-03-10", "2:30pm")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	svc.err = errors.New("store unreachable")
	_, err = uc.CheckAvailability(ctx, 1, "2025-03-10", "14:30")
	assert.EqualError(t, err, "store unreachable")
}
