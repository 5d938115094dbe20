package usecase

import (
	"context"
	"time"

	"hospital-appointment/config"
	"hospital-appointment/internal/converter"
	"hospital-appointment/internal/delivery/dto"
	"hospital-appointment/internal/service"

	"github.com/sirupsen/logrus"
)

// AvailabilityUsecase adapts the availability engine to the HTTP boundary:
// it parses and bounds inputs and formats dates and slots.
type AvailabilityUsecase interface {
	GetAvailableDates(ctx context.Context, doctorID int, daysAhead *int, mode string) ([]string, error)
	GetAvailableTimeSlots(ctx context.Context, doctorID int, date string) (*dto.TimeSlotListResponse, error)
	CheckAvailability(ctx context.Context, doctorID int, date string, clock string) (*dto.AvailabilityCheckResponse, error)
}

type availabilityUsecase struct {
	log                 *logrus.Logger
	availabilityService service.AvailabilityService
	cfg                 config.AvailabilityConfig
}

func NewAvailabilityUsecase(log *logrus.Logger, availabilityService service.AvailabilityService, cfg config.AvailabilityConfig) AvailabilityUsecase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &availabilityUsecase{
		log:                 log,
		availabilityService: availabilityService,
		cfg:                 cfg,
	}
}

func (u *availabilityUsecase) GetAvailableDates(ctx context.Context, doctorID int, daysAhead *int, mode string) ([]string, error) {
	horizon := u.cfg.DefaultDaysAhead
	if daysAhead != nil {
		horizon = *daysAhead
	}
	if horizon < 0 || (u.cfg.MaxDaysAhead > 0 && horizon > u.cfg.MaxDaysAhead) {
		return nil, ErrInvalidDaysAhead
	}

	var (
		dates []time.Time
		err   error
	)
	switch mode {
	case "", dto.AvailabilityModeSchedule:
		dates, err = u.availabilityService.GetAvailableDates(ctx, doctorID, horizon)
	case dto.AvailabilityModeOpen:
		dates, err = u.availabilityService.GetOpenDates(ctx, doctorID, horizon)
	default:
		return nil, ErrInvalidMode
	}
	if err != nil {
		return nil, err
	}

	return converter.DatesToStrings(dates), nil
}

func (u *availabilityUsecase) GetAvailableTimeSlots(ctx context.Context, doctorID int, date string) (*dto.TimeSlotListResponse, error) {
	day, err := parseDate(date, u.cfg.Location)
	if err != nil {
		return nil, err
	}

	slots, err := u.availabilityService.GetAvailableTimeSlots(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		DoctorID: doctorID,
		Date:     day.Format(dto.DateLayout),
		Slots:    converter.SlotsToResponses(slots),
	}, nil
}

func (u *availabilityUsecase) CheckAvailability(ctx context.Context, doctorID int, date string, clock string) (*dto.AvailabilityCheckResponse, error) {
	day, err := parseDate(date, u.cfg.Location)
	if err != nil {
		return nil, err
	}
	tod, err := parseClock(clock)
	if err != nil {
		return nil, err
	}

	available, err := u.availabilityService.IsDoctorAvailable(ctx, doctorID, tod.On(day))
	if err != nil {
		return nil, err
	}

	return &dto.AvailabilityCheckResponse{
		DoctorID:  doctorID,
		Date:      day.Format(dto.DateLayout),
		Time:      tod.String(),
		Available: available,
	}, nil
}
