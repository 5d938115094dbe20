package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hospital-appointment/config"
	"hospital-appointment/internal/domain/entity"
	"hospital-appointment/internal/domain/repository"
	"hospital-appointment/internal/observability/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// maxHorizonDays bounds how far ahead date queries look, whatever the caller asks
const maxHorizonDays = 10 * 366

const (
	opAvailableDates = "available_dates"
	opOpenDates      = "open_dates"
	opTimeSlots      = "time_slots"
	opIsAvailable    = "is_available"
)

// AvailabilityService computes which dates and slots of a doctor are bookable.
// Unknown or inactive doctors yield empty results, never an error. Errors are
// returned only when the schedule store cannot be read.
type AvailabilityService interface {
	// GetAvailableDates returns dates in [today, today+daysAhead] that have at
	// least one working-hour rule and no availability block touching them.
	// Appointments are not consulted.
	GetAvailableDates(ctx context.Context, doctorID int, daysAhead int) ([]time.Time, error)
	// GetOpenDates is GetAvailableDates restricted to dates with at least one free slot.
	GetOpenDates(ctx context.Context, doctorID int, daysAhead int) ([]time.Time, error)
	// GetAvailableTimeSlots returns the bookable slot start times on date, ascending.
	GetAvailableTimeSlots(ctx context.Context, doctorID int, date time.Time) ([]time.Time, error)
	// IsDoctorAvailable is the authoritative single-slot check.
	IsDoctorAvailable(ctx context.Context, doctorID int, at time.Time) (bool, error)
}

type availabilityService struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	metrics      *metrics.AvailabilityMetrics
	slot         time.Duration
	loc          *time.Location
	workers      int
	now          func() time.Time
}

func NewAvailabilityService(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	m *metrics.AvailabilityMetrics,
	cfg config.AvailabilityConfig,
) AvailabilityService {
	return NewAvailabilityServiceWithClock(db, log, scheduleRepo, m, cfg, time.Now)
}

// NewAvailabilityServiceWithClock is NewAvailabilityService with an explicit
// source for "now", which defines today.
func NewAvailabilityServiceWithClock(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	m *metrics.AvailabilityMetrics,
	cfg config.AvailabilityConfig,
	now func() time.Time,
) AvailabilityService {
	slotMinutes := cfg.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = 30
	}
	workers := cfg.OpenDatesWorkers
	if workers <= 0 {
		workers = 1
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &availabilityService{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		metrics:      m,
		slot:         time.Duration(slotMinutes) * time.Minute,
		loc:          loc,
		workers:      workers,
		now:          now,
	}
}

// interval is a half-open time-of-day range [start, end)
type interval struct {
	start entity.TimeOfDay
	end   entity.TimeOfDay
}

// weeklySchedule is the usable part of a doctor's schedule: merged working
// intervals per weekday and the active, well-formed blocks.
type weeklySchedule struct {
	days   [7][]interval
	blocks []entity.AvailabilityBlock
}

func (w *weeklySchedule) worksOn(day time.Weekday) bool {
	return len(w.days[day]) > 0
}

func (w *weeklySchedule) contains(day time.Weekday, t entity.TimeOfDay) bool {
	for _, iv := range w.days[day] {
		if t >= iv.start && t < iv.end {
			return true
		}
	}
	return false
}

func (w *weeklySchedule) blocked(at time.Time) bool {
	for i := range w.blocks {
		if w.blocks[i].Covers(at) {
			return true
		}
	}
	return false
}

func (w *weeklySchedule) blockedDate(day time.Time) bool {
	for i := range w.blocks {
		if w.blocks[i].TouchesDate(day) {
			return true
		}
	}
	return false
}

func (s *availabilityService) GetAvailableDates(ctx context.Context, doctorID int, daysAhead int) (dates []time.Time, err error) {
	defer s.observe(opAvailableDates, time.Now(), &err)

	schedule, err := s.loadSchedule(ctx, doctorID)
	if err != nil || schedule == nil {
		return []time.Time{}, err
	}
	return s.availableDates(schedule, daysAhead), nil
}

func (s *availabilityService) GetOpenDates(ctx context.Context, doctorID int, daysAhead int) (dates []time.Time, err error) {
	defer s.observe(opOpenDates, time.Now(), &err)

	schedule, err := s.loadSchedule(ctx, doctorID)
	if err != nil || schedule == nil {
		return []time.Time{}, err
	}

	candidates := s.availableDates(schedule, daysAhead)
	open := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, day := range candidates {
		g.Go(func() error {
			slots, err := s.freeSlots(gctx, doctorID, schedule, day)
			if err != nil {
				return err
			}
			open[i] = len(slots) > 0
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dates = make([]time.Time, 0, len(candidates))
	for i, day := range candidates {
		if open[i] {
			dates = append(dates, day)
		}
	}
	return dates, nil
}

func (s *availabilityService) GetAvailableTimeSlots(ctx context.Context, doctorID int, date time.Time) (slots []time.Time, err error) {
	defer s.observe(opTimeSlots, time.Now(), &err)

	schedule, err := s.loadSchedule(ctx, doctorID)
	if err != nil || schedule == nil {
		return []time.Time{}, err
	}
	return s.freeSlots(ctx, doctorID, schedule, s.dayOf(date))
}

func (s *availabilityService) IsDoctorAvailable(ctx context.Context, doctorID int, at time.Time) (available bool, err error) {
	defer s.observe(opIsAvailable, time.Now(), &err)

	schedule, err := s.loadSchedule(ctx, doctorID)
	if err != nil || schedule == nil {
		return false, err
	}

	day := s.dayOf(at)
	tod := entity.TimeOfDayOf(at.In(s.loc))
	if !schedule.contains(day.Weekday(), tod) {
		return false, nil
	}
	if schedule.blocked(tod.On(day)) {
		return false, nil
	}

	conflict, err := s.scheduleRepo.HasConflictingAppointment(s.db.WithContext(ctx), doctorID, day, tod)
	if err != nil {
		s.log.Warnf("Failed to check appointments for doctor %d: %+v", doctorID, err)
		return false, fmt.Errorf("check appointments for doctor %d: %w", doctorID, err)
	}
	return !conflict, nil
}

// loadSchedule returns nil when the doctor is unknown or inactive
func (s *availabilityService) loadSchedule(ctx context.Context, doctorID int) (*weeklySchedule, error) {
	doctor, err := s.scheduleRepo.GetDoctorWithSchedule(s.db.WithContext(ctx), doctorID)
	if err != nil {
		s.log.Warnf("Failed to load schedule for doctor %d: %+v", doctorID, err)
		return nil, fmt.Errorf("load schedule for doctor %d: %w", doctorID, err)
	}
	if doctor == nil || !doctor.IsActive {
		return nil, nil
	}
	return s.buildSchedule(doctor), nil
}

func (s *availabilityService) buildSchedule(doctor *entity.Doctor) *weeklySchedule {
	schedule := &weeklySchedule{}

	for _, wh := range doctor.WorkingHours {
		if !wh.IsActive {
			continue
		}
		if !wh.IsValid() {
			s.log.Warnf("Skipping malformed working hour %d of doctor %d: day=%d %s-%s",
				wh.ID, doctor.ID, wh.DayOfWeek, wh.StartTime, wh.EndTime)
			continue
		}
		schedule.days[wh.DayOfWeek] = append(schedule.days[wh.DayOfWeek], interval{start: wh.StartTime, end: wh.EndTime})
	}
	for day := range schedule.days {
		schedule.days[day] = mergeIntervals(schedule.days[day])
	}

	for _, block := range doctor.AvailabilityBlocks {
		if !block.IsActive {
			continue
		}
		if !block.IsValid() {
			s.log.Warnf("Skipping malformed availability block %d of doctor %d: %s-%s",
				block.ID, doctor.ID, block.StartDateTime.Format(time.RFC3339), block.EndDateTime.Format(time.RFC3339))
			continue
		}
		schedule.blocks = append(schedule.blocks, block)
	}

	return schedule
}

// mergeIntervals sorts by start and joins overlapping intervals. Touching
// intervals stay separate so that each keeps its own slot grid.
func mergeIntervals(in []interval) []interval {
	if len(in) < 2 {
		return in
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].start < in[j].start })

	out := []interval{in[0]}
	for _, iv := range in[1:] {
		last := &out[len(out)-1]
		if iv.start < last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

func (s *availabilityService) availableDates(schedule *weeklySchedule, daysAhead int) []time.Time {
	if daysAhead < 0 {
		daysAhead = 0
	}
	if daysAhead > maxHorizonDays {
		s.log.Warnf("Clamping horizon of %d days to %d", daysAhead, maxHorizonDays)
		daysAhead = maxHorizonDays
	}

	today := s.dayOf(s.now())
	dates := make([]time.Time, 0, min(daysAhead+1, 366))
	for i := 0; i <= daysAhead; i++ {
		day := today.AddDate(0, 0, i)
		if !schedule.worksOn(day.Weekday()) || schedule.blockedDate(day) {
			continue
		}
		dates = append(dates, day)
	}
	return dates
}

// freeSlots walks the slot grid of every working interval on day and keeps the
// slots that are neither blocked nor booked.
func (s *availabilityService) freeSlots(ctx context.Context, doctorID int, schedule *weeklySchedule, day time.Time) ([]time.Time, error) {
	intervals := schedule.days[day.Weekday()]
	if len(intervals) == 0 {
		return []time.Time{}, nil
	}

	bookedTimes, err := s.scheduleRepo.FindBookedTimes(s.db.WithContext(ctx), doctorID, day)
	if err != nil {
		s.log.Warnf("Failed to find booked times for doctor %d on %s: %+v", doctorID, day.Format(time.DateOnly), err)
		return nil, fmt.Errorf("find booked times for doctor %d: %w", doctorID, err)
	}
	booked := make(map[entity.TimeOfDay]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	slots := []time.Time{}
	for _, iv := range intervals {
		for t := iv.start; t < iv.end; t = t.Add(s.slot) {
			if _, taken := booked[t]; taken {
				continue
			}
			at := t.On(day)
			if entity.TimeOfDayOf(at) != t {
				// wall-clock time skipped by a DST transition
				continue
			}
			if schedule.blocked(at) {
				continue
			}
			slots = append(slots, at)
		}
	}
	return slots, nil
}

// dayOf returns midnight of t's calendar date in the configured location
func (s *availabilityService) dayOf(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func (s *availabilityService) observe(operation string, start time.Time, err *error) {
	outcome := "ok"
	if *err != nil {
		outcome = "error"
	}
	s.metrics.ObserveQuery(operation, outcome, time.Since(start).Seconds())
}
