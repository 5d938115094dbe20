package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-appointment/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotReserved is returned when another request currently holds the slot
var ErrSlotReserved = errors.New("slot is being booked by another request")

// releaseHoldScript deletes the hold only if it still carries our token, so an
// expired hold taken over by another request is never removed by us.
var releaseHoldScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisSlotHoldKeyPrefix = "appointment:hold:"

	defaultSlotHoldTTL = 10 * time.Second
)

// SlotHold is an acquired reservation on one (doctor, date, time) slot
type SlotHold struct {
	Key   string
	Token string
}

// SlotReservationService serialises concurrent bookings of the same slot.
// A hold is short-lived; the unique index on appointments remains the final guard.
type SlotReservationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSlotReservationService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotReservationService {
	if ttl <= 0 {
		ttl = defaultSlotHoldTTL
	}
	return &SlotReservationService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// SlotHoldKey returns the Redis key guarding a slot
func SlotHoldKey(doctorID int, date time.Time, at entity.TimeOfDay) string {
	return fmt.Sprintf("%s%d:%s:%s", RedisSlotHoldKeyPrefix, doctorID, date.Format(time.DateOnly), at)
}

// Reserve acquires the hold with SET NX. Returns ErrSlotReserved if it is taken.
func (s *SlotReservationService) Reserve(ctx context.Context, doctorID int, date time.Time, at entity.TimeOfDay) (*SlotHold, error) {
	hold := &SlotHold{
		Key:   SlotHoldKey(doctorID, date, at),
		Token: uuid.NewString(),
	}

	ok, err := s.redisClient.SetNX(ctx, hold.Key, hold.Token, s.ttl).Result()
	if err != nil {
		s.log.Warnf("Failed to reserve slot %s: %+v", hold.Key, err)
		return nil, fmt.Errorf("reserve slot %s: %w", hold.Key, err)
	}
	if !ok {
		return nil, ErrSlotReserved
	}

	s.log.Debugf("Reserved slot %s for %v", hold.Key, s.ttl)
	return hold, nil
}

// Release drops the hold if it is still ours. Safe to call with a nil hold.
func (s *SlotReservationService) Release(ctx context.Context, hold *SlotHold) error {
	if hold == nil {
		return nil
	}

	deleted, err := releaseHoldScript.Run(ctx, s.redisClient, []string{hold.Key}, hold.Token).Int()
	if err != nil {
		s.log.Warnf("Failed to release slot %s: %+v", hold.Key, err)
		return fmt.Errorf("release slot %s: %w", hold.Key, err)
	}
	if deleted == 0 {
		s.log.Debugf("Slot hold %s already expired or taken over", hold.Key)
	}
	return nil
}
