package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrGenerationInProgress is returned when another generation run
// already holds the lease for a period.
var ErrGenerationInProgress = errors.New("schedule generation already in progress for this period")

// releaseLockScript deletes the lease only when the caller still owns
// it, so a run that outlived its TTL cannot delete a successor's lease.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// RedisGenerationLockPrefix keys one lease per schedule period.
	RedisGenerationLockPrefix = "schedule:generation_lock:"

	lockReleaseTimeout = 5 * time.Second
)

// PeriodLockService serializes generation runs per schedule period with
// a Redis lease. The generation engine itself is single-threaded; this
// keeps two processes from regenerating the same period concurrently.
type PeriodLockService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewPeriodLockService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *PeriodLockService {
	return &PeriodLockService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Acquire takes the lease for a period. It returns a release func on
// success, ErrGenerationInProgress when the lease is already held, and
// the underlying error when Redis is unreachable.
func (s *PeriodLockService) Acquire(ctx context.Context, periodID int) (func(), error) {
	key := fmt.Sprintf("%s%d", RedisGenerationLockPrefix, periodID)
	token := uuid.NewString()

	ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
	if err != nil {
		s.log.Warnf("Failed to acquire generation lease for period %d: %+v", periodID, err)
		return nil, fmt.Errorf("acquire generation lease for period %d: %w", periodID, err)
	}
	if !ok {
		return nil, ErrGenerationInProgress
	}

	release := func() {
		// The run may have consumed or cancelled the caller's context.
		releaseCtx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
		defer cancel()

		if err := releaseLockScript.Run(releaseCtx, s.redisClient, []string{key}, token).Err(); err != nil {
			s.log.Warnf("Failed to release generation lease for period %d: %+v", periodID, err)
		}
	}
	return release, nil
}
