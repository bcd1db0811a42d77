package usecase

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"commune/internal/entity"
	"commune/internal/repo/persistent"
	"commune/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const picksCacheTTL = time.Hour

type PickUseCase interface {
	Synthesize() (*entity.SynthesisSummary, error)
	ListCurrent() ([]*entity.ClubPick, error)
}

type pickUseCase struct {
	pickRepo    persistent.PickRepository
	archiveRepo persistent.ArchiveRepository
	redisClient *redis.Client
	logger      *logger.Logger
	picksMin    int
	picksMax    int
	poolSize    int
	now         func() time.Time
}

func NewPickUseCase(
	pickRepo persistent.PickRepository,
	archiveRepo persistent.ArchiveRepository,
	redisClient *redis.Client,
	log *logger.Logger,
	picksMin, picksMax, poolSize int,
) PickUseCase {
	return &pickUseCase{
		pickRepo:    pickRepo,
		archiveRepo: archiveRepo,
		redisClient: redisClient,
		logger:      log,
		picksMin:    picksMin,
		picksMax:    picksMax,
		poolSize:    poolSize,
		now:         time.Now,
	}
}

// WeekStart returns the most recent Monday (UTC) as a date string. Picks
// are anchored to it: one synthesis per ISO week.
func WeekStart(t time.Time) string {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday).Format("2006-01-02")
}

// Synthesize materializes this week's club picks from archive popularity.
// Running it twice for the same week is a no-op; the existence check plus
// the unique (week_start, media_key) index enforce at-most-once.
func (uc *pickUseCase) Synthesize() (*entity.SynthesisSummary, error) {
	weekStart := WeekStart(uc.now())
	summary := &entity.SynthesisSummary{WeekStart: weekStart}

	exists, err := uc.pickRepo.ExistsForWeek(weekStart)
	if err != nil {
		return nil, err
	}
	if exists {
		return summary, nil
	}

	pool, err := uc.archiveRepo.TopShared(uc.poolSize)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return summary, nil
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	take := uc.pickCount(len(pool))
	for _, candidate := range pool[:take] {
		snapshot, err := json.Marshal(entity.PickSnapshot{
			Title:     candidate.MediaTitle,
			UserCount: candidate.UserCount,
		})
		if err != nil {
			return summary, err
		}

		pick := &entity.ClubPick{
			MediaKey:  candidate.MediaKey,
			MediaType: candidate.MediaType,
			MediaData: snapshot,
			WeekStart: weekStart,
		}
		if err := uc.pickRepo.Insert(pick); err != nil {
			return summary, err
		}
		summary.Generated++
	}

	uc.invalidateCache(weekStart)
	return summary, nil
}

// pickCount chooses how many picks to generate: a random number in the
// configured [min, max] range, capped by the candidate pool.
func (uc *pickUseCase) pickCount(poolLen int) int {
	take := uc.picksMin
	if uc.picksMax > uc.picksMin {
		take += rand.Intn(uc.picksMax - uc.picksMin + 1)
	}
	if take > poolLen {
		take = poolLen
	}
	return take
}

func (uc *pickUseCase) ListCurrent() ([]*entity.ClubPick, error) {
	weekStart := WeekStart(uc.now())

	if cached := uc.readCache(weekStart); cached != nil {
		return cached, nil
	}

	picks, err := uc.pickRepo.ListForWeek(weekStart)
	if err != nil {
		return nil, err
	}

	uc.writeCache(weekStart, picks)
	return picks, nil
}

func cacheKey(weekStart string) string {
	return "club_picks:" + weekStart
}

func (uc *pickUseCase) readCache(weekStart string) []*entity.ClubPick {
	if uc.redisClient == nil {
		return nil
	}
	data, err := uc.redisClient.Get(context.Background(), cacheKey(weekStart)).Bytes()
	if err != nil {
		return nil
	}
	var picks []*entity.ClubPick
	if err := json.Unmarshal(data, &picks); err != nil {
		return nil
	}
	return picks
}

func (uc *pickUseCase) writeCache(weekStart string, picks []*entity.ClubPick) {
	if uc.redisClient == nil {
		return
	}
	data, err := json.Marshal(picks)
	if err != nil {
		return
	}
	if err := uc.redisClient.Set(context.Background(), cacheKey(weekStart), data, picksCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache picks for %s: %v", weekStart, err)
	}
}

func (uc *pickUseCase) invalidateCache(weekStart string) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(context.Background(), cacheKey(weekStart)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate picks cache for %s: %v", weekStart, err)
	}
}
