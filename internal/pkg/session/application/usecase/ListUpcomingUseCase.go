package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cacheport "github.com/TrixIts/pickup/internal/infrastructure/cache/port"
	session "github.com/TrixIts/pickup/internal/pkg/session/application/domain"
	repository "github.com/TrixIts/pickup/internal/pkg/session/persistence/repository/port"
)

const (
	upcomingCacheKey = "sessions:upcoming"
	upcomingCacheTTL = 30 * time.Second
)

// ListUpcomingUseCase returns future sessions soonest first, collapsing each
// recurring series down to its nearest instance. Results are cached briefly;
// the cache is optional and a nil Cache disables it.
type ListUpcomingUseCase struct {
	Repo  repository.SessionRepository
	Cache cacheport.Cache
}

func NewListUpcomingUseCase(repo repository.SessionRepository, cache cacheport.Cache) *ListUpcomingUseCase {
	return &ListUpcomingUseCase{Repo: repo, Cache: cache}
}

func (uc *ListUpcomingUseCase) Execute(ctx context.Context, now time.Time) ([]session.Session, error) {
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, upcomingCacheKey); err == nil {
			var cached []session.Session
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	all, err := uc.Repo.ListUpcoming(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	sessions := collapseSeries(all)

	if uc.Cache != nil {
		if raw, err := json.Marshal(sessions); err == nil {
			// Best effort; a cache write failure must not fail the listing.
			_ = uc.Cache.Set(ctx, upcomingCacheKey, string(raw), upcomingCacheTTL)
		}
	}
	return sessions, nil
}

// collapseSeries keeps only the first (nearest) instance of each recurring
// series. Input must already be sorted by start time ascending.
func collapseSeries(all []session.Session) []session.Session {
	seen := make(map[string]struct{})
	out := make([]session.Session, 0, len(all))
	for _, s := range all {
		if !s.IsRecurring || s.SeriesID == nil {
			out = append(out, s)
			continue
		}
		if _, ok := seen[*s.SeriesID]; ok {
			continue
		}
		seen[*s.SeriesID] = struct{}{}
		out = append(out, s)
	}
	return out
}
