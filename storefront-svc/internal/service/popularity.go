package service

import (
	"context"
	"time"

	"storefront/storefront-svc/internal/domain"
)

const (
	DefaultPopularLimit = 5
	MaxPopularLimit     = 20
)

type PopularityService struct {
	cache  PopularityCache
	source PopularitySource
	now    func() time.Time
}

func NewPopularityService(cache PopularityCache, source PopularitySource) *PopularityService {
	return &PopularityService{cache: cache, source: source, now: time.Now}
}

// TopToday reads today's ranking from the counter cache and falls back to the
// archive when the cache is empty or unreachable.
func (s *PopularityService) TopToday(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > MaxPopularLimit {
		limit = MaxPopularLimit
	}
	today := s.now()

	if s.cache != nil {
		items, err := s.cache.Top(ctx, today, limit)
		if err != nil {
			logger.Warn().Err(err).Msg("popularity cache unavailable, reading archive")
		} else if len(items) > 0 {
			return items, nil
		}
	}

	if s.source == nil {
		return []domain.PopularItem{}, nil
	}
	return s.source.PopularItems(ctx, today, limit)
}
