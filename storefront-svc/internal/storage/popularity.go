package storage

import (
	"context"
	"time"

	"storefront/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const popularityTTL = 48 * time.Hour

// RedisPopularity counts ordered units per item in one sorted set per day.
type RedisPopularity struct {
	Client *redis.Client
}

func NewRedisPopularity(client *redis.Client) *RedisPopularity {
	return &RedisPopularity{Client: client}
}

func PopularityKey(day time.Time) string {
	return "popular:daily:" + day.UTC().Format("2006-01-02")
}

func (p *RedisPopularity) Increment(ctx context.Context, order domain.OrderConfirmation) error {
	key := PopularityKey(order.CreatedAt)
	pipe := p.Client.TxPipeline()
	pipe.ZIncrBy(ctx, key, float64(order.Quantity), order.ItemName)
	pipe.Expire(ctx, key, popularityTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (p *RedisPopularity) Top(ctx context.Context, day time.Time, limit int) ([]domain.PopularItem, error) {
	result, err := p.Client.ZRevRangeWithScores(ctx, PopularityKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.PopularItem, 0, len(result))
	for _, member := range result {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}
		items = append(items, domain.PopularItem{ItemName: name, Score: member.Score})
	}
	return items, nil
}
