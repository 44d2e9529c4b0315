package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"tavolo/internal/domain"
)

// StatsStore folds checkout events into per-restaurant Redis aggregates and
// serves them back to the stats endpoint.
type StatsStore struct {
	rdb *redis.Client
}

func NewStatsStore(rdb *redis.Client) *StatsStore {
	return &StatsStore{rdb: rdb}
}

func dailyCountKey(day string) string {
	return "checkouts:daily:" + day
}

func revenueKey(restaurant string) string {
	return "checkouts:revenue:" + restaurant
}

// RecordCheckout bumps the restaurant's daily checkout counter and its
// all-time revenue.
func (s *StatsStore) RecordCheckout(ctx context.Context, restaurant string, total decimal.Decimal, at time.Time) error {
	day := at.Format("2006-01-02")
	key := dailyCountKey(day)
	if err := s.rdb.ZIncrBy(ctx, key, 1, restaurant).Err(); err != nil {
		return err
	}
	s.rdb.Expire(ctx, key, 7*24*time.Hour)

	return s.rdb.IncrByFloat(ctx, revenueKey(restaurant), total.InexactFloat64()).Err()
}

// RestaurantStats reads today's checkout count and the all-time revenue for
// one restaurant. Missing keys read as zero.
func (s *StatsStore) RestaurantStats(ctx context.Context, restaurant string) (domain.RestaurantStats, error) {
	stats := domain.RestaurantStats{Restaurant: restaurant, Revenue: decimal.Zero}

	day := time.Now().Format("2006-01-02")
	count, err := s.rdb.ZScore(ctx, dailyCountKey(day), restaurant).Result()
	if err != nil && err != redis.Nil {
		return stats, err
	}
	stats.CheckoutsToday = int64(count)

	raw, err := s.rdb.Get(ctx, revenueKey(restaurant)).Result()
	if err == redis.Nil {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}
	revenue, err := decimal.NewFromString(raw)
	if err != nil {
		return stats, err
	}
	stats.Revenue = revenue
	return stats, nil
}
