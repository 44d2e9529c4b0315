package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupStatsStore(t *testing.T) *StatsStore {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStatsStore(client)
}

func TestStatsStore_RecordAndRead(t *testing.T) {
	store := setupStatsStore(t)
	ctx := context.Background()
	now := time.Now()

	assert.NoError(t, store.RecordCheckout(ctx, "Trattoria", decimal.RequireFromString("20.50"), now))
	assert.NoError(t, store.RecordCheckout(ctx, "Trattoria", decimal.RequireFromString("9.50"), now))
	assert.NoError(t, store.RecordCheckout(ctx, "Osteria", decimal.RequireFromString("5"), now))

	stats, err := store.RestaurantStats(ctx, "Trattoria")
	assert.NoError(t, err)
	assert.Equal(t, "Trattoria", stats.Restaurant)
	assert.Equal(t, int64(2), stats.CheckoutsToday)
	assert.Equal(t, "30", stats.Revenue.String())

	other, err := store.RestaurantStats(ctx, "Osteria")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), other.CheckoutsToday)
	assert.Equal(t, "5", other.Revenue.String())
}

func TestStatsStore_UnknownRestaurantReadsAsZero(t *testing.T) {
	store := setupStatsStore(t)

	stats, err := store.RestaurantStats(context.Background(), "Sconosciuto")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.CheckoutsToday)
	assert.Equal(t, "0", stats.Revenue.String())
}
