package handoff

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tavolo/internal/domain"
	"tavolo/internal/ledger"
)

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		Name: "Trattoria da Mario",
		Menus: []domain.Menu{{
			ID: "menu-1",
			Sections: []domain.MenuSection{{
				ID:   "sec-1",
				Name: "Primi",
				Items: []domain.MenuItem{
					{ID: "a", Name: "Carbonara", Category: "Primo", Price: decimal.RequireFromString("10")},
					{ID: "b", Name: "Amatriciana", Category: "Primo", Price: decimal.RequireFromString("5")},
				},
			}},
		}},
	}
}

func TestBuildPayload_RejectsEmptySelection(t *testing.T) {
	_, err := BuildPayload(testRestaurant(), ledger.New())
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestBuildPayload_SnapshotsSelectedItems(t *testing.T) {
	l := ledger.New()
	l.Apply("a", 1)

	payload, err := BuildPayload(testRestaurant(), l)
	assert.NoError(t, err)
	assert.Len(t, payload.Items, 1)
	assert.Equal(t, "a", payload.Items[0].ID)
	assert.Equal(t, "Carbonara", payload.Items[0].Name)
	assert.Equal(t, 1, payload.Items[0].Quantity)
	assert.Equal(t, "10", payload.Total.String())
}

func TestBuildPayload_SkipsZeroQuantities(t *testing.T) {
	l := ledger.New()
	l.Apply("a", 2)
	l.Apply("b", 1)
	l.Apply("b", -1)

	payload, err := BuildPayload(testRestaurant(), l)
	assert.NoError(t, err)
	assert.Len(t, payload.Items, 1)
	assert.Equal(t, "20", payload.Total.String())
}

func setupRedisStore(t *testing.T) *RedisStore {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Minute)
}

func TestRedisStore_WriteThenTakeOnce(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	payload := &domain.OrderPayload{
		Items: []domain.OrderLine{{ID: "a", Name: "Carbonara", Price: decimal.RequireFromString("10"), Quantity: 2}},
		Total: decimal.RequireFromString("20"),
	}
	assert.NoError(t, store.Write(ctx, "sess-1", payload))

	got, ok, err := store.TakeOnce(ctx, "sess-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, "a", got.Items[0].ID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "20", got.Total.String())
}

func TestRedisStore_SecondTakeIsEmpty(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	payload := &domain.OrderPayload{Total: decimal.RequireFromString("5")}
	assert.NoError(t, store.Write(ctx, "sess-1", payload))

	_, ok, err := store.TakeOnce(ctx, "sess-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	got, ok, err := store.TakeOnce(ctx, "sess-1")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisStore_SlotsAreScopedPerSession(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Write(ctx, "sess-1", &domain.OrderPayload{Total: decimal.RequireFromString("5")}))

	_, ok, err := store.TakeOnce(ctx, "sess-2")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.TakeOnce(ctx, "sess-1")
	assert.NoError(t, err)
	assert.True(t, ok)
}
