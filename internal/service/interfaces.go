package service

import (
	"context"

	"tavolo/internal/domain"
)

type OrderServiceInterface interface {
	LoadMenu(ctx context.Context, sessionID, name string) (*View, error)
	Adjust(sessionID, itemID string, delta int) Adjustment
	ToggleFilter(sessionID, category string) *View
	View(sessionID string) *View
	Checkout(ctx context.Context, sessionID string) (*domain.OrderPayload, error)
	Consume(ctx context.Context, sessionID string) (*domain.OrderPayload, bool, error)
}

// MenuSource answers the parameterized restaurant lookup. Implemented by the
// remote query client and the Postgres-backed store.
type MenuSource interface {
	FetchByName(ctx context.Context, name string) (*domain.Restaurant, error)
}

// HandoffStore is the single-slot write-once/read-once transfer buffer.
type HandoffStore interface {
	Write(ctx context.Context, sessionID string, payload *domain.OrderPayload) error
	TakeOnce(ctx context.Context, sessionID string) (*domain.OrderPayload, bool, error)
}

type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error
}

// StatsProvider serves aggregated checkout activity per restaurant.
type StatsProvider interface {
	RestaurantStats(ctx context.Context, restaurant string) (domain.RestaurantStats, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
