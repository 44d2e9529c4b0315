// Package mocks provides testify mocks for the service interfaces, following
// the mockery calling convention used across the test suites.
package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"tavolo/internal/domain"
	"tavolo/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MenuSource mocks service.MenuSource.
type MenuSource struct {
	mock.Mock
}

func NewMenuSource(t testingT) *MenuSource {
	m := &MenuSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuSource) FetchByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	ret := m.Called(ctx, name)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

// HandoffStore mocks service.HandoffStore.
type HandoffStore struct {
	mock.Mock
}

func NewHandoffStore(t testingT) *HandoffStore {
	m := &HandoffStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HandoffStore) Write(ctx context.Context, sessionID string, payload *domain.OrderPayload) error {
	ret := m.Called(ctx, sessionID, payload)
	return ret.Error(0)
}

func (m *HandoffStore) TakeOnce(ctx context.Context, sessionID string) (*domain.OrderPayload, bool, error) {
	ret := m.Called(ctx, sessionID)
	var r0 *domain.OrderPayload
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.OrderPayload)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

// CheckoutPublisher mocks service.CheckoutPublisher.
type CheckoutPublisher struct {
	mock.Mock
}

func NewCheckoutPublisher(t testingT) *CheckoutPublisher {
	m := &CheckoutPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CheckoutPublisher) PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	ret := m.Called(ctx, event)
	return ret.Error(0)
}

// StatsProvider mocks service.StatsProvider.
type StatsProvider struct {
	mock.Mock
}

func NewStatsProvider(t testingT) *StatsProvider {
	m := &StatsProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatsProvider) RestaurantStats(ctx context.Context, restaurant string) (domain.RestaurantStats, error) {
	ret := m.Called(ctx, restaurant)
	return ret.Get(0).(domain.RestaurantStats), ret.Error(1)
}

// StatsRecorder mocks worker.StatsRecorder.
type StatsRecorder struct {
	mock.Mock
}

func NewStatsRecorder(t testingT) *StatsRecorder {
	m := &StatsRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StatsRecorder) RecordCheckout(ctx context.Context, restaurant string, total decimal.Decimal, at time.Time) error {
	ret := m.Called(ctx, restaurant, total, at)
	return ret.Error(0)
}

// OrderServiceInterface mocks service.OrderServiceInterface.
type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) LoadMenu(ctx context.Context, sessionID, name string) (*service.View, error) {
	ret := m.Called(ctx, sessionID, name)
	var r0 *service.View
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.View)
	}
	return r0, ret.Error(1)
}

func (m *OrderServiceInterface) Adjust(sessionID, itemID string, delta int) service.Adjustment {
	ret := m.Called(sessionID, itemID, delta)
	return ret.Get(0).(service.Adjustment)
}

func (m *OrderServiceInterface) ToggleFilter(sessionID, category string) *service.View {
	ret := m.Called(sessionID, category)
	var r0 *service.View
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.View)
	}
	return r0
}

func (m *OrderServiceInterface) View(sessionID string) *service.View {
	ret := m.Called(sessionID)
	var r0 *service.View
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.View)
	}
	return r0
}

func (m *OrderServiceInterface) Checkout(ctx context.Context, sessionID string) (*domain.OrderPayload, error) {
	ret := m.Called(ctx, sessionID)
	var r0 *domain.OrderPayload
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.OrderPayload)
	}
	return r0, ret.Error(1)
}

func (m *OrderServiceInterface) Consume(ctx context.Context, sessionID string) (*domain.OrderPayload, bool, error) {
	ret := m.Called(ctx, sessionID)
	var r0 *domain.OrderPayload
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.OrderPayload)
	}
	return r0, ret.Bool(1), ret.Error(2)
}
