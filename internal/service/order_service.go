package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"tavolo/internal/catalog"
	"tavolo/internal/domain"
	"tavolo/internal/handoff"
	"tavolo/internal/ledger"
)

var (
	ErrEmptyName     = errors.New("restaurant name is required")
	ErrLoadInFlight  = errors.New("menu load already in progress")
	ErrStaleResponse = errors.New("stale menu response discarded")
)

// ViewItem is one menu item together with the quantity the diner requested.
type ViewItem struct {
	domain.MenuItem
	Quantity int `json:"quantity"`
}

// View is the derived state the ordering screen renders: the active tree
// combined with the ledger and the category filter.
type View struct {
	Restaurant string          `json:"restaurant,omitempty"`
	Loading    bool            `json:"loading"`
	Filter     string          `json:"filter,omitempty"`
	Categories []string        `json:"categories"`
	Items      []ViewItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
}

// Adjustment reports the outcome of a quantity change so the caller can
// render immediately without a second read.
type Adjustment struct {
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// session is one diner's ordering state. All fields are guarded by mu; every
// mutation happens on reaction to a discrete request, never concurrently.
type session struct {
	mu         sync.Mutex
	restaurant *domain.Restaurant
	name       string
	ledger     *ledger.Ledger
	filter     string
	loading    bool
	seq        uint64
}

// OrderService owns the per-session ordering state and coordinates the menu
// source, the handoff buffer and the checkout event publisher.
type OrderService struct {
	mu       sync.Mutex
	sessions map[string]*session

	source    MenuSource
	handoff   HandoffStore
	publisher CheckoutPublisher
}

func NewOrderService(source MenuSource, store HandoffStore, publisher CheckoutPublisher) *OrderService {
	return &OrderService{
		sessions:  make(map[string]*session),
		source:    source,
		handoff:   store,
		publisher: publisher,
	}
}

func (s *OrderService) session(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{ledger: ledger.New()}
		s.sessions[id] = sess
	}
	return sess
}

// LoadMenu resolves the named restaurant through the menu source and installs
// its tree. A second load while one is outstanding is refused, and a response
// that lost the race against a newer load is discarded by sequence token. On
// any failure the previous tree, ledger and filter stay untouched; on a
// successful switch to a different restaurant all three reset atomically.
func (s *OrderService) LoadMenu(ctx context.Context, sessionID, name string) (*View, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	sess := s.session(sessionID)

	sess.mu.Lock()
	if sess.loading {
		sess.mu.Unlock()
		return nil, ErrLoadInFlight
	}
	sess.loading = true
	sess.seq++
	seq := sess.seq
	sess.mu.Unlock()

	restaurant, err := s.source.FetchByName(ctx, name)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.loading = false
	if seq != sess.seq {
		return nil, ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}

	if sess.name != name {
		sess.ledger.Reset()
		sess.filter = ""
	}
	sess.restaurant = restaurant
	sess.name = name
	return sess.view(), nil
}

// Adjust applies a quantity delta, clamped at zero, and returns the new
// quantity with the recomputed running total. It is total over its inputs:
// unknown ids and any delta are fine, with or without a loaded tree.
func (s *OrderService) Adjust(sessionID, itemID string, delta int) Adjustment {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	qty := sess.ledger.Apply(itemID, delta)
	return Adjustment{
		Quantity: qty,
		Total:    catalog.Total(sess.restaurant, sess.ledger),
	}
}

// ToggleFilter selects a category facet, or clears the selection when the
// active category is picked again. An empty category always clears.
func (s *OrderService) ToggleFilter(sessionID, category string) *View {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if category == "" || sess.filter == category {
		sess.filter = ""
	} else {
		sess.filter = category
	}
	return sess.view()
}

// View returns the current derived state for the session.
func (s *OrderService) View(sessionID string) *View {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view()
}

// Checkout snapshots the positive-quantity items into a transfer payload,
// writes it to the handoff slot and announces the checkout. Building from an
// all-zero ledger is refused with handoff.ErrEmptyOrder.
func (s *OrderService) Checkout(ctx context.Context, sessionID string) (*domain.OrderPayload, error) {
	sess := s.session(sessionID)

	sess.mu.Lock()
	payload, err := handoff.BuildPayload(sess.restaurant, sess.ledger)
	restaurantName := sess.name
	sess.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.handoff.Write(ctx, sessionID, payload); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := domain.CheckoutEvent{
			Type:       domain.EventCheckoutCompleted,
			SessionID:  sessionID,
			Restaurant: restaurantName,
			ItemCount:  len(payload.Items),
			Total:      payload.Total,
			Timestamp:  time.Now(),
		}
		if err := s.publisher.PublishCheckout(ctx, event); err != nil {
			log.Printf("WARNING: failed to publish checkout event: %v", err)
		}
	}

	return payload, nil
}

// Consume reads and clears the handoff slot. A second call finds the slot
// already empty and reports (nil, false, nil).
func (s *OrderService) Consume(ctx context.Context, sessionID string) (*domain.OrderPayload, bool, error) {
	return s.handoff.TakeOnce(ctx, sessionID)
}

// view derives the render state. Callers hold sess.mu.
func (sess *session) view() *View {
	v := &View{
		Loading:    sess.loading,
		Filter:     sess.filter,
		Categories: catalog.Categories(sess.restaurant, sess.filter),
		Total:      catalog.Total(sess.restaurant, sess.ledger),
	}
	if sess.restaurant != nil {
		v.Restaurant = sess.restaurant.Name
	}
	for _, item := range catalog.VisibleItems(sess.restaurant, sess.filter) {
		v.Items = append(v.Items, ViewItem{MenuItem: item, Quantity: sess.ledger.Get(item.ID)})
	}
	return v
}
