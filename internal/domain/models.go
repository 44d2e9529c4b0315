package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrRestaurantNotFound is returned by menu sources when the query matched
// zero restaurants. Callers map it to a user-facing "not found" message,
// distinct from transport failures.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// MenuItem is a single orderable entry. Items are immutable once fetched;
// the identity used everywhere (ledger, payload) is ID.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

type MenuSection struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type Menu struct {
	ID       string        `json:"id"`
	Sections []MenuSection `json:"sections"`
}

// Restaurant is the root of the menu tree returned by a menu source.
// The schema allows multiple menus per restaurant; the ordering flow
// operates on the aggregate of all of them.
type Restaurant struct {
	Name  string `json:"name"`
	Menus []Menu `json:"menus"`
}

// OrderLine is a snapshot of one selected item at checkout time.
// Name and price are copied from the tree so later menu changes cannot
// alter an order that is already in flight.
type OrderLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderPayload is the one-shot transfer handed from the ordering screen
// to the checkout step.
type OrderPayload struct {
	Items []OrderLine     `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// CheckoutEvent is published when a diner hands an order off to checkout.
type CheckoutEvent struct {
	Type       string          `json:"type"`
	SessionID  string          `json:"session_id"`
	Restaurant string          `json:"restaurant"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
	Timestamp  time.Time       `json:"timestamp"`
}

// EventCheckoutCompleted is the Type of events emitted on checkout.
const EventCheckoutCompleted = "checkout_completed"

// RestaurantStats is the aggregated checkout activity for one restaurant.
type RestaurantStats struct {
	Restaurant     string          `json:"restaurant"`
	CheckoutsToday int64           `json:"checkouts_today"`
	Revenue        decimal.Decimal `json:"revenue"`
}
