// Package handoff builds the order transfer payload and moves it through a
// single-slot, write-once/read-once buffer between the ordering screen and
// the checkout step.
package handoff

import (
	"errors"

	"github.com/shopspring/decimal"

	"tavolo/internal/catalog"
	"tavolo/internal/domain"
	"tavolo/internal/ledger"
)

// ErrEmptyOrder is returned when no item has a positive quantity. The UI is
// expected to disable the checkout trigger, so reaching this is a violated
// precondition rather than a normal runtime outcome.
var ErrEmptyOrder = errors.New("no items with positive quantity")

// BuildPayload snapshots every positively-selected item with its current name
// and price, so later changes to the tree cannot alter the order in flight.
func BuildPayload(r *domain.Restaurant, l *ledger.Ledger) (*domain.OrderPayload, error) {
	total := decimal.Zero
	var lines []domain.OrderLine
	for _, item := range catalog.Flatten(r) {
		qty := l.Get(item.ID)
		if qty <= 0 {
			continue
		}
		lines = append(lines, domain.OrderLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: qty,
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	return &domain.OrderPayload{Items: lines, Total: total}, nil
}
