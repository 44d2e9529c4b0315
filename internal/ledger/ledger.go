// Package ledger tracks how many of each menu item the diner wants.
package ledger

// Ledger is a sparse mapping from item id to a non-negative quantity.
// An absent key means quantity zero. It is not safe for concurrent use;
// the owning session serializes access.
type Ledger struct {
	quantities map[string]int
}

func New() *Ledger {
	return &Ledger{quantities: make(map[string]int)}
}

// Apply adds delta to the item's quantity, clamping at zero, and returns
// the resulting quantity. Any id and any delta are accepted.
func (l *Ledger) Apply(itemID string, delta int) int {
	q := l.quantities[itemID] + delta
	if q <= 0 {
		delete(l.quantities, itemID)
		return 0
	}
	l.quantities[itemID] = q
	return q
}

// Get returns the current quantity for an item, zero for unknown ids.
func (l *Ledger) Get(itemID string) int {
	return l.quantities[itemID]
}

// Reset drops every entry. Called when the diner switches restaurants.
func (l *Ledger) Reset() {
	l.quantities = make(map[string]int)
}

// Len reports how many items currently have a positive quantity.
func (l *Ledger) Len() int {
	return len(l.quantities)
}
