package store

import (
	"sync"

	"github.com/onlinedrinkshop/backend/internal/model"
)

// CartStore owns the current session's cart lines. The cart is scoped to
// the session, not the account: logging out empties it. Lines are stored
// in insertion order and every Add appends a fresh line; identical
// drink+customization lines are deliberately never merged.
type CartStore struct {
	mu     sync.RWMutex
	items  []model.CartItem
	nextID uint64
}

// NewCartStore returns an empty cart.
func NewCartStore() *CartStore {
	return &CartStore{nextID: 1}
}

// Add appends a new line with a fresh id and returns it. Quantities below
// one are lifted to one so the quantity >= 1 invariant holds from the
// start.
func (s *CartStore) Add(drink model.Drink, customization model.Customization, quantity int) model.CartItem {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item := model.CartItem{
		ID:            s.nextID,
		Drink:         drink,
		Customization: customization.Clone(),
		Quantity:      quantity,
	}
	s.nextID++
	s.items = append(s.items, item)
	return item.Clone()
}

// SetQuantity replaces a line's quantity in place. A quantity of zero or
// less removes the line instead of leaving a zero-quantity row. Unknown
// ids are a no-op.
func (s *CartStore) SetQuantity(itemID uint64, quantity int) {
	if quantity <= 0 {
		s.Remove(itemID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := range s.items {
		if s.items[n].ID == itemID {
			s.items[n].Quantity = quantity
			return
		}
	}
}

// Remove deletes a line if present; unknown ids are a no-op.
func (s *CartStore) Remove(itemID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := range s.items {
		if s.items[n].ID == itemID {
			s.items = append(s.items[:n], s.items[n+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Items returns a deep copy of the lines in insertion order.
func (s *CartStore) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneItems(s.items)
}

// Total is the sum over all lines of (drink price + topping prices) *
// quantity.
func (s *CartStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.items {
		total += it.TotalPrice()
	}
	return total
}

// Restore replaces the cart contents with the given lines as-is, keeping
// their ids. Used by reorder, which puts a past order's snapshot back into
// the cart without re-validating anything. The id counter is bumped past
// the restored ids so future Adds stay unique.
func (s *CartStore) Restore(items []model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = model.CloneItems(items)
	for _, it := range s.items {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
}

// Len reports the number of lines.
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
