package store

import (
	"sort"
	"sync"
	"time"

	"github.com/onlinedrinkshop/backend/internal/model"
)

// OrderStore owns the order history. Orders are immutable once recorded;
// the store only appends.
type OrderStore struct {
	mu     sync.RWMutex
	orders []model.Order
	nextID uint64
}

// NewOrderStore returns an empty order history.
func NewOrderStore() *OrderStore {
	return &OrderStore{nextID: 1}
}

// Place runs checkout against the given account and cart stores:
//
//  1. fails with ErrNoActiveSession when nobody is logged in,
//  2. fails with ErrEmptyCart when the cart has no lines,
//  3. fails with ErrInsufficientFunds when the balance is below the total,
//  4. otherwise records the order, debits the balance and clears the cart.
//
// All checks run before any mutation, so a failure leaves every store
// untouched. The caller must serialize Place against other mutations (the
// facade holds its own lock around it); under that discipline the three
// effects in step 4 are atomic from the caller's perspective.
func (s *OrderStore) Place(accounts *AccountStore, cart *CartStore) (model.Order, error) {
	user, ok := accounts.Current()
	if !ok {
		return model.Order{}, ErrNoActiveSession
	}
	items := cart.Items()
	if len(items) == 0 {
		return model.Order{}, ErrEmptyCart
	}
	total := cart.Total()
	if user.Tokens < total {
		return model.Order{}, ErrInsufficientFunds
	}

	// Debit re-checks the balance itself, so it cannot fail here and the
	// order below is only ever recorded together with the debit.
	if _, err := accounts.Debit(user.ID, total); err != nil {
		return model.Order{}, err
	}

	now := time.Now().UTC()
	s.mu.Lock()
	order := model.Order{
		ID:          s.nextID,
		UserID:      user.ID,
		Items:       items,
		TotalAmount: total,
		CreatedAt:   now,
		Status:      model.OrderPending,
		PickupAt:    now.Add(model.PickupDelay),
	}
	s.nextID++
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	cart.Clear()
	return order, nil
}

// GetByID looks up an order by id.
func (s *OrderStore) GetByID(id uint64) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return model.Order{}, false
}

// Reorder puts the snapshot of a past order back into the cart, replacing
// whatever the cart held. Lines are restored as-is: same ids, same prices,
// no re-validation of funds. Fails with ErrOrderNotFound when the id does
// not exist or belongs to another user.
func (s *OrderStore) Reorder(orderID, userID uint64, cart *CartStore) error {
	order, ok := s.GetByID(orderID)
	if !ok || order.UserID != userID {
		return ErrOrderNotFound
	}
	cart.Restore(order.Items)
	return nil
}

// ListForUser returns the user's orders newest-first. Ties on the creation
// timestamp are broken by the higher (newer) id.
func (s *OrderStore) ListForUser(userID uint64) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID > out[b].ID
	})
	return out
}

func cloneOrder(o model.Order) model.Order {
	out := o
	out.Items = model.CloneItems(o.Items)
	return out
}
