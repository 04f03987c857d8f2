// Package shop is the session facade. It composes the four stores into the
// operations a client calls, serializes every composite operation behind a
// single lock, and tracks the transient status a UI renders between
// actions (loading flag, last error, order-success flag). The facade never
// reaches into store internals; all mutation goes through the stores'
// exported methods.
package shop

import (
	"sync"
	"time"

	"github.com/onlinedrinkshop/backend/internal/model"
	"github.com/onlinedrinkshop/backend/internal/store"
)

// Status is the transient UI-facing state of the session. Error and
// order-success fields clear themselves after the configured display
// window; Logout resets everything at once.
type Status struct {
	Loading      bool   `json:"loading"`
	LastError    string `json:"last_error,omitempty"`
	OrderSuccess bool   `json:"order_success"`
	LastOrderID  uint64 `json:"last_order_id,omitempty"`
}

// Shop coordinates the stores for the single active session.
type Shop struct {
	catalog  *store.CatalogStore
	accounts *store.AccountStore
	cart     *store.CartStore
	orders   *store.OrderStore

	mu           sync.Mutex
	status       Status
	window       time.Duration
	errTimer     *time.Timer
	successTimer *time.Timer

	events *hub
}

// New wires a facade over the given stores. statusWindow is how long error
// and order-success flags stay visible before clearing themselves.
func New(catalog *store.CatalogStore, accounts *store.AccountStore, cart *store.CartStore, orders *store.OrderStore, statusWindow time.Duration) *Shop {
	return &Shop{
		catalog:  catalog,
		accounts: accounts,
		cart:     cart,
		orders:   orders,
		window:   statusWindow,
		events:   newHub(),
	}
}

// Catalog exposes the read-only catalog for browse endpoints.
func (s *Shop) Catalog() *store.CatalogStore { return s.catalog }

// Subscribe returns a channel of state-change events and a cancel func.
func (s *Shop) Subscribe(buf int) (<-chan Event, func()) {
	return s.events.subscribe(buf)
}

// Status returns the current transient flags.
func (s *Shop) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ClearError dismisses the last error immediately.
func (s *Shop) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearErrorLocked()
}

// DismissOrderSuccess dismisses the order-success flag immediately.
func (s *Shop) DismissOrderSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissSuccessLocked()
}

// ----- account operations -----

// Register creates an account and opens a session for it.
func (s *Shop) Register(email, password, name string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beginLocked()
	u, err := s.accounts.Register(email, password, name)
	s.endLocked(err)
	if err != nil {
		return model.User{}, err
	}
	s.events.broadcast(Event{Type: EventUserUpdated, Data: u})
	return u, nil
}

// Login opens a session for an existing account.
func (s *Shop) Login(email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beginLocked()
	u, err := s.accounts.Login(email, password)
	s.endLocked(err)
	if err != nil {
		return model.User{}, err
	}
	s.events.broadcast(Event{Type: EventUserUpdated, Data: u})
	return u, nil
}

// Logout closes the session, empties the session-scoped cart and resets
// every transient flag to its initial state.
func (s *Shop) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts.Logout()
	s.cart.Clear()
	s.stopTimersLocked()
	s.status = Status{}
	s.events.broadcast(Event{Type: EventLoggedOut})
}

// CurrentUser returns the session user, if any.
func (s *Shop) CurrentUser() (model.User, bool) {
	return s.accounts.Current()
}

// ChangePassword swaps the session user's password after verifying the old
// one.
func (s *Shop) ChangePassword(oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beginLocked()
	err := s.accounts.ChangePassword(oldPassword, newPassword)
	s.endLocked(err)
	return err
}

// TopUp adds tokens to the session user's balance.
func (s *Shop) TopUp(amount int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beginLocked()
	u, err := s.accounts.TopUp(amount)
	s.endLocked(err)
	if err != nil {
		return model.User{}, err
	}
	s.events.broadcast(Event{Type: EventUserUpdated, Data: u})
	return u, nil
}

// ----- catalog queries -----

// SearchDrinks returns drinks whose name or description contains the
// query, case-insensitively.
func (s *Shop) SearchDrinks(query string) []model.Drink {
	return s.catalog.Search(query)
}

// DrinksByCategory returns the drinks of one category in catalog order.
func (s *Shop) DrinksByCategory(categoryID uint64) []model.Drink {
	return s.catalog.DrinksByCategory(categoryID)
}

// ----- cart operations -----

// AddToCart appends a new cart line; identical lines are never merged.
func (s *Shop) AddToCart(drink model.Drink, customization model.Customization, quantity int) model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.cart.Add(drink, customization, quantity)
	s.events.broadcast(Event{Type: EventCartUpdated, Data: s.cart.Items()})
	return item
}

// SetCartQuantity updates a line's quantity; zero or less removes it.
func (s *Shop) SetCartQuantity(itemID uint64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(itemID, quantity)
	s.events.broadcast(Event{Type: EventCartUpdated, Data: s.cart.Items()})
}

// RemoveFromCart deletes a line.
func (s *Shop) RemoveFromCart(itemID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
	s.events.broadcast(Event{Type: EventCartUpdated, Data: s.cart.Items()})
}

// ClearCart empties the cart.
func (s *Shop) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.events.broadcast(Event{Type: EventCartUpdated, Data: s.cart.Items()})
}

// CartItems returns the cart lines in insertion order.
func (s *Shop) CartItems() []model.CartItem { return s.cart.Items() }

// CartTotal returns the derived cart total.
func (s *Shop) CartTotal() int { return s.cart.Total() }

// ----- order operations -----

// PlaceOrder runs checkout. On success the order-success flag carries the
// new order's id until dismissed or the display window elapses.
func (s *Shop) PlaceOrder() (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.beginLocked()
	order, err := s.orders.Place(s.accounts, s.cart)
	s.endLocked(err)
	if err != nil {
		return model.Order{}, err
	}
	s.status.OrderSuccess = true
	s.status.LastOrderID = order.ID
	s.resetTimerLocked(&s.successTimer, s.dismissSuccess)
	user, _ := s.accounts.Current()
	s.events.broadcast(Event{Type: EventOrderPlaced, Data: order})
	s.events.broadcast(Event{Type: EventCartUpdated, Data: s.cart.Items()})
	s.events.broadcast(Event{Type: EventUserUpdated, Data: user})
	return order, nil
}

// Reorder replaces the cart with a past order's snapshot as-is.
func (s *Shop) Reorder(orderID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.accounts.Current()
	if !ok {
		return store.ErrNoActiveSession
	}
	s.beginLocked()
	err := s.orders.Reorder(orderID, user.ID, s.cart)
	s.endLocked(err)
	if err != nil {
		return err
	}
	s.events.broadcast(Event{Type: EventCartUpdated, Data: s.cart.Items()})
	return nil
}

// Orders lists the session user's orders newest-first. Without a session
// the list is empty.
func (s *Shop) Orders() []model.Order {
	user, ok := s.accounts.Current()
	if !ok {
		return []model.Order{}
	}
	return s.orders.ListForUser(user.ID)
}

// OrderByID returns one of the session user's orders.
func (s *Shop) OrderByID(orderID uint64) (model.Order, error) {
	user, ok := s.accounts.Current()
	if !ok {
		return model.Order{}, store.ErrNoActiveSession
	}
	order, found := s.orders.GetByID(orderID)
	if !found || order.UserID != user.ID {
		return model.Order{}, store.ErrOrderNotFound
	}
	return order, nil
}

// ----- transient status plumbing -----

// beginLocked marks an operation as in flight. Operations are synchronous,
// so the flag flips back before the facade lock is released; it exists so
// Status keeps the same shape the UI state had.
func (s *Shop) beginLocked() {
	s.status.Loading = true
	s.clearErrorLocked()
}

func (s *Shop) endLocked(err error) {
	s.status.Loading = false
	if err != nil {
		s.status.LastError = err.Error()
		s.resetTimerLocked(&s.errTimer, s.clearError)
		s.events.broadcast(Event{Type: EventStatusUpdated, Data: s.status})
	}
}

func (s *Shop) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearErrorLocked()
}

func (s *Shop) clearErrorLocked() {
	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}
	s.status.LastError = ""
}

func (s *Shop) dismissSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissSuccessLocked()
}

func (s *Shop) dismissSuccessLocked() {
	if s.successTimer != nil {
		s.successTimer.Stop()
		s.successTimer = nil
	}
	s.status.OrderSuccess = false
	s.status.LastOrderID = 0
}

func (s *Shop) resetTimerLocked(t **time.Timer, fire func()) {
	if *t != nil {
		(*t).Stop()
	}
	if s.window <= 0 {
		*t = nil
		return
	}
	*t = time.AfterFunc(s.window, fire)
}

func (s *Shop) stopTimersLocked() {
	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}
	if s.successTimer != nil {
		s.successTimer.Stop()
		s.successTimer = nil
	}
}
