package shop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlinedrinkshop/backend/internal/model"
	"github.com/onlinedrinkshop/backend/internal/store"
)

func newTestShop(window time.Duration) *Shop {
	return New(
		store.NewCatalogStore(),
		store.NewAccountStore(4),
		store.NewCartStore(),
		store.NewOrderStore(),
		window,
	)
}

func pearls() model.Topping { return model.Topping{ID: 1, Name: "Pearls", Price: 5} }

func TestCheckoutScenario(t *testing.T) {
	s := newTestShop(time.Minute)

	u, err := s.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)
	require.Equal(t, 100, u.Tokens)

	s.AddToCart(model.Drink{ID: 1, Name: "Drink", Price: 20}, model.Customization{
		Toppings: []model.Topping{pearls()},
	}, 2)
	require.Equal(t, 50, s.CartTotal())

	order, err := s.PlaceOrder()
	require.NoError(t, err)
	assert.Equal(t, 50, order.TotalAmount)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, 50, current.Tokens)
	assert.Empty(t, s.CartItems())

	status := s.Status()
	assert.True(t, status.OrderSuccess)
	assert.Equal(t, order.ID, status.LastOrderID)
	assert.Empty(t, status.LastError)
	assert.False(t, status.Loading, "operations are synchronous")

	// Same user, balance 50: a 60-token drink must be rejected and leave
	// everything in place.
	s.AddToCart(model.Drink{ID: 2, Name: "Pricy", Price: 60}, model.Customization{}, 1)
	_, err = s.PlaceOrder()
	assert.ErrorIs(t, err, store.ErrInsufficientFunds)

	current, _ = s.CurrentUser()
	assert.Equal(t, 50, current.Tokens)
	assert.Len(t, s.CartItems(), 1, "cart still holds the item")
	assert.Equal(t, "insufficient tokens", s.Status().LastError)
}

func TestStatusFlagsClearManually(t *testing.T) {
	s := newTestShop(time.Minute)
	_, err := s.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	_, err = s.PlaceOrder() // empty cart
	require.Error(t, err)
	require.NotEmpty(t, s.Status().LastError)

	s.ClearError()
	assert.Empty(t, s.Status().LastError)

	s.AddToCart(model.Drink{ID: 1, Price: 10}, model.Customization{}, 1)
	_, err = s.PlaceOrder()
	require.NoError(t, err)
	require.True(t, s.Status().OrderSuccess)

	s.DismissOrderSuccess()
	status := s.Status()
	assert.False(t, status.OrderSuccess)
	assert.Zero(t, status.LastOrderID)
}

func TestStatusFlagsClearAfterWindow(t *testing.T) {
	s := newTestShop(20 * time.Millisecond)
	_, err := s.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	_, err = s.PlaceOrder() // empty cart
	require.Error(t, err)
	require.NotEmpty(t, s.Status().LastError)

	assert.Eventually(t, func() bool {
		return s.Status().LastError == ""
	}, time.Second, 5*time.Millisecond)

	s.AddToCart(model.Drink{ID: 1, Price: 10}, model.Customization{}, 1)
	_, err = s.PlaceOrder()
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return !s.Status().OrderSuccess
	}, time.Second, 5*time.Millisecond)
}

func TestANewErrorRestartsTheWindow(t *testing.T) {
	s := newTestShop(time.Minute)
	_, err := s.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	_, err = s.PlaceOrder()
	require.Error(t, err)

	// A successful operation clears the previous error on entry.
	_, err = s.TopUp(10)
	require.NoError(t, err)
	assert.Empty(t, s.Status().LastError)
}

func TestLogoutResetsEverything(t *testing.T) {
	s := newTestShop(time.Minute)
	_, err := s.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)
	s.AddToCart(model.Drink{ID: 1, Price: 10}, model.Customization{}, 1)
	_, err = s.PlaceOrder()
	require.NoError(t, err)
	require.True(t, s.Status().OrderSuccess)

	s.Logout()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.CartItems(), "cart is session-scoped")
	assert.Equal(t, Status{}, s.Status(), "transient flags return to initial state")
	assert.Empty(t, s.Orders())
}

func TestReorderRequiresSession(t *testing.T) {
	s := newTestShop(time.Minute)
	assert.ErrorIs(t, s.Reorder(1), store.ErrNoActiveSession)
}

func TestOrderByIDOwnership(t *testing.T) {
	s := newTestShop(time.Minute)
	_, err := s.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)
	s.AddToCart(model.Drink{ID: 1, Price: 10}, model.Customization{}, 1)
	order, err := s.PlaceOrder()
	require.NoError(t, err)

	got, err := s.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// A second account must not see the first account's orders.
	_, err = s.Register("b@x.com", "p", "Ben")
	require.NoError(t, err)
	_, err = s.OrderByID(order.ID)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}

func TestSubscribeReceivesCartEvents(t *testing.T) {
	s := newTestShop(time.Minute)
	events, cancel := s.Subscribe(8)
	defer cancel()

	s.AddToCart(model.Drink{ID: 1, Price: 10}, model.Customization{}, 1)

	select {
	case ev := <-events:
		assert.Equal(t, EventCartUpdated, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestSearchAndBrowseDelegation(t *testing.T) {
	s := newTestShop(time.Minute)
	assert.NotEmpty(t, s.SearchDrinks("tea"))
	assert.Len(t, s.DrinksByCategory(2), 3)
}
