package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAndCheckoutFlow(t *testing.T) {
	e, _ := newTestServer()
	token := registerUser(t, e, "a@x.com", "p", "Ann")

	// Americano (20) + Pearls (5), quantity 2 -> 50.
	rec := doJSON(e, http.MethodPost, "/v1/cart/items", token,
		`{"drink_id":4,"topping_ids":[1],"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/v1/cart", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Items []struct {
			ID       uint64 `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 50, cart.Total)

	rec = doJSON(e, http.MethodPost, "/v1/orders", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var order struct {
		ID          uint64 `json:"id"`
		TotalAmount int    `json:"total_amount"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 50, order.TotalAmount)
	assert.Equal(t, "PENDING", order.Status)

	// Cart is empty and the balance dropped to 50.
	rec = doJSON(e, http.MethodGet, "/v1/cart", token, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	rec = doJSON(e, http.MethodGet, "/v1/me", token, "")
	var me struct {
		Tokens int `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, 50, me.Tokens)
}

func TestCheckoutFailures(t *testing.T) {
	e, _ := newTestServer()
	token := registerUser(t, e, "a@x.com", "p", "Ann")

	// Empty cart.
	rec := doJSON(e, http.MethodPost, "/v1/orders", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Mango Smoothie (32) x4 = 128 > 100.
	rec = doJSON(e, http.MethodPost, "/v1/cart/items", token,
		`{"drink_id":13,"quantity":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/orders", token, "")
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)

	// The failed checkout left the cart and balance untouched.
	rec = doJSON(e, http.MethodGet, "/v1/cart", token, "")
	var cart struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)

	rec = doJSON(e, http.MethodGet, "/v1/me", token, "")
	var me struct {
		Tokens int `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, 100, me.Tokens)
}

func TestAddItemValidation(t *testing.T) {
	e, _ := newTestServer()
	token := registerUser(t, e, "a@x.com", "p", "Ann")

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "unknown drink", body: `{"drink_id":999}`, wantCode: http.StatusNotFound},
		{name: "unknown topping", body: `{"drink_id":4,"topping_ids":[99]}`, wantCode: http.StatusBadRequest},
		{name: "unknown sweetness", body: `{"drink_id":4,"sweetness":"VERY_SWEET"}`, wantCode: http.StatusBadRequest},
		{name: "defaults applied", body: `{"drink_id":4}`, wantCode: http.StatusCreated},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/v1/cart/items", token, testCase.body)
			assert.Equal(t, testCase.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestReorderEndpoint(t *testing.T) {
	e, _ := newTestServer()
	token := registerUser(t, e, "a@x.com", "p", "Ann")

	rec := doJSON(e, http.MethodPost, "/v1/cart/items", token,
		`{"drink_id":4,"topping_ids":[1],"quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/v1/orders", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var order struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec = doJSON(e, http.MethodPost, "/v1/orders/999/reorder", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/orders/1/reorder", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Equal(t, 50, cart.Total)
}

func TestOrderHistoryEndpoint(t *testing.T) {
	e, _ := newTestServer()
	token := registerUser(t, e, "a@x.com", "p", "Ann")

	rec := doJSON(e, http.MethodPost, "/v1/cart/items", token, `{"drink_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/v1/orders", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/v1/cart/items", token, `{"drink_id":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/v1/orders", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/orders", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, uint64(2), history[0].ID, "newest first")
	assert.Equal(t, uint64(1), history[1].ID)
}

func TestPickupQREndpoint(t *testing.T) {
	e, _ := newTestServer()
	token := registerUser(t, e, "a@x.com", "p", "Ann")

	rec := doJSON(e, http.MethodPost, "/v1/cart/items", token, `{"drink_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/v1/orders", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/v1/orders/1/qr", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = doJSON(e, http.MethodGet, "/v1/orders/999/qr", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodGet, "/v1/search/drinks?q=tea", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var drinks []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drinks))
	assert.NotEmpty(t, drinks)
}
