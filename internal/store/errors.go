// Package store holds the in-memory state of the shop: catalog, accounts,
// cart and order history. This file defines the sentinel errors shared
// across stores. Handlers compare against them with errors.Is and translate
// each into an HTTP status; every failure leaves all store state unchanged.
package store

import "errors"

// ErrDuplicateEmail is returned by Register when an account with the same
// email (case-sensitive exact match) already exists. Handlers should
// translate this into an HTTP 409 response.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidCredentials is returned by Login when no account matches the
// email or the password does not verify, and by ChangePassword when the
// old password does not verify. Handlers should translate this into an
// HTTP 401 response.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoActiveSession is returned by operations that require a logged-in
// user when the session is empty. Handlers should translate this into an
// HTTP 401 response.
var ErrNoActiveSession = errors.New("no user logged in")

// ErrEmptyCart is returned by Place when the cart holds no items.
// Handlers should translate this into an HTTP 409 response.
var ErrEmptyCart = errors.New("cart is empty")

// ErrInsufficientFunds is returned by Place when the current user's token
// balance is below the cart total. Handlers should translate this into an
// HTTP 402 response.
var ErrInsufficientFunds = errors.New("insufficient tokens")

// ErrOrderNotFound is returned when an order id does not exist or does not
// belong to the current user. Handlers should translate this into an HTTP
// 404 response.
var ErrOrderNotFound = errors.New("order not found")
