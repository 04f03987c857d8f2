package model

import "time"

// OrderStatus is the lifecycle state of a placed order. Nothing in this
// system ever advances an order past PENDING; the remaining states exist
// for the pickup display.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// PickupDelay is how long after checkout an order is promised for pickup.
const PickupDelay = 30 * time.Minute

// Order is an immutable snapshot taken at checkout. Its items and total
// are frozen copies of the cart at placement time and are unaffected by
// later catalog changes.
//
// Fields:
//  ID          – numeric identifier of the order.
//  UserID      – owner of the order.
//  Items       – cart lines as they were at checkout.
//  TotalAmount – sum of the items' total prices at checkout.
//  CreatedAt   – checkout timestamp (UTC).
//  Status      – lifecycle state, always PENDING in this system.
//  PickupAt    – CreatedAt + PickupDelay.
type Order struct {
	ID          uint64      `json:"id"`
	UserID      uint64      `json:"user_id"`
	Items       []CartItem  `json:"items"`
	TotalAmount int         `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
	Status      OrderStatus `json:"status"`
	PickupAt    time.Time   `json:"pickup_at"`
}
