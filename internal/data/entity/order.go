package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the status enum.
// The admin update path checks membership only, nothing about transitions.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order total_amount is derived: always the sum of the line item subtotals,
// recomputed on every item addition, never set directly.
type Order struct {
	ID          int64       `db:"order_id"`
	CustomerID  int64       `db:"customer_id"`
	Status      OrderStatus `db:"status"`
	TotalAmount float64     `db:"total_amount"`
	OrderDate   time.Time   `db:"order_date"`
	LastUpdate  time.Time   `db:"last_update"`
}

// OrderWithCustomer carries joined customer columns for listings
type OrderWithCustomer struct {
	Order
	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
}
