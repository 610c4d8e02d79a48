package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is unique per order. Its amount snapshots the order total at
// payment time and never comes from client input.
type Payment struct {
	ID            int64         `db:"payment_id"`
	OrderID       int64         `db:"order_id"`
	Amount        float64       `db:"amount"`
	Method        string        `db:"payment_method"`
	Status        PaymentStatus `db:"status"`
	TransactionID string        `db:"transaction_id"`
	PaymentDate   time.Time     `db:"payment_date"`
}
