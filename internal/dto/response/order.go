package response

import (
	"time"
)

type OrderResponse struct {
	OrderID       int64             `json:"order_id"`
	CustomerID    int64             `json:"customer_id"`
	Status        string            `json:"status"`
	TotalAmount   float64           `json:"total_amount"`
	OrderDate     time.Time         `json:"order_date"`
	LastUpdate    time.Time         `json:"last_update"`
	CustomerName  string            `json:"customer_name,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	Links         map[string]string `json:"links,omitempty"`
}

type OrderItemResponse struct {
	OrderDetailID   int64   `json:"order_detail_id"`
	OrderID         int64   `json:"order_id"`
	MenuID          int64   `json:"menu_id"`
	MenuName        string  `json:"menu_name"`
	MenuDescription *string `json:"description,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	Subtotal        float64 `json:"subtotal"`
}

// OrderDetailResponse aggregates the order, its owner, its line items and
// the payment if one exists
type OrderDetailResponse struct {
	OrderResponse
	CustomerPhone   *string              `json:"customer_phone,omitempty"`
	CustomerAddress *string              `json:"customer_address,omitempty"`
	Items           []*OrderItemResponse `json:"items"`
	Payment         *PaymentResponse     `json:"payment"`
}

type PaymentResponse struct {
	PaymentID     int64             `json:"payment_id"`
	OrderID       int64             `json:"order_id"`
	Amount        float64           `json:"amount"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	PaymentDate   time.Time         `json:"payment_date"`
	Links         map[string]string `json:"links,omitempty"`
}
