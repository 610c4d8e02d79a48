package response

import (
	"time"
)

// DashboardResponse is the admin statistics block
type DashboardResponse struct {
	TotalCustomers int64   `json:"total_customers"`
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingOrders  int64   `json:"pending_orders"`
}

// AdminCustomerResponse includes the active flag, visible to admins only
type AdminCustomerResponse struct {
	CustomerID int64     `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	IsActive   bool      `json:"is_active"`
	LastUpdate time.Time `json:"last_update"`
}

type StatusUpdateResponse struct {
	OrderID   int64  `json:"order_id"`
	NewStatus string `json:"new_status"`
}
