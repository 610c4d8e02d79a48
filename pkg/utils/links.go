package utils

import (
	"fmt"
)

// Resource link builders. Each returns the relation -> URL map attached to a
// representation. Deterministic, and relations that do not apply to the
// current state are omitted.

// APILinks is the top-level link map served on /health
func APILinks() map[string]string {
	return map[string]string{
		"health":            "/health",
		"categories":        "/categories",
		"menus":             "/menus",
		"customer_register": "/auth/customer/register",
		"customer_login":    "/auth/customer/login",
		"admin_login":       "/auth/admin/login",
		"orders":            "/orders",
	}
}

func CategoryLinks(id int64) map[string]string {
	return map[string]string{
		"self":  "/categories",
		"menus": fmt.Sprintf("/menus?category_id=%d", id),
	}
}

func MenuLinks(id, categoryID int64) map[string]string {
	return map[string]string{
		"self":     fmt.Sprintf("/menus/%d", id),
		"category": fmt.Sprintf("/menus?category_id=%d", categoryID),
		"menus":    "/menus",
	}
}

func CustomerLinks(id int64) map[string]string {
	return map[string]string{
		"self":   fmt.Sprintf("/customers/%d", id),
		"orders": fmt.Sprintf("/orders?customer_id=%d", id),
	}
}

// OrderLinks varies with order status: only pending orders offer item
// attachment and payment creation; orders already paid link to the payment view.
func OrderLinks(id int64, status string, hasPayment bool) map[string]string {
	links := map[string]string{
		"self": fmt.Sprintf("/orders/%d", id),
	}

	if status == "pending" {
		links["add_item"] = "/order_details"
		links["create_payment"] = "/payments"
	}

	if hasPayment {
		links["payment"] = fmt.Sprintf("/payments/%d", id)
	}

	return links
}

func PaymentLinks(orderID int64) map[string]string {
	return map[string]string{
		"self":  fmt.Sprintf("/payments/%d", orderID),
		"order": fmt.Sprintf("/orders/%d", orderID),
	}
}
