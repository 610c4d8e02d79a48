package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderLinks_PendingOffersMutations(t *testing.T) {
	links := OrderLinks(5, "pending", false)

	assert.Equal(t, "/orders/5", links["self"])
	assert.Equal(t, "/order_details", links["add_item"])
	assert.Equal(t, "/payments", links["create_payment"])
	assert.NotContains(t, links, "payment")
}

func TestOrderLinks_CompletedWithPayment(t *testing.T) {
	links := OrderLinks(5, "completed", true)

	assert.Equal(t, "/orders/5", links["self"])
	assert.Equal(t, "/payments/5", links["payment"])
	assert.NotContains(t, links, "add_item")
	assert.NotContains(t, links, "create_payment")
}

func TestOrderLinks_CancelledBare(t *testing.T) {
	links := OrderLinks(9, "cancelled", false)

	assert.Equal(t, map[string]string{"self": "/orders/9"}, links)
}
