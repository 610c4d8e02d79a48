package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All order routes require a verified token. Ownership of a specific
	// order is checked in the service, where the order row is available.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticated(config.JWT, log))

		r.With(middleware.CustomerOwner(log)).Get("/orders", orderHandler.GetOrders)
		r.With(middleware.Customer(log)).Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders/{order_id}", orderHandler.GetOrderByID)

		r.With(middleware.Customer(log)).Post("/order_details", orderHandler.AddItem)

		r.With(middleware.Customer(log)).Post("/payments", orderHandler.CreatePayment)
		r.Get("/payments/{order_id}", orderHandler.GetPaymentByOrder)
	})
}
