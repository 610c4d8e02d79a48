package request

type AddOrderItemRequest struct {
	OrderID  int64 `json:"order_id" validate:"required,gt=0"`
	MenuID   int64 `json:"menu_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}

// CreatePaymentRequest deliberately has no amount field: the charge always
// comes from the stored order total.
type CreatePaymentRequest struct {
	OrderID       int64  `json:"order_id" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,min=2,max=50"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}
