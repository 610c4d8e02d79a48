package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /orders. The owner is taken from the token, never
// from the body.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), claims)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created", order)
}

// GetOrders handles GET /orders?customer_id=N
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.GetOrders(r.Context(), claims, r.URL.Query().Get("customer_id"))
	if err != nil {
		h.handleServiceError(w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", orders)
}

// GetOrderByID handles GET /orders/{order_id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), claims, chi.URLParam(r, "order_id"))
	if err != nil {
		h.handleServiceError(w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved", order)
}

// AddItem handles POST /order_details
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.AddItem(r.Context(), claims, &req)
	if err != nil {
		h.handleServiceError(w, err, "add order item")
		return
	}

	utils.ResponseCreated(w, "Item added to order", item)
}

// CreatePayment handles POST /payments
func (h *OrderHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), claims, &req)
	if err != nil {
		h.handleServiceError(w, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded", payment)
}

// GetPaymentByOrder handles GET /payments/{order_id}
func (h *OrderHandler) GetPaymentByOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	payment, err := h.service.GetPaymentByOrder(r.Context(), claims, chi.URLParam(r, "order_id"))
	if err != nil {
		h.handleServiceError(w, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved", payment)
}

// handleServiceError maps service errors to HTTP status codes
func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(errMsg, "access denied"):
		h.log.Warn(operation+" failed - access denied", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case strings.Contains(errMsg, "cannot be modified"),
		strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid id"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
