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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard statistics retrieved", stats)
}

// GetCustomers handles GET /admin/customers
func (h *AdminHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.GetCustomers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved", customers)
}

// GetOrders handles GET /admin/orders?status=&limit=&offset=
func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	orders, err := h.service.GetOrders(r.Context(),
		query.Get("status"),
		query.Get("limit"),
		query.Get("offset"))
	if err != nil {
		h.handleServiceError(w, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", orders)
}

// UpdateOrderStatus handles PATCH /admin/orders/{order_id}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "order_id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", result)
}

// ClearCache handles DELETE /admin/cache?pattern=
func (h *AdminHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	removed := h.service.ClearCache(r.URL.Query().Get("pattern"))

	utils.ResponseSuccess(w, "Cache cleared", map[string]int{"removed": removed})
}

// handleServiceError maps service errors to HTTP status codes
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(errMsg, "invalid status"),
		strings.Contains(errMsg, "invalid id"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
