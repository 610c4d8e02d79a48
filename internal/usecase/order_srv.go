package usecase

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/cache"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService owns the order lifecycle:
//
//	pending --[add item]--> pending (total recomputed)
//	pending --[record payment]--> completed (payment attached atomically)
//	pending --[admin status update]--> processing | completed | cancelled
//
// Item addition is gated on pending status; admin status updates are gated on
// enum membership only.
type OrderService interface {
	CreateOrder(ctx context.Context, claims *utils.Claims) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, claims *utils.Claims, customerIDRaw string) ([]*response.OrderResponse, error)
	GetOrderByID(ctx context.Context, claims *utils.Claims, idRaw string) (*response.OrderDetailResponse, error)
	AddItem(ctx context.Context, claims *utils.Claims, req *request.AddOrderItemRequest) (*response.OrderItemResponse, error)
	RecordPayment(ctx context.Context, claims *utils.Claims, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	GetPaymentByOrder(ctx context.Context, claims *utils.Claims, orderIDRaw string) (*response.PaymentResponse, error)
}

type orderService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewOrderService(repo *repository.Repository, store *cache.Cache, log *zap.Logger) OrderService {
	return &orderService{
		repo:  repo,
		cache: store,
		log:   log.With(zap.String("service", "order")),
	}
}

// CreateOrder opens a pending order for the authenticated customer. The owner
// comes from the verified token, so no existence check is needed.
func (s *orderService) CreateOrder(ctx context.Context, claims *utils.Claims) (*response.OrderResponse, error) {
	order, err := s.repo.Order.Create(ctx, claims.UserID)
	if err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.Int64("customer_id", claims.UserID))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.cache.DeletePattern("orders")

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", claims.UserID))

	return s.convertOrder(order, false), nil
}

func (s *orderService) GetOrders(ctx context.Context, claims *utils.Claims, customerIDRaw string) ([]*response.OrderResponse, error) {
	if customerIDRaw == "" {
		return nil, fmt.Errorf("validation failed: customer_id is required")
	}

	customerID, err := utils.ParseID(customerIDRaw)
	if err != nil {
		return nil, fmt.Errorf("Invalid id format")
	}

	// Ownership is checked again here even though the route guard already
	// ran; the guard skips when it cannot resolve an owner id
	if claims.UserType == utils.UserTypeCustomer && customerID != claims.UserID {
		return nil, fmt.Errorf("Access denied. You can only access your own data.")
	}

	orders, err := s.repo.Order.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	result := make([]*response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp := s.convertOrder(&order.Order, false)
		resp.CustomerName = order.CustomerName
		resp.CustomerEmail = order.CustomerEmail
		result = append(result, resp)
	}

	return result, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, claims *utils.Claims, idRaw string) (*response.OrderDetailResponse, error) {
	id, err := utils.ParseID(idRaw)
	if err != nil {
		return nil, fmt.Errorf("Invalid id format")
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", id, err)
	}
	if order == nil {
		return nil, fmt.Errorf("Order not found")
	}

	if claims.UserType == utils.UserTypeCustomer && order.CustomerID != claims.UserID {
		s.log.Warn("Order access denied",
			zap.Int64("order_id", id),
			zap.Int64("caller", claims.UserID))
		return nil, fmt.Errorf("Access denied. You can only access your own data.")
	}

	customer, err := s.repo.Customer.FindByID(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load order customer: %w", err)
	}

	details, err := s.repo.OrderDetail.FindByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	payment, err := s.repo.Payment.FindByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order payment: %w", err)
	}

	items := make([]*response.OrderItemResponse, 0, len(details))
	for _, detail := range details {
		items = append(items, &response.OrderItemResponse{
			OrderDetailID:   detail.ID,
			OrderID:         detail.OrderID,
			MenuID:          detail.MenuID,
			MenuName:        detail.MenuName,
			MenuDescription: detail.MenuDescription,
			ImageURL:        detail.ImageURL,
			Quantity:        detail.Quantity,
			Price:           detail.Price,
			Subtotal:        detail.Subtotal,
		})
	}

	result := &response.OrderDetailResponse{
		OrderResponse: *s.convertOrder(order, payment != nil),
		Items:         items,
	}

	if customer != nil {
		result.CustomerName = customer.Name
		result.CustomerEmail = customer.Email
		result.CustomerPhone = customer.Phone
		result.CustomerAddress = customer.Address
	}

	if payment != nil {
		result.Payment = s.convertPayment(payment)
	}

	return result, nil
}

// AddItem attaches a line item to a pending order. The menu price is
// snapshotted at insertion time and the order total is recomputed from the
// persisted line items afterwards.
func (s *orderService) AddItem(ctx context.Context, claims *utils.Claims, req *request.AddOrderItemRequest) (*response.OrderItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", req.OrderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("Order not found")
	}

	if claims.UserType == utils.UserTypeCustomer && order.CustomerID != claims.UserID {
		s.log.Warn("Add item denied",
			zap.Int64("order_id", req.OrderID),
			zap.Int64("caller", claims.UserID))
		return nil, fmt.Errorf("Access denied. You can only access your own data.")
	}

	if order.Status != entity.OrderStatusPending {
		return nil, fmt.Errorf("Order cannot be modified in %s status", order.Status)
	}

	menu, err := s.repo.Menu.FindByID(ctx, req.MenuID)
	if err != nil {
		return nil, fmt.Errorf("load menu %d: %w", req.MenuID, err)
	}
	if menu == nil {
		return nil, fmt.Errorf("Menu not found")
	}

	// Snapshot the current menu price; later price changes do not touch
	// existing line items
	detail := &entity.OrderDetail{
		OrderID:  req.OrderID,
		MenuID:   req.MenuID,
		Quantity: req.Quantity,
		Price:    menu.Price,
		Subtotal: menu.Price * float64(req.Quantity),
	}

	if err := s.repo.OrderDetail.Create(ctx, detail); err != nil {
		return nil, fmt.Errorf("insert order item: %w", err)
	}

	// The recompute reads the persisted rows back, so a failure here leaves
	// the inserted item in place with a stale total. Surfaced, not rolled
	// back, matching the upstream behavior.
	if err := s.repo.Order.RecomputeTotal(ctx, req.OrderID); err != nil {
		s.log.Error("Total recompute failed after item insert",
			zap.Error(err),
			zap.Int64("order_id", req.OrderID),
			zap.Int64("order_detail_id", detail.ID))
		return nil, fmt.Errorf("recompute order total: %w", err)
	}

	s.cache.DeletePattern("orders")

	s.log.Info("Order item added",
		zap.Int64("order_id", req.OrderID),
		zap.Int64("menu_id", req.MenuID),
		zap.Int("quantity", req.Quantity),
		zap.Float64("subtotal", detail.Subtotal))

	return &response.OrderItemResponse{
		OrderDetailID: detail.ID,
		OrderID:       detail.OrderID,
		MenuID:        detail.MenuID,
		MenuName:      menu.Name,
		Quantity:      detail.Quantity,
		Price:         detail.Price,
		Subtotal:      detail.Subtotal,
	}, nil
}

// RecordPayment charges the stored order total, never a client-supplied
// amount, and completes the order atomically with the payment insert.
func (s *orderService) RecordPayment(ctx context.Context, claims *utils.Claims, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", req.OrderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("Order not found")
	}

	if claims.UserType == utils.UserTypeCustomer && order.CustomerID != claims.UserID {
		s.log.Warn("Payment denied",
			zap.Int64("order_id", req.OrderID),
			zap.Int64("caller", claims.UserID))
		return nil, fmt.Errorf("Access denied. You can only access your own data.")
	}

	existing, err := s.repo.Payment.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("Payment for this order already exists")
	}

	payment := &entity.Payment{
		OrderID:       req.OrderID,
		Amount:        order.TotalAmount,
		Method:        req.PaymentMethod,
		Status:        entity.PaymentStatusCompleted,
		TransactionID: uuid.NewString(),
	}

	if err := s.repo.Payment.CreateCompleting(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.cache.DeletePattern("orders")

	s.log.Info("Payment recorded",
		zap.Int64("order_id", req.OrderID),
		zap.Int64("payment_id", payment.ID),
		zap.Float64("amount", payment.Amount),
		zap.String("transaction_id", payment.TransactionID))

	return s.convertPayment(payment), nil
}

func (s *orderService) GetPaymentByOrder(ctx context.Context, claims *utils.Claims, orderIDRaw string) (*response.PaymentResponse, error) {
	orderID, err := utils.ParseID(orderIDRaw)
	if err != nil {
		return nil, fmt.Errorf("Invalid id format")
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("Order not found")
	}

	if claims.UserType == utils.UserTypeCustomer && order.CustomerID != claims.UserID {
		return nil, fmt.Errorf("Access denied. You can only access your own data.")
	}

	payment, err := s.repo.Payment.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("Payment not found for this order")
	}

	return s.convertPayment(payment), nil
}

// ==================== HELPER METHODS ====================

func (s *orderService) convertOrder(order *entity.Order, hasPayment bool) *response.OrderResponse {
	return &response.OrderResponse{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OrderDate:   order.OrderDate,
		LastUpdate:  order.LastUpdate,
		Links:       utils.OrderLinks(order.ID, string(order.Status), hasPayment),
	}
}

func (s *orderService) convertPayment(payment *entity.Payment) *response.PaymentResponse {
	return &response.PaymentResponse{
		PaymentID:     payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		PaymentMethod: payment.Method,
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		Links:         utils.PaymentLinks(payment.OrderID),
	}
}
