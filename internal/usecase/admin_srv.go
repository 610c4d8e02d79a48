package usecase

import (
	"context"
	"errors"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/cache"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	GetCustomers(ctx context.Context) ([]*response.AdminCustomerResponse, error)
	GetOrders(ctx context.Context, statusRaw, limitRaw, offsetRaw string) ([]*response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, orderIDRaw string, req *request.UpdateOrderStatusRequest) (*response.StatusUpdateResponse, error)
	ClearCache(pattern string) int
}

type adminService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewAdminService(repo *repository.Repository, store *cache.Cache, log *zap.Logger) AdminService {
	return &adminService{
		repo:  repo,
		cache: store,
		log:   log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	customers, err := s.repo.Customer.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	orders, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	revenue, err := s.repo.Order.SumCompletedRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	pending, err := s.repo.Order.CountByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}

	return &response.DashboardResponse{
		TotalCustomers: customers,
		TotalOrders:    orders,
		TotalRevenue:   revenue,
		PendingOrders:  pending,
	}, nil
}

func (s *adminService) GetCustomers(ctx context.Context) ([]*response.AdminCustomerResponse, error) {
	customers, err := s.repo.Customer.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	result := make([]*response.AdminCustomerResponse, 0, len(customers))
	for _, customer := range customers {
		result = append(result, &response.AdminCustomerResponse{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Email:      customer.Email,
			Phone:      customer.Phone,
			Address:    customer.Address,
			IsActive:   customer.IsActive,
			LastUpdate: customer.LastUpdate,
		})
	}

	return result, nil
}

// GetOrders lists all orders with customer info, optionally filtered by
// status. Paging defaults to the first 50 rows.
func (s *adminService) GetOrders(ctx context.Context, statusRaw, limitRaw, offsetRaw string) ([]*response.OrderResponse, error) {
	var status *string
	if statusRaw != "" {
		if !entity.ValidOrderStatus(statusRaw) {
			return nil, fmt.Errorf("Invalid status. Must be one of: pending, processing, completed, cancelled")
		}
		status = &statusRaw
	}

	limit := utils.ParseInt(limitRaw, 50)
	offset := utils.ParseInt(offsetRaw, 0)

	orders, err := s.repo.Order.FindAllWithCustomer(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	result := make([]*response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, &response.OrderResponse{
			OrderID:       order.ID,
			CustomerID:    order.CustomerID,
			Status:        string(order.Status),
			TotalAmount:   order.TotalAmount,
			OrderDate:     order.OrderDate,
			LastUpdate:    order.LastUpdate,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			Links:         utils.OrderLinks(order.ID, string(order.Status), false),
		})
	}

	return result, nil
}

// UpdateOrderStatus moves an order to any member of the status enum. No
// transition rules beyond membership.
func (s *adminService) UpdateOrderStatus(ctx context.Context, orderIDRaw string, req *request.UpdateOrderStatusRequest) (*response.StatusUpdateResponse, error) {
	orderID, err := utils.ParseID(orderIDRaw)
	if err != nil {
		return nil, fmt.Errorf("Invalid id format")
	}

	if !entity.ValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("Invalid status. Must be one of: pending, processing, completed, cancelled")
	}

	err = s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatus(req.Status))
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, fmt.Errorf("Order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.cache.DeletePattern("orders")

	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", req.Status))

	return &response.StatusUpdateResponse{
		OrderID:   orderID,
		NewStatus: req.Status,
	}, nil
}

// ClearCache drops cached responses whose key contains pattern, or every
// entry when pattern is empty. Returns how many entries were removed.
func (s *adminService) ClearCache(pattern string) int {
	if pattern == "" {
		removed := s.cache.Len()
		s.cache.Flush()
		s.log.Info("Cache flushed", zap.Int("removed", removed))
		return removed
	}

	removed := s.cache.DeletePattern(pattern)
	s.log.Info("Cache entries invalidated",
		zap.String("pattern", pattern),
		zap.Int("removed", removed))
	return removed
}
