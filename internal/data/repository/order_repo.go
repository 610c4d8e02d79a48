package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrOrderNotFound = fmt.Errorf("order not found")

type OrderRepository interface {
	Create(ctx context.Context, customerID int64) (*entity.Order, error)
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.OrderWithCustomer, error)
	FindAllWithCustomer(ctx context.Context, status *string, limit, offset int) ([]*entity.OrderWithCustomer, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
	RecomputeTotal(ctx context.Context, id int64) error

	// Dashboard queries
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)
	SumCompletedRevenue(ctx context.Context) (float64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// Create opens a pending order with zero total
func (r *orderRepository) Create(ctx context.Context, customerID int64) (*entity.Order, error) {
	query := `
		INSERT INTO orders (customer_id, status, total_amount)
		VALUES ($1, 'pending', 0)
		RETURNING order_id, order_date, last_update
	`

	order := entity.Order{
		CustomerID:  customerID,
		Status:      entity.OrderStatusPending,
		TotalAmount: 0,
	}

	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&order.ID,
		&order.OrderDate,
		&order.LastUpdate,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
		)
		return nil, fmt.Errorf("create order for customer %d: %w", customerID, err)
	}

	return &order, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT order_id, customer_id, status, total_amount, order_date, last_update
		FROM orders
		WHERE order_id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.Status,
		&order.TotalAmount,
		&order.OrderDate,
		&order.LastUpdate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return &order, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.OrderWithCustomer, error) {
	query := `
		SELECT o.order_id, o.customer_id, o.status, o.total_amount, o.order_date, o.last_update,
		       c.name AS customer_name, c.email AS customer_email
		FROM orders o
		JOIN customer c ON o.customer_id = c.customer_id
		WHERE o.customer_id = $1
		ORDER BY o.order_date DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to list orders by customer",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
		)
		return nil, fmt.Errorf("find orders for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	return scanOrdersWithCustomer(rows, r.log)
}

// FindAllWithCustomer is the admin listing: optional status filter plus
// limit/offset paging
func (r *orderRepository) FindAllWithCustomer(ctx context.Context, status *string, limit, offset int) ([]*entity.OrderWithCustomer, error) {
	query := `
		SELECT o.order_id, o.customer_id, o.status, o.total_amount, o.order_date, o.last_update,
		       c.name AS customer_name, c.email AS customer_email
		FROM orders o
		JOIN customer c ON o.customer_id = c.customer_id
	`
	var args []any

	if status != nil {
		query += ` WHERE o.status = $1`
		args = append(args, *status)
	}

	query += fmt.Sprintf(` ORDER BY o.order_date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all orders limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return scanOrdersWithCustomer(rows, r.log)
}

func scanOrdersWithCustomer(rows pgx.Rows, log *zap.Logger) ([]*entity.OrderWithCustomer, error) {
	var orders []*entity.OrderWithCustomer
	for rows.Next() {
		var order entity.OrderWithCustomer
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.Status,
			&order.TotalAmount,
			&order.OrderDate,
			&order.LastUpdate,
			&order.CustomerName,
			&order.CustomerEmail,
		)
		if err != nil {
			log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus sets the status unconditionally; zero affected rows means the
// order does not exist
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, last_update = NOW()
		WHERE order_id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// RecomputeTotal rewrites total_amount as the sum of the persisted line item
// subtotals. Read-then-write against current state, never an in-memory
// increment, so retried inserts cannot double-count.
func (r *orderRepository) RecomputeTotal(ctx context.Context, id int64) error {
	query := `
		UPDATE orders
		SET total_amount = COALESCE(
		        (SELECT SUM(subtotal) FROM order_detail WHERE order_id = $1), 0),
		    last_update = NOW()
		WHERE order_id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to recompute order total",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return fmt.Errorf("recompute total for order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count orders with status %s: %w", string(status), err)
	}

	return count, nil
}

func (r *orderRepository) SumCompletedRevenue(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = 'completed'`

	var total float64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to sum completed revenue", zap.Error(err))
		return 0, fmt.Errorf("sum completed revenue: %w", err)
	}

	return total, nil
}
