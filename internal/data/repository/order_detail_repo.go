package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

type OrderDetailRepository interface {
	Create(ctx context.Context, detail *entity.OrderDetail) error
	FindByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderDetailWithMenu, error)
}

type orderDetailRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderDetailRepository(db database.PgxIface, log *zap.Logger) OrderDetailRepository {
	return &orderDetailRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_detail")),
	}
}

// Create inserts a line item with its snapshotted price and fills the
// generated id
func (r *orderDetailRepository) Create(ctx context.Context, detail *entity.OrderDetail) error {
	query := `
		INSERT INTO order_detail (order_id, menu_id, quantity, price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_detail_id
	`

	err := r.db.QueryRow(ctx, query,
		detail.OrderID,
		detail.MenuID,
		detail.Quantity,
		detail.Price,
		detail.Subtotal,
	).Scan(&detail.ID)

	if err != nil {
		r.log.Error("Failed to create order detail",
			zap.Error(err),
			zap.Int64("order_id", detail.OrderID),
			zap.Int64("menu_id", detail.MenuID),
		)
		return fmt.Errorf("create order detail for order %d: %w", detail.OrderID, err)
	}

	return nil
}

func (r *orderDetailRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderDetailWithMenu, error) {
	query := `
		SELECT od.order_detail_id, od.order_id, od.menu_id, od.quantity, od.price, od.subtotal,
		       m.name AS menu_name, m.description, m.image_url
		FROM order_detail od
		JOIN menu m ON od.menu_id = m.menu_id
		WHERE od.order_id = $1
		ORDER BY od.order_detail_id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to list order details",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find details for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var details []*entity.OrderDetailWithMenu
	for rows.Next() {
		var detail entity.OrderDetailWithMenu
		err := rows.Scan(
			&detail.ID,
			&detail.OrderID,
			&detail.MenuID,
			&detail.Quantity,
			&detail.Price,
			&detail.Subtotal,
			&detail.MenuName,
			&detail.MenuDescription,
			&detail.ImageURL,
		)
		if err != nil {
			r.log.Error("Failed to scan order detail row", zap.Error(err))
			return nil, fmt.Errorf("scan order detail row: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order detail rows: %w", err)
	}

	return details, nil
}
