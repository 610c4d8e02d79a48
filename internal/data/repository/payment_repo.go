package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	FindByOrderID(ctx context.Context, orderID int64) (*entity.Payment, error)

	// CreateCompleting inserts the payment and flips the order to completed
	// in one transaction
	CreateCompleting(ctx context.Context, payment *entity.Payment) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) (*entity.Payment, error) {
	query := `
		SELECT payment_id, order_id, amount, payment_method, status, transaction_id, payment_date
		FROM payment
		WHERE order_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.PaymentDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by order ID",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find payment for order %d: %w", orderID, err)
	}

	return &payment, nil
}

// CreateCompleting writes the payment row and the order status flip as a
// unit: either the payment exists and the order is completed, or neither.
func (r *paymentRepository) CreateCompleting(ctx context.Context, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin payment transaction",
			zap.Error(err),
			zap.Int64("order_id", payment.OrderID),
		)
		return fmt.Errorf("begin payment tx for order %d: %w", payment.OrderID, err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO payment (order_id, amount, payment_method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id, payment_date
	`

	err = tx.QueryRow(ctx, insertQuery,
		payment.OrderID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
	).Scan(&payment.ID, &payment.PaymentDate)

	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.Int64("order_id", payment.OrderID),
		)
		return fmt.Errorf("create payment for order %d: %w", payment.OrderID, err)
	}

	completeQuery := `
		UPDATE orders
		SET status = 'completed', last_update = NOW()
		WHERE order_id = $1
	`

	result, err := tx.Exec(ctx, completeQuery, payment.OrderID)
	if err != nil {
		r.log.Error("Failed to complete order for payment",
			zap.Error(err),
			zap.Int64("order_id", payment.OrderID),
		)
		return fmt.Errorf("complete order %d: %w", payment.OrderID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit payment transaction",
			zap.Error(err),
			zap.Int64("order_id", payment.OrderID),
		)
		return fmt.Errorf("commit payment tx for order %d: %w", payment.OrderID, err)
	}

	return nil
}
