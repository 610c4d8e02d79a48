package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	CountActive(ctx context.Context) (int64, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

// Create inserts a new customer and fills the generated id
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customer (name, email, phone, address, password, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING customer_id, last_update
	`

	err := r.db.QueryRow(ctx, query,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.PasswordHash,
	).Scan(&customer.ID, &customer.LastUpdate)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("email", customer.Email),
		)
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	customer.IsActive = true
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address, password, is_active, last_update
		FROM customer
		WHERE customer_id = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.PasswordHash,
		&customer.IsActive,
		&customer.LastUpdate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address, password, is_active, last_update
		FROM customer
		WHERE email = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.PasswordHash,
		&customer.IsActive,
		&customer.LastUpdate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return &customer, nil
}

// FindAll lists every customer, active or not, for admin oversight
func (r *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address, password, is_active, last_update
		FROM customer
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("find all customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&customer.Address,
			&customer.PasswordHash,
			&customer.IsActive,
			&customer.LastUpdate,
		)
		if err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM customer WHERE is_active = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return 0, fmt.Errorf("count active customers: %w", err)
	}

	return count, nil
}
