package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Admin, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Admin, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) FindByID(ctx context.Context, id int64) (*entity.Admin, error) {
	query := `
		SELECT admin_id, username, email, name, password, role, is_active, created_at, last_update
		FROM admin
		WHERE admin_id = $1
	`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.Role,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.LastUpdate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by ID",
			zap.Error(err),
			zap.Int64("admin_id", id),
		)
		return nil, fmt.Errorf("find admin by ID %d: %w", id, err)
	}

	return &admin, nil
}

// FindByUsernameOrEmail matches the identifier against both columns,
// mirroring the admin login contract
func (r *adminRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.Admin, error) {
	query := `
		SELECT admin_id, username, email, name, password, role, is_active, created_at, last_update
		FROM admin
		WHERE username = $1 OR email = $1
	`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.Role,
		&admin.IsActive,
		&admin.CreatedAt,
		&admin.LastUpdate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin",
			zap.Error(err),
			zap.String("identifier", identifier),
		)
		return nil, fmt.Errorf("find admin %s: %w", identifier, err)
	}

	return &admin, nil
}
