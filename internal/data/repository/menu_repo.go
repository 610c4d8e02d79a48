package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuRepository interface {
	FindAll(ctx context.Context, categoryID *int64) ([]*entity.MenuWithCategory, error)
	FindByID(ctx context.Context, id int64) (*entity.MenuWithCategory, error)
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

// FindAll lists menus joined with their category name, optionally filtered
// by category
func (r *menuRepository) FindAll(ctx context.Context, categoryID *int64) ([]*entity.MenuWithCategory, error) {
	query := `
		SELECT m.menu_id, m.name, m.description, m.price, m.image_url, m.category_id,
		       c.name AS category_name
		FROM menu m
		JOIN category c ON m.category_id = c.category_id
	`
	var args []any

	if categoryID != nil {
		query += ` WHERE m.category_id = $1`
		args = append(args, *categoryID)
	}

	query += ` ORDER BY m.menu_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list menus", zap.Error(err))
		return nil, fmt.Errorf("find all menus: %w", err)
	}
	defer rows.Close()

	var menus []*entity.MenuWithCategory
	for rows.Next() {
		var menu entity.MenuWithCategory
		err := rows.Scan(
			&menu.ID,
			&menu.Name,
			&menu.Description,
			&menu.Price,
			&menu.ImageURL,
			&menu.CategoryID,
			&menu.CategoryName,
		)
		if err != nil {
			r.log.Error("Failed to scan menu row", zap.Error(err))
			return nil, fmt.Errorf("scan menu row: %w", err)
		}
		menus = append(menus, &menu)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate menu rows: %w", err)
	}

	return menus, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id int64) (*entity.MenuWithCategory, error) {
	query := `
		SELECT m.menu_id, m.name, m.description, m.price, m.image_url, m.category_id,
		       c.name AS category_name
		FROM menu m
		JOIN category c ON m.category_id = c.category_id
		WHERE m.menu_id = $1
	`

	var menu entity.MenuWithCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&menu.ID,
		&menu.Name,
		&menu.Description,
		&menu.Price,
		&menu.ImageURL,
		&menu.CategoryID,
		&menu.CategoryName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu by ID",
			zap.Error(err),
			zap.Int64("menu_id", id),
		)
		return nil, fmt.Errorf("find menu by ID %d: %w", id, err)
	}

	return &menu, nil
}
