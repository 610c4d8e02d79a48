package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT category_id, name, description
		FROM category
		ORDER BY category_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}
