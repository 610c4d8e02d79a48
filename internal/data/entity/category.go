package entity

type Category struct {
	ID          int64   `db:"category_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}
