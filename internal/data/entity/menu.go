package entity

type Menu struct {
	ID          int64   `db:"menu_id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	ImageURL    *string `db:"image_url"`
	CategoryID  int64   `db:"category_id"`
}

// MenuWithCategory carries the joined category name for catalog reads
type MenuWithCategory struct {
	Menu
	CategoryName string `db:"category_name"`
}
