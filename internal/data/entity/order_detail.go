package entity

// OrderDetail price is a snapshot of the menu price at insertion time,
// not a live join; subtotal = price * quantity.
type OrderDetail struct {
	ID       int64   `db:"order_detail_id"`
	OrderID  int64   `db:"order_id"`
	MenuID   int64   `db:"menu_id"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`
	Subtotal float64 `db:"subtotal"`
}

// OrderDetailWithMenu carries joined menu columns for order detail reads
type OrderDetailWithMenu struct {
	OrderDetail
	MenuName        string  `db:"menu_name"`
	MenuDescription *string `db:"description"`
	ImageURL        *string `db:"image_url"`
}
