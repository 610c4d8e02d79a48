package response

type CategoryResponse struct {
	CategoryID  int64             `json:"category_id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Links       map[string]string `json:"links,omitempty"`
}

type MenuResponse struct {
	MenuID       int64             `json:"menu_id"`
	Name         string            `json:"name"`
	Description  *string           `json:"description"`
	Price        float64           `json:"price"`
	ImageURL     *string           `json:"image_url"`
	CategoryID   int64             `json:"category_id"`
	CategoryName string            `json:"category_name"`
	Links        map[string]string `json:"links,omitempty"`
}
