package categories

// Category mirrors the upstream product category entity.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	Products    int    `json:"products"`
}
