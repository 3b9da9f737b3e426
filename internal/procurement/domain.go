package procurement

// Supplier mirrors the upstream supplier entity.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Active  bool   `json:"active"`
}

// OrderLine is one requested item on a purchase order.
type OrderLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a purchase order sent to a supplier.
type Order struct {
	SupplierID  int64       `json:"supplier_id"`
	ExpectedAt  string      `json:"expected_at"`
	Notes       string      `json:"notes"`
	Lines       []OrderLine `json:"lines"`
	TotalAmount float64     `json:"total_amount"`
}
