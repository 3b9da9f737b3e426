package invoices

// CustomerInvoice mirrors the upstream customer invoice entity.
type CustomerInvoice struct {
	ID          int64   `json:"id"`
	Number      string  `json:"number"`
	CustomerID  int64   `json:"customer_id"`
	Customer    string  `json:"customer"`
	Status      string  `json:"status"`
	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`
	IssuedAt    string  `json:"issued_at"`
	DueAt       string  `json:"due_at"`
}

// SupplierInvoice mirrors the upstream supplier invoice entity.
type SupplierInvoice struct {
	ID              int64   `json:"id"`
	Number          string  `json:"number"`
	SupplierID      int64   `json:"supplier_id"`
	Supplier        string  `json:"supplier"`
	SupplierOrderID int64   `json:"supplier_order_id"`
	Status          string  `json:"status"`
	Subtotal        float64 `json:"subtotal"`
	TaxAmount       float64 `json:"tax_amount"`
	TotalAmount     float64 `json:"total_amount"`
	IssuedAt        string  `json:"issued_at"`
}
