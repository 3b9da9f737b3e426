package payments

// Payment mirrors the upstream payment entity.
type Payment struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	PaymentDate   string  `json:"payment_date"`
	TransactionID string  `json:"transaction_id"`
	Notes         string  `json:"notes"`
	InvoiceType   string  `json:"invoice_type"`
	InvoiceID     int64   `json:"invoice_id"`
}

// Stats feeds the dashboard cards above the payment table.
type Stats struct {
	Total     int    `json:"total"`
	Confirmed int    `json:"confirmed"`
	Pending   int    `json:"pending"`
	AmountSum string `json:"amount_sum"`
}
