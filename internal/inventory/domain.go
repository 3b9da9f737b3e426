package inventory

// Movement mirrors one upstream stock movement row.
type Movement struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Product   string `json:"product"`
	Direction string `json:"direction"`
	Quantity  int    `json:"quantity"`
	Reference string `json:"reference"`
	MovedAt   string `json:"moved_at"`
}

// Totals feeds the in/out stat cards above the movement ledger.
type Totals struct {
	In  int `json:"in"`
	Out int `json:"out"`
}
