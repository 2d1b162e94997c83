package entity

// Part is one invoice line item as stored on a maintenance record.
type Part struct {
	Number      string  `json:"number,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
}
