package llm

import "context"

// Part is one invoice line item.
type Part struct {
	Number      string `json:"number,omitempty"`
	Description string `json:"description,omitempty"`
	Quantity    string `json:"quantity,omitempty"` // decimal
	UnitPrice   string `json:"unit_price,omitempty"`
}

// ChunkFields is the normalized shape we want from the extraction service
// for one chunk. Money values are decimal strings; absent fields are omitted,
// never null.
type ChunkFields struct {
	VendorName          string  `json:"vendor_name,omitempty"`
	InvoiceDate         string  `json:"invoice_date,omitempty"` // YYYY-MM-DD
	CurrencyCode        string  `json:"currency_code,omitempty"`
	Total               string  `json:"total,omitempty"`
	LaborTotal          string  `json:"labor_total,omitempty"`
	PartsTotal          string  `json:"parts_total,omitempty"`
	ServicesTotal       string  `json:"services_total,omitempty"`
	FreightTotal        string  `json:"freight_total,omitempty"`
	TaxTotal            string  `json:"tax_total,omitempty"`
	WorkOrder           string  `json:"work_order,omitempty"`
	VehicleRegistration string  `json:"vehicle_registration,omitempty"`
	SerialNumber        string  `json:"serial_number,omitempty"`
	Parts               []Part  `json:"parts,omitempty"`
	Category            string  `json:"category,omitempty"`
	Description         string  `json:"description,omitempty"`
	ModelConfidence     float32 `json:"confidence,omitempty"` // 0..1
}

// ChunkRequest is the fixed request contract toward the extraction service.
type ChunkRequest struct {
	ChunkText              string
	ProcessingInstructions string
	ExpectedOutputFields   []string
	OutputFormat           string // always "json"
}

// Extractor is the interface the pipeline depends on.
type Extractor interface {
	ExtractChunk(ctx context.Context, req ChunkRequest) (ChunkFields, []byte /*rawJSON*/, error)
}
