package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRecord is a validated vehicle-maintenance invoice.
type MaintenanceRecord struct {
	ID                  uuid.UUID  `json:"id"`
	ProfileID           uuid.UUID  `json:"profile_id"`
	DocumentID          uuid.UUID  `json:"document_id"`
	VendorName          string     `json:"vendor_name"`
	InvoiceDate         *time.Time `json:"invoice_date,omitempty"`
	CurrencyCode        string     `json:"currency_code"`
	Total               float64    `json:"total"`
	LaborTotal          float64    `json:"labor_total"`
	PartsTotal          float64    `json:"parts_total"`
	ServicesTotal       float64    `json:"services_total"`
	FreightTotal        float64    `json:"freight_total"`
	TaxTotal            float64    `json:"tax_total"`
	WorkOrder           string     `json:"work_order,omitempty"`
	VehicleRegistration string     `json:"vehicle_registration,omitempty"`
	SerialNumber        string     `json:"serial_number,omitempty"`
	Parts               []Part     `json:"parts,omitempty"`
	Flags               []string   `json:"flags,omitempty"`
	ExtractedByOCR      bool       `json:"extracted_by_ocr"`
	Confidence          float32    `json:"confidence"`
	NeedsReview         bool       `json:"needs_review"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ExpenseRecord is a validated general expense receipt.
type ExpenseRecord struct {
	ID             uuid.UUID  `json:"id"`
	ProfileID      uuid.UUID  `json:"profile_id"`
	DocumentID     uuid.UUID  `json:"document_id"`
	VendorName     string     `json:"vendor_name"`
	ExpenseDate    *time.Time `json:"expense_date,omitempty"`
	CurrencyCode   string     `json:"currency_code"`
	Total          float64    `json:"total"`
	TaxTotal       float64    `json:"tax_total"`
	Category       string     `json:"category"`
	Description    string     `json:"description,omitempty"`
	Flags          []string   `json:"flags,omitempty"`
	ExtractedByOCR bool       `json:"extracted_by_ocr"`
	Confidence     float32    `json:"confidence"`
	NeedsReview    bool       `json:"needs_review"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
