package chunker

import "github.com/hangarline/fleetdocs/constants"

// Field names the extraction service may return. The consolidator merges on
// these same names, so chunker and consolidator must agree on them.
const (
	FieldVendorName    = "vendor_name"
	FieldInvoiceDate   = "invoice_date"
	FieldCurrencyCode  = "currency_code"
	FieldTotal         = "total"
	FieldLaborTotal    = "labor_total"
	FieldPartsTotal    = "parts_total"
	FieldServicesTotal = "services_total"
	FieldFreightTotal  = "freight_total"
	FieldTaxTotal      = "tax_total"
	FieldWorkOrder     = "work_order"
	FieldRegistration  = "vehicle_registration"
	FieldSerialNumber  = "serial_number"
	FieldParts         = "parts"
	FieldCategory      = "category"
	FieldDescription   = "description"
	FieldConfidence    = "confidence"
)

// expectedFields maps a section type to the machine-readable output fields
// the extraction adapter should request for chunks of that type.
func expectedFields(t constants.SectionType) []string {
	switch t {
	case constants.SectionHeader:
		return []string{FieldVendorName, FieldInvoiceDate, FieldCurrencyCode, FieldWorkOrder, FieldConfidence}
	case constants.SectionFinancialSummary:
		return []string{
			FieldVendorName, FieldCurrencyCode, FieldTotal,
			FieldLaborTotal, FieldPartsTotal, FieldServicesTotal, FieldFreightTotal, FieldTaxTotal,
			FieldConfidence,
		}
	case constants.SectionTotals:
		return []string{FieldTotal, FieldCurrencyCode, FieldTaxTotal, FieldConfidence}
	case constants.SectionLineItems:
		return []string{FieldParts, FieldPartsTotal, FieldConfidence}
	case constants.SectionMetadata:
		return []string{FieldWorkOrder, FieldRegistration, FieldSerialNumber, FieldInvoiceDate, FieldConfidence}
	default:
		return []string{FieldVendorName, FieldInvoiceDate, FieldTotal, FieldCategory, FieldDescription, FieldConfidence}
	}
}

// instructions returns the per-type processing instruction the adapter embeds
// in its prompt. Kept data-driven so no per-chunk hand-written logic exists.
func instructions(t constants.SectionType) string {
	switch t {
	case constants.SectionHeader:
		return "This is the letterhead/header region of a vehicle maintenance or expense invoice. " +
			"Identify the issuing vendor's business name exactly as printed, the invoice date (YYYY-MM-DD), " +
			"and the currency. Never invent a vendor name; omit the field if it is not visible."
	case constants.SectionFinancialSummary:
		return "This is the financial summary of an invoice. Extract the monetary breakdown: " +
			"labor, parts, services, freight/shipping and tax amounts, plus the invoice total. " +
			"Report numbers as plain decimals without currency symbols. Omit any amount not printed."
	case constants.SectionTotals:
		return "This region carries the invoice's final total. Extract the grand total and tax as decimals " +
			"and the 3-letter ISO 4217 currency code. Omit fields that are not printed."
	case constants.SectionLineItems:
		return "These are invoice line items. Extract each part as {number, description, quantity, unit_price}. " +
			"Sum extended prices into parts_total only when every line is legible; otherwise omit parts_total."
	case constants.SectionMetadata:
		return "This region carries document identifiers. Extract work order number, vehicle registration " +
			"(or tail number) and serial numbers exactly as printed."
	default:
		return "Extract any invoice fields visible in this text: vendor name, date, total, a short expense " +
			"category, and a one-line description. Omit anything not actually present."
	}
}
