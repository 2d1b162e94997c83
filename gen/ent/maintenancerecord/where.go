// Code generated by ent, DO NOT EDIT.

package maintenancerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldProfileID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldDocumentID, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldVendorName, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldInvoiceDate, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldTotal, v))
}

// LaborTotal applies equality check predicate on the "labor_total" field. It's identical to LaborTotalEQ.
func LaborTotal(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldLaborTotal, v))
}

// PartsTotal applies equality check predicate on the "parts_total" field. It's identical to PartsTotalEQ.
func PartsTotal(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldPartsTotal, v))
}

// ServicesTotal applies equality check predicate on the "services_total" field. It's identical to ServicesTotalEQ.
func ServicesTotal(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldServicesTotal, v))
}

// FreightTotal applies equality check predicate on the "freight_total" field. It's identical to FreightTotalEQ.
func FreightTotal(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldFreightTotal, v))
}

// TaxTotal applies equality check predicate on the "tax_total" field. It's identical to TaxTotalEQ.
func TaxTotal(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldTaxTotal, v))
}

// WorkOrder applies equality check predicate on the "work_order" field. It's identical to WorkOrderEQ.
func WorkOrder(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldWorkOrder, v))
}

// VehicleRegistration applies equality check predicate on the "vehicle_registration" field. It's identical to VehicleRegistrationEQ.
func VehicleRegistration(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldVehicleRegistration, v))
}

// SerialNumber applies equality check predicate on the "serial_number" field. It's identical to SerialNumberEQ.
func SerialNumber(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldSerialNumber, v))
}

// ExtractedByOcr applies equality check predicate on the "extracted_by_ocr" field. It's identical to ExtractedByOcrEQ.
func ExtractedByOcr(v bool) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldExtractedByOcr, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldProfileID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContainsFold(FieldVendorName, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldInvoiceDate))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldTotal, v))
}

// LaborTotalEQ applies the EQ predicate on the "labor_total" field.
func LaborTotalEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldLaborTotal, v))
}

// LaborTotalNEQ applies the NEQ predicate on the "labor_total" field.
func LaborTotalNEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldLaborTotal, v))
}

// LaborTotalIn applies the In predicate on the "labor_total" field.
func LaborTotalIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldLaborTotal, vs...))
}

// LaborTotalNotIn applies the NotIn predicate on the "labor_total" field.
func LaborTotalNotIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldLaborTotal, vs...))
}

// LaborTotalGT applies the GT predicate on the "labor_total" field.
func LaborTotalGT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldLaborTotal, v))
}

// LaborTotalGTE applies the GTE predicate on the "labor_total" field.
func LaborTotalGTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldLaborTotal, v))
}

// LaborTotalLT applies the LT predicate on the "labor_total" field.
func LaborTotalLT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldLaborTotal, v))
}

// LaborTotalLTE applies the LTE predicate on the "labor_total" field.
func LaborTotalLTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldLaborTotal, v))
}

// PartsTotalEQ applies the EQ predicate on the "parts_total" field.
func PartsTotalEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldPartsTotal, v))
}

// PartsTotalNEQ applies the NEQ predicate on the "parts_total" field.
func PartsTotalNEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldPartsTotal, v))
}

// PartsTotalIn applies the In predicate on the "parts_total" field.
func PartsTotalIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldPartsTotal, vs...))
}

// PartsTotalNotIn applies the NotIn predicate on the "parts_total" field.
func PartsTotalNotIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldPartsTotal, vs...))
}

// PartsTotalGT applies the GT predicate on the "parts_total" field.
func PartsTotalGT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldPartsTotal, v))
}

// PartsTotalGTE applies the GTE predicate on the "parts_total" field.
func PartsTotalGTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldPartsTotal, v))
}

// PartsTotalLT applies the LT predicate on the "parts_total" field.
func PartsTotalLT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldPartsTotal, v))
}

// PartsTotalLTE applies the LTE predicate on the "parts_total" field.
func PartsTotalLTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldPartsTotal, v))
}

// ServicesTotalEQ applies the EQ predicate on the "services_total" field.
func ServicesTotalEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldServicesTotal, v))
}

// ServicesTotalNEQ applies the NEQ predicate on the "services_total" field.
func ServicesTotalNEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldServicesTotal, v))
}

// ServicesTotalIn applies the In predicate on the "services_total" field.
func ServicesTotalIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldServicesTotal, vs...))
}

// ServicesTotalNotIn applies the NotIn predicate on the "services_total" field.
func ServicesTotalNotIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldServicesTotal, vs...))
}

// ServicesTotalGT applies the GT predicate on the "services_total" field.
func ServicesTotalGT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldServicesTotal, v))
}

// ServicesTotalGTE applies the GTE predicate on the "services_total" field.
func ServicesTotalGTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldServicesTotal, v))
}

// ServicesTotalLT applies the LT predicate on the "services_total" field.
func ServicesTotalLT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldServicesTotal, v))
}

// ServicesTotalLTE applies the LTE predicate on the "services_total" field.
func ServicesTotalLTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldServicesTotal, v))
}

// FreightTotalEQ applies the EQ predicate on the "freight_total" field.
func FreightTotalEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldFreightTotal, v))
}

// FreightTotalNEQ applies the NEQ predicate on the "freight_total" field.
func FreightTotalNEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldFreightTotal, v))
}

// FreightTotalIn applies the In predicate on the "freight_total" field.
func FreightTotalIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldFreightTotal, vs...))
}

// FreightTotalNotIn applies the NotIn predicate on the "freight_total" field.
func FreightTotalNotIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldFreightTotal, vs...))
}

// FreightTotalGT applies the GT predicate on the "freight_total" field.
func FreightTotalGT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldFreightTotal, v))
}

// FreightTotalGTE applies the GTE predicate on the "freight_total" field.
func FreightTotalGTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldFreightTotal, v))
}

// FreightTotalLT applies the LT predicate on the "freight_total" field.
func FreightTotalLT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldFreightTotal, v))
}

// FreightTotalLTE applies the LTE predicate on the "freight_total" field.
func FreightTotalLTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldFreightTotal, v))
}

// TaxTotalEQ applies the EQ predicate on the "tax_total" field.
func TaxTotalEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldTaxTotal, v))
}

// TaxTotalNEQ applies the NEQ predicate on the "tax_total" field.
func TaxTotalNEQ(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldTaxTotal, v))
}

// TaxTotalIn applies the In predicate on the "tax_total" field.
func TaxTotalIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldTaxTotal, vs...))
}

// TaxTotalNotIn applies the NotIn predicate on the "tax_total" field.
func TaxTotalNotIn(vs ...float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldTaxTotal, vs...))
}

// TaxTotalGT applies the GT predicate on the "tax_total" field.
func TaxTotalGT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldTaxTotal, v))
}

// TaxTotalGTE applies the GTE predicate on the "tax_total" field.
func TaxTotalGTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldTaxTotal, v))
}

// TaxTotalLT applies the LT predicate on the "tax_total" field.
func TaxTotalLT(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldTaxTotal, v))
}

// TaxTotalLTE applies the LTE predicate on the "tax_total" field.
func TaxTotalLTE(v float64) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldTaxTotal, v))
}

// WorkOrderEQ applies the EQ predicate on the "work_order" field.
func WorkOrderEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldWorkOrder, v))
}

// WorkOrderNEQ applies the NEQ predicate on the "work_order" field.
func WorkOrderNEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldWorkOrder, v))
}

// WorkOrderIn applies the In predicate on the "work_order" field.
func WorkOrderIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldWorkOrder, vs...))
}

// WorkOrderNotIn applies the NotIn predicate on the "work_order" field.
func WorkOrderNotIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldWorkOrder, vs...))
}

// WorkOrderGT applies the GT predicate on the "work_order" field.
func WorkOrderGT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldWorkOrder, v))
}

// WorkOrderGTE applies the GTE predicate on the "work_order" field.
func WorkOrderGTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldWorkOrder, v))
}

// WorkOrderLT applies the LT predicate on the "work_order" field.
func WorkOrderLT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldWorkOrder, v))
}

// WorkOrderLTE applies the LTE predicate on the "work_order" field.
func WorkOrderLTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldWorkOrder, v))
}

// WorkOrderContains applies the Contains predicate on the "work_order" field.
func WorkOrderContains(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContains(FieldWorkOrder, v))
}

// WorkOrderHasPrefix applies the HasPrefix predicate on the "work_order" field.
func WorkOrderHasPrefix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasPrefix(FieldWorkOrder, v))
}

// WorkOrderHasSuffix applies the HasSuffix predicate on the "work_order" field.
func WorkOrderHasSuffix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasSuffix(FieldWorkOrder, v))
}

// WorkOrderIsNil applies the IsNil predicate on the "work_order" field.
func WorkOrderIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldWorkOrder))
}

// WorkOrderNotNil applies the NotNil predicate on the "work_order" field.
func WorkOrderNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldWorkOrder))
}

// WorkOrderEqualFold applies the EqualFold predicate on the "work_order" field.
func WorkOrderEqualFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEqualFold(FieldWorkOrder, v))
}

// WorkOrderContainsFold applies the ContainsFold predicate on the "work_order" field.
func WorkOrderContainsFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContainsFold(FieldWorkOrder, v))
}

// VehicleRegistrationEQ applies the EQ predicate on the "vehicle_registration" field.
func VehicleRegistrationEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldVehicleRegistration, v))
}

// VehicleRegistrationNEQ applies the NEQ predicate on the "vehicle_registration" field.
func VehicleRegistrationNEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldVehicleRegistration, v))
}

// VehicleRegistrationIn applies the In predicate on the "vehicle_registration" field.
func VehicleRegistrationIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldVehicleRegistration, vs...))
}

// VehicleRegistrationNotIn applies the NotIn predicate on the "vehicle_registration" field.
func VehicleRegistrationNotIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldVehicleRegistration, vs...))
}

// VehicleRegistrationGT applies the GT predicate on the "vehicle_registration" field.
func VehicleRegistrationGT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldVehicleRegistration, v))
}

// VehicleRegistrationGTE applies the GTE predicate on the "vehicle_registration" field.
func VehicleRegistrationGTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldVehicleRegistration, v))
}

// VehicleRegistrationLT applies the LT predicate on the "vehicle_registration" field.
func VehicleRegistrationLT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldVehicleRegistration, v))
}

// VehicleRegistrationLTE applies the LTE predicate on the "vehicle_registration" field.
func VehicleRegistrationLTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldVehicleRegistration, v))
}

// VehicleRegistrationContains applies the Contains predicate on the "vehicle_registration" field.
func VehicleRegistrationContains(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContains(FieldVehicleRegistration, v))
}

// VehicleRegistrationHasPrefix applies the HasPrefix predicate on the "vehicle_registration" field.
func VehicleRegistrationHasPrefix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasPrefix(FieldVehicleRegistration, v))
}

// VehicleRegistrationHasSuffix applies the HasSuffix predicate on the "vehicle_registration" field.
func VehicleRegistrationHasSuffix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasSuffix(FieldVehicleRegistration, v))
}

// VehicleRegistrationIsNil applies the IsNil predicate on the "vehicle_registration" field.
func VehicleRegistrationIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldVehicleRegistration))
}

// VehicleRegistrationNotNil applies the NotNil predicate on the "vehicle_registration" field.
func VehicleRegistrationNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldVehicleRegistration))
}

// VehicleRegistrationEqualFold applies the EqualFold predicate on the "vehicle_registration" field.
func VehicleRegistrationEqualFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEqualFold(FieldVehicleRegistration, v))
}

// VehicleRegistrationContainsFold applies the ContainsFold predicate on the "vehicle_registration" field.
func VehicleRegistrationContainsFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContainsFold(FieldVehicleRegistration, v))
}

// SerialNumberEQ applies the EQ predicate on the "serial_number" field.
func SerialNumberEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldSerialNumber, v))
}

// SerialNumberNEQ applies the NEQ predicate on the "serial_number" field.
func SerialNumberNEQ(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldSerialNumber, v))
}

// SerialNumberIn applies the In predicate on the "serial_number" field.
func SerialNumberIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldSerialNumber, vs...))
}

// SerialNumberNotIn applies the NotIn predicate on the "serial_number" field.
func SerialNumberNotIn(vs ...string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldSerialNumber, vs...))
}

// SerialNumberGT applies the GT predicate on the "serial_number" field.
func SerialNumberGT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldSerialNumber, v))
}

// SerialNumberGTE applies the GTE predicate on the "serial_number" field.
func SerialNumberGTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldSerialNumber, v))
}

// SerialNumberLT applies the LT predicate on the "serial_number" field.
func SerialNumberLT(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldSerialNumber, v))
}

// SerialNumberLTE applies the LTE predicate on the "serial_number" field.
func SerialNumberLTE(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldSerialNumber, v))
}

// SerialNumberContains applies the Contains predicate on the "serial_number" field.
func SerialNumberContains(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContains(FieldSerialNumber, v))
}

// SerialNumberHasPrefix applies the HasPrefix predicate on the "serial_number" field.
func SerialNumberHasPrefix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasPrefix(FieldSerialNumber, v))
}

// SerialNumberHasSuffix applies the HasSuffix predicate on the "serial_number" field.
func SerialNumberHasSuffix(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldHasSuffix(FieldSerialNumber, v))
}

// SerialNumberIsNil applies the IsNil predicate on the "serial_number" field.
func SerialNumberIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldSerialNumber))
}

// SerialNumberNotNil applies the NotNil predicate on the "serial_number" field.
func SerialNumberNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldSerialNumber))
}

// SerialNumberEqualFold applies the EqualFold predicate on the "serial_number" field.
func SerialNumberEqualFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEqualFold(FieldSerialNumber, v))
}

// SerialNumberContainsFold applies the ContainsFold predicate on the "serial_number" field.
func SerialNumberContainsFold(v string) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldContainsFold(FieldSerialNumber, v))
}

// PartsIsNil applies the IsNil predicate on the "parts" field.
func PartsIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldParts))
}

// PartsNotNil applies the NotNil predicate on the "parts" field.
func PartsNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldParts))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldFlags))
}

// ExtractedByOcrEQ applies the EQ predicate on the "extracted_by_ocr" field.
func ExtractedByOcrEQ(v bool) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldExtractedByOcr, v))
}

// ExtractedByOcrNEQ applies the NEQ predicate on the "extracted_by_ocr" field.
func ExtractedByOcrNEQ(v bool) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldExtractedByOcr, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotNull(FieldConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MaintenanceRecord) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MaintenanceRecord) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MaintenanceRecord) predicate.MaintenanceRecord {
	return predicate.MaintenanceRecord(sql.NotPredicates(p))
}
