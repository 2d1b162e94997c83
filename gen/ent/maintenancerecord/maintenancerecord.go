// Code generated by ent, DO NOT EDIT.

package maintenancerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the maintenancerecord type in the database.
	Label = "maintenance_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldInvoiceDate holds the string denoting the invoice_date field in the database.
	FieldInvoiceDate = "invoice_date"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldLaborTotal holds the string denoting the labor_total field in the database.
	FieldLaborTotal = "labor_total"
	// FieldPartsTotal holds the string denoting the parts_total field in the database.
	FieldPartsTotal = "parts_total"
	// FieldServicesTotal holds the string denoting the services_total field in the database.
	FieldServicesTotal = "services_total"
	// FieldFreightTotal holds the string denoting the freight_total field in the database.
	FieldFreightTotal = "freight_total"
	// FieldTaxTotal holds the string denoting the tax_total field in the database.
	FieldTaxTotal = "tax_total"
	// FieldWorkOrder holds the string denoting the work_order field in the database.
	FieldWorkOrder = "work_order"
	// FieldVehicleRegistration holds the string denoting the vehicle_registration field in the database.
	FieldVehicleRegistration = "vehicle_registration"
	// FieldSerialNumber holds the string denoting the serial_number field in the database.
	FieldSerialNumber = "serial_number"
	// FieldParts holds the string denoting the parts field in the database.
	FieldParts = "parts"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldExtractedByOcr holds the string denoting the extracted_by_ocr field in the database.
	FieldExtractedByOcr = "extracted_by_ocr"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the maintenancerecord in the database.
	Table = "maintenance_records"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "maintenance_records"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "maintenance_records"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for maintenancerecord fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldDocumentID,
	FieldVendorName,
	FieldInvoiceDate,
	FieldCurrencyCode,
	FieldTotal,
	FieldLaborTotal,
	FieldPartsTotal,
	FieldServicesTotal,
	FieldFreightTotal,
	FieldTaxTotal,
	FieldWorkOrder,
	FieldVehicleRegistration,
	FieldSerialNumber,
	FieldParts,
	FieldFlags,
	FieldExtractedByOcr,
	FieldConfidence,
	FieldNeedsReview,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	VendorNameValidator func(string) error
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// DefaultLaborTotal holds the default value on creation for the "labor_total" field.
	DefaultLaborTotal float64
	// DefaultPartsTotal holds the default value on creation for the "parts_total" field.
	DefaultPartsTotal float64
	// DefaultServicesTotal holds the default value on creation for the "services_total" field.
	DefaultServicesTotal float64
	// DefaultFreightTotal holds the default value on creation for the "freight_total" field.
	DefaultFreightTotal float64
	// DefaultTaxTotal holds the default value on creation for the "tax_total" field.
	DefaultTaxTotal float64
	// DefaultExtractedByOcr holds the default value on creation for the "extracted_by_ocr" field.
	DefaultExtractedByOcr bool
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MaintenanceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByInvoiceDate orders the results by the invoice_date field.
func ByInvoiceDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceDate, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByLaborTotal orders the results by the labor_total field.
func ByLaborTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaborTotal, opts...).ToFunc()
}

// ByPartsTotal orders the results by the parts_total field.
func ByPartsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartsTotal, opts...).ToFunc()
}

// ByServicesTotal orders the results by the services_total field.
func ByServicesTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServicesTotal, opts...).ToFunc()
}

// ByFreightTotal orders the results by the freight_total field.
func ByFreightTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreightTotal, opts...).ToFunc()
}

// ByTaxTotal orders the results by the tax_total field.
func ByTaxTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxTotal, opts...).ToFunc()
}

// ByWorkOrder orders the results by the work_order field.
func ByWorkOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkOrder, opts...).ToFunc()
}

// ByVehicleRegistration orders the results by the vehicle_registration field.
func ByVehicleRegistration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleRegistration, opts...).ToFunc()
}

// BySerialNumber orders the results by the serial_number field.
func BySerialNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerialNumber, opts...).ToFunc()
}

// ByExtractedByOcr orders the results by the extracted_by_ocr field.
func ByExtractedByOcr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedByOcr, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
