// Code generated by ent, DO NOT EDIT.

package expenserecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldProfileID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldDocumentID, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldVendorName, v))
}

// ExpenseDate applies equality check predicate on the "expense_date" field. It's identical to ExpenseDateEQ.
func ExpenseDate(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldExpenseDate, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldTotal, v))
}

// TaxTotal applies equality check predicate on the "tax_total" field. It's identical to TaxTotalEQ.
func TaxTotal(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldTaxTotal, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldCategory, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldDescription, v))
}

// ExtractedByOcr applies equality check predicate on the "extracted_by_ocr" field. It's identical to ExtractedByOcrEQ.
func ExtractedByOcr(v bool) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldExtractedByOcr, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldNeedsReview, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldProfileID, vs...))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContainsFold(FieldVendorName, v))
}

// ExpenseDateEQ applies the EQ predicate on the "expense_date" field.
func ExpenseDateEQ(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldExpenseDate, v))
}

// ExpenseDateNEQ applies the NEQ predicate on the "expense_date" field.
func ExpenseDateNEQ(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldExpenseDate, v))
}

// ExpenseDateIn applies the In predicate on the "expense_date" field.
func ExpenseDateIn(vs ...time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldExpenseDate, vs...))
}

// ExpenseDateNotIn applies the NotIn predicate on the "expense_date" field.
func ExpenseDateNotIn(vs ...time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldExpenseDate, vs...))
}

// ExpenseDateGT applies the GT predicate on the "expense_date" field.
func ExpenseDateGT(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldExpenseDate, v))
}

// ExpenseDateGTE applies the GTE predicate on the "expense_date" field.
func ExpenseDateGTE(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldExpenseDate, v))
}

// ExpenseDateLT applies the LT predicate on the "expense_date" field.
func ExpenseDateLT(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldExpenseDate, v))
}

// ExpenseDateLTE applies the LTE predicate on the "expense_date" field.
func ExpenseDateLTE(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldExpenseDate, v))
}

// ExpenseDateIsNil applies the IsNil predicate on the "expense_date" field.
func ExpenseDateIsNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIsNull(FieldExpenseDate))
}

// ExpenseDateNotNil applies the NotNil predicate on the "expense_date" field.
func ExpenseDateNotNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotNull(FieldExpenseDate))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldTotal, v))
}

// TaxTotalEQ applies the EQ predicate on the "tax_total" field.
func TaxTotalEQ(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldTaxTotal, v))
}

// TaxTotalNEQ applies the NEQ predicate on the "tax_total" field.
func TaxTotalNEQ(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldTaxTotal, v))
}

// TaxTotalIn applies the In predicate on the "tax_total" field.
func TaxTotalIn(vs ...float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldTaxTotal, vs...))
}

// TaxTotalNotIn applies the NotIn predicate on the "tax_total" field.
func TaxTotalNotIn(vs ...float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldTaxTotal, vs...))
}

// TaxTotalGT applies the GT predicate on the "tax_total" field.
func TaxTotalGT(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldTaxTotal, v))
}

// TaxTotalGTE applies the GTE predicate on the "tax_total" field.
func TaxTotalGTE(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldTaxTotal, v))
}

// TaxTotalLT applies the LT predicate on the "tax_total" field.
func TaxTotalLT(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldTaxTotal, v))
}

// TaxTotalLTE applies the LTE predicate on the "tax_total" field.
func TaxTotalLTE(v float64) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldTaxTotal, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContainsFold(FieldCategory, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldContainsFold(FieldDescription, v))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotNull(FieldFlags))
}

// ExtractedByOcrEQ applies the EQ predicate on the "extracted_by_ocr" field.
func ExtractedByOcrEQ(v bool) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldExtractedByOcr, v))
}

// ExtractedByOcrNEQ applies the NEQ predicate on the "extracted_by_ocr" field.
func ExtractedByOcrNEQ(v bool) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldExtractedByOcr, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotNull(FieldConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldNeedsReview, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExpenseRecord {
	return predicate.ExpenseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExpenseRecord) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExpenseRecord) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExpenseRecord) predicate.ExpenseRecord {
	return predicate.ExpenseRecord(sql.NotPredicates(p))
}
