// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/db/ent/schema"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/expenserecord"
	"github.com/hangarline/fleetdocs/gen/ent/extractjob"
	"github.com/hangarline/fleetdocs/gen/ent/maintenancerecord"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[2].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[6].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// document.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	document.PageCountValidator = documentDescPageCount.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[8].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	expenserecordFields := schema.ExpenseRecord{}.Fields()
	_ = expenserecordFields
	// expenserecordDescVendorName is the schema descriptor for vendor_name field.
	expenserecordDescVendorName := expenserecordFields[3].Descriptor()
	// expenserecord.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	expenserecord.VendorNameValidator = expenserecordDescVendorName.Validators[0].(func(string) error)
	// expenserecordDescCurrencyCode is the schema descriptor for currency_code field.
	expenserecordDescCurrencyCode := expenserecordFields[5].Descriptor()
	// expenserecord.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	expenserecord.CurrencyCodeValidator = func() func(string) error {
		validators := expenserecordDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// expenserecordDescTaxTotal is the schema descriptor for tax_total field.
	expenserecordDescTaxTotal := expenserecordFields[7].Descriptor()
	// expenserecord.DefaultTaxTotal holds the default value on creation for the tax_total field.
	expenserecord.DefaultTaxTotal = expenserecordDescTaxTotal.Default.(float64)
	// expenserecordDescCategory is the schema descriptor for category field.
	expenserecordDescCategory := expenserecordFields[8].Descriptor()
	// expenserecord.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	expenserecord.CategoryValidator = expenserecordDescCategory.Validators[0].(func(string) error)
	// expenserecordDescExtractedByOcr is the schema descriptor for extracted_by_ocr field.
	expenserecordDescExtractedByOcr := expenserecordFields[11].Descriptor()
	// expenserecord.DefaultExtractedByOcr holds the default value on creation for the extracted_by_ocr field.
	expenserecord.DefaultExtractedByOcr = expenserecordDescExtractedByOcr.Default.(bool)
	// expenserecordDescNeedsReview is the schema descriptor for needs_review field.
	expenserecordDescNeedsReview := expenserecordFields[13].Descriptor()
	// expenserecord.DefaultNeedsReview holds the default value on creation for the needs_review field.
	expenserecord.DefaultNeedsReview = expenserecordDescNeedsReview.Default.(bool)
	// expenserecordDescCreatedAt is the schema descriptor for created_at field.
	expenserecordDescCreatedAt := expenserecordFields[14].Descriptor()
	// expenserecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	expenserecord.DefaultCreatedAt = expenserecordDescCreatedAt.Default.(func() time.Time)
	// expenserecordDescUpdatedAt is the schema descriptor for updated_at field.
	expenserecordDescUpdatedAt := expenserecordFields[15].Descriptor()
	// expenserecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expenserecord.DefaultUpdatedAt = expenserecordDescUpdatedAt.Default.(func() time.Time)
	// expenserecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expenserecord.UpdateDefaultUpdatedAt = expenserecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// expenserecordDescID is the schema descriptor for id field.
	expenserecordDescID := expenserecordFields[0].Descriptor()
	// expenserecord.DefaultID holds the default value on creation for the id field.
	expenserecord.DefaultID = expenserecordDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescKind is the schema descriptor for kind field.
	extractjobDescKind := extractjobFields[3].Descriptor()
	// extractjob.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	extractjob.KindValidator = func() func(string) error {
		validators := extractjobDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[4].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = func() func(string) error {
		validators := extractjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescChunksTotal is the schema descriptor for chunks_total field.
	extractjobDescChunksTotal := extractjobFields[6].Descriptor()
	// extractjob.DefaultChunksTotal holds the default value on creation for the chunks_total field.
	extractjob.DefaultChunksTotal = extractjobDescChunksTotal.Default.(int)
	// extractjob.ChunksTotalValidator is a validator for the "chunks_total" field. It is called by the builders before save.
	extractjob.ChunksTotalValidator = extractjobDescChunksTotal.Validators[0].(func(int) error)
	// extractjobDescChunksFailed is the schema descriptor for chunks_failed field.
	extractjobDescChunksFailed := extractjobFields[7].Descriptor()
	// extractjob.DefaultChunksFailed holds the default value on creation for the chunks_failed field.
	extractjob.DefaultChunksFailed = extractjobDescChunksFailed.Default.(int)
	// extractjob.ChunksFailedValidator is a validator for the "chunks_failed" field. It is called by the builders before save.
	extractjob.ChunksFailedValidator = extractjobDescChunksFailed.Validators[0].(func(int) error)
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[10].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	maintenancerecordFields := schema.MaintenanceRecord{}.Fields()
	_ = maintenancerecordFields
	// maintenancerecordDescVendorName is the schema descriptor for vendor_name field.
	maintenancerecordDescVendorName := maintenancerecordFields[3].Descriptor()
	// maintenancerecord.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	maintenancerecord.VendorNameValidator = maintenancerecordDescVendorName.Validators[0].(func(string) error)
	// maintenancerecordDescCurrencyCode is the schema descriptor for currency_code field.
	maintenancerecordDescCurrencyCode := maintenancerecordFields[5].Descriptor()
	// maintenancerecord.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	maintenancerecord.CurrencyCodeValidator = func() func(string) error {
		validators := maintenancerecordDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// maintenancerecordDescLaborTotal is the schema descriptor for labor_total field.
	maintenancerecordDescLaborTotal := maintenancerecordFields[7].Descriptor()
	// maintenancerecord.DefaultLaborTotal holds the default value on creation for the labor_total field.
	maintenancerecord.DefaultLaborTotal = maintenancerecordDescLaborTotal.Default.(float64)
	// maintenancerecordDescPartsTotal is the schema descriptor for parts_total field.
	maintenancerecordDescPartsTotal := maintenancerecordFields[8].Descriptor()
	// maintenancerecord.DefaultPartsTotal holds the default value on creation for the parts_total field.
	maintenancerecord.DefaultPartsTotal = maintenancerecordDescPartsTotal.Default.(float64)
	// maintenancerecordDescServicesTotal is the schema descriptor for services_total field.
	maintenancerecordDescServicesTotal := maintenancerecordFields[9].Descriptor()
	// maintenancerecord.DefaultServicesTotal holds the default value on creation for the services_total field.
	maintenancerecord.DefaultServicesTotal = maintenancerecordDescServicesTotal.Default.(float64)
	// maintenancerecordDescFreightTotal is the schema descriptor for freight_total field.
	maintenancerecordDescFreightTotal := maintenancerecordFields[10].Descriptor()
	// maintenancerecord.DefaultFreightTotal holds the default value on creation for the freight_total field.
	maintenancerecord.DefaultFreightTotal = maintenancerecordDescFreightTotal.Default.(float64)
	// maintenancerecordDescTaxTotal is the schema descriptor for tax_total field.
	maintenancerecordDescTaxTotal := maintenancerecordFields[11].Descriptor()
	// maintenancerecord.DefaultTaxTotal holds the default value on creation for the tax_total field.
	maintenancerecord.DefaultTaxTotal = maintenancerecordDescTaxTotal.Default.(float64)
	// maintenancerecordDescExtractedByOcr is the schema descriptor for extracted_by_ocr field.
	maintenancerecordDescExtractedByOcr := maintenancerecordFields[17].Descriptor()
	// maintenancerecord.DefaultExtractedByOcr holds the default value on creation for the extracted_by_ocr field.
	maintenancerecord.DefaultExtractedByOcr = maintenancerecordDescExtractedByOcr.Default.(bool)
	// maintenancerecordDescNeedsReview is the schema descriptor for needs_review field.
	maintenancerecordDescNeedsReview := maintenancerecordFields[19].Descriptor()
	// maintenancerecord.DefaultNeedsReview holds the default value on creation for the needs_review field.
	maintenancerecord.DefaultNeedsReview = maintenancerecordDescNeedsReview.Default.(bool)
	// maintenancerecordDescCreatedAt is the schema descriptor for created_at field.
	maintenancerecordDescCreatedAt := maintenancerecordFields[20].Descriptor()
	// maintenancerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	maintenancerecord.DefaultCreatedAt = maintenancerecordDescCreatedAt.Default.(func() time.Time)
	// maintenancerecordDescUpdatedAt is the schema descriptor for updated_at field.
	maintenancerecordDescUpdatedAt := maintenancerecordFields[21].Descriptor()
	// maintenancerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	maintenancerecord.DefaultUpdatedAt = maintenancerecordDescUpdatedAt.Default.(func() time.Time)
	// maintenancerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	maintenancerecord.UpdateDefaultUpdatedAt = maintenancerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// maintenancerecordDescID is the schema descriptor for id field.
	maintenancerecordDescID := maintenancerecordFields[0].Descriptor()
	// maintenancerecord.DefaultID holds the default value on creation for the id field.
	maintenancerecord.DefaultID = maintenancerecordDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescDefaultCurrency is the schema descriptor for default_currency field.
	profileDescDefaultCurrency := profileFields[3].Descriptor()
	// profile.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	profile.DefaultCurrencyValidator = func() func(string) error {
		validators := profileDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
