// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "storage_url", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_profiles_documents",
				Columns:    []*schema.Column{DocumentsColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[8], DocumentsColumns[1]},
			},
			{
				Name:    "document_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8], DocumentsColumns[7]},
			},
		},
	}
	// ExpenseRecordsColumns holds the columns for the "expense_records" table.
	ExpenseRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "expense_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "category", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_by_ocr", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExpenseRecordsTable holds the schema information for the "expense_records" table.
	ExpenseRecordsTable = &schema.Table{
		Name:       "expense_records",
		Columns:    ExpenseRecordsColumns,
		PrimaryKey: []*schema.Column{ExpenseRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "expense_records_documents_expense_records",
				Columns:    []*schema.Column{ExpenseRecordsColumns[14]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "expense_records_profiles_expense_records",
				Columns:    []*schema.Column{ExpenseRecordsColumns[15]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "expenserecord_profile_id_expense_date",
				Unique:  false,
				Columns: []*schema.Column{ExpenseRecordsColumns[15], ExpenseRecordsColumns[2]},
			},
			{
				Name:    "expenserecord_profile_id_category",
				Unique:  false,
				Columns: []*schema.Column{ExpenseRecordsColumns[15], ExpenseRecordsColumns[6]},
			},
			{
				Name:    "expenserecord_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExpenseRecordsColumns[14]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString, Nullable: true},
		{Name: "chunks_total", Type: field.TypeInt, Default: 0},
		{Name: "chunks_failed", Type: field.TypeInt, Default: 0},
		{Name: "reject_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_documents_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_profiles_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11], ExtractJobColumns[2], ExtractJobColumns[8]},
			},
			{
				Name:    "extractjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10]},
			},
		},
	}
	// MaintenanceRecordsColumns holds the columns for the "maintenance_records" table.
	MaintenanceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "labor_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "parts_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "services_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "freight_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_total", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "work_order", Type: field.TypeString, Nullable: true},
		{Name: "vehicle_registration", Type: field.TypeString, Nullable: true},
		{Name: "serial_number", Type: field.TypeString, Nullable: true},
		{Name: "parts", Type: field.TypeJSON, Nullable: true},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_by_ocr", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// MaintenanceRecordsTable holds the schema information for the "maintenance_records" table.
	MaintenanceRecordsTable = &schema.Table{
		Name:       "maintenance_records",
		Columns:    MaintenanceRecordsColumns,
		PrimaryKey: []*schema.Column{MaintenanceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "maintenance_records_documents_maintenance_records",
				Columns:    []*schema.Column{MaintenanceRecordsColumns[20]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "maintenance_records_profiles_maintenance_records",
				Columns:    []*schema.Column{MaintenanceRecordsColumns[21]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "maintenancerecord_profile_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{MaintenanceRecordsColumns[21], MaintenanceRecordsColumns[2]},
			},
			{
				Name:    "maintenancerecord_document_id",
				Unique:  false,
				Columns: []*schema.Column{MaintenanceRecordsColumns[20]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "default_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExpenseRecordsTable,
		ExtractJobTable,
		MaintenanceRecordsTable,
		ProfilesTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = ProfilesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExpenseRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExpenseRecordsTable.ForeignKeys[1].RefTable = ProfilesTable
	ExpenseRecordsTable.Annotation = &entsql.Annotation{
		Table: "expense_records",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractJobTable.ForeignKeys[1].RefTable = ProfilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	MaintenanceRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	MaintenanceRecordsTable.ForeignKeys[1].RefTable = ProfilesTable
	MaintenanceRecordsTable.Annotation = &entsql.Annotation{
		Table: "maintenance_records",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
