// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/maintenancerecord"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

// MaintenanceRecord is the model entity for the MaintenanceRecord schema.
type MaintenanceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName string `json:"vendor_name,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// LaborTotal holds the value of the "labor_total" field.
	LaborTotal float64 `json:"labor_total,omitempty"`
	// PartsTotal holds the value of the "parts_total" field.
	PartsTotal float64 `json:"parts_total,omitempty"`
	// ServicesTotal holds the value of the "services_total" field.
	ServicesTotal float64 `json:"services_total,omitempty"`
	// FreightTotal holds the value of the "freight_total" field.
	FreightTotal float64 `json:"freight_total,omitempty"`
	// TaxTotal holds the value of the "tax_total" field.
	TaxTotal float64 `json:"tax_total,omitempty"`
	// WorkOrder holds the value of the "work_order" field.
	WorkOrder *string `json:"work_order,omitempty"`
	// VehicleRegistration holds the value of the "vehicle_registration" field.
	VehicleRegistration *string `json:"vehicle_registration,omitempty"`
	// SerialNumber holds the value of the "serial_number" field.
	SerialNumber *string `json:"serial_number,omitempty"`
	// Parts holds the value of the "parts" field.
	Parts json.RawMessage `json:"parts,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags []string `json:"flags,omitempty"`
	// ExtractedByOcr holds the value of the "extracted_by_ocr" field.
	ExtractedByOcr bool `json:"extracted_by_ocr,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaintenanceRecordQuery when eager-loading is set.
	Edges        MaintenanceRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MaintenanceRecordEdges holds the relations/edges for other nodes in the graph.
type MaintenanceRecordEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaintenanceRecordEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaintenanceRecordEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MaintenanceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case maintenancerecord.FieldParts, maintenancerecord.FieldFlags:
			values[i] = new([]byte)
		case maintenancerecord.FieldExtractedByOcr, maintenancerecord.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case maintenancerecord.FieldTotal, maintenancerecord.FieldLaborTotal, maintenancerecord.FieldPartsTotal, maintenancerecord.FieldServicesTotal, maintenancerecord.FieldFreightTotal, maintenancerecord.FieldTaxTotal, maintenancerecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case maintenancerecord.FieldVendorName, maintenancerecord.FieldCurrencyCode, maintenancerecord.FieldWorkOrder, maintenancerecord.FieldVehicleRegistration, maintenancerecord.FieldSerialNumber:
			values[i] = new(sql.NullString)
		case maintenancerecord.FieldInvoiceDate, maintenancerecord.FieldCreatedAt, maintenancerecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case maintenancerecord.FieldID, maintenancerecord.FieldProfileID, maintenancerecord.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MaintenanceRecord fields.
func (_m *MaintenanceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case maintenancerecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case maintenancerecord.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case maintenancerecord.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case maintenancerecord.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = value.String
			}
		case maintenancerecord.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case maintenancerecord.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case maintenancerecord.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case maintenancerecord.FieldLaborTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field labor_total", values[i])
			} else if value.Valid {
				_m.LaborTotal = value.Float64
			}
		case maintenancerecord.FieldPartsTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field parts_total", values[i])
			} else if value.Valid {
				_m.PartsTotal = value.Float64
			}
		case maintenancerecord.FieldServicesTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field services_total", values[i])
			} else if value.Valid {
				_m.ServicesTotal = value.Float64
			}
		case maintenancerecord.FieldFreightTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field freight_total", values[i])
			} else if value.Valid {
				_m.FreightTotal = value.Float64
			}
		case maintenancerecord.FieldTaxTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_total", values[i])
			} else if value.Valid {
				_m.TaxTotal = value.Float64
			}
		case maintenancerecord.FieldWorkOrder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_order", values[i])
			} else if value.Valid {
				_m.WorkOrder = new(string)
				*_m.WorkOrder = value.String
			}
		case maintenancerecord.FieldVehicleRegistration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_registration", values[i])
			} else if value.Valid {
				_m.VehicleRegistration = new(string)
				*_m.VehicleRegistration = value.String
			}
		case maintenancerecord.FieldSerialNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial_number", values[i])
			} else if value.Valid {
				_m.SerialNumber = new(string)
				*_m.SerialNumber = value.String
			}
		case maintenancerecord.FieldParts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parts); err != nil {
					return fmt.Errorf("unmarshal field parts: %w", err)
				}
			}
		case maintenancerecord.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case maintenancerecord.FieldExtractedByOcr:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_by_ocr", values[i])
			} else if value.Valid {
				_m.ExtractedByOcr = value.Bool
			}
		case maintenancerecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case maintenancerecord.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case maintenancerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case maintenancerecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MaintenanceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MaintenanceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the MaintenanceRecord entity.
func (_m *MaintenanceRecord) QueryProfile() *ProfileQuery {
	return NewMaintenanceRecordClient(_m.config).QueryProfile(_m)
}

// QueryDocument queries the "document" edge of the MaintenanceRecord entity.
func (_m *MaintenanceRecord) QueryDocument() *DocumentQuery {
	return NewMaintenanceRecordClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this MaintenanceRecord.
// Note that you need to call MaintenanceRecord.Unwrap() before calling this method if this MaintenanceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MaintenanceRecord) Update() *MaintenanceRecordUpdateOne {
	return NewMaintenanceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MaintenanceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MaintenanceRecord) Unwrap() *MaintenanceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MaintenanceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MaintenanceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MaintenanceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("vendor_name=")
	builder.WriteString(_m.VendorName)
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("labor_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.LaborTotal))
	builder.WriteString(", ")
	builder.WriteString("parts_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartsTotal))
	builder.WriteString(", ")
	builder.WriteString("services_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServicesTotal))
	builder.WriteString(", ")
	builder.WriteString("freight_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreightTotal))
	builder.WriteString(", ")
	builder.WriteString("tax_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxTotal))
	builder.WriteString(", ")
	if v := _m.WorkOrder; v != nil {
		builder.WriteString("work_order=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VehicleRegistration; v != nil {
		builder.WriteString("vehicle_registration=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SerialNumber; v != nil {
		builder.WriteString("serial_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parts))
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	builder.WriteString("extracted_by_ocr=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedByOcr))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MaintenanceRecords is a parsable slice of MaintenanceRecord.
type MaintenanceRecords []*MaintenanceRecord
