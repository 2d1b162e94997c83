// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/maintenancerecord"
	"github.com/hangarline/fleetdocs/gen/ent/predicate"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

// MaintenanceRecordUpdate is the builder for updating MaintenanceRecord entities.
type MaintenanceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MaintenanceRecordMutation
}

// Where appends a list predicates to the MaintenanceRecordUpdate builder.
func (_u *MaintenanceRecordUpdate) Where(ps ...predicate.MaintenanceRecord) *MaintenanceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *MaintenanceRecordUpdate) SetProfileID(v uuid.UUID) *MaintenanceRecordUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableProfileID(v *uuid.UUID) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *MaintenanceRecordUpdate) SetDocumentID(v uuid.UUID) *MaintenanceRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *MaintenanceRecordUpdate) SetVendorName(v string) *MaintenanceRecordUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableVendorName(v *string) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *MaintenanceRecordUpdate) SetInvoiceDate(v time.Time) *MaintenanceRecordUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableInvoiceDate(v *time.Time) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *MaintenanceRecordUpdate) ClearInvoiceDate() *MaintenanceRecordUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *MaintenanceRecordUpdate) SetCurrencyCode(v string) *MaintenanceRecordUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableCurrencyCode(v *string) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *MaintenanceRecordUpdate) SetTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableTotal(v *float64) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *MaintenanceRecordUpdate) AddTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetLaborTotal sets the "labor_total" field.
func (_u *MaintenanceRecordUpdate) SetLaborTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.ResetLaborTotal()
	_u.mutation.SetLaborTotal(v)
	return _u
}

// SetNillableLaborTotal sets the "labor_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableLaborTotal(v *float64) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetLaborTotal(*v)
	}
	return _u
}

// AddLaborTotal adds value to the "labor_total" field.
func (_u *MaintenanceRecordUpdate) AddLaborTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.AddLaborTotal(v)
	return _u
}

// SetPartsTotal sets the "parts_total" field.
func (_u *MaintenanceRecordUpdate) SetPartsTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.ResetPartsTotal()
	_u.mutation.SetPartsTotal(v)
	return _u
}

// SetNillablePartsTotal sets the "parts_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillablePartsTotal(v *float64) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetPartsTotal(*v)
	}
	return _u
}

// AddPartsTotal adds value to the "parts_total" field.
func (_u *MaintenanceRecordUpdate) AddPartsTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.AddPartsTotal(v)
	return _u
}

// SetServicesTotal sets the "services_total" field.
func (_u *MaintenanceRecordUpdate) SetServicesTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.ResetServicesTotal()
	_u.mutation.SetServicesTotal(v)
	return _u
}

// SetNillableServicesTotal sets the "services_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableServicesTotal(v *float64) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetServicesTotal(*v)
	}
	return _u
}

// AddServicesTotal adds value to the "services_total" field.
func (_u *MaintenanceRecordUpdate) AddServicesTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.AddServicesTotal(v)
	return _u
}

// SetFreightTotal sets the "freight_total" field.
func (_u *MaintenanceRecordUpdate) SetFreightTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.ResetFreightTotal()
	_u.mutation.SetFreightTotal(v)
	return _u
}

// SetNillableFreightTotal sets the "freight_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableFreightTotal(v *float64) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetFreightTotal(*v)
	}
	return _u
}

// AddFreightTotal adds value to the "freight_total" field.
func (_u *MaintenanceRecordUpdate) AddFreightTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.AddFreightTotal(v)
	return _u
}

// SetTaxTotal sets the "tax_total" field.
func (_u *MaintenanceRecordUpdate) SetTaxTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.ResetTaxTotal()
	_u.mutation.SetTaxTotal(v)
	return _u
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableTaxTotal(v *float64) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetTaxTotal(*v)
	}
	return _u
}

// AddTaxTotal adds value to the "tax_total" field.
func (_u *MaintenanceRecordUpdate) AddTaxTotal(v float64) *MaintenanceRecordUpdate {
	_u.mutation.AddTaxTotal(v)
	return _u
}

// SetWorkOrder sets the "work_order" field.
func (_u *MaintenanceRecordUpdate) SetWorkOrder(v string) *MaintenanceRecordUpdate {
	_u.mutation.SetWorkOrder(v)
	return _u
}

// SetNillableWorkOrder sets the "work_order" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableWorkOrder(v *string) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetWorkOrder(*v)
	}
	return _u
}

// ClearWorkOrder clears the value of the "work_order" field.
func (_u *MaintenanceRecordUpdate) ClearWorkOrder() *MaintenanceRecordUpdate {
	_u.mutation.ClearWorkOrder()
	return _u
}

// SetVehicleRegistration sets the "vehicle_registration" field.
func (_u *MaintenanceRecordUpdate) SetVehicleRegistration(v string) *MaintenanceRecordUpdate {
	_u.mutation.SetVehicleRegistration(v)
	return _u
}

// SetNillableVehicleRegistration sets the "vehicle_registration" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableVehicleRegistration(v *string) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetVehicleRegistration(*v)
	}
	return _u
}

// ClearVehicleRegistration clears the value of the "vehicle_registration" field.
func (_u *MaintenanceRecordUpdate) ClearVehicleRegistration() *MaintenanceRecordUpdate {
	_u.mutation.ClearVehicleRegistration()
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *MaintenanceRecordUpdate) SetSerialNumber(v string) *MaintenanceRecordUpdate {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableSerialNumber(v *string) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *MaintenanceRecordUpdate) ClearSerialNumber() *MaintenanceRecordUpdate {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetParts sets the "parts" field.
func (_u *MaintenanceRecordUpdate) SetParts(v json.RawMessage) *MaintenanceRecordUpdate {
	_u.mutation.SetParts(v)
	return _u
}

// AppendParts appends value to the "parts" field.
func (_u *MaintenanceRecordUpdate) AppendParts(v json.RawMessage) *MaintenanceRecordUpdate {
	_u.mutation.AppendParts(v)
	return _u
}

// ClearParts clears the value of the "parts" field.
func (_u *MaintenanceRecordUpdate) ClearParts() *MaintenanceRecordUpdate {
	_u.mutation.ClearParts()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *MaintenanceRecordUpdate) SetFlags(v []string) *MaintenanceRecordUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *MaintenanceRecordUpdate) AppendFlags(v []string) *MaintenanceRecordUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *MaintenanceRecordUpdate) ClearFlags() *MaintenanceRecordUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (_u *MaintenanceRecordUpdate) SetExtractedByOcr(v bool) *MaintenanceRecordUpdate {
	_u.mutation.SetExtractedByOcr(v)
	return _u
}

// SetNillableExtractedByOcr sets the "extracted_by_ocr" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableExtractedByOcr(v *bool) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetExtractedByOcr(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MaintenanceRecordUpdate) SetConfidence(v float32) *MaintenanceRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableConfidence(v *float32) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MaintenanceRecordUpdate) AddConfidence(v float32) *MaintenanceRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *MaintenanceRecordUpdate) ClearConfidence() *MaintenanceRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *MaintenanceRecordUpdate) SetNeedsReview(v bool) *MaintenanceRecordUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableNeedsReview(v *bool) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MaintenanceRecordUpdate) SetCreatedAt(v time.Time) *MaintenanceRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MaintenanceRecordUpdate) SetNillableCreatedAt(v *time.Time) *MaintenanceRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaintenanceRecordUpdate) SetUpdatedAt(v time.Time) *MaintenanceRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *MaintenanceRecordUpdate) SetProfile(v *Profile) *MaintenanceRecordUpdate {
	return _u.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *MaintenanceRecordUpdate) SetDocument(v *Document) *MaintenanceRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the MaintenanceRecordMutation object of the builder.
func (_u *MaintenanceRecordUpdate) Mutation() *MaintenanceRecordMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *MaintenanceRecordUpdate) ClearProfile() *MaintenanceRecordUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *MaintenanceRecordUpdate) ClearDocument() *MaintenanceRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaintenanceRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaintenanceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaintenanceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaintenanceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaintenanceRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := maintenancerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaintenanceRecordUpdate) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := maintenancerecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "MaintenanceRecord.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := maintenancerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "MaintenanceRecord.currency_code": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaintenanceRecord.profile"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaintenanceRecord.document"`)
	}
	return nil
}

func (_u *MaintenanceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(maintenancerecord.Table, maintenancerecord.Columns, sqlgraph.NewFieldSpec(maintenancerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(maintenancerecord.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(maintenancerecord.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(maintenancerecord.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(maintenancerecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(maintenancerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(maintenancerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LaborTotal(); ok {
		_spec.SetField(maintenancerecord.FieldLaborTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborTotal(); ok {
		_spec.AddField(maintenancerecord.FieldLaborTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PartsTotal(); ok {
		_spec.SetField(maintenancerecord.FieldPartsTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPartsTotal(); ok {
		_spec.AddField(maintenancerecord.FieldPartsTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ServicesTotal(); ok {
		_spec.SetField(maintenancerecord.FieldServicesTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedServicesTotal(); ok {
		_spec.AddField(maintenancerecord.FieldServicesTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FreightTotal(); ok {
		_spec.SetField(maintenancerecord.FieldFreightTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightTotal(); ok {
		_spec.AddField(maintenancerecord.FieldFreightTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxTotal(); ok {
		_spec.SetField(maintenancerecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxTotal(); ok {
		_spec.AddField(maintenancerecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkOrder(); ok {
		_spec.SetField(maintenancerecord.FieldWorkOrder, field.TypeString, value)
	}
	if _u.mutation.WorkOrderCleared() {
		_spec.ClearField(maintenancerecord.FieldWorkOrder, field.TypeString)
	}
	if value, ok := _u.mutation.VehicleRegistration(); ok {
		_spec.SetField(maintenancerecord.FieldVehicleRegistration, field.TypeString, value)
	}
	if _u.mutation.VehicleRegistrationCleared() {
		_spec.ClearField(maintenancerecord.FieldVehicleRegistration, field.TypeString)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(maintenancerecord.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(maintenancerecord.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Parts(); ok {
		_spec.SetField(maintenancerecord.FieldParts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maintenancerecord.FieldParts, value)
		})
	}
	if _u.mutation.PartsCleared() {
		_spec.ClearField(maintenancerecord.FieldParts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(maintenancerecord.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maintenancerecord.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(maintenancerecord.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedByOcr(); ok {
		_spec.SetField(maintenancerecord.FieldExtractedByOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(maintenancerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(maintenancerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(maintenancerecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(maintenancerecord.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(maintenancerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(maintenancerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.ProfileTable,
			Columns: []string{maintenancerecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.ProfileTable,
			Columns: []string{maintenancerecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.DocumentTable,
			Columns: []string{maintenancerecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.DocumentTable,
			Columns: []string{maintenancerecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{maintenancerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaintenanceRecordUpdateOne is the builder for updating a single MaintenanceRecord entity.
type MaintenanceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaintenanceRecordMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *MaintenanceRecordUpdateOne) SetProfileID(v uuid.UUID) *MaintenanceRecordUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableProfileID(v *uuid.UUID) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *MaintenanceRecordUpdateOne) SetDocumentID(v uuid.UUID) *MaintenanceRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *MaintenanceRecordUpdateOne) SetVendorName(v string) *MaintenanceRecordUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableVendorName(v *string) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *MaintenanceRecordUpdateOne) SetInvoiceDate(v time.Time) *MaintenanceRecordUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableInvoiceDate(v *time.Time) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *MaintenanceRecordUpdateOne) ClearInvoiceDate() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *MaintenanceRecordUpdateOne) SetCurrencyCode(v string) *MaintenanceRecordUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableCurrencyCode(v *string) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *MaintenanceRecordUpdateOne) SetTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableTotal(v *float64) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *MaintenanceRecordUpdateOne) AddTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetLaborTotal sets the "labor_total" field.
func (_u *MaintenanceRecordUpdateOne) SetLaborTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetLaborTotal()
	_u.mutation.SetLaborTotal(v)
	return _u
}

// SetNillableLaborTotal sets the "labor_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableLaborTotal(v *float64) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetLaborTotal(*v)
	}
	return _u
}

// AddLaborTotal adds value to the "labor_total" field.
func (_u *MaintenanceRecordUpdateOne) AddLaborTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.AddLaborTotal(v)
	return _u
}

// SetPartsTotal sets the "parts_total" field.
func (_u *MaintenanceRecordUpdateOne) SetPartsTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetPartsTotal()
	_u.mutation.SetPartsTotal(v)
	return _u
}

// SetNillablePartsTotal sets the "parts_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillablePartsTotal(v *float64) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetPartsTotal(*v)
	}
	return _u
}

// AddPartsTotal adds value to the "parts_total" field.
func (_u *MaintenanceRecordUpdateOne) AddPartsTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.AddPartsTotal(v)
	return _u
}

// SetServicesTotal sets the "services_total" field.
func (_u *MaintenanceRecordUpdateOne) SetServicesTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetServicesTotal()
	_u.mutation.SetServicesTotal(v)
	return _u
}

// SetNillableServicesTotal sets the "services_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableServicesTotal(v *float64) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetServicesTotal(*v)
	}
	return _u
}

// AddServicesTotal adds value to the "services_total" field.
func (_u *MaintenanceRecordUpdateOne) AddServicesTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.AddServicesTotal(v)
	return _u
}

// SetFreightTotal sets the "freight_total" field.
func (_u *MaintenanceRecordUpdateOne) SetFreightTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetFreightTotal()
	_u.mutation.SetFreightTotal(v)
	return _u
}

// SetNillableFreightTotal sets the "freight_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableFreightTotal(v *float64) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetFreightTotal(*v)
	}
	return _u
}

// AddFreightTotal adds value to the "freight_total" field.
func (_u *MaintenanceRecordUpdateOne) AddFreightTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.AddFreightTotal(v)
	return _u
}

// SetTaxTotal sets the "tax_total" field.
func (_u *MaintenanceRecordUpdateOne) SetTaxTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetTaxTotal()
	_u.mutation.SetTaxTotal(v)
	return _u
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableTaxTotal(v *float64) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetTaxTotal(*v)
	}
	return _u
}

// AddTaxTotal adds value to the "tax_total" field.
func (_u *MaintenanceRecordUpdateOne) AddTaxTotal(v float64) *MaintenanceRecordUpdateOne {
	_u.mutation.AddTaxTotal(v)
	return _u
}

// SetWorkOrder sets the "work_order" field.
func (_u *MaintenanceRecordUpdateOne) SetWorkOrder(v string) *MaintenanceRecordUpdateOne {
	_u.mutation.SetWorkOrder(v)
	return _u
}

// SetNillableWorkOrder sets the "work_order" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableWorkOrder(v *string) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetWorkOrder(*v)
	}
	return _u
}

// ClearWorkOrder clears the value of the "work_order" field.
func (_u *MaintenanceRecordUpdateOne) ClearWorkOrder() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearWorkOrder()
	return _u
}

// SetVehicleRegistration sets the "vehicle_registration" field.
func (_u *MaintenanceRecordUpdateOne) SetVehicleRegistration(v string) *MaintenanceRecordUpdateOne {
	_u.mutation.SetVehicleRegistration(v)
	return _u
}

// SetNillableVehicleRegistration sets the "vehicle_registration" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableVehicleRegistration(v *string) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetVehicleRegistration(*v)
	}
	return _u
}

// ClearVehicleRegistration clears the value of the "vehicle_registration" field.
func (_u *MaintenanceRecordUpdateOne) ClearVehicleRegistration() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearVehicleRegistration()
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *MaintenanceRecordUpdateOne) SetSerialNumber(v string) *MaintenanceRecordUpdateOne {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableSerialNumber(v *string) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *MaintenanceRecordUpdateOne) ClearSerialNumber() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetParts sets the "parts" field.
func (_u *MaintenanceRecordUpdateOne) SetParts(v json.RawMessage) *MaintenanceRecordUpdateOne {
	_u.mutation.SetParts(v)
	return _u
}

// AppendParts appends value to the "parts" field.
func (_u *MaintenanceRecordUpdateOne) AppendParts(v json.RawMessage) *MaintenanceRecordUpdateOne {
	_u.mutation.AppendParts(v)
	return _u
}

// ClearParts clears the value of the "parts" field.
func (_u *MaintenanceRecordUpdateOne) ClearParts() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearParts()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *MaintenanceRecordUpdateOne) SetFlags(v []string) *MaintenanceRecordUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *MaintenanceRecordUpdateOne) AppendFlags(v []string) *MaintenanceRecordUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *MaintenanceRecordUpdateOne) ClearFlags() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (_u *MaintenanceRecordUpdateOne) SetExtractedByOcr(v bool) *MaintenanceRecordUpdateOne {
	_u.mutation.SetExtractedByOcr(v)
	return _u
}

// SetNillableExtractedByOcr sets the "extracted_by_ocr" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableExtractedByOcr(v *bool) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetExtractedByOcr(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MaintenanceRecordUpdateOne) SetConfidence(v float32) *MaintenanceRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableConfidence(v *float32) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MaintenanceRecordUpdateOne) AddConfidence(v float32) *MaintenanceRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *MaintenanceRecordUpdateOne) ClearConfidence() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *MaintenanceRecordUpdateOne) SetNeedsReview(v bool) *MaintenanceRecordUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableNeedsReview(v *bool) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MaintenanceRecordUpdateOne) SetCreatedAt(v time.Time) *MaintenanceRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MaintenanceRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *MaintenanceRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MaintenanceRecordUpdateOne) SetUpdatedAt(v time.Time) *MaintenanceRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *MaintenanceRecordUpdateOne) SetProfile(v *Profile) *MaintenanceRecordUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *MaintenanceRecordUpdateOne) SetDocument(v *Document) *MaintenanceRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the MaintenanceRecordMutation object of the builder.
func (_u *MaintenanceRecordUpdateOne) Mutation() *MaintenanceRecordMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *MaintenanceRecordUpdateOne) ClearProfile() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *MaintenanceRecordUpdateOne) ClearDocument() *MaintenanceRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the MaintenanceRecordUpdate builder.
func (_u *MaintenanceRecordUpdateOne) Where(ps ...predicate.MaintenanceRecord) *MaintenanceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaintenanceRecordUpdateOne) Select(field string, fields ...string) *MaintenanceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaintenanceRecord entity.
func (_u *MaintenanceRecordUpdateOne) Save(ctx context.Context) (*MaintenanceRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaintenanceRecordUpdateOne) SaveX(ctx context.Context) *MaintenanceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaintenanceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaintenanceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaintenanceRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := maintenancerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaintenanceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := maintenancerecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "MaintenanceRecord.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := maintenancerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "MaintenanceRecord.currency_code": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaintenanceRecord.profile"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MaintenanceRecord.document"`)
	}
	return nil
}

func (_u *MaintenanceRecordUpdateOne) sqlSave(ctx context.Context) (_node *MaintenanceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(maintenancerecord.Table, maintenancerecord.Columns, sqlgraph.NewFieldSpec(maintenancerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaintenanceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, maintenancerecord.FieldID)
		for _, f := range fields {
			if !maintenancerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != maintenancerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(maintenancerecord.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(maintenancerecord.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(maintenancerecord.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(maintenancerecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(maintenancerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(maintenancerecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LaborTotal(); ok {
		_spec.SetField(maintenancerecord.FieldLaborTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborTotal(); ok {
		_spec.AddField(maintenancerecord.FieldLaborTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PartsTotal(); ok {
		_spec.SetField(maintenancerecord.FieldPartsTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPartsTotal(); ok {
		_spec.AddField(maintenancerecord.FieldPartsTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ServicesTotal(); ok {
		_spec.SetField(maintenancerecord.FieldServicesTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedServicesTotal(); ok {
		_spec.AddField(maintenancerecord.FieldServicesTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FreightTotal(); ok {
		_spec.SetField(maintenancerecord.FieldFreightTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightTotal(); ok {
		_spec.AddField(maintenancerecord.FieldFreightTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxTotal(); ok {
		_spec.SetField(maintenancerecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxTotal(); ok {
		_spec.AddField(maintenancerecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkOrder(); ok {
		_spec.SetField(maintenancerecord.FieldWorkOrder, field.TypeString, value)
	}
	if _u.mutation.WorkOrderCleared() {
		_spec.ClearField(maintenancerecord.FieldWorkOrder, field.TypeString)
	}
	if value, ok := _u.mutation.VehicleRegistration(); ok {
		_spec.SetField(maintenancerecord.FieldVehicleRegistration, field.TypeString, value)
	}
	if _u.mutation.VehicleRegistrationCleared() {
		_spec.ClearField(maintenancerecord.FieldVehicleRegistration, field.TypeString)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(maintenancerecord.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(maintenancerecord.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Parts(); ok {
		_spec.SetField(maintenancerecord.FieldParts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maintenancerecord.FieldParts, value)
		})
	}
	if _u.mutation.PartsCleared() {
		_spec.ClearField(maintenancerecord.FieldParts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(maintenancerecord.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, maintenancerecord.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(maintenancerecord.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedByOcr(); ok {
		_spec.SetField(maintenancerecord.FieldExtractedByOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(maintenancerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(maintenancerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(maintenancerecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(maintenancerecord.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(maintenancerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(maintenancerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.ProfileTable,
			Columns: []string{maintenancerecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.ProfileTable,
			Columns: []string{maintenancerecord.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.DocumentTable,
			Columns: []string{maintenancerecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   maintenancerecord.DocumentTable,
			Columns: []string{maintenancerecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MaintenanceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{maintenancerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
