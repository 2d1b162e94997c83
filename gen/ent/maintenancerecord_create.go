// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/maintenancerecord"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

// MaintenanceRecordCreate is the builder for creating a MaintenanceRecord entity.
type MaintenanceRecordCreate struct {
	config
	mutation *MaintenanceRecordMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *MaintenanceRecordCreate) SetProfileID(v uuid.UUID) *MaintenanceRecordCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *MaintenanceRecordCreate) SetDocumentID(v uuid.UUID) *MaintenanceRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *MaintenanceRecordCreate) SetVendorName(v string) *MaintenanceRecordCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *MaintenanceRecordCreate) SetInvoiceDate(v time.Time) *MaintenanceRecordCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableInvoiceDate(v *time.Time) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *MaintenanceRecordCreate) SetCurrencyCode(v string) *MaintenanceRecordCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *MaintenanceRecordCreate) SetTotal(v float64) *MaintenanceRecordCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetLaborTotal sets the "labor_total" field.
func (_c *MaintenanceRecordCreate) SetLaborTotal(v float64) *MaintenanceRecordCreate {
	_c.mutation.SetLaborTotal(v)
	return _c
}

// SetNillableLaborTotal sets the "labor_total" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableLaborTotal(v *float64) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetLaborTotal(*v)
	}
	return _c
}

// SetPartsTotal sets the "parts_total" field.
func (_c *MaintenanceRecordCreate) SetPartsTotal(v float64) *MaintenanceRecordCreate {
	_c.mutation.SetPartsTotal(v)
	return _c
}

// SetNillablePartsTotal sets the "parts_total" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillablePartsTotal(v *float64) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetPartsTotal(*v)
	}
	return _c
}

// SetServicesTotal sets the "services_total" field.
func (_c *MaintenanceRecordCreate) SetServicesTotal(v float64) *MaintenanceRecordCreate {
	_c.mutation.SetServicesTotal(v)
	return _c
}

// SetNillableServicesTotal sets the "services_total" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableServicesTotal(v *float64) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetServicesTotal(*v)
	}
	return _c
}

// SetFreightTotal sets the "freight_total" field.
func (_c *MaintenanceRecordCreate) SetFreightTotal(v float64) *MaintenanceRecordCreate {
	_c.mutation.SetFreightTotal(v)
	return _c
}

// SetNillableFreightTotal sets the "freight_total" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableFreightTotal(v *float64) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetFreightTotal(*v)
	}
	return _c
}

// SetTaxTotal sets the "tax_total" field.
func (_c *MaintenanceRecordCreate) SetTaxTotal(v float64) *MaintenanceRecordCreate {
	_c.mutation.SetTaxTotal(v)
	return _c
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableTaxTotal(v *float64) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetTaxTotal(*v)
	}
	return _c
}

// SetWorkOrder sets the "work_order" field.
func (_c *MaintenanceRecordCreate) SetWorkOrder(v string) *MaintenanceRecordCreate {
	_c.mutation.SetWorkOrder(v)
	return _c
}

// SetNillableWorkOrder sets the "work_order" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableWorkOrder(v *string) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetWorkOrder(*v)
	}
	return _c
}

// SetVehicleRegistration sets the "vehicle_registration" field.
func (_c *MaintenanceRecordCreate) SetVehicleRegistration(v string) *MaintenanceRecordCreate {
	_c.mutation.SetVehicleRegistration(v)
	return _c
}

// SetNillableVehicleRegistration sets the "vehicle_registration" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableVehicleRegistration(v *string) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetVehicleRegistration(*v)
	}
	return _c
}

// SetSerialNumber sets the "serial_number" field.
func (_c *MaintenanceRecordCreate) SetSerialNumber(v string) *MaintenanceRecordCreate {
	_c.mutation.SetSerialNumber(v)
	return _c
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableSerialNumber(v *string) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetSerialNumber(*v)
	}
	return _c
}

// SetParts sets the "parts" field.
func (_c *MaintenanceRecordCreate) SetParts(v json.RawMessage) *MaintenanceRecordCreate {
	_c.mutation.SetParts(v)
	return _c
}

// SetFlags sets the "flags" field.
func (_c *MaintenanceRecordCreate) SetFlags(v []string) *MaintenanceRecordCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (_c *MaintenanceRecordCreate) SetExtractedByOcr(v bool) *MaintenanceRecordCreate {
	_c.mutation.SetExtractedByOcr(v)
	return _c
}

// SetNillableExtractedByOcr sets the "extracted_by_ocr" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableExtractedByOcr(v *bool) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetExtractedByOcr(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MaintenanceRecordCreate) SetConfidence(v float32) *MaintenanceRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableConfidence(v *float32) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *MaintenanceRecordCreate) SetNeedsReview(v bool) *MaintenanceRecordCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableNeedsReview(v *bool) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MaintenanceRecordCreate) SetCreatedAt(v time.Time) *MaintenanceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableCreatedAt(v *time.Time) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MaintenanceRecordCreate) SetUpdatedAt(v time.Time) *MaintenanceRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableUpdatedAt(v *time.Time) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MaintenanceRecordCreate) SetID(v uuid.UUID) *MaintenanceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MaintenanceRecordCreate) SetNillableID(v *uuid.UUID) *MaintenanceRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *MaintenanceRecordCreate) SetProfile(v *Profile) *MaintenanceRecordCreate {
	return _c.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *MaintenanceRecordCreate) SetDocument(v *Document) *MaintenanceRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the MaintenanceRecordMutation object of the builder.
func (_c *MaintenanceRecordCreate) Mutation() *MaintenanceRecordMutation {
	return _c.mutation
}

// Save creates the MaintenanceRecord in the database.
func (_c *MaintenanceRecordCreate) Save(ctx context.Context) (*MaintenanceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaintenanceRecordCreate) SaveX(ctx context.Context) *MaintenanceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaintenanceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaintenanceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaintenanceRecordCreate) defaults() {
	if _, ok := _c.mutation.LaborTotal(); !ok {
		v := maintenancerecord.DefaultLaborTotal
		_c.mutation.SetLaborTotal(v)
	}
	if _, ok := _c.mutation.PartsTotal(); !ok {
		v := maintenancerecord.DefaultPartsTotal
		_c.mutation.SetPartsTotal(v)
	}
	if _, ok := _c.mutation.ServicesTotal(); !ok {
		v := maintenancerecord.DefaultServicesTotal
		_c.mutation.SetServicesTotal(v)
	}
	if _, ok := _c.mutation.FreightTotal(); !ok {
		v := maintenancerecord.DefaultFreightTotal
		_c.mutation.SetFreightTotal(v)
	}
	if _, ok := _c.mutation.TaxTotal(); !ok {
		v := maintenancerecord.DefaultTaxTotal
		_c.mutation.SetTaxTotal(v)
	}
	if _, ok := _c.mutation.ExtractedByOcr(); !ok {
		v := maintenancerecord.DefaultExtractedByOcr
		_c.mutation.SetExtractedByOcr(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := maintenancerecord.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := maintenancerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := maintenancerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := maintenancerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaintenanceRecordCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "MaintenanceRecord.profile_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "MaintenanceRecord.document_id"`)}
	}
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "MaintenanceRecord.vendor_name"`)}
	}
	if v, ok := _c.mutation.VendorName(); ok {
		if err := maintenancerecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "MaintenanceRecord.vendor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "MaintenanceRecord.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := maintenancerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "MaintenanceRecord.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "MaintenanceRecord.total"`)}
	}
	if _, ok := _c.mutation.LaborTotal(); !ok {
		return &ValidationError{Name: "labor_total", err: errors.New(`ent: missing required field "MaintenanceRecord.labor_total"`)}
	}
	if _, ok := _c.mutation.PartsTotal(); !ok {
		return &ValidationError{Name: "parts_total", err: errors.New(`ent: missing required field "MaintenanceRecord.parts_total"`)}
	}
	if _, ok := _c.mutation.ServicesTotal(); !ok {
		return &ValidationError{Name: "services_total", err: errors.New(`ent: missing required field "MaintenanceRecord.services_total"`)}
	}
	if _, ok := _c.mutation.FreightTotal(); !ok {
		return &ValidationError{Name: "freight_total", err: errors.New(`ent: missing required field "MaintenanceRecord.freight_total"`)}
	}
	if _, ok := _c.mutation.TaxTotal(); !ok {
		return &ValidationError{Name: "tax_total", err: errors.New(`ent: missing required field "MaintenanceRecord.tax_total"`)}
	}
	if _, ok := _c.mutation.ExtractedByOcr(); !ok {
		return &ValidationError{Name: "extracted_by_ocr", err: errors.New(`ent: missing required field "MaintenanceRecord.extracted_by_ocr"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "MaintenanceRecord.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MaintenanceRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MaintenanceRecord.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "MaintenanceRecord.profile"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "MaintenanceRecord.document"`)}
	}
	return nil
}

func (_c *MaintenanceRecordCreate) sqlSave(ctx context.Context) (*MaintenanceRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MaintenanceRecordCreate) createSpec() (*MaintenanceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MaintenanceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(maintenancerecord.Table, sqlgraph.NewFieldSpec(maintenancerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(maintenancerecord.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(maintenancerecord.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(maintenancerecord.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(maintenancerecord.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.LaborTotal(); ok {
		_spec.SetField(maintenancerecord.FieldLaborTotal, field.TypeFloat64, value)
		_node.LaborTotal = value
	}
	if value, ok := _c.mutation.PartsTotal(); ok {
		_spec.SetField(maintenancerecord.FieldPartsTotal, field.TypeFloat64, value)
		_node.PartsTotal = value
	}
	if value, ok := _c.mutation.ServicesTotal(); ok {
		_spec.SetField(maintenancerecord.FieldServicesTotal, field.TypeFloat64, value)
		_node.ServicesTotal = value
	}
	if value, ok := _c.mutation.FreightTotal(); ok {
		_spec.SetField(maintenancerecord.FieldFreightTotal, field.TypeFloat64, value)
		_node.FreightTotal = value
	}
	if value, ok := _c.mutation.TaxTotal(); ok {
		_spec.SetField(maintenancerecord.FieldTaxTotal, field.TypeFloat64, value)
		_node.TaxTotal = value
	}
	if value, ok := _c.mutation.WorkOrder(); ok {
		_spec.SetField(maintenancerecord.FieldWorkOrder, field.TypeString, value)
		_node.WorkOrder = &value
	}
	if value, ok := _c.mutation.VehicleRegistration(); ok {
		_spec.SetField(maintenancerecord.FieldVehicleRegistration, field.TypeString, value)
		_node.VehicleRegistration = &value
	}
	if value, ok := _c.mutation.SerialNumber(); ok {
		_spec.SetField(maintenancerecord.FieldSerialNumber, field.TypeString, value)
		_node.SerialNumber = &value
	}
	if value, ok := _c.mutation.Parts(); ok {
		_spec.SetField(maintenancerecord.FieldParts, field.TypeJSON, value)
		_node.Parts = value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(maintenancerecord.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.ExtractedByOcr(); ok {
		_spec.SetField(maintenancerecord.FieldExtractedByOcr, field.TypeBool, value)
		_node.ExtractedByOcr = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(maintenancerecord.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(maintenancerecord.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(maintenancerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(maintenancerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MaintenanceRecordCreateBulk is the builder for creating many MaintenanceRecord entities in bulk.
type MaintenanceRecordCreateBulk struct {
	config
	err      error
	builders []*MaintenanceRecordCreate
}

// Save creates the MaintenanceRecord entities in the database.
func (_c *MaintenanceRecordCreateBulk) Save(ctx context.Context) ([]*MaintenanceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaintenanceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaintenanceRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MaintenanceRecordCreateBulk) SaveX(ctx context.Context) []*MaintenanceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaintenanceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaintenanceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
