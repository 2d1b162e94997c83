// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/expenserecord"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

// ExpenseRecordCreate is the builder for creating a ExpenseRecord entity.
type ExpenseRecordCreate struct {
	config
	mutation *ExpenseRecordMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ExpenseRecordCreate) SetProfileID(v uuid.UUID) *ExpenseRecordCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ExpenseRecordCreate) SetDocumentID(v uuid.UUID) *ExpenseRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ExpenseRecordCreate) SetVendorName(v string) *ExpenseRecordCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetExpenseDate sets the "expense_date" field.
func (_c *ExpenseRecordCreate) SetExpenseDate(v time.Time) *ExpenseRecordCreate {
	_c.mutation.SetExpenseDate(v)
	return _c
}

// SetNillableExpenseDate sets the "expense_date" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableExpenseDate(v *time.Time) *ExpenseRecordCreate {
	if v != nil {
		_c.SetExpenseDate(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *ExpenseRecordCreate) SetCurrencyCode(v string) *ExpenseRecordCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ExpenseRecordCreate) SetTotal(v float64) *ExpenseRecordCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetTaxTotal sets the "tax_total" field.
func (_c *ExpenseRecordCreate) SetTaxTotal(v float64) *ExpenseRecordCreate {
	_c.mutation.SetTaxTotal(v)
	return _c
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableTaxTotal(v *float64) *ExpenseRecordCreate {
	if v != nil {
		_c.SetTaxTotal(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExpenseRecordCreate) SetCategory(v string) *ExpenseRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExpenseRecordCreate) SetDescription(v string) *ExpenseRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableDescription(v *string) *ExpenseRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetFlags sets the "flags" field.
func (_c *ExpenseRecordCreate) SetFlags(v []string) *ExpenseRecordCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (_c *ExpenseRecordCreate) SetExtractedByOcr(v bool) *ExpenseRecordCreate {
	_c.mutation.SetExtractedByOcr(v)
	return _c
}

// SetNillableExtractedByOcr sets the "extracted_by_ocr" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableExtractedByOcr(v *bool) *ExpenseRecordCreate {
	if v != nil {
		_c.SetExtractedByOcr(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExpenseRecordCreate) SetConfidence(v float32) *ExpenseRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableConfidence(v *float32) *ExpenseRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ExpenseRecordCreate) SetNeedsReview(v bool) *ExpenseRecordCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableNeedsReview(v *bool) *ExpenseRecordCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExpenseRecordCreate) SetCreatedAt(v time.Time) *ExpenseRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableCreatedAt(v *time.Time) *ExpenseRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExpenseRecordCreate) SetUpdatedAt(v time.Time) *ExpenseRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableUpdatedAt(v *time.Time) *ExpenseRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExpenseRecordCreate) SetID(v uuid.UUID) *ExpenseRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExpenseRecordCreate) SetNillableID(v *uuid.UUID) *ExpenseRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ExpenseRecordCreate) SetProfile(v *Profile) *ExpenseRecordCreate {
	return _c.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExpenseRecordCreate) SetDocument(v *Document) *ExpenseRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExpenseRecordMutation object of the builder.
func (_c *ExpenseRecordCreate) Mutation() *ExpenseRecordMutation {
	return _c.mutation
}

// Save creates the ExpenseRecord in the database.
func (_c *ExpenseRecordCreate) Save(ctx context.Context) (*ExpenseRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpenseRecordCreate) SaveX(ctx context.Context) *ExpenseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpenseRecordCreate) defaults() {
	if _, ok := _c.mutation.TaxTotal(); !ok {
		v := expenserecord.DefaultTaxTotal
		_c.mutation.SetTaxTotal(v)
	}
	if _, ok := _c.mutation.ExtractedByOcr(); !ok {
		v := expenserecord.DefaultExtractedByOcr
		_c.mutation.SetExtractedByOcr(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := expenserecord.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := expenserecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := expenserecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := expenserecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpenseRecordCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ExpenseRecord.profile_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExpenseRecord.document_id"`)}
	}
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "ExpenseRecord.vendor_name"`)}
	}
	if v, ok := _c.mutation.VendorName(); ok {
		if err := expenserecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.vendor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "ExpenseRecord.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := expenserecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ExpenseRecord.total"`)}
	}
	if _, ok := _c.mutation.TaxTotal(); !ok {
		return &ValidationError{Name: "tax_total", err: errors.New(`ent: missing required field "ExpenseRecord.tax_total"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExpenseRecord.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := expenserecord.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedByOcr(); !ok {
		return &ValidationError{Name: "extracted_by_ocr", err: errors.New(`ent: missing required field "ExpenseRecord.extracted_by_ocr"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ExpenseRecord.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExpenseRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExpenseRecord.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ExpenseRecord.profile"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExpenseRecord.document"`)}
	}
	return nil
}

func (_c *ExpenseRecordCreate) sqlSave(ctx context.Context) (*ExpenseRecord, error) {
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

func (_c *ExpenseRecordCreate) createSpec() (*ExpenseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExpenseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expenserecord.Table, sqlgraph.NewFieldSpec(expenserecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(expenserecord.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.ExpenseDate(); ok {
		_spec.SetField(expenserecord.FieldExpenseDate, field.TypeTime, value)
		_node.ExpenseDate = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(expenserecord.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(expenserecord.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.TaxTotal(); ok {
		_spec.SetField(expenserecord.FieldTaxTotal, field.TypeFloat64, value)
		_node.TaxTotal = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(expenserecord.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(expenserecord.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(expenserecord.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.ExtractedByOcr(); ok {
		_spec.SetField(expenserecord.FieldExtractedByOcr, field.TypeBool, value)
		_node.ExtractedByOcr = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(expenserecord.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(expenserecord.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(expenserecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(expenserecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expenserecord.ProfileTable,
			Columns: []string{expenserecord.ProfileColumn},
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
			Table:   expenserecord.DocumentTable,
			Columns: []string{expenserecord.DocumentColumn},
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

// ExpenseRecordCreateBulk is the builder for creating many ExpenseRecord entities in bulk.
type ExpenseRecordCreateBulk struct {
	config
	err      error
	builders []*ExpenseRecordCreate
}

// Save creates the ExpenseRecord entities in the database.
func (_c *ExpenseRecordCreateBulk) Save(ctx context.Context) ([]*ExpenseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExpenseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpenseRecordMutation)
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
func (_c *ExpenseRecordCreateBulk) SaveX(ctx context.Context) []*ExpenseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpenseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpenseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
