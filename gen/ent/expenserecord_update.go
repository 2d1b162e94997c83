// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/expenserecord"
	"github.com/hangarline/fleetdocs/gen/ent/predicate"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

// ExpenseRecordUpdate is the builder for updating ExpenseRecord entities.
type ExpenseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExpenseRecordMutation
}

// Where appends a list predicates to the ExpenseRecordUpdate builder.
func (_u *ExpenseRecordUpdate) Where(ps ...predicate.ExpenseRecord) *ExpenseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ExpenseRecordUpdate) SetProfileID(v uuid.UUID) *ExpenseRecordUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableProfileID(v *uuid.UUID) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExpenseRecordUpdate) SetDocumentID(v uuid.UUID) *ExpenseRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ExpenseRecordUpdate) SetVendorName(v string) *ExpenseRecordUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableVendorName(v *string) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetExpenseDate sets the "expense_date" field.
func (_u *ExpenseRecordUpdate) SetExpenseDate(v time.Time) *ExpenseRecordUpdate {
	_u.mutation.SetExpenseDate(v)
	return _u
}

// SetNillableExpenseDate sets the "expense_date" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableExpenseDate(v *time.Time) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetExpenseDate(*v)
	}
	return _u
}

// ClearExpenseDate clears the value of the "expense_date" field.
func (_u *ExpenseRecordUpdate) ClearExpenseDate() *ExpenseRecordUpdate {
	_u.mutation.ClearExpenseDate()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ExpenseRecordUpdate) SetCurrencyCode(v string) *ExpenseRecordUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableCurrencyCode(v *string) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExpenseRecordUpdate) SetTotal(v float64) *ExpenseRecordUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableTotal(v *float64) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExpenseRecordUpdate) AddTotal(v float64) *ExpenseRecordUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTaxTotal sets the "tax_total" field.
func (_u *ExpenseRecordUpdate) SetTaxTotal(v float64) *ExpenseRecordUpdate {
	_u.mutation.ResetTaxTotal()
	_u.mutation.SetTaxTotal(v)
	return _u
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableTaxTotal(v *float64) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetTaxTotal(*v)
	}
	return _u
}

// AddTaxTotal adds value to the "tax_total" field.
func (_u *ExpenseRecordUpdate) AddTaxTotal(v float64) *ExpenseRecordUpdate {
	_u.mutation.AddTaxTotal(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseRecordUpdate) SetCategory(v string) *ExpenseRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableCategory(v *string) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExpenseRecordUpdate) SetDescription(v string) *ExpenseRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableDescription(v *string) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExpenseRecordUpdate) ClearDescription() *ExpenseRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *ExpenseRecordUpdate) SetFlags(v []string) *ExpenseRecordUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *ExpenseRecordUpdate) AppendFlags(v []string) *ExpenseRecordUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *ExpenseRecordUpdate) ClearFlags() *ExpenseRecordUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (_u *ExpenseRecordUpdate) SetExtractedByOcr(v bool) *ExpenseRecordUpdate {
	_u.mutation.SetExtractedByOcr(v)
	return _u
}

// SetNillableExtractedByOcr sets the "extracted_by_ocr" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableExtractedByOcr(v *bool) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetExtractedByOcr(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExpenseRecordUpdate) SetConfidence(v float32) *ExpenseRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableConfidence(v *float32) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExpenseRecordUpdate) AddConfidence(v float32) *ExpenseRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExpenseRecordUpdate) ClearConfidence() *ExpenseRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExpenseRecordUpdate) SetNeedsReview(v bool) *ExpenseRecordUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableNeedsReview(v *bool) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExpenseRecordUpdate) SetCreatedAt(v time.Time) *ExpenseRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExpenseRecordUpdate) SetNillableCreatedAt(v *time.Time) *ExpenseRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseRecordUpdate) SetUpdatedAt(v time.Time) *ExpenseRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ExpenseRecordUpdate) SetProfile(v *Profile) *ExpenseRecordUpdate {
	return _u.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExpenseRecordUpdate) SetDocument(v *Document) *ExpenseRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExpenseRecordMutation object of the builder.
func (_u *ExpenseRecordUpdate) Mutation() *ExpenseRecordMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ExpenseRecordUpdate) ClearProfile() *ExpenseRecordUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExpenseRecordUpdate) ClearDocument() *ExpenseRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpenseRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpenseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expenserecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseRecordUpdate) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := expenserecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := expenserecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := expenserecord.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.category": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExpenseRecord.profile"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExpenseRecord.document"`)
	}
	return nil
}

func (_u *ExpenseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expenserecord.Table, expenserecord.Columns, sqlgraph.NewFieldSpec(expenserecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(expenserecord.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseDate(); ok {
		_spec.SetField(expenserecord.FieldExpenseDate, field.TypeTime, value)
	}
	if _u.mutation.ExpenseDateCleared() {
		_spec.ClearField(expenserecord.FieldExpenseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(expenserecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(expenserecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(expenserecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxTotal(); ok {
		_spec.SetField(expenserecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxTotal(); ok {
		_spec.AddField(expenserecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expenserecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(expenserecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(expenserecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(expenserecord.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, expenserecord.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(expenserecord.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedByOcr(); ok {
		_spec.SetField(expenserecord.FieldExtractedByOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(expenserecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(expenserecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(expenserecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(expenserecord.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(expenserecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expenserecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expenserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpenseRecordUpdateOne is the builder for updating a single ExpenseRecord entity.
type ExpenseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpenseRecordMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ExpenseRecordUpdateOne) SetProfileID(v uuid.UUID) *ExpenseRecordUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableProfileID(v *uuid.UUID) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExpenseRecordUpdateOne) SetDocumentID(v uuid.UUID) *ExpenseRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ExpenseRecordUpdateOne) SetVendorName(v string) *ExpenseRecordUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableVendorName(v *string) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetExpenseDate sets the "expense_date" field.
func (_u *ExpenseRecordUpdateOne) SetExpenseDate(v time.Time) *ExpenseRecordUpdateOne {
	_u.mutation.SetExpenseDate(v)
	return _u
}

// SetNillableExpenseDate sets the "expense_date" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableExpenseDate(v *time.Time) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetExpenseDate(*v)
	}
	return _u
}

// ClearExpenseDate clears the value of the "expense_date" field.
func (_u *ExpenseRecordUpdateOne) ClearExpenseDate() *ExpenseRecordUpdateOne {
	_u.mutation.ClearExpenseDate()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ExpenseRecordUpdateOne) SetCurrencyCode(v string) *ExpenseRecordUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableCurrencyCode(v *string) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExpenseRecordUpdateOne) SetTotal(v float64) *ExpenseRecordUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableTotal(v *float64) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExpenseRecordUpdateOne) AddTotal(v float64) *ExpenseRecordUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetTaxTotal sets the "tax_total" field.
func (_u *ExpenseRecordUpdateOne) SetTaxTotal(v float64) *ExpenseRecordUpdateOne {
	_u.mutation.ResetTaxTotal()
	_u.mutation.SetTaxTotal(v)
	return _u
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableTaxTotal(v *float64) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetTaxTotal(*v)
	}
	return _u
}

// AddTaxTotal adds value to the "tax_total" field.
func (_u *ExpenseRecordUpdateOne) AddTaxTotal(v float64) *ExpenseRecordUpdateOne {
	_u.mutation.AddTaxTotal(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseRecordUpdateOne) SetCategory(v string) *ExpenseRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableCategory(v *string) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExpenseRecordUpdateOne) SetDescription(v string) *ExpenseRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableDescription(v *string) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExpenseRecordUpdateOne) ClearDescription() *ExpenseRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *ExpenseRecordUpdateOne) SetFlags(v []string) *ExpenseRecordUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *ExpenseRecordUpdateOne) AppendFlags(v []string) *ExpenseRecordUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *ExpenseRecordUpdateOne) ClearFlags() *ExpenseRecordUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (_u *ExpenseRecordUpdateOne) SetExtractedByOcr(v bool) *ExpenseRecordUpdateOne {
	_u.mutation.SetExtractedByOcr(v)
	return _u
}

// SetNillableExtractedByOcr sets the "extracted_by_ocr" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableExtractedByOcr(v *bool) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetExtractedByOcr(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExpenseRecordUpdateOne) SetConfidence(v float32) *ExpenseRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableConfidence(v *float32) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExpenseRecordUpdateOne) AddConfidence(v float32) *ExpenseRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExpenseRecordUpdateOne) ClearConfidence() *ExpenseRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExpenseRecordUpdateOne) SetNeedsReview(v bool) *ExpenseRecordUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableNeedsReview(v *bool) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExpenseRecordUpdateOne) SetCreatedAt(v time.Time) *ExpenseRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExpenseRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ExpenseRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseRecordUpdateOne) SetUpdatedAt(v time.Time) *ExpenseRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ExpenseRecordUpdateOne) SetProfile(v *Profile) *ExpenseRecordUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExpenseRecordUpdateOne) SetDocument(v *Document) *ExpenseRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExpenseRecordMutation object of the builder.
func (_u *ExpenseRecordUpdateOne) Mutation() *ExpenseRecordMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ExpenseRecordUpdateOne) ClearProfile() *ExpenseRecordUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExpenseRecordUpdateOne) ClearDocument() *ExpenseRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExpenseRecordUpdate builder.
func (_u *ExpenseRecordUpdateOne) Where(ps ...predicate.ExpenseRecord) *ExpenseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpenseRecordUpdateOne) Select(field string, fields ...string) *ExpenseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExpenseRecord entity.
func (_u *ExpenseRecordUpdateOne) Save(ctx context.Context) (*ExpenseRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseRecordUpdateOne) SaveX(ctx context.Context) *ExpenseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpenseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expenserecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseRecordUpdateOne) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := expenserecord.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := expenserecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := expenserecord.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExpenseRecord.category": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExpenseRecord.profile"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExpenseRecord.document"`)
	}
	return nil
}

func (_u *ExpenseRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExpenseRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expenserecord.Table, expenserecord.Columns, sqlgraph.NewFieldSpec(expenserecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExpenseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expenserecord.FieldID)
		for _, f := range fields {
			if !expenserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expenserecord.FieldID {
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
		_spec.SetField(expenserecord.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpenseDate(); ok {
		_spec.SetField(expenserecord.FieldExpenseDate, field.TypeTime, value)
	}
	if _u.mutation.ExpenseDateCleared() {
		_spec.ClearField(expenserecord.FieldExpenseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(expenserecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(expenserecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(expenserecord.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxTotal(); ok {
		_spec.SetField(expenserecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxTotal(); ok {
		_spec.AddField(expenserecord.FieldTaxTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expenserecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(expenserecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(expenserecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(expenserecord.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, expenserecord.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(expenserecord.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedByOcr(); ok {
		_spec.SetField(expenserecord.FieldExtractedByOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(expenserecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(expenserecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(expenserecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(expenserecord.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(expenserecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expenserecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExpenseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expenserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
