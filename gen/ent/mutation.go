// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hangarline/fleetdocs/gen/ent/document"
	"github.com/hangarline/fleetdocs/gen/ent/expenserecord"
	"github.com/hangarline/fleetdocs/gen/ent/extractjob"
	"github.com/hangarline/fleetdocs/gen/ent/maintenancerecord"
	"github.com/hangarline/fleetdocs/gen/ent/predicate"
	"github.com/hangarline/fleetdocs/gen/ent/profile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument          = "Document"
	TypeExpenseRecord     = "ExpenseRecord"
	TypeExtractJob        = "ExtractJob"
	TypeMaintenanceRecord = "MaintenanceRecord"
	TypeProfile           = "Profile"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	content_hash               *[]byte
	filename                   *string
	file_ext                   *string
	file_size                  *int
	addfile_size               *int
	page_count                 *int
	addpage_count              *int
	storage_url                *string
	uploaded_at                *time.Time
	clearedFields              map[string]struct{}
	profile                    *uuid.UUID
	clearedprofile             bool
	jobs                       map[uuid.UUID]struct{}
	removedjobs                map[uuid.UUID]struct{}
	clearedjobs                bool
	maintenance_records        map[uuid.UUID]struct{}
	removedmaintenance_records map[uuid.UUID]struct{}
	clearedmaintenance_records bool
	expense_records            map[uuid.UUID]struct{}
	removedexpense_records     map[uuid.UUID]struct{}
	clearedexpense_records     bool
	done                       bool
	oldValue                   func(context.Context) (*Document, error)
	predicates                 []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *DocumentMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *DocumentMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *DocumentMutation) ResetProfileID() {
	m.profile = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetStorageURL sets the "storage_url" field.
func (m *DocumentMutation) SetStorageURL(s string) {
	m.storage_url = &s
}

// StorageURL returns the value of the "storage_url" field in the mutation.
func (m *DocumentMutation) StorageURL() (r string, exists bool) {
	v := m.storage_url
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageURL returns the old "storage_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStorageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageURL: %w", err)
	}
	return oldValue.StorageURL, nil
}

// ClearStorageURL clears the value of the "storage_url" field.
func (m *DocumentMutation) ClearStorageURL() {
	m.storage_url = nil
	m.clearedFields[document.FieldStorageURL] = struct{}{}
}

// StorageURLCleared returns if the "storage_url" field was cleared in this mutation.
func (m *DocumentMutation) StorageURLCleared() bool {
	_, ok := m.clearedFields[document.FieldStorageURL]
	return ok
}

// ResetStorageURL resets all changes to the "storage_url" field.
func (m *DocumentMutation) ResetStorageURL() {
	m.storage_url = nil
	delete(m.clearedFields, document.FieldStorageURL)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *DocumentMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[document.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *DocumentMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *DocumentMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddMaintenanceRecordIDs adds the "maintenance_records" edge to the MaintenanceRecord entity by ids.
func (m *DocumentMutation) AddMaintenanceRecordIDs(ids ...uuid.UUID) {
	if m.maintenance_records == nil {
		m.maintenance_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.maintenance_records[ids[i]] = struct{}{}
	}
}

// ClearMaintenanceRecords clears the "maintenance_records" edge to the MaintenanceRecord entity.
func (m *DocumentMutation) ClearMaintenanceRecords() {
	m.clearedmaintenance_records = true
}

// MaintenanceRecordsCleared reports if the "maintenance_records" edge to the MaintenanceRecord entity was cleared.
func (m *DocumentMutation) MaintenanceRecordsCleared() bool {
	return m.clearedmaintenance_records
}

// RemoveMaintenanceRecordIDs removes the "maintenance_records" edge to the MaintenanceRecord entity by IDs.
func (m *DocumentMutation) RemoveMaintenanceRecordIDs(ids ...uuid.UUID) {
	if m.removedmaintenance_records == nil {
		m.removedmaintenance_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.maintenance_records, ids[i])
		m.removedmaintenance_records[ids[i]] = struct{}{}
	}
}

// RemovedMaintenanceRecords returns the removed IDs of the "maintenance_records" edge to the MaintenanceRecord entity.
func (m *DocumentMutation) RemovedMaintenanceRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedmaintenance_records {
		ids = append(ids, id)
	}
	return
}

// MaintenanceRecordsIDs returns the "maintenance_records" edge IDs in the mutation.
func (m *DocumentMutation) MaintenanceRecordsIDs() (ids []uuid.UUID) {
	for id := range m.maintenance_records {
		ids = append(ids, id)
	}
	return
}

// ResetMaintenanceRecords resets all changes to the "maintenance_records" edge.
func (m *DocumentMutation) ResetMaintenanceRecords() {
	m.maintenance_records = nil
	m.clearedmaintenance_records = false
	m.removedmaintenance_records = nil
}

// AddExpenseRecordIDs adds the "expense_records" edge to the ExpenseRecord entity by ids.
func (m *DocumentMutation) AddExpenseRecordIDs(ids ...uuid.UUID) {
	if m.expense_records == nil {
		m.expense_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.expense_records[ids[i]] = struct{}{}
	}
}

// ClearExpenseRecords clears the "expense_records" edge to the ExpenseRecord entity.
func (m *DocumentMutation) ClearExpenseRecords() {
	m.clearedexpense_records = true
}

// ExpenseRecordsCleared reports if the "expense_records" edge to the ExpenseRecord entity was cleared.
func (m *DocumentMutation) ExpenseRecordsCleared() bool {
	return m.clearedexpense_records
}

// RemoveExpenseRecordIDs removes the "expense_records" edge to the ExpenseRecord entity by IDs.
func (m *DocumentMutation) RemoveExpenseRecordIDs(ids ...uuid.UUID) {
	if m.removedexpense_records == nil {
		m.removedexpense_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.expense_records, ids[i])
		m.removedexpense_records[ids[i]] = struct{}{}
	}
}

// RemovedExpenseRecords returns the removed IDs of the "expense_records" edge to the ExpenseRecord entity.
func (m *DocumentMutation) RemovedExpenseRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedexpense_records {
		ids = append(ids, id)
	}
	return
}

// ExpenseRecordsIDs returns the "expense_records" edge IDs in the mutation.
func (m *DocumentMutation) ExpenseRecordsIDs() (ids []uuid.UUID) {
	for id := range m.expense_records {
		ids = append(ids, id)
	}
	return
}

// ResetExpenseRecords resets all changes to the "expense_records" edge.
func (m *DocumentMutation) ResetExpenseRecords() {
	m.expense_records = nil
	m.clearedexpense_records = false
	m.removedexpense_records = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.profile != nil {
		fields = append(fields, document.FieldProfileID)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.storage_url != nil {
		fields = append(fields, document.FieldStorageURL)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldProfileID:
		return m.ProfileID()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldStorageURL:
		return m.StorageURL()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldProfileID:
		return m.OldProfileID(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldStorageURL:
		return m.OldStorageURL(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldStorageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageURL(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldStorageURL) {
		fields = append(fields, document.FieldStorageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldStorageURL:
		m.ClearStorageURL()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldProfileID:
		m.ResetProfileID()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldStorageURL:
		m.ResetStorageURL()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.profile != nil {
		edges = append(edges, document.EdgeProfile)
	}
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	if m.maintenance_records != nil {
		edges = append(edges, document.EdgeMaintenanceRecords)
	}
	if m.expense_records != nil {
		edges = append(edges, document.EdgeExpenseRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeMaintenanceRecords:
		ids := make([]ent.Value, 0, len(m.maintenance_records))
		for id := range m.maintenance_records {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeExpenseRecords:
		ids := make([]ent.Value, 0, len(m.expense_records))
		for id := range m.expense_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	if m.removedmaintenance_records != nil {
		edges = append(edges, document.EdgeMaintenanceRecords)
	}
	if m.removedexpense_records != nil {
		edges = append(edges, document.EdgeExpenseRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeMaintenanceRecords:
		ids := make([]ent.Value, 0, len(m.removedmaintenance_records))
		for id := range m.removedmaintenance_records {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeExpenseRecords:
		ids := make([]ent.Value, 0, len(m.removedexpense_records))
		for id := range m.removedexpense_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedprofile {
		edges = append(edges, document.EdgeProfile)
	}
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	if m.clearedmaintenance_records {
		edges = append(edges, document.EdgeMaintenanceRecords)
	}
	if m.clearedexpense_records {
		edges = append(edges, document.EdgeExpenseRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeProfile:
		return m.clearedprofile
	case document.EdgeJobs:
		return m.clearedjobs
	case document.EdgeMaintenanceRecords:
		return m.clearedmaintenance_records
	case document.EdgeExpenseRecords:
		return m.clearedexpense_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeProfile:
		m.ResetProfile()
		return nil
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	case document.EdgeMaintenanceRecords:
		m.ResetMaintenanceRecords()
		return nil
	case document.EdgeExpenseRecords:
		m.ResetExpenseRecords()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExpenseRecordMutation represents an operation that mutates the ExpenseRecord nodes in the graph.
type ExpenseRecordMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	vendor_name      *string
	expense_date     *time.Time
	currency_code    *string
	total            *float64
	addtotal         *float64
	tax_total        *float64
	addtax_total     *float64
	category         *string
	description      *string
	flags            *[]string
	appendflags      []string
	extracted_by_ocr *bool
	confidence       *float32
	addconfidence    *float32
	needs_review     *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	profile          *uuid.UUID
	clearedprofile   bool
	document         *uuid.UUID
	cleareddocument  bool
	done             bool
	oldValue         func(context.Context) (*ExpenseRecord, error)
	predicates       []predicate.ExpenseRecord
}

var _ ent.Mutation = (*ExpenseRecordMutation)(nil)

// expenserecordOption allows management of the mutation configuration using functional options.
type expenserecordOption func(*ExpenseRecordMutation)

// newExpenseRecordMutation creates new mutation for the ExpenseRecord entity.
func newExpenseRecordMutation(c config, op Op, opts ...expenserecordOption) *ExpenseRecordMutation {
	m := &ExpenseRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExpenseRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExpenseRecordID sets the ID field of the mutation.
func withExpenseRecordID(id uuid.UUID) expenserecordOption {
	return func(m *ExpenseRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExpenseRecord
		)
		m.oldValue = func(ctx context.Context) (*ExpenseRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExpenseRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExpenseRecord sets the old ExpenseRecord of the mutation.
func withExpenseRecord(node *ExpenseRecord) expenserecordOption {
	return func(m *ExpenseRecordMutation) {
		m.oldValue = func(context.Context) (*ExpenseRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExpenseRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExpenseRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExpenseRecord entities.
func (m *ExpenseRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExpenseRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExpenseRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExpenseRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *ExpenseRecordMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ExpenseRecordMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ExpenseRecordMutation) ResetProfileID() {
	m.profile = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ExpenseRecordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExpenseRecordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExpenseRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *ExpenseRecordMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ExpenseRecordMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldVendorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ExpenseRecordMutation) ResetVendorName() {
	m.vendor_name = nil
}

// SetExpenseDate sets the "expense_date" field.
func (m *ExpenseRecordMutation) SetExpenseDate(t time.Time) {
	m.expense_date = &t
}

// ExpenseDate returns the value of the "expense_date" field in the mutation.
func (m *ExpenseRecordMutation) ExpenseDate() (r time.Time, exists bool) {
	v := m.expense_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpenseDate returns the old "expense_date" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldExpenseDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpenseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpenseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpenseDate: %w", err)
	}
	return oldValue.ExpenseDate, nil
}

// ClearExpenseDate clears the value of the "expense_date" field.
func (m *ExpenseRecordMutation) ClearExpenseDate() {
	m.expense_date = nil
	m.clearedFields[expenserecord.FieldExpenseDate] = struct{}{}
}

// ExpenseDateCleared returns if the "expense_date" field was cleared in this mutation.
func (m *ExpenseRecordMutation) ExpenseDateCleared() bool {
	_, ok := m.clearedFields[expenserecord.FieldExpenseDate]
	return ok
}

// ResetExpenseDate resets all changes to the "expense_date" field.
func (m *ExpenseRecordMutation) ResetExpenseDate() {
	m.expense_date = nil
	delete(m.clearedFields, expenserecord.FieldExpenseDate)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *ExpenseRecordMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *ExpenseRecordMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *ExpenseRecordMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetTotal sets the "total" field.
func (m *ExpenseRecordMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ExpenseRecordMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ExpenseRecordMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ExpenseRecordMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ExpenseRecordMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetTaxTotal sets the "tax_total" field.
func (m *ExpenseRecordMutation) SetTaxTotal(f float64) {
	m.tax_total = &f
	m.addtax_total = nil
}

// TaxTotal returns the value of the "tax_total" field in the mutation.
func (m *ExpenseRecordMutation) TaxTotal() (r float64, exists bool) {
	v := m.tax_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxTotal returns the old "tax_total" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldTaxTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxTotal: %w", err)
	}
	return oldValue.TaxTotal, nil
}

// AddTaxTotal adds f to the "tax_total" field.
func (m *ExpenseRecordMutation) AddTaxTotal(f float64) {
	if m.addtax_total != nil {
		*m.addtax_total += f
	} else {
		m.addtax_total = &f
	}
}

// AddedTaxTotal returns the value that was added to the "tax_total" field in this mutation.
func (m *ExpenseRecordMutation) AddedTaxTotal() (r float64, exists bool) {
	v := m.addtax_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxTotal resets all changes to the "tax_total" field.
func (m *ExpenseRecordMutation) ResetTaxTotal() {
	m.tax_total = nil
	m.addtax_total = nil
}

// SetCategory sets the "category" field.
func (m *ExpenseRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExpenseRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ExpenseRecordMutation) ResetCategory() {
	m.category = nil
}

// SetDescription sets the "description" field.
func (m *ExpenseRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExpenseRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExpenseRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[expenserecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExpenseRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[expenserecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExpenseRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, expenserecord.FieldDescription)
}

// SetFlags sets the "flags" field.
func (m *ExpenseRecordMutation) SetFlags(s []string) {
	m.flags = &s
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *ExpenseRecordMutation) Flags() (r []string, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds s to the "flags" field.
func (m *ExpenseRecordMutation) AppendFlags(s []string) {
	m.appendflags = append(m.appendflags, s...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *ExpenseRecordMutation) AppendedFlags() ([]string, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *ExpenseRecordMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[expenserecord.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *ExpenseRecordMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[expenserecord.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *ExpenseRecordMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, expenserecord.FieldFlags)
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (m *ExpenseRecordMutation) SetExtractedByOcr(b bool) {
	m.extracted_by_ocr = &b
}

// ExtractedByOcr returns the value of the "extracted_by_ocr" field in the mutation.
func (m *ExpenseRecordMutation) ExtractedByOcr() (r bool, exists bool) {
	v := m.extracted_by_ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedByOcr returns the old "extracted_by_ocr" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldExtractedByOcr(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedByOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedByOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedByOcr: %w", err)
	}
	return oldValue.ExtractedByOcr, nil
}

// ResetExtractedByOcr resets all changes to the "extracted_by_ocr" field.
func (m *ExpenseRecordMutation) ResetExtractedByOcr() {
	m.extracted_by_ocr = nil
}

// SetConfidence sets the "confidence" field.
func (m *ExpenseRecordMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExpenseRecordMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExpenseRecordMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExpenseRecordMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ExpenseRecordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[expenserecord.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ExpenseRecordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[expenserecord.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExpenseRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, expenserecord.FieldConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExpenseRecordMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExpenseRecordMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExpenseRecordMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExpenseRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExpenseRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExpenseRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExpenseRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExpenseRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExpenseRecord entity.
// If the ExpenseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExpenseRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExpenseRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ExpenseRecordMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[expenserecord.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ExpenseRecordMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ExpenseRecordMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ExpenseRecordMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExpenseRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[expenserecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExpenseRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExpenseRecordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExpenseRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExpenseRecordMutation builder.
func (m *ExpenseRecordMutation) Where(ps ...predicate.ExpenseRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExpenseRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExpenseRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExpenseRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExpenseRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExpenseRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExpenseRecord).
func (m *ExpenseRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExpenseRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.profile != nil {
		fields = append(fields, expenserecord.FieldProfileID)
	}
	if m.document != nil {
		fields = append(fields, expenserecord.FieldDocumentID)
	}
	if m.vendor_name != nil {
		fields = append(fields, expenserecord.FieldVendorName)
	}
	if m.expense_date != nil {
		fields = append(fields, expenserecord.FieldExpenseDate)
	}
	if m.currency_code != nil {
		fields = append(fields, expenserecord.FieldCurrencyCode)
	}
	if m.total != nil {
		fields = append(fields, expenserecord.FieldTotal)
	}
	if m.tax_total != nil {
		fields = append(fields, expenserecord.FieldTaxTotal)
	}
	if m.category != nil {
		fields = append(fields, expenserecord.FieldCategory)
	}
	if m.description != nil {
		fields = append(fields, expenserecord.FieldDescription)
	}
	if m.flags != nil {
		fields = append(fields, expenserecord.FieldFlags)
	}
	if m.extracted_by_ocr != nil {
		fields = append(fields, expenserecord.FieldExtractedByOcr)
	}
	if m.confidence != nil {
		fields = append(fields, expenserecord.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, expenserecord.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, expenserecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, expenserecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExpenseRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case expenserecord.FieldProfileID:
		return m.ProfileID()
	case expenserecord.FieldDocumentID:
		return m.DocumentID()
	case expenserecord.FieldVendorName:
		return m.VendorName()
	case expenserecord.FieldExpenseDate:
		return m.ExpenseDate()
	case expenserecord.FieldCurrencyCode:
		return m.CurrencyCode()
	case expenserecord.FieldTotal:
		return m.Total()
	case expenserecord.FieldTaxTotal:
		return m.TaxTotal()
	case expenserecord.FieldCategory:
		return m.Category()
	case expenserecord.FieldDescription:
		return m.Description()
	case expenserecord.FieldFlags:
		return m.Flags()
	case expenserecord.FieldExtractedByOcr:
		return m.ExtractedByOcr()
	case expenserecord.FieldConfidence:
		return m.Confidence()
	case expenserecord.FieldNeedsReview:
		return m.NeedsReview()
	case expenserecord.FieldCreatedAt:
		return m.CreatedAt()
	case expenserecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExpenseRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case expenserecord.FieldProfileID:
		return m.OldProfileID(ctx)
	case expenserecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case expenserecord.FieldVendorName:
		return m.OldVendorName(ctx)
	case expenserecord.FieldExpenseDate:
		return m.OldExpenseDate(ctx)
	case expenserecord.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case expenserecord.FieldTotal:
		return m.OldTotal(ctx)
	case expenserecord.FieldTaxTotal:
		return m.OldTaxTotal(ctx)
	case expenserecord.FieldCategory:
		return m.OldCategory(ctx)
	case expenserecord.FieldDescription:
		return m.OldDescription(ctx)
	case expenserecord.FieldFlags:
		return m.OldFlags(ctx)
	case expenserecord.FieldExtractedByOcr:
		return m.OldExtractedByOcr(ctx)
	case expenserecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case expenserecord.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case expenserecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case expenserecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExpenseRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExpenseRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case expenserecord.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case expenserecord.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case expenserecord.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case expenserecord.FieldExpenseDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpenseDate(v)
		return nil
	case expenserecord.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case expenserecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case expenserecord.FieldTaxTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxTotal(v)
		return nil
	case expenserecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case expenserecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case expenserecord.FieldFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case expenserecord.FieldExtractedByOcr:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedByOcr(v)
		return nil
	case expenserecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case expenserecord.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case expenserecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case expenserecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExpenseRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExpenseRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, expenserecord.FieldTotal)
	}
	if m.addtax_total != nil {
		fields = append(fields, expenserecord.FieldTaxTotal)
	}
	if m.addconfidence != nil {
		fields = append(fields, expenserecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExpenseRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case expenserecord.FieldTotal:
		return m.AddedTotal()
	case expenserecord.FieldTaxTotal:
		return m.AddedTaxTotal()
	case expenserecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExpenseRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case expenserecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case expenserecord.FieldTaxTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxTotal(v)
		return nil
	case expenserecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExpenseRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExpenseRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(expenserecord.FieldExpenseDate) {
		fields = append(fields, expenserecord.FieldExpenseDate)
	}
	if m.FieldCleared(expenserecord.FieldDescription) {
		fields = append(fields, expenserecord.FieldDescription)
	}
	if m.FieldCleared(expenserecord.FieldFlags) {
		fields = append(fields, expenserecord.FieldFlags)
	}
	if m.FieldCleared(expenserecord.FieldConfidence) {
		fields = append(fields, expenserecord.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExpenseRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExpenseRecordMutation) ClearField(name string) error {
	switch name {
	case expenserecord.FieldExpenseDate:
		m.ClearExpenseDate()
		return nil
	case expenserecord.FieldDescription:
		m.ClearDescription()
		return nil
	case expenserecord.FieldFlags:
		m.ClearFlags()
		return nil
	case expenserecord.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown ExpenseRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExpenseRecordMutation) ResetField(name string) error {
	switch name {
	case expenserecord.FieldProfileID:
		m.ResetProfileID()
		return nil
	case expenserecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case expenserecord.FieldVendorName:
		m.ResetVendorName()
		return nil
	case expenserecord.FieldExpenseDate:
		m.ResetExpenseDate()
		return nil
	case expenserecord.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case expenserecord.FieldTotal:
		m.ResetTotal()
		return nil
	case expenserecord.FieldTaxTotal:
		m.ResetTaxTotal()
		return nil
	case expenserecord.FieldCategory:
		m.ResetCategory()
		return nil
	case expenserecord.FieldDescription:
		m.ResetDescription()
		return nil
	case expenserecord.FieldFlags:
		m.ResetFlags()
		return nil
	case expenserecord.FieldExtractedByOcr:
		m.ResetExtractedByOcr()
		return nil
	case expenserecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case expenserecord.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case expenserecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case expenserecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExpenseRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExpenseRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, expenserecord.EdgeProfile)
	}
	if m.document != nil {
		edges = append(edges, expenserecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExpenseRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case expenserecord.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case expenserecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExpenseRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExpenseRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExpenseRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, expenserecord.EdgeProfile)
	}
	if m.cleareddocument {
		edges = append(edges, expenserecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExpenseRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case expenserecord.EdgeProfile:
		return m.clearedprofile
	case expenserecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExpenseRecordMutation) ClearEdge(name string) error {
	switch name {
	case expenserecord.EdgeProfile:
		m.ClearProfile()
		return nil
	case expenserecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExpenseRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExpenseRecordMutation) ResetEdge(name string) error {
	switch name {
	case expenserecord.EdgeProfile:
		m.ResetProfile()
		return nil
	case expenserecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExpenseRecord edge %s", name)
}

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	kind             *string
	status           *string
	strategy         *string
	chunks_total     *int
	addchunks_total  *int
	chunks_failed    *int
	addchunks_failed *int
	reject_reason    *string
	error_message    *string
	started_at       *time.Time
	finished_at      *time.Time
	clearedFields    map[string]struct{}
	document         *uuid.UUID
	cleareddocument  bool
	profile          *uuid.UUID
	clearedprofile   bool
	done             bool
	oldValue         func(context.Context) (*ExtractJob, error)
	predicates       []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetProfileID sets the "profile_id" field.
func (m *ExtractJobMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ExtractJobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ExtractJobMutation) ResetProfileID() {
	m.profile = nil
}

// SetKind sets the "kind" field.
func (m *ExtractJobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ExtractJobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ExtractJobMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
}

// SetStrategy sets the "strategy" field.
func (m *ExtractJobMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *ExtractJobMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStrategy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ClearStrategy clears the value of the "strategy" field.
func (m *ExtractJobMutation) ClearStrategy() {
	m.strategy = nil
	m.clearedFields[extractjob.FieldStrategy] = struct{}{}
}

// StrategyCleared returns if the "strategy" field was cleared in this mutation.
func (m *ExtractJobMutation) StrategyCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStrategy]
	return ok
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *ExtractJobMutation) ResetStrategy() {
	m.strategy = nil
	delete(m.clearedFields, extractjob.FieldStrategy)
}

// SetChunksTotal sets the "chunks_total" field.
func (m *ExtractJobMutation) SetChunksTotal(i int) {
	m.chunks_total = &i
	m.addchunks_total = nil
}

// ChunksTotal returns the value of the "chunks_total" field in the mutation.
func (m *ExtractJobMutation) ChunksTotal() (r int, exists bool) {
	v := m.chunks_total
	if v == nil {
		return
	}
	return *v, true
}

// OldChunksTotal returns the old "chunks_total" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldChunksTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunksTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunksTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunksTotal: %w", err)
	}
	return oldValue.ChunksTotal, nil
}

// AddChunksTotal adds i to the "chunks_total" field.
func (m *ExtractJobMutation) AddChunksTotal(i int) {
	if m.addchunks_total != nil {
		*m.addchunks_total += i
	} else {
		m.addchunks_total = &i
	}
}

// AddedChunksTotal returns the value that was added to the "chunks_total" field in this mutation.
func (m *ExtractJobMutation) AddedChunksTotal() (r int, exists bool) {
	v := m.addchunks_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunksTotal resets all changes to the "chunks_total" field.
func (m *ExtractJobMutation) ResetChunksTotal() {
	m.chunks_total = nil
	m.addchunks_total = nil
}

// SetChunksFailed sets the "chunks_failed" field.
func (m *ExtractJobMutation) SetChunksFailed(i int) {
	m.chunks_failed = &i
	m.addchunks_failed = nil
}

// ChunksFailed returns the value of the "chunks_failed" field in the mutation.
func (m *ExtractJobMutation) ChunksFailed() (r int, exists bool) {
	v := m.chunks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldChunksFailed returns the old "chunks_failed" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldChunksFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunksFailed: %w", err)
	}
	return oldValue.ChunksFailed, nil
}

// AddChunksFailed adds i to the "chunks_failed" field.
func (m *ExtractJobMutation) AddChunksFailed(i int) {
	if m.addchunks_failed != nil {
		*m.addchunks_failed += i
	} else {
		m.addchunks_failed = &i
	}
}

// AddedChunksFailed returns the value that was added to the "chunks_failed" field in this mutation.
func (m *ExtractJobMutation) AddedChunksFailed() (r int, exists bool) {
	v := m.addchunks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunksFailed resets all changes to the "chunks_failed" field.
func (m *ExtractJobMutation) ResetChunksFailed() {
	m.chunks_failed = nil
	m.addchunks_failed = nil
}

// SetRejectReason sets the "reject_reason" field.
func (m *ExtractJobMutation) SetRejectReason(s string) {
	m.reject_reason = &s
}

// RejectReason returns the value of the "reject_reason" field in the mutation.
func (m *ExtractJobMutation) RejectReason() (r string, exists bool) {
	v := m.reject_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectReason returns the old "reject_reason" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRejectReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectReason: %w", err)
	}
	return oldValue.RejectReason, nil
}

// ClearRejectReason clears the value of the "reject_reason" field.
func (m *ExtractJobMutation) ClearRejectReason() {
	m.reject_reason = nil
	m.clearedFields[extractjob.FieldRejectReason] = struct{}{}
}

// RejectReasonCleared returns if the "reject_reason" field was cleared in this mutation.
func (m *ExtractJobMutation) RejectReasonCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRejectReason]
	return ok
}

// ResetRejectReason resets all changes to the "reject_reason" field.
func (m *ExtractJobMutation) ResetRejectReason() {
	m.reject_reason = nil
	delete(m.clearedFields, extractjob.FieldRejectReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractjob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ExtractJobMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[extractjob.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ExtractJobMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ExtractJobMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.document != nil {
		fields = append(fields, extractjob.FieldDocumentID)
	}
	if m.profile != nil {
		fields = append(fields, extractjob.FieldProfileID)
	}
	if m.kind != nil {
		fields = append(fields, extractjob.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.strategy != nil {
		fields = append(fields, extractjob.FieldStrategy)
	}
	if m.chunks_total != nil {
		fields = append(fields, extractjob.FieldChunksTotal)
	}
	if m.chunks_failed != nil {
		fields = append(fields, extractjob.FieldChunksFailed)
	}
	if m.reject_reason != nil {
		fields = append(fields, extractjob.FieldRejectReason)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldDocumentID:
		return m.DocumentID()
	case extractjob.FieldProfileID:
		return m.ProfileID()
	case extractjob.FieldKind:
		return m.Kind()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldStrategy:
		return m.Strategy()
	case extractjob.FieldChunksTotal:
		return m.ChunksTotal()
	case extractjob.FieldChunksFailed:
		return m.ChunksFailed()
	case extractjob.FieldRejectReason:
		return m.RejectReason()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractjob.FieldProfileID:
		return m.OldProfileID(ctx)
	case extractjob.FieldKind:
		return m.OldKind(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldStrategy:
		return m.OldStrategy(ctx)
	case extractjob.FieldChunksTotal:
		return m.OldChunksTotal(ctx)
	case extractjob.FieldChunksFailed:
		return m.OldChunksFailed(ctx)
	case extractjob.FieldRejectReason:
		return m.OldRejectReason(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractjob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case extractjob.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case extractjob.FieldChunksTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunksTotal(v)
		return nil
	case extractjob.FieldChunksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunksFailed(v)
		return nil
	case extractjob.FieldRejectReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectReason(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addchunks_total != nil {
		fields = append(fields, extractjob.FieldChunksTotal)
	}
	if m.addchunks_failed != nil {
		fields = append(fields, extractjob.FieldChunksFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldChunksTotal:
		return m.AddedChunksTotal()
	case extractjob.FieldChunksFailed:
		return m.AddedChunksFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldChunksTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunksTotal(v)
		return nil
	case extractjob.FieldChunksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunksFailed(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldStrategy) {
		fields = append(fields, extractjob.FieldStrategy)
	}
	if m.FieldCleared(extractjob.FieldRejectReason) {
		fields = append(fields, extractjob.FieldRejectReason)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldStrategy:
		m.ClearStrategy()
		return nil
	case extractjob.FieldRejectReason:
		m.ClearRejectReason()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractjob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case extractjob.FieldKind:
		m.ResetKind()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldStrategy:
		m.ResetStrategy()
		return nil
	case extractjob.FieldChunksTotal:
		m.ResetChunksTotal()
		return nil
	case extractjob.FieldChunksFailed:
		m.ResetChunksFailed()
		return nil
	case extractjob.FieldRejectReason:
		m.ResetRejectReason()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, extractjob.EdgeDocument)
	}
	if m.profile != nil {
		edges = append(edges, extractjob.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, extractjob.EdgeDocument)
	}
	if m.clearedprofile {
		edges = append(edges, extractjob.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeDocument:
		return m.cleareddocument
	case extractjob.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeDocument:
		m.ClearDocument()
		return nil
	case extractjob.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeDocument:
		m.ResetDocument()
		return nil
	case extractjob.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// MaintenanceRecordMutation represents an operation that mutates the MaintenanceRecord nodes in the graph.
type MaintenanceRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	vendor_name          *string
	invoice_date         *time.Time
	currency_code        *string
	total                *float64
	addtotal             *float64
	labor_total          *float64
	addlabor_total       *float64
	parts_total          *float64
	addparts_total       *float64
	services_total       *float64
	addservices_total    *float64
	freight_total        *float64
	addfreight_total     *float64
	tax_total            *float64
	addtax_total         *float64
	work_order           *string
	vehicle_registration *string
	serial_number        *string
	parts                *json.RawMessage
	appendparts          json.RawMessage
	flags                *[]string
	appendflags          []string
	extracted_by_ocr     *bool
	confidence           *float32
	addconfidence        *float32
	needs_review         *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	profile              *uuid.UUID
	clearedprofile       bool
	document             *uuid.UUID
	cleareddocument      bool
	done                 bool
	oldValue             func(context.Context) (*MaintenanceRecord, error)
	predicates           []predicate.MaintenanceRecord
}

var _ ent.Mutation = (*MaintenanceRecordMutation)(nil)

// maintenancerecordOption allows management of the mutation configuration using functional options.
type maintenancerecordOption func(*MaintenanceRecordMutation)

// newMaintenanceRecordMutation creates new mutation for the MaintenanceRecord entity.
func newMaintenanceRecordMutation(c config, op Op, opts ...maintenancerecordOption) *MaintenanceRecordMutation {
	m := &MaintenanceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMaintenanceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaintenanceRecordID sets the ID field of the mutation.
func withMaintenanceRecordID(id uuid.UUID) maintenancerecordOption {
	return func(m *MaintenanceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MaintenanceRecord
		)
		m.oldValue = func(ctx context.Context) (*MaintenanceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MaintenanceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaintenanceRecord sets the old MaintenanceRecord of the mutation.
func withMaintenanceRecord(node *MaintenanceRecord) maintenancerecordOption {
	return func(m *MaintenanceRecordMutation) {
		m.oldValue = func(context.Context) (*MaintenanceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaintenanceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaintenanceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MaintenanceRecord entities.
func (m *MaintenanceRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaintenanceRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaintenanceRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MaintenanceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *MaintenanceRecordMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *MaintenanceRecordMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *MaintenanceRecordMutation) ResetProfileID() {
	m.profile = nil
}

// SetDocumentID sets the "document_id" field.
func (m *MaintenanceRecordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *MaintenanceRecordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *MaintenanceRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *MaintenanceRecordMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *MaintenanceRecordMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldVendorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *MaintenanceRecordMutation) ResetVendorName() {
	m.vendor_name = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *MaintenanceRecordMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *MaintenanceRecordMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *MaintenanceRecordMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[maintenancerecord.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *MaintenanceRecordMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, maintenancerecord.FieldInvoiceDate)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *MaintenanceRecordMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *MaintenanceRecordMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *MaintenanceRecordMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetTotal sets the "total" field.
func (m *MaintenanceRecordMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *MaintenanceRecordMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *MaintenanceRecordMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *MaintenanceRecordMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *MaintenanceRecordMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetLaborTotal sets the "labor_total" field.
func (m *MaintenanceRecordMutation) SetLaborTotal(f float64) {
	m.labor_total = &f
	m.addlabor_total = nil
}

// LaborTotal returns the value of the "labor_total" field in the mutation.
func (m *MaintenanceRecordMutation) LaborTotal() (r float64, exists bool) {
	v := m.labor_total
	if v == nil {
		return
	}
	return *v, true
}

// OldLaborTotal returns the old "labor_total" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldLaborTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaborTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaborTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaborTotal: %w", err)
	}
	return oldValue.LaborTotal, nil
}

// AddLaborTotal adds f to the "labor_total" field.
func (m *MaintenanceRecordMutation) AddLaborTotal(f float64) {
	if m.addlabor_total != nil {
		*m.addlabor_total += f
	} else {
		m.addlabor_total = &f
	}
}

// AddedLaborTotal returns the value that was added to the "labor_total" field in this mutation.
func (m *MaintenanceRecordMutation) AddedLaborTotal() (r float64, exists bool) {
	v := m.addlabor_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetLaborTotal resets all changes to the "labor_total" field.
func (m *MaintenanceRecordMutation) ResetLaborTotal() {
	m.labor_total = nil
	m.addlabor_total = nil
}

// SetPartsTotal sets the "parts_total" field.
func (m *MaintenanceRecordMutation) SetPartsTotal(f float64) {
	m.parts_total = &f
	m.addparts_total = nil
}

// PartsTotal returns the value of the "parts_total" field in the mutation.
func (m *MaintenanceRecordMutation) PartsTotal() (r float64, exists bool) {
	v := m.parts_total
	if v == nil {
		return
	}
	return *v, true
}

// OldPartsTotal returns the old "parts_total" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldPartsTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartsTotal: %w", err)
	}
	return oldValue.PartsTotal, nil
}

// AddPartsTotal adds f to the "parts_total" field.
func (m *MaintenanceRecordMutation) AddPartsTotal(f float64) {
	if m.addparts_total != nil {
		*m.addparts_total += f
	} else {
		m.addparts_total = &f
	}
}

// AddedPartsTotal returns the value that was added to the "parts_total" field in this mutation.
func (m *MaintenanceRecordMutation) AddedPartsTotal() (r float64, exists bool) {
	v := m.addparts_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetPartsTotal resets all changes to the "parts_total" field.
func (m *MaintenanceRecordMutation) ResetPartsTotal() {
	m.parts_total = nil
	m.addparts_total = nil
}

// SetServicesTotal sets the "services_total" field.
func (m *MaintenanceRecordMutation) SetServicesTotal(f float64) {
	m.services_total = &f
	m.addservices_total = nil
}

// ServicesTotal returns the value of the "services_total" field in the mutation.
func (m *MaintenanceRecordMutation) ServicesTotal() (r float64, exists bool) {
	v := m.services_total
	if v == nil {
		return
	}
	return *v, true
}

// OldServicesTotal returns the old "services_total" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldServicesTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServicesTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServicesTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServicesTotal: %w", err)
	}
	return oldValue.ServicesTotal, nil
}

// AddServicesTotal adds f to the "services_total" field.
func (m *MaintenanceRecordMutation) AddServicesTotal(f float64) {
	if m.addservices_total != nil {
		*m.addservices_total += f
	} else {
		m.addservices_total = &f
	}
}

// AddedServicesTotal returns the value that was added to the "services_total" field in this mutation.
func (m *MaintenanceRecordMutation) AddedServicesTotal() (r float64, exists bool) {
	v := m.addservices_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetServicesTotal resets all changes to the "services_total" field.
func (m *MaintenanceRecordMutation) ResetServicesTotal() {
	m.services_total = nil
	m.addservices_total = nil
}

// SetFreightTotal sets the "freight_total" field.
func (m *MaintenanceRecordMutation) SetFreightTotal(f float64) {
	m.freight_total = &f
	m.addfreight_total = nil
}

// FreightTotal returns the value of the "freight_total" field in the mutation.
func (m *MaintenanceRecordMutation) FreightTotal() (r float64, exists bool) {
	v := m.freight_total
	if v == nil {
		return
	}
	return *v, true
}

// OldFreightTotal returns the old "freight_total" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldFreightTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreightTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreightTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreightTotal: %w", err)
	}
	return oldValue.FreightTotal, nil
}

// AddFreightTotal adds f to the "freight_total" field.
func (m *MaintenanceRecordMutation) AddFreightTotal(f float64) {
	if m.addfreight_total != nil {
		*m.addfreight_total += f
	} else {
		m.addfreight_total = &f
	}
}

// AddedFreightTotal returns the value that was added to the "freight_total" field in this mutation.
func (m *MaintenanceRecordMutation) AddedFreightTotal() (r float64, exists bool) {
	v := m.addfreight_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetFreightTotal resets all changes to the "freight_total" field.
func (m *MaintenanceRecordMutation) ResetFreightTotal() {
	m.freight_total = nil
	m.addfreight_total = nil
}

// SetTaxTotal sets the "tax_total" field.
func (m *MaintenanceRecordMutation) SetTaxTotal(f float64) {
	m.tax_total = &f
	m.addtax_total = nil
}

// TaxTotal returns the value of the "tax_total" field in the mutation.
func (m *MaintenanceRecordMutation) TaxTotal() (r float64, exists bool) {
	v := m.tax_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxTotal returns the old "tax_total" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldTaxTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxTotal: %w", err)
	}
	return oldValue.TaxTotal, nil
}

// AddTaxTotal adds f to the "tax_total" field.
func (m *MaintenanceRecordMutation) AddTaxTotal(f float64) {
	if m.addtax_total != nil {
		*m.addtax_total += f
	} else {
		m.addtax_total = &f
	}
}

// AddedTaxTotal returns the value that was added to the "tax_total" field in this mutation.
func (m *MaintenanceRecordMutation) AddedTaxTotal() (r float64, exists bool) {
	v := m.addtax_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaxTotal resets all changes to the "tax_total" field.
func (m *MaintenanceRecordMutation) ResetTaxTotal() {
	m.tax_total = nil
	m.addtax_total = nil
}

// SetWorkOrder sets the "work_order" field.
func (m *MaintenanceRecordMutation) SetWorkOrder(s string) {
	m.work_order = &s
}

// WorkOrder returns the value of the "work_order" field in the mutation.
func (m *MaintenanceRecordMutation) WorkOrder() (r string, exists bool) {
	v := m.work_order
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkOrder returns the old "work_order" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldWorkOrder(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkOrder: %w", err)
	}
	return oldValue.WorkOrder, nil
}

// ClearWorkOrder clears the value of the "work_order" field.
func (m *MaintenanceRecordMutation) ClearWorkOrder() {
	m.work_order = nil
	m.clearedFields[maintenancerecord.FieldWorkOrder] = struct{}{}
}

// WorkOrderCleared returns if the "work_order" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) WorkOrderCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldWorkOrder]
	return ok
}

// ResetWorkOrder resets all changes to the "work_order" field.
func (m *MaintenanceRecordMutation) ResetWorkOrder() {
	m.work_order = nil
	delete(m.clearedFields, maintenancerecord.FieldWorkOrder)
}

// SetVehicleRegistration sets the "vehicle_registration" field.
func (m *MaintenanceRecordMutation) SetVehicleRegistration(s string) {
	m.vehicle_registration = &s
}

// VehicleRegistration returns the value of the "vehicle_registration" field in the mutation.
func (m *MaintenanceRecordMutation) VehicleRegistration() (r string, exists bool) {
	v := m.vehicle_registration
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleRegistration returns the old "vehicle_registration" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldVehicleRegistration(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleRegistration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleRegistration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleRegistration: %w", err)
	}
	return oldValue.VehicleRegistration, nil
}

// ClearVehicleRegistration clears the value of the "vehicle_registration" field.
func (m *MaintenanceRecordMutation) ClearVehicleRegistration() {
	m.vehicle_registration = nil
	m.clearedFields[maintenancerecord.FieldVehicleRegistration] = struct{}{}
}

// VehicleRegistrationCleared returns if the "vehicle_registration" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) VehicleRegistrationCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldVehicleRegistration]
	return ok
}

// ResetVehicleRegistration resets all changes to the "vehicle_registration" field.
func (m *MaintenanceRecordMutation) ResetVehicleRegistration() {
	m.vehicle_registration = nil
	delete(m.clearedFields, maintenancerecord.FieldVehicleRegistration)
}

// SetSerialNumber sets the "serial_number" field.
func (m *MaintenanceRecordMutation) SetSerialNumber(s string) {
	m.serial_number = &s
}

// SerialNumber returns the value of the "serial_number" field in the mutation.
func (m *MaintenanceRecordMutation) SerialNumber() (r string, exists bool) {
	v := m.serial_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSerialNumber returns the old "serial_number" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldSerialNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerialNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerialNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerialNumber: %w", err)
	}
	return oldValue.SerialNumber, nil
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (m *MaintenanceRecordMutation) ClearSerialNumber() {
	m.serial_number = nil
	m.clearedFields[maintenancerecord.FieldSerialNumber] = struct{}{}
}

// SerialNumberCleared returns if the "serial_number" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) SerialNumberCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldSerialNumber]
	return ok
}

// ResetSerialNumber resets all changes to the "serial_number" field.
func (m *MaintenanceRecordMutation) ResetSerialNumber() {
	m.serial_number = nil
	delete(m.clearedFields, maintenancerecord.FieldSerialNumber)
}

// SetParts sets the "parts" field.
func (m *MaintenanceRecordMutation) SetParts(jm json.RawMessage) {
	m.parts = &jm
	m.appendparts = nil
}

// Parts returns the value of the "parts" field in the mutation.
func (m *MaintenanceRecordMutation) Parts() (r json.RawMessage, exists bool) {
	v := m.parts
	if v == nil {
		return
	}
	return *v, true
}

// OldParts returns the old "parts" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldParts(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParts: %w", err)
	}
	return oldValue.Parts, nil
}

// AppendParts adds jm to the "parts" field.
func (m *MaintenanceRecordMutation) AppendParts(jm json.RawMessage) {
	m.appendparts = append(m.appendparts, jm...)
}

// AppendedParts returns the list of values that were appended to the "parts" field in this mutation.
func (m *MaintenanceRecordMutation) AppendedParts() (json.RawMessage, bool) {
	if len(m.appendparts) == 0 {
		return nil, false
	}
	return m.appendparts, true
}

// ClearParts clears the value of the "parts" field.
func (m *MaintenanceRecordMutation) ClearParts() {
	m.parts = nil
	m.appendparts = nil
	m.clearedFields[maintenancerecord.FieldParts] = struct{}{}
}

// PartsCleared returns if the "parts" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) PartsCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldParts]
	return ok
}

// ResetParts resets all changes to the "parts" field.
func (m *MaintenanceRecordMutation) ResetParts() {
	m.parts = nil
	m.appendparts = nil
	delete(m.clearedFields, maintenancerecord.FieldParts)
}

// SetFlags sets the "flags" field.
func (m *MaintenanceRecordMutation) SetFlags(s []string) {
	m.flags = &s
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *MaintenanceRecordMutation) Flags() (r []string, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds s to the "flags" field.
func (m *MaintenanceRecordMutation) AppendFlags(s []string) {
	m.appendflags = append(m.appendflags, s...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *MaintenanceRecordMutation) AppendedFlags() ([]string, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *MaintenanceRecordMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[maintenancerecord.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *MaintenanceRecordMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, maintenancerecord.FieldFlags)
}

// SetExtractedByOcr sets the "extracted_by_ocr" field.
func (m *MaintenanceRecordMutation) SetExtractedByOcr(b bool) {
	m.extracted_by_ocr = &b
}

// ExtractedByOcr returns the value of the "extracted_by_ocr" field in the mutation.
func (m *MaintenanceRecordMutation) ExtractedByOcr() (r bool, exists bool) {
	v := m.extracted_by_ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedByOcr returns the old "extracted_by_ocr" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldExtractedByOcr(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedByOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedByOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedByOcr: %w", err)
	}
	return oldValue.ExtractedByOcr, nil
}

// ResetExtractedByOcr resets all changes to the "extracted_by_ocr" field.
func (m *MaintenanceRecordMutation) ResetExtractedByOcr() {
	m.extracted_by_ocr = nil
}

// SetConfidence sets the "confidence" field.
func (m *MaintenanceRecordMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MaintenanceRecordMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *MaintenanceRecordMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MaintenanceRecordMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *MaintenanceRecordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[maintenancerecord.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *MaintenanceRecordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[maintenancerecord.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MaintenanceRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, maintenancerecord.FieldConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *MaintenanceRecordMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *MaintenanceRecordMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *MaintenanceRecordMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MaintenanceRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaintenanceRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaintenanceRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MaintenanceRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MaintenanceRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MaintenanceRecord entity.
// If the MaintenanceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaintenanceRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MaintenanceRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *MaintenanceRecordMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[maintenancerecord.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *MaintenanceRecordMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *MaintenanceRecordMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *MaintenanceRecordMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *MaintenanceRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[maintenancerecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *MaintenanceRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *MaintenanceRecordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *MaintenanceRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the MaintenanceRecordMutation builder.
func (m *MaintenanceRecordMutation) Where(ps ...predicate.MaintenanceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaintenanceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaintenanceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MaintenanceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaintenanceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaintenanceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MaintenanceRecord).
func (m *MaintenanceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaintenanceRecordMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.profile != nil {
		fields = append(fields, maintenancerecord.FieldProfileID)
	}
	if m.document != nil {
		fields = append(fields, maintenancerecord.FieldDocumentID)
	}
	if m.vendor_name != nil {
		fields = append(fields, maintenancerecord.FieldVendorName)
	}
	if m.invoice_date != nil {
		fields = append(fields, maintenancerecord.FieldInvoiceDate)
	}
	if m.currency_code != nil {
		fields = append(fields, maintenancerecord.FieldCurrencyCode)
	}
	if m.total != nil {
		fields = append(fields, maintenancerecord.FieldTotal)
	}
	if m.labor_total != nil {
		fields = append(fields, maintenancerecord.FieldLaborTotal)
	}
	if m.parts_total != nil {
		fields = append(fields, maintenancerecord.FieldPartsTotal)
	}
	if m.services_total != nil {
		fields = append(fields, maintenancerecord.FieldServicesTotal)
	}
	if m.freight_total != nil {
		fields = append(fields, maintenancerecord.FieldFreightTotal)
	}
	if m.tax_total != nil {
		fields = append(fields, maintenancerecord.FieldTaxTotal)
	}
	if m.work_order != nil {
		fields = append(fields, maintenancerecord.FieldWorkOrder)
	}
	if m.vehicle_registration != nil {
		fields = append(fields, maintenancerecord.FieldVehicleRegistration)
	}
	if m.serial_number != nil {
		fields = append(fields, maintenancerecord.FieldSerialNumber)
	}
	if m.parts != nil {
		fields = append(fields, maintenancerecord.FieldParts)
	}
	if m.flags != nil {
		fields = append(fields, maintenancerecord.FieldFlags)
	}
	if m.extracted_by_ocr != nil {
		fields = append(fields, maintenancerecord.FieldExtractedByOcr)
	}
	if m.confidence != nil {
		fields = append(fields, maintenancerecord.FieldConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, maintenancerecord.FieldNeedsReview)
	}
	if m.created_at != nil {
		fields = append(fields, maintenancerecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, maintenancerecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaintenanceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case maintenancerecord.FieldProfileID:
		return m.ProfileID()
	case maintenancerecord.FieldDocumentID:
		return m.DocumentID()
	case maintenancerecord.FieldVendorName:
		return m.VendorName()
	case maintenancerecord.FieldInvoiceDate:
		return m.InvoiceDate()
	case maintenancerecord.FieldCurrencyCode:
		return m.CurrencyCode()
	case maintenancerecord.FieldTotal:
		return m.Total()
	case maintenancerecord.FieldLaborTotal:
		return m.LaborTotal()
	case maintenancerecord.FieldPartsTotal:
		return m.PartsTotal()
	case maintenancerecord.FieldServicesTotal:
		return m.ServicesTotal()
	case maintenancerecord.FieldFreightTotal:
		return m.FreightTotal()
	case maintenancerecord.FieldTaxTotal:
		return m.TaxTotal()
	case maintenancerecord.FieldWorkOrder:
		return m.WorkOrder()
	case maintenancerecord.FieldVehicleRegistration:
		return m.VehicleRegistration()
	case maintenancerecord.FieldSerialNumber:
		return m.SerialNumber()
	case maintenancerecord.FieldParts:
		return m.Parts()
	case maintenancerecord.FieldFlags:
		return m.Flags()
	case maintenancerecord.FieldExtractedByOcr:
		return m.ExtractedByOcr()
	case maintenancerecord.FieldConfidence:
		return m.Confidence()
	case maintenancerecord.FieldNeedsReview:
		return m.NeedsReview()
	case maintenancerecord.FieldCreatedAt:
		return m.CreatedAt()
	case maintenancerecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaintenanceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case maintenancerecord.FieldProfileID:
		return m.OldProfileID(ctx)
	case maintenancerecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case maintenancerecord.FieldVendorName:
		return m.OldVendorName(ctx)
	case maintenancerecord.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case maintenancerecord.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case maintenancerecord.FieldTotal:
		return m.OldTotal(ctx)
	case maintenancerecord.FieldLaborTotal:
		return m.OldLaborTotal(ctx)
	case maintenancerecord.FieldPartsTotal:
		return m.OldPartsTotal(ctx)
	case maintenancerecord.FieldServicesTotal:
		return m.OldServicesTotal(ctx)
	case maintenancerecord.FieldFreightTotal:
		return m.OldFreightTotal(ctx)
	case maintenancerecord.FieldTaxTotal:
		return m.OldTaxTotal(ctx)
	case maintenancerecord.FieldWorkOrder:
		return m.OldWorkOrder(ctx)
	case maintenancerecord.FieldVehicleRegistration:
		return m.OldVehicleRegistration(ctx)
	case maintenancerecord.FieldSerialNumber:
		return m.OldSerialNumber(ctx)
	case maintenancerecord.FieldParts:
		return m.OldParts(ctx)
	case maintenancerecord.FieldFlags:
		return m.OldFlags(ctx)
	case maintenancerecord.FieldExtractedByOcr:
		return m.OldExtractedByOcr(ctx)
	case maintenancerecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case maintenancerecord.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case maintenancerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case maintenancerecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MaintenanceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaintenanceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case maintenancerecord.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case maintenancerecord.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case maintenancerecord.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case maintenancerecord.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case maintenancerecord.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case maintenancerecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case maintenancerecord.FieldLaborTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaborTotal(v)
		return nil
	case maintenancerecord.FieldPartsTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartsTotal(v)
		return nil
	case maintenancerecord.FieldServicesTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServicesTotal(v)
		return nil
	case maintenancerecord.FieldFreightTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreightTotal(v)
		return nil
	case maintenancerecord.FieldTaxTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxTotal(v)
		return nil
	case maintenancerecord.FieldWorkOrder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkOrder(v)
		return nil
	case maintenancerecord.FieldVehicleRegistration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleRegistration(v)
		return nil
	case maintenancerecord.FieldSerialNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerialNumber(v)
		return nil
	case maintenancerecord.FieldParts:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParts(v)
		return nil
	case maintenancerecord.FieldFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case maintenancerecord.FieldExtractedByOcr:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedByOcr(v)
		return nil
	case maintenancerecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case maintenancerecord.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case maintenancerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case maintenancerecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MaintenanceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaintenanceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, maintenancerecord.FieldTotal)
	}
	if m.addlabor_total != nil {
		fields = append(fields, maintenancerecord.FieldLaborTotal)
	}
	if m.addparts_total != nil {
		fields = append(fields, maintenancerecord.FieldPartsTotal)
	}
	if m.addservices_total != nil {
		fields = append(fields, maintenancerecord.FieldServicesTotal)
	}
	if m.addfreight_total != nil {
		fields = append(fields, maintenancerecord.FieldFreightTotal)
	}
	if m.addtax_total != nil {
		fields = append(fields, maintenancerecord.FieldTaxTotal)
	}
	if m.addconfidence != nil {
		fields = append(fields, maintenancerecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaintenanceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case maintenancerecord.FieldTotal:
		return m.AddedTotal()
	case maintenancerecord.FieldLaborTotal:
		return m.AddedLaborTotal()
	case maintenancerecord.FieldPartsTotal:
		return m.AddedPartsTotal()
	case maintenancerecord.FieldServicesTotal:
		return m.AddedServicesTotal()
	case maintenancerecord.FieldFreightTotal:
		return m.AddedFreightTotal()
	case maintenancerecord.FieldTaxTotal:
		return m.AddedTaxTotal()
	case maintenancerecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaintenanceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case maintenancerecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case maintenancerecord.FieldLaborTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLaborTotal(v)
		return nil
	case maintenancerecord.FieldPartsTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPartsTotal(v)
		return nil
	case maintenancerecord.FieldServicesTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddServicesTotal(v)
		return nil
	case maintenancerecord.FieldFreightTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreightTotal(v)
		return nil
	case maintenancerecord.FieldTaxTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxTotal(v)
		return nil
	case maintenancerecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown MaintenanceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaintenanceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(maintenancerecord.FieldInvoiceDate) {
		fields = append(fields, maintenancerecord.FieldInvoiceDate)
	}
	if m.FieldCleared(maintenancerecord.FieldWorkOrder) {
		fields = append(fields, maintenancerecord.FieldWorkOrder)
	}
	if m.FieldCleared(maintenancerecord.FieldVehicleRegistration) {
		fields = append(fields, maintenancerecord.FieldVehicleRegistration)
	}
	if m.FieldCleared(maintenancerecord.FieldSerialNumber) {
		fields = append(fields, maintenancerecord.FieldSerialNumber)
	}
	if m.FieldCleared(maintenancerecord.FieldParts) {
		fields = append(fields, maintenancerecord.FieldParts)
	}
	if m.FieldCleared(maintenancerecord.FieldFlags) {
		fields = append(fields, maintenancerecord.FieldFlags)
	}
	if m.FieldCleared(maintenancerecord.FieldConfidence) {
		fields = append(fields, maintenancerecord.FieldConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaintenanceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaintenanceRecordMutation) ClearField(name string) error {
	switch name {
	case maintenancerecord.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case maintenancerecord.FieldWorkOrder:
		m.ClearWorkOrder()
		return nil
	case maintenancerecord.FieldVehicleRegistration:
		m.ClearVehicleRegistration()
		return nil
	case maintenancerecord.FieldSerialNumber:
		m.ClearSerialNumber()
		return nil
	case maintenancerecord.FieldParts:
		m.ClearParts()
		return nil
	case maintenancerecord.FieldFlags:
		m.ClearFlags()
		return nil
	case maintenancerecord.FieldConfidence:
		m.ClearConfidence()
		return nil
	}
	return fmt.Errorf("unknown MaintenanceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaintenanceRecordMutation) ResetField(name string) error {
	switch name {
	case maintenancerecord.FieldProfileID:
		m.ResetProfileID()
		return nil
	case maintenancerecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case maintenancerecord.FieldVendorName:
		m.ResetVendorName()
		return nil
	case maintenancerecord.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case maintenancerecord.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case maintenancerecord.FieldTotal:
		m.ResetTotal()
		return nil
	case maintenancerecord.FieldLaborTotal:
		m.ResetLaborTotal()
		return nil
	case maintenancerecord.FieldPartsTotal:
		m.ResetPartsTotal()
		return nil
	case maintenancerecord.FieldServicesTotal:
		m.ResetServicesTotal()
		return nil
	case maintenancerecord.FieldFreightTotal:
		m.ResetFreightTotal()
		return nil
	case maintenancerecord.FieldTaxTotal:
		m.ResetTaxTotal()
		return nil
	case maintenancerecord.FieldWorkOrder:
		m.ResetWorkOrder()
		return nil
	case maintenancerecord.FieldVehicleRegistration:
		m.ResetVehicleRegistration()
		return nil
	case maintenancerecord.FieldSerialNumber:
		m.ResetSerialNumber()
		return nil
	case maintenancerecord.FieldParts:
		m.ResetParts()
		return nil
	case maintenancerecord.FieldFlags:
		m.ResetFlags()
		return nil
	case maintenancerecord.FieldExtractedByOcr:
		m.ResetExtractedByOcr()
		return nil
	case maintenancerecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case maintenancerecord.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case maintenancerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case maintenancerecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MaintenanceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaintenanceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, maintenancerecord.EdgeProfile)
	}
	if m.document != nil {
		edges = append(edges, maintenancerecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaintenanceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case maintenancerecord.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case maintenancerecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaintenanceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaintenanceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaintenanceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, maintenancerecord.EdgeProfile)
	}
	if m.cleareddocument {
		edges = append(edges, maintenancerecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaintenanceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case maintenancerecord.EdgeProfile:
		return m.clearedprofile
	case maintenancerecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaintenanceRecordMutation) ClearEdge(name string) error {
	switch name {
	case maintenancerecord.EdgeProfile:
		m.ClearProfile()
		return nil
	case maintenancerecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown MaintenanceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaintenanceRecordMutation) ResetEdge(name string) error {
	switch name {
	case maintenancerecord.EdgeProfile:
		m.ResetProfile()
		return nil
	case maintenancerecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown MaintenanceRecord edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	name                       *string
	email                      *string
	default_currency           *string
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	documents                  map[uuid.UUID]struct{}
	removeddocuments           map[uuid.UUID]struct{}
	cleareddocuments           bool
	maintenance_records        map[uuid.UUID]struct{}
	removedmaintenance_records map[uuid.UUID]struct{}
	clearedmaintenance_records bool
	expense_records            map[uuid.UUID]struct{}
	removedexpense_records     map[uuid.UUID]struct{}
	clearedexpense_records     bool
	jobs                       map[uuid.UUID]struct{}
	removedjobs                map[uuid.UUID]struct{}
	clearedjobs                bool
	done                       bool
	oldValue                   func(context.Context) (*Profile, error)
	predicates                 []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[profile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[profile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, profile.FieldEmail)
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *ProfileMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *ProfileMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *ProfileMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ProfileMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ProfileMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ProfileMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ProfileMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ProfileMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ProfileMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ProfileMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddMaintenanceRecordIDs adds the "maintenance_records" edge to the MaintenanceRecord entity by ids.
func (m *ProfileMutation) AddMaintenanceRecordIDs(ids ...uuid.UUID) {
	if m.maintenance_records == nil {
		m.maintenance_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.maintenance_records[ids[i]] = struct{}{}
	}
}

// ClearMaintenanceRecords clears the "maintenance_records" edge to the MaintenanceRecord entity.
func (m *ProfileMutation) ClearMaintenanceRecords() {
	m.clearedmaintenance_records = true
}

// MaintenanceRecordsCleared reports if the "maintenance_records" edge to the MaintenanceRecord entity was cleared.
func (m *ProfileMutation) MaintenanceRecordsCleared() bool {
	return m.clearedmaintenance_records
}

// RemoveMaintenanceRecordIDs removes the "maintenance_records" edge to the MaintenanceRecord entity by IDs.
func (m *ProfileMutation) RemoveMaintenanceRecordIDs(ids ...uuid.UUID) {
	if m.removedmaintenance_records == nil {
		m.removedmaintenance_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.maintenance_records, ids[i])
		m.removedmaintenance_records[ids[i]] = struct{}{}
	}
}

// RemovedMaintenanceRecords returns the removed IDs of the "maintenance_records" edge to the MaintenanceRecord entity.
func (m *ProfileMutation) RemovedMaintenanceRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedmaintenance_records {
		ids = append(ids, id)
	}
	return
}

// MaintenanceRecordsIDs returns the "maintenance_records" edge IDs in the mutation.
func (m *ProfileMutation) MaintenanceRecordsIDs() (ids []uuid.UUID) {
	for id := range m.maintenance_records {
		ids = append(ids, id)
	}
	return
}

// ResetMaintenanceRecords resets all changes to the "maintenance_records" edge.
func (m *ProfileMutation) ResetMaintenanceRecords() {
	m.maintenance_records = nil
	m.clearedmaintenance_records = false
	m.removedmaintenance_records = nil
}

// AddExpenseRecordIDs adds the "expense_records" edge to the ExpenseRecord entity by ids.
func (m *ProfileMutation) AddExpenseRecordIDs(ids ...uuid.UUID) {
	if m.expense_records == nil {
		m.expense_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.expense_records[ids[i]] = struct{}{}
	}
}

// ClearExpenseRecords clears the "expense_records" edge to the ExpenseRecord entity.
func (m *ProfileMutation) ClearExpenseRecords() {
	m.clearedexpense_records = true
}

// ExpenseRecordsCleared reports if the "expense_records" edge to the ExpenseRecord entity was cleared.
func (m *ProfileMutation) ExpenseRecordsCleared() bool {
	return m.clearedexpense_records
}

// RemoveExpenseRecordIDs removes the "expense_records" edge to the ExpenseRecord entity by IDs.
func (m *ProfileMutation) RemoveExpenseRecordIDs(ids ...uuid.UUID) {
	if m.removedexpense_records == nil {
		m.removedexpense_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.expense_records, ids[i])
		m.removedexpense_records[ids[i]] = struct{}{}
	}
}

// RemovedExpenseRecords returns the removed IDs of the "expense_records" edge to the ExpenseRecord entity.
func (m *ProfileMutation) RemovedExpenseRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedexpense_records {
		ids = append(ids, id)
	}
	return
}

// ExpenseRecordsIDs returns the "expense_records" edge IDs in the mutation.
func (m *ProfileMutation) ExpenseRecordsIDs() (ids []uuid.UUID) {
	for id := range m.expense_records {
		ids = append(ids, id)
	}
	return
}

// ResetExpenseRecords resets all changes to the "expense_records" edge.
func (m *ProfileMutation) ResetExpenseRecords() {
	m.expense_records = nil
	m.clearedexpense_records = false
	m.removedexpense_records = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ProfileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ProfileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ProfileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ProfileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ProfileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProfileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProfileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.default_currency != nil {
		fields = append(fields, profile.FieldDefaultCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldEmail) {
		fields = append(fields, profile.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.documents != nil {
		edges = append(edges, profile.EdgeDocuments)
	}
	if m.maintenance_records != nil {
		edges = append(edges, profile.EdgeMaintenanceRecords)
	}
	if m.expense_records != nil {
		edges = append(edges, profile.EdgeExpenseRecords)
	}
	if m.jobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeMaintenanceRecords:
		ids := make([]ent.Value, 0, len(m.maintenance_records))
		for id := range m.maintenance_records {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeExpenseRecords:
		ids := make([]ent.Value, 0, len(m.expense_records))
		for id := range m.expense_records {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddocuments != nil {
		edges = append(edges, profile.EdgeDocuments)
	}
	if m.removedmaintenance_records != nil {
		edges = append(edges, profile.EdgeMaintenanceRecords)
	}
	if m.removedexpense_records != nil {
		edges = append(edges, profile.EdgeExpenseRecords)
	}
	if m.removedjobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeMaintenanceRecords:
		ids := make([]ent.Value, 0, len(m.removedmaintenance_records))
		for id := range m.removedmaintenance_records {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeExpenseRecords:
		ids := make([]ent.Value, 0, len(m.removedexpense_records))
		for id := range m.removedexpense_records {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareddocuments {
		edges = append(edges, profile.EdgeDocuments)
	}
	if m.clearedmaintenance_records {
		edges = append(edges, profile.EdgeMaintenanceRecords)
	}
	if m.clearedexpense_records {
		edges = append(edges, profile.EdgeExpenseRecords)
	}
	if m.clearedjobs {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeDocuments:
		return m.cleareddocuments
	case profile.EdgeMaintenanceRecords:
		return m.clearedmaintenance_records
	case profile.EdgeExpenseRecords:
		return m.clearedexpense_records
	case profile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case profile.EdgeMaintenanceRecords:
		m.ResetMaintenanceRecords()
		return nil
	case profile.EdgeExpenseRecords:
		m.ResetExpenseRecords()
		return nil
	case profile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}
