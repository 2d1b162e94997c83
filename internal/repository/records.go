package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/gen/ent"
	entexpense "github.com/hangarline/fleetdocs/gen/ent/expenserecord"
	entmaint "github.com/hangarline/fleetdocs/gen/ent/maintenancerecord"
	"github.com/hangarline/fleetdocs/internal/consolidate"
	"github.com/hangarline/fleetdocs/internal/entity"
	"github.com/hangarline/fleetdocs/internal/utils"
)

// CreateRecordRequest wraps a validated record together with its provenance.
type CreateRecordRequest struct {
	ProfileID  uuid.UUID
	DocumentID uuid.UUID
	Record     *consolidate.ValidatedRecord
}

type RecordRepository interface {
	CreateFromValidated(ctx context.Context, req *CreateRecordRequest) (uuid.UUID, error)
	GetMaintenanceByDocument(ctx context.Context, documentID uuid.UUID) (*entity.MaintenanceRecord, error)
	GetExpenseByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExpenseRecord, error)
	DeleteByDocument(ctx context.Context, kind constants.RecordKind, documentID uuid.UUID) (int, error)
	ListMaintenance(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.MaintenanceRecord, error)
	ListExpenses(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.ExpenseRecord, error)
}

type recordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(entc *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *recordRepo) CreateFromValidated(ctx context.Context, req *CreateRecordRequest) (uuid.UUID, error) {
	switch req.Record.Kind {
	case constants.KindMaintenance:
		return r.createMaintenance(ctx, req)
	default:
		return r.createExpense(ctx, req)
	}
}

func (r *recordRepo) createMaintenance(ctx context.Context, req *CreateRecordRequest) (uuid.UUID, error) {
	rec := req.Record
	builder := r.ent.MaintenanceRecord.Create().
		SetProfileID(req.ProfileID).
		SetDocumentID(req.DocumentID).
		SetVendorName(rec.VendorName).
		SetCurrencyCode(rec.CurrencyCode).
		SetTotal(rec.Total).
		SetLaborTotal(rec.Breakdown.Labor).
		SetPartsTotal(rec.Breakdown.Parts).
		SetServicesTotal(rec.Breakdown.Services).
		SetFreightTotal(rec.Breakdown.Freight).
		SetTaxTotal(rec.Breakdown.Tax).
		SetExtractedByOcr(rec.Source.OCRExtracted).
		SetConfidence(rec.Source.Confidence).
		SetNeedsReview(rec.NeedsReview).
		SetNillableInvoiceDate(rec.InvoiceDate)

	if rec.WorkOrder != "" {
		builder = builder.SetWorkOrder(rec.WorkOrder)
	}
	if rec.VehicleRegistration != "" {
		builder = builder.SetVehicleRegistration(rec.VehicleRegistration)
	}
	if rec.SerialNumber != "" {
		builder = builder.SetSerialNumber(rec.SerialNumber)
	}
	if len(rec.PartsList) > 0 {
		if raw, err := json.Marshal(utils.ToParts(rec.PartsList)); err == nil {
			builder = builder.SetParts(raw)
		}
	}
	if len(rec.Flags) > 0 {
		builder = builder.SetFlags(rec.Flags)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create maintenance record", "profile_id", req.ProfileID, "document_id", req.DocumentID, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (r *recordRepo) createExpense(ctx context.Context, req *CreateRecordRequest) (uuid.UUID, error) {
	rec := req.Record
	builder := r.ent.ExpenseRecord.Create().
		SetProfileID(req.ProfileID).
		SetDocumentID(req.DocumentID).
		SetVendorName(rec.VendorName).
		SetCurrencyCode(rec.CurrencyCode).
		SetTotal(rec.Total).
		SetTaxTotal(rec.Breakdown.Tax).
		SetCategory(string(rec.Category)).
		SetExtractedByOcr(rec.Source.OCRExtracted).
		SetConfidence(rec.Source.Confidence).
		SetNeedsReview(rec.NeedsReview).
		SetNillableExpenseDate(rec.InvoiceDate)

	if rec.Description != "" {
		builder = builder.SetDescription(rec.Description)
	}
	if len(rec.Flags) > 0 {
		builder = builder.SetFlags(rec.Flags)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create expense record", "profile_id", req.ProfileID, "document_id", req.DocumentID, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (r *recordRepo) GetMaintenanceByDocument(ctx context.Context, documentID uuid.UUID) (*entity.MaintenanceRecord, error) {
	row, err := r.ent.MaintenanceRecord.Query().
		Where(entmaint.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToMaintenanceRecord(row), nil
}

func (r *recordRepo) GetExpenseByDocument(ctx context.Context, documentID uuid.UUID) (*entity.ExpenseRecord, error) {
	row, err := r.ent.ExpenseRecord.Query().
		Where(entexpense.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToExpenseRecord(row), nil
}

// DeleteByDocument removes any cached record for the document so a corrupt
// entry can be rebuilt from scratch.
func (r *recordRepo) DeleteByDocument(ctx context.Context, kind constants.RecordKind, documentID uuid.UUID) (int, error) {
	var (
		n   int
		err error
	)
	switch kind {
	case constants.KindMaintenance:
		n, err = r.ent.MaintenanceRecord.Delete().
			Where(entmaint.DocumentID(documentID)).
			Exec(ctx)
	default:
		n, err = r.ent.ExpenseRecord.Delete().
			Where(entexpense.DocumentID(documentID)).
			Exec(ctx)
	}
	if err != nil {
		r.logger.Error("failed to delete records for document", "document_id", documentID, "kind", kind, "error", err)
		return 0, err
	}
	if n > 0 {
		r.logger.Warn("deleted cached records for document", "document_id", documentID, "kind", kind, "count", n)
	}
	return n, nil
}

func (r *recordRepo) ListMaintenance(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.MaintenanceRecord, error) {
	q := r.ent.MaintenanceRecord.Query().Where(entmaint.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(entmaint.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entmaint.InvoiceDateLTE(*toDate))
	}
	rows, err := q.Order(entmaint.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list maintenance records", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.MaintenanceRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToMaintenanceRecord(row)
	}
	return result, nil
}

func (r *recordRepo) ListExpenses(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.ExpenseRecord, error) {
	q := r.ent.ExpenseRecord.Query().Where(entexpense.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(entexpense.ExpenseDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entexpense.ExpenseDateLTE(*toDate))
	}
	rows, err := q.Order(entexpense.ByExpenseDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list expense records", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.ExpenseRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExpenseRecord(row)
	}
	return result, nil
}
