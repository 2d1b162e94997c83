package utils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/hangarline/fleetdocs/gen/ent"
	fleetpb "github.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1"
	"github.com/hangarline/fleetdocs/internal/entity"
	"github.com/hangarline/fleetdocs/internal/llm"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func f32OrZero(p *float32) float32 {
	if p == nil {
		return 0
	}
	return *p
}

// ParseYMD parses a YYYY-MM-DD date to midnight UTC, matching DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ToParts converts extractor part rows to storable parts. Quantity and price
// arrive as decimal strings; unparseable values become zero rather than
// poisoning the whole record.
func ToParts(in []llm.Part) []entity.Part {
	out := make([]entity.Part, 0, len(in))
	for _, p := range in {
		qty, _ := strconv.ParseFloat(p.Quantity, 64)
		price, _ := strconv.ParseFloat(p.UnitPrice, 64)
		out = append(out, entity.Part{
			Number:      p.Number,
			Description: p.Description,
			Quantity:    qty,
			UnitPrice:   price,
		})
	}
	return out
}

func partsFromJSON(raw json.RawMessage) []entity.Part {
	if len(raw) == 0 {
		return nil
	}
	var parts []entity.Part
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil
	}
	return parts
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		DefaultCurrency: e.DefaultCurrency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		PageCount:   e.PageCount,
		StorageURL:  e.StorageURL,
		UploadedAt:  e.UploadedAt,
	}
}

func ToMaintenanceRecord(e *ent.MaintenanceRecord) *entity.MaintenanceRecord {
	return &entity.MaintenanceRecord{
		ID:                  e.ID,
		ProfileID:           e.ProfileID,
		DocumentID:          e.DocumentID,
		VendorName:          e.VendorName,
		InvoiceDate:         e.InvoiceDate,
		CurrencyCode:        e.CurrencyCode,
		Total:               e.Total,
		LaborTotal:          e.LaborTotal,
		PartsTotal:          e.PartsTotal,
		ServicesTotal:       e.ServicesTotal,
		FreightTotal:        e.FreightTotal,
		TaxTotal:            e.TaxTotal,
		WorkOrder:           strOrEmpty(e.WorkOrder),
		VehicleRegistration: strOrEmpty(e.VehicleRegistration),
		SerialNumber:        strOrEmpty(e.SerialNumber),
		Parts:               partsFromJSON(e.Parts),
		Flags:               e.Flags,
		ExtractedByOCR:      e.ExtractedByOcr,
		Confidence:          f32OrZero(e.Confidence),
		NeedsReview:         e.NeedsReview,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func ToExpenseRecord(e *ent.ExpenseRecord) *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:             e.ID,
		ProfileID:      e.ProfileID,
		DocumentID:     e.DocumentID,
		VendorName:     e.VendorName,
		ExpenseDate:    e.ExpenseDate,
		CurrencyCode:   e.CurrencyCode,
		Total:          e.Total,
		TaxTotal:       e.TaxTotal,
		Category:       e.Category,
		Description:    strOrEmpty(e.Description),
		Flags:          e.Flags,
		ExtractedByOCR: e.ExtractedByOcr,
		Confidence:     f32OrZero(e.Confidence),
		NeedsReview:    e.NeedsReview,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToPBProfile(p *entity.Profile) *fleetpb.Profile {
	return &fleetpb.Profile{
		Id:              p.ID.String(),
		Name:            p.Name,
		Email:           p.Email,
		DefaultCurrency: p.DefaultCurrency,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.Document) *fleetpb.Document {
	return &fleetpb.Document{
		Id:             d.ID.String(),
		ProfileId:      d.ProfileID.String(),
		ContentHashHex: hex.EncodeToString(d.ContentHash),
		Filename:       d.Filename,
		FileExt:        d.FileExt,
		FileSize:       int64(d.FileSize),
		PageCount:      int32(d.PageCount),
		StorageUrl:     d.StorageURL,
		UploadedAt:     d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBMaintenanceRecord(r *entity.MaintenanceRecord) *fleetpb.MaintenanceRecord {
	out := &fleetpb.MaintenanceRecord{
		Id:                  r.ID.String(),
		ProfileId:           r.ProfileID.String(),
		DocumentId:          r.DocumentID.String(),
		VendorName:          r.VendorName,
		CurrencyCode:        r.CurrencyCode,
		Total:               fmt.Sprintf("%.2f", r.Total),
		LaborTotal:          fmt.Sprintf("%.2f", r.LaborTotal),
		PartsTotal:          fmt.Sprintf("%.2f", r.PartsTotal),
		ServicesTotal:       fmt.Sprintf("%.2f", r.ServicesTotal),
		FreightTotal:        fmt.Sprintf("%.2f", r.FreightTotal),
		TaxTotal:            fmt.Sprintf("%.2f", r.TaxTotal),
		WorkOrder:           r.WorkOrder,
		VehicleRegistration: r.VehicleRegistration,
		SerialNumber:        r.SerialNumber,
		Flags:               r.Flags,
		ExtractedByOcr:      r.ExtractedByOCR,
		Confidence:          r.Confidence,
		NeedsReview:         r.NeedsReview,
		CreatedAt:           r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.InvoiceDate != nil {
		out.InvoiceDate = r.InvoiceDate.Format("2006-01-02")
	}
	for _, p := range r.Parts {
		out.Parts = append(out.Parts, &fleetpb.Part{
			Number:      p.Number,
			Description: p.Description,
			Quantity:    p.Quantity,
			UnitPrice:   fmt.Sprintf("%.2f", p.UnitPrice),
		})
	}
	return out
}

func ToPBExpenseRecord(r *entity.ExpenseRecord) *fleetpb.ExpenseRecord {
	out := &fleetpb.ExpenseRecord{
		Id:             r.ID.String(),
		ProfileId:      r.ProfileID.String(),
		DocumentId:     r.DocumentID.String(),
		VendorName:     r.VendorName,
		CurrencyCode:   r.CurrencyCode,
		Total:          fmt.Sprintf("%.2f", r.Total),
		TaxTotal:       fmt.Sprintf("%.2f", r.TaxTotal),
		Category:       r.Category,
		Description:    r.Description,
		Flags:          r.Flags,
		ExtractedByOcr: r.ExtractedByOCR,
		Confidence:     r.Confidence,
		NeedsReview:    r.NeedsReview,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.ExpenseDate != nil {
		out.ExpenseDate = r.ExpenseDate.Format("2006-01-02")
	}
	return out
}
