package consolidate

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/hangarline/fleetdocs/constants"
)

// Consolidator merges per-chunk results into one candidate record.
type Consolidator struct {
	logger *slog.Logger
}

func NewConsolidator(logger *slog.Logger) *Consolidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consolidator{logger: logger}
}

// Consolidate merges chunk outcomes by priority. Scalar fields follow
// highest-priority-wins: a lower-priority value is only kept when every
// higher-priority chunk left the field empty or placeholder. Breakdown
// amounts are summed across reporting chunks. Failed chunks contribute
// nothing but are counted so validation can see the gaps.
func (c *Consolidator) Consolidate(outcomes []ChunkOutcome) Candidate {
	ordered := make([]ChunkOutcome, len(outcomes))
	copy(ordered, outcomes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	cand := Candidate{ChunksTotal: len(outcomes)}
	var confSum float32
	var confN int

	for _, o := range ordered {
		if o.Err != nil {
			cand.ChunksFailed++
			continue
		}
		f := o.Fields

		mergeScalar(&cand.VendorName, f.VendorName, true)
		mergeScalar(&cand.InvoiceDate, f.InvoiceDate, false)
		mergeScalar(&cand.CurrencyCode, f.CurrencyCode, false)
		mergeScalar(&cand.WorkOrder, f.WorkOrder, false)
		mergeScalar(&cand.VehicleRegistration, f.VehicleRegistration, false)
		mergeScalar(&cand.SerialNumber, f.SerialNumber, false)
		mergeScalar(&cand.Category, f.Category, false)
		mergeScalar(&cand.Description, f.Description, false)

		if cand.Total == 0 {
			if v, ok := dec(f.Total); ok && v > 0 {
				cand.Total = v
			}
		}

		// summed, never overwritten
		if v, ok := dec(f.LaborTotal); ok {
			cand.Breakdown.Labor += v
		}
		if v, ok := dec(f.PartsTotal); ok {
			cand.Breakdown.Parts += v
		}
		if v, ok := dec(f.ServicesTotal); ok {
			cand.Breakdown.Services += v
		}
		if v, ok := dec(f.FreightTotal); ok {
			cand.Breakdown.Freight += v
		}
		if v, ok := dec(f.TaxTotal); ok {
			cand.Breakdown.Tax += v
		}

		cand.PartsList = append(cand.PartsList, f.Parts...)

		if f.ModelConfidence > 0 {
			confSum += f.ModelConfidence
			confN++
		}
	}

	if confN > 0 {
		cand.Confidence = confSum / float32(confN)
	}
	if cand.ChunksFailed > 0 {
		cand.Flags = append(cand.Flags, "partial_extraction")
		// each missing chunk erodes trust in the merged result
		cand.Confidence *= 1 - float32(cand.ChunksFailed)/float32(cand.ChunksTotal)
	}

	c.logger.Debug("consolidate.merged",
		"chunks", cand.ChunksTotal,
		"failed", cand.ChunksFailed,
		"vendor", cand.VendorName,
		"total", cand.Total,
		"confidence", cand.Confidence,
	)
	return cand
}

// mergeScalar keeps dst unless it is empty (or a placeholder, when
// placeholderAware) and src has a real value.
func mergeScalar(dst *string, src string, placeholderAware bool) {
	src = strings.TrimSpace(src)
	if src == "" {
		return
	}
	if placeholderAware {
		if constants.IsPlaceholderVendor(*dst) && !constants.IsPlaceholderVendor(src) {
			*dst = src
		}
		return
	}
	if strings.TrimSpace(*dst) == "" {
		*dst = src
	}
}

func dec(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
