package consolidate

import (
	"time"

	"github.com/hangarline/fleetdocs/constants"
	"github.com/hangarline/fleetdocs/internal/llm"
)

// ChunkOutcome is one chunk's extraction result (or terminal failure) as it
// arrives at the consolidator.
type ChunkOutcome struct {
	ChunkID  string
	Priority int
	Fields   llm.ChunkFields
	Raw      []byte
	Err      error
}

// Breakdown is the categorized financial breakdown. Category amounts are
// summed across chunks that reported them, never overwritten.
type Breakdown struct {
	Labor    float64
	Parts    float64
	Services float64
	Freight  float64
	Tax      float64
}

func (b Breakdown) Sum() float64 {
	return b.Labor + b.Parts + b.Services + b.Freight + b.Tax
}

// Candidate is the consolidated, not-yet-validated record. It exists only in
// memory; rejection destroys it and nothing of it reaches durable storage.
type Candidate struct {
	VendorName          string
	InvoiceDate         string // YYYY-MM-DD as reported
	CurrencyCode        string
	Total               float64
	Breakdown           Breakdown
	PartsList           []llm.Part
	WorkOrder           string
	VehicleRegistration string
	SerialNumber        string
	Category            string
	Description         string

	Confidence   float32
	ChunksTotal  int
	ChunksFailed int
	Flags        []string
}

// Source marks a record as machine-extracted so downstream consumers can
// distinguish it from hand-entered data.
type Source struct {
	OCRExtracted bool
	Confidence   float32
}

// ValidatedRecord is the subset of candidate fields that passed validation,
// ready for the persistence collaborator.
type ValidatedRecord struct {
	Kind                constants.RecordKind
	Fingerprint         string // hex digest of the source document
	VendorName          string
	InvoiceDate         *time.Time
	CurrencyCode        string
	Total               float64
	Breakdown           Breakdown
	PartsList           []llm.Part
	WorkOrder           string
	VehicleRegistration string
	SerialNumber        string
	Category            constants.Category
	Description         string
	Flags               []string
	Source              Source
	NeedsReview         bool
}
