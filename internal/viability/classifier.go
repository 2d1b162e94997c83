package viability

import (
	"fmt"

	"github.com/hangarline/fleetdocs/constants"
)

// Result is the Stage 0 outcome. Derived purely from Metadata and read-only
// downstream.
type Result struct {
	IsViable             bool
	Strategy             constants.Strategy
	Complexity           constants.Complexity
	Confidence           float32
	EstimatedTimeSeconds int
	EstimatedCost        float64
	Warnings             []string
	Recommendations      []string
}

// Classifier routes a document to a processing strategy. Classify is a pure
// function of metadata so it can be called speculatively.
type Classifier struct {
	directPageThreshold int
}

func NewClassifier(directPageThreshold int) *Classifier {
	if directPageThreshold <= 0 {
		directPageThreshold = 8
	}
	return &Classifier{directPageThreshold: directPageThreshold}
}

// Cost model constants. Rough but monotone in page count; estimates feed
// observability only, never correctness.
const (
	directBaseSeconds     = 8
	directPerPageSeconds  = 2
	stagedBaseSeconds     = 15
	stagedPerPageSeconds  = 3
	estTokensPerPage      = 900
	estCostPer1KTokensUSD = 0.00045
)

func (c *Classifier) Classify(meta Metadata) Result {
	if !meta.HasExtractableText {
		return Result{
			IsViable:   false,
			Complexity: complexityOf(meta),
			Confidence: 0.95,
			Warnings:   []string{"no extractable text signal; document appears to be a pure-image PDF"},
			Recommendations: []string{
				"re-scan or export the invoice with a text layer before uploading",
			},
		}
	}

	res := Result{
		IsViable:   true,
		Complexity: complexityOf(meta),
	}

	if meta.PageCount <= c.directPageThreshold {
		res.Strategy = constants.StrategyDirect
		res.Confidence = 0.90
		res.EstimatedTimeSeconds = directBaseSeconds + directPerPageSeconds*meta.PageCount
	} else {
		res.Strategy = constants.StrategyMultiStage
		res.Confidence = 0.80
		res.EstimatedTimeSeconds = stagedBaseSeconds + stagedPerPageSeconds*meta.PageCount
	}
	res.EstimatedCost = float64(meta.PageCount) * estTokensPerPage / 1000 * estCostPer1KTokensUSD

	switch res.Complexity {
	case constants.ComplexityHigh:
		res.Warnings = append(res.Warnings, "large document; extraction will run in batched stages")
	case constants.ComplexityExtreme:
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("very large document (%d pages); expect long processing time", meta.PageCount))
		res.Recommendations = append(res.Recommendations,
			"consider splitting the document before upload")
		res.Confidence -= 0.10
	}
	return res
}

func complexityOf(meta Metadata) constants.Complexity {
	switch {
	case meta.PageCount <= 4 && meta.SizeBytes <= 2<<20:
		return constants.ComplexityLow
	case meta.PageCount <= 15 && meta.SizeBytes <= 10<<20:
		return constants.ComplexityMedium
	case meta.PageCount <= 50:
		return constants.ComplexityHigh
	default:
		return constants.ComplexityExtreme
	}
}
