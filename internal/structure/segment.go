package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/hangarline/fleetdocs/constants"
)

// Pattern inventory for section classification. Ordered from most to least
// specific; a line claimed by an earlier classifier is not reconsidered.
var (
	reAmount = regexp.MustCompile(`[$£€]\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?|\b\d{1,3}(?:,\d{3})*\.\d{2}\b`)

	reGrandTotal = regexp.MustCompile(`(?i)\b(grand\s+total|total\s+(due|amount)|amount\s+due|balance\s+due|total)\b`)
	reSummary    = regexp.MustCompile(`(?i)\b(subtotal|sub-total|labou?r|parts|services|freight|shipping|tax|vat|gst|discount)\b`)

	reHeaderCo = regexp.MustCompile(`(?i)\b(inc\.?|llc|ltd\.?|gmbh|corp\.?|co\.|company|services|aviation|motors|garage|repair|airlines?)\b`)
	reInvoice  = regexp.MustCompile(`(?i)\b(invoice|facture|rechnung|work\s+order|estimate)\b`)

	// part number, quantity, unit price, extended price
	reLineItem = regexp.MustCompile(`(?i)^\s*[A-Z0-9][A-Z0-9\-/.]{2,}\s+.{0,60}?\s+\d+(?:\.\d+)?\s+[\d,]+\.\d{2}\s+[\d,]+\.\d{2}\s*$`)
	reQtyAt    = regexp.MustCompile(`(?i)\b\d+\s*(x|@)\s*[\d,]+\.\d{2}\b`)

	reRegistration = regexp.MustCompile(`(?i)\b(reg(istration)?\.?\s*(no|#|:)|tail\s*(no|number)|vin|unit\s*(no|#))\b`)
	reSerial       = regexp.MustCompile(`(?i)\b(serial\s*(no|number|#)|s/n)\b`)
	reWorkOrder    = regexp.MustCompile(`(?i)\b(work\s*order|wo\s*(no|#|:)|ro\s*(no|#|:)|job\s*(no|#|:))\b`)
)

type lineClass uint8

const (
	classNone lineClass = iota
	classHeader
	classSummary
	classTotals
	classLineItem
	classMetadata
)

// Segment applies the ordered section classifiers to extracted text and
// returns typed, confidence-scored sections. Page boundaries follow the
// form-feed separators in the text.
func Segment(text string) []Section {
	pageTexts := strings.Split(text, "\f")
	classes := make([][]lineClass, len(pageTexts))
	lines := make([][]string, len(pageTexts))

	for p, pageText := range pageTexts {
		ls := strings.Split(pageText, "\n")
		lines[p] = ls
		classes[p] = make([]lineClass, len(ls))
		for i, line := range ls {
			classes[p][i] = classify(line, p == 0 && i < headerScanLines)
		}
	}

	var sections []Section
	sections = append(sections, collect(lines, classes, classHeader, sectionSpec{
		title:      "Invoice header",
		typ:        constants.SectionHeader,
		importance: constants.ImportanceHigh,
		base:       0.55,
	})...)
	sections = append(sections, collect(lines, classes, classSummary, sectionSpec{
		title:      "Financial summary",
		typ:        constants.SectionFinancialSummary,
		importance: constants.ImportanceCritical,
		base:       0.60,
	})...)
	sections = append(sections, collect(lines, classes, classTotals, sectionSpec{
		title:      "Totals",
		typ:        constants.SectionTotals,
		importance: constants.ImportanceCritical,
		base:       0.65,
	})...)
	sections = append(sections, collect(lines, classes, classLineItem, sectionSpec{
		title:      "Line items",
		typ:        constants.SectionLineItems,
		importance: constants.ImportanceHigh,
		base:       0.50,
		minLines:   2,
	})...)
	sections = append(sections, collect(lines, classes, classMetadata, sectionSpec{
		title:      "Document metadata",
		typ:        constants.SectionMetadata,
		importance: constants.ImportanceNormal,
		base:       0.45,
	})...)

	if rest := unclaimed(lines, classes); rest != "" {
		sections = append(sections, newSection(sectionSpec{
			title:      "Remaining text",
			typ:        constants.SectionOther,
			importance: constants.ImportanceNormal,
			base:       0.30,
		}, rest, 1, len(pageTexts), 0))
	}
	return sections
}

const headerScanLines = 12

func classify(line string, headerZone bool) lineClass {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return classNone
	}
	hasAmount := reAmount.MatchString(trimmed)

	switch {
	case reGrandTotal.MatchString(trimmed) && hasAmount:
		return classTotals
	case reSummary.MatchString(trimmed) && hasAmount:
		return classSummary
	case reLineItem.MatchString(line) || reQtyAt.MatchString(trimmed):
		return classLineItem
	case reRegistration.MatchString(trimmed) || reSerial.MatchString(trimmed) || reWorkOrder.MatchString(trimmed):
		return classMetadata
	case headerZone && (reHeaderCo.MatchString(trimmed) || reInvoice.MatchString(trimmed)):
		return classHeader
	}
	return classNone
}

type sectionSpec struct {
	title      string
	typ        constants.SectionType
	importance constants.Importance
	base       float32
	minLines   int
}

// collect gathers all lines of a class (plus one line of context on either
// side) into one section per contiguous page run.
func collect(lines [][]string, classes [][]lineClass, want lineClass, spec sectionSpec) []Section {
	var content strings.Builder
	matched := 0
	firstPage, lastPage := 0, 0

	for p := range lines {
		for i := range lines[p] {
			if classes[p][i] != want {
				continue
			}
			if matched == 0 {
				firstPage = p + 1
			}
			lastPage = p + 1
			matched++
			// one line of context above keeps labels attached to their values
			if i > 0 && classes[p][i-1] == classNone {
				content.WriteString(strings.TrimRight(lines[p][i-1], " "))
				content.WriteString("\n")
				classes[p][i-1] = want
			}
			content.WriteString(strings.TrimRight(lines[p][i], " "))
			content.WriteString("\n")
		}
	}

	min := spec.minLines
	if min == 0 {
		min = 1
	}
	if matched < min {
		return nil
	}
	return []Section{newSection(spec, content.String(), firstPage, lastPage, matched)}
}

func newSection(spec sectionSpec, content string, pageStart, pageEnd, matched int) Section {
	return Section{
		ID:              uuid.NewString(),
		Title:           spec.title,
		Content:         strings.TrimRight(content, "\n"),
		PageStart:       pageStart,
		PageEnd:         pageEnd,
		Type:            spec.typ,
		Confidence:      confidence(spec.base, content, matched),
		Importance:      spec.importance,
		EstimatedTokens: EstimateTokens(content),
	}
}

// confidence starts at the pattern-specificity base and adds a keyword
// density bonus, capped at 0.98 so nothing claims certainty.
func confidence(base float32, content string, matched int) float32 {
	score := base
	lineCount := strings.Count(content, "\n") + 1
	if lineCount > 0 && matched > 0 {
		density := float32(matched) / float32(lineCount)
		score += 0.30 * density
	}
	if matched >= 3 {
		score += 0.05
	}
	if score > 0.98 {
		score = 0.98
	}
	return score
}

func unclaimed(lines [][]string, classes [][]lineClass) string {
	var b strings.Builder
	for p := range lines {
		for i, line := range lines[p] {
			if classes[p][i] != classNone {
				continue
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			b.WriteString(strings.TrimRight(line, " "))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// SectionTitleWithPages is used for chunk titles.
func SectionTitleWithPages(s Section) string {
	if s.PageStart == 0 {
		return s.Title
	}
	if s.PageStart == s.PageEnd {
		return fmt.Sprintf("%s (p.%d)", s.Title, s.PageStart)
	}
	return fmt.Sprintf("%s (p.%d-%d)", s.Title, s.PageStart, s.PageEnd)
}
