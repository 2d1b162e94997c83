package constants

import "strings"

// RecordKind is the record family an uploaded document becomes.
type RecordKind string

const (
	KindMaintenance RecordKind = "MAINTENANCE"
	KindExpense     RecordKind = "EXPENSE"
)

// ParseKind maps a caller-supplied discriminator to a RecordKind.
func ParseKind(s string) (RecordKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MAINTENANCE", "MAINT":
		return KindMaintenance, true
	case "EXPENSE", "EXP":
		return KindExpense, true
	}
	return "", false
}
