package constants

import "strings"

// Category is the expense-record taxonomy.
type Category string

const (
	Fuel        Category = "Fuel"
	Insurance   Category = "Insurance"
	Licensing   Category = "Licensing"
	Parking     Category = "Parking"
	Repairs     Category = "Repairs"
	Tires       Category = "Tires"
	Tolls       Category = "Tolls"
	Washing     Category = "Washing"
	Accessories Category = "Accessories"
	Other       Category = "Other"
)

var allCategories = []Category{
	Fuel,
	Insurance,
	Licensing,
	Parking,
	Repairs,
	Tires,
	Tolls,
	Washing,
	Accessories,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form label from the extraction service onto the
// taxonomy. Returns Other with ok=false when nothing matches.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"gas":         Fuel,
		"gasoline":    Fuel,
		"diesel":      Fuel,
		"petrol":      Fuel,
		"car wash":    Washing,
		"toll":        Tolls,
		"garage":      Parking,
		"repair":      Repairs,
		"maintenance": Repairs,
		"service":     Repairs,
		"tyre":        Tires,
		"tyres":       Tires,
		"registration": Licensing,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
