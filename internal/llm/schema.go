package llm

// BuildChunkJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, restricted to the fields expected from this chunk. It is sent
// to the extraction service as a structured-output constraint and also used
// locally to validate the response.
func BuildChunkJSONSchema(expectedFields []string) map[string]any {
	all := map[string]any{
		"vendor_name":          map[string]any{"type": "string", "minLength": 1},
		"invoice_date":         map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"currency_code":        map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"total":                decimalProp(),
		"labor_total":          decimalProp(),
		"parts_total":          decimalProp(),
		"services_total":       decimalProp(),
		"freight_total":        decimalProp(),
		"tax_total":            decimalProp(),
		"work_order":           map[string]any{"type": "string"},
		"vehicle_registration": map[string]any{"type": "string"},
		"serial_number":        map[string]any{"type": "string"},
		"category":             map[string]any{"type": "string"},
		"description":          map[string]any{"type": "string"},
		"confidence":           map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"parts": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"number":      map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"quantity":    decimalProp(),
					"unit_price":  decimalProp(),
				},
			},
		},
	}

	props := map[string]any{}
	for _, f := range expectedFields {
		if p, ok := all[f]; ok {
			props[f] = p
		}
	}
	// confidence is always welcome even when not requested
	props["confidence"] = all["confidence"]

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		// nothing is required: a chunk reports only what it actually sees
		"required": []string{},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}
