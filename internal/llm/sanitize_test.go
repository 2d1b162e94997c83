//go:build !integration

package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, raw string, allowed []string) map[string]any {
	t.Helper()
	out, _, err := NormalizeFields([]byte(raw), allowed, nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestNormalizeFields_MoneyFloatBecomesDecimalString(t *testing.T) {
	m := normalize(t, `{"total": 1234.5, "labor_total": 80}`, []string{"total", "labor_total"})

	assert.Equal(t, "1234.50", m["total"])
	assert.Equal(t, "80.00", m["labor_total"])
}

func TestNormalizeFields_MoneyStringStripsSymbolsAndCommas(t *testing.T) {
	m := normalize(t, `{"total": "$1,234.56", "tax_total": "€99.00"}`, []string{"total", "tax_total"})

	assert.Equal(t, "1234.56", m["total"])
	assert.Equal(t, "99.00", m["tax_total"])
}

func TestNormalizeFields_NullAndEmptyMoneyDropped(t *testing.T) {
	m := normalize(t, `{"total": null, "parts_total": "", "labor_total": "null"}`,
		[]string{"total", "parts_total", "labor_total"})

	assert.NotContains(t, m, "total")
	assert.NotContains(t, m, "parts_total")
	assert.NotContains(t, m, "labor_total")
}

func TestNormalizeFields_CurrencyUppercased(t *testing.T) {
	m := normalize(t, `{"currency_code": " usd "}`, []string{"currency_code"})

	assert.Equal(t, "USD", m["currency_code"])
}

func TestNormalizeFields_UnknownKeysDropped(t *testing.T) {
	out, dropped, err := NormalizeFields(
		[]byte(`{"vendor_name": "ACME", "notes": "irrelevant", "confidence": 0.9}`),
		[]string{"vendor_name"}, nil)

	require.NoError(t, err)
	assert.Contains(t, dropped, "notes(unknown)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "ACME", m["vendor_name"])
	assert.NotContains(t, m, "notes")
	// confidence always survives even when not requested
	assert.InDelta(t, 0.9, m["confidence"], 1e-9)
}

func TestNormalizeFields_StringFieldsTrimmed(t *testing.T) {
	m := normalize(t, `{"vendor_name": "  ACME Air  ", "work_order": "   "}`,
		[]string{"vendor_name", "work_order"})

	assert.Equal(t, "ACME Air", m["vendor_name"])
	assert.NotContains(t, m, "work_order")
}

func TestNormalizeFields_NotAnObjectFails(t *testing.T) {
	_, _, err := NormalizeFields([]byte(`"just a string"`), nil, nil)

	assert.Error(t, err)
}
