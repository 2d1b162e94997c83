//go:build !integration

package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverJSONObject_CleanPayloadPassesThrough(t *testing.T) {
	raw := []byte(`  {"vendor_name": "ACME", "total": "120.00"}  `)

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Empty(t, strategy)
	assert.JSONEq(t, `{"vendor_name":"ACME","total":"120.00"}`, string(obj))
}

func TestRecoverJSONObject_StripsCodeFences(t *testing.T) {
	raw := []byte("Here is the result:\n```json\n{\"vendor_name\": \"ACME\"}\n```\nLet me know!")

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, "strip_code_fences", strategy)
	assert.JSONEq(t, `{"vendor_name":"ACME"}`, string(obj))
}

func TestRecoverJSONObject_UnterminatedFence(t *testing.T) {
	raw := []byte("```json\n{\"total\": \"88.10\"}")

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, "strip_code_fences", strategy)
	assert.JSONEq(t, `{"total":"88.10"}`, string(obj))
}

func TestRecoverJSONObject_BraceWindowDropsProse(t *testing.T) {
	raw := []byte(`The extracted fields are {"currency_code": "USD", "total": "42.00"} as requested.`)

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, "brace_window", strategy)
	assert.JSONEq(t, `{"currency_code":"USD","total":"42.00"}`, string(obj))
}

func TestRecoverJSONObject_StripsControlChars(t *testing.T) {
	raw := []byte("{\"vendor_name\": \"AC\x00ME\x07\"}")

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, "strip_control_chars", strategy)

	var m map[string]string
	require.NoError(t, json.Unmarshal(obj, &m))
	assert.Equal(t, "ACME", m["vendor_name"])
}

func TestRecoverJSONObject_UndefinedBecomesNull(t *testing.T) {
	raw := []byte(`{"vendor_name": "ACME", "invoice_date": undefined}`)

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, "undefined_to_null", strategy)
	assert.JSONEq(t, `{"vendor_name":"ACME","invoice_date":null}`, string(obj))
}

func TestRecoverJSONObject_StrategiesAccumulate(t *testing.T) {
	// fenced AND carrying undefined: only the full chain recovers it
	raw := []byte("```json\n{\"vendor_name\": \"ACME\", \"total\": undefined}\n```")

	obj, strategy, err := RecoverJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, "undefined_to_null", strategy)
	assert.JSONEq(t, `{"vendor_name":"ACME","total":null}`, string(obj))
}

func TestRecoverJSONObject_TruncatedResponseFails(t *testing.T) {
	raw := []byte(`{"vendor_name": "The provid`)

	_, _, err := RecoverJSONObject(raw)

	assert.Error(t, err)
}

func TestRecoverJSONObject_RejectsArrays(t *testing.T) {
	_, ok := parseObject([]byte(`["ACME", "120.00"]`))
	assert.False(t, ok)

	_, _, err := RecoverJSONObject([]byte(`["ACME", "120.00"]`))
	assert.Error(t, err)
}
