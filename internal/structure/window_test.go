package structure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate_ReadsEverythingUnderCap(t *testing.T) {
	in := strings.Repeat("invoice line\n", 100)

	out, truncated, err := accumulate(strings.NewReader(in), 64, 1<<20)

	require.NoError(t, err)
	assert.False(t, truncated)
	assert.Equal(t, in, out)
}

func TestAccumulate_StopsAtCap(t *testing.T) {
	in := strings.Repeat("x", 10_000)

	out, truncated, err := accumulate(strings.NewReader(in), 256, 1024)

	require.NoError(t, err)
	assert.True(t, truncated)
	assert.Len(t, out, 1024)
}

func TestAccumulate_CapBelowWindowShrinksWindow(t *testing.T) {
	// A budget smaller than the window must bound the read, not get raised
	// to the window size.
	in := strings.Repeat("y", 200)

	out, truncated, err := accumulate(strings.NewReader(in), 256, 10)

	require.NoError(t, err)
	assert.True(t, truncated)
	assert.Len(t, out, 10)
}
