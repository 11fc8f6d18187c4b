package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/fraglen/pkg/histogram"
)

func TestSummarize(t *testing.T) {
	ds := histogram.Dataset{
		"A":     {100: 10, 200: 30},
		"tie":   {100: 5, 200: 5},
		"empty": {},
	}

	got := Summarize(ds)

	require.Len(t, got, 2)
	assert.NotContains(t, got, "empty")

	a := got["A"]
	assert.Equal(t, 40, a.Reads)
	assert.InDelta(t, 175.0, a.Mean, 1e-9)
	assert.Equal(t, 200.0, a.Median)
	assert.Equal(t, 200, a.Mode)

	tie := got["tie"]
	assert.Equal(t, 100, tie.Mode)
	assert.Equal(t, 100.0, tie.Median)
	assert.InDelta(t, 150.0, tie.Mean, 1e-9)
}
