package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/fraglen/pkg/histogram"
)

func TestSmooth_SmallDistributionUnchanged(t *testing.T) {
	d := histogram.Distribution{30: 5, 10: 6, 20: 7}

	got := Smooth(d, DefaultSmoothPoints)

	assert.Equal(t, []Point{{10, 6}, {20, 7}, {30, 5}}, got)
}

func TestSmooth_ReducesToTarget(t *testing.T) {
	d := make(histogram.Distribution)
	for l := 0; l < 1000; l++ {
		d[l] = 10
	}

	got := Smooth(d, 300)

	require.Len(t, got, 300)
	assert.Equal(t, 0.0, got[0].X)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].X, got[i].X, "points must ascend in x")
		assert.Equal(t, 10.0, got[i].Y)
	}
}

func TestSmooth_AveragesBins(t *testing.T) {
	d := histogram.Distribution{1: 10, 2: 20, 3: 30, 4: 40}

	got := Smooth(d, 2)

	assert.Equal(t, []Point{{1, 15}, {3, 35}}, got)
}

func TestSmooth_NonPositiveTargetKeepsAll(t *testing.T) {
	d := histogram.Distribution{1: 10, 2: 20}

	assert.Len(t, Smooth(d, 0), 2)
	assert.Empty(t, Smooth(histogram.Distribution{}, 10))
}

func TestDefaultLineGraphConfig(t *testing.T) {
	cfg := DefaultLineGraphConfig()

	assert.Equal(t, 0.0, cfg.XMin)
	assert.Equal(t, 0.0, cfg.YMin)
	assert.Equal(t, 300, cfg.SmoothPoints)
	assert.Equal(t, "<b>{point.x} bp</b>: {point.y} reads", cfg.TooltipTemplate)
}
