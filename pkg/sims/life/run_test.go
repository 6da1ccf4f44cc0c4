package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOutcomes(t *testing.T) {
	cases := []struct {
		pattern string
		want    Outcome
		gen     int
	}{
		{"block", OutcomeStill, 1},
		{"blinker", OutcomePeriod2, 2},
		{"", OutcomeExtinct, 0},
	}
	for _, c := range cases {
		t.Run(c.want.String(), func(t *testing.T) {
			cfg := blankConfig(10, 10)
			cfg.Pattern = c.pattern
			res, err := Run(cfg, 50)
			require.NoError(t, err)
			assert.Equal(t, c.want, res.Outcome)
			assert.Equal(t, c.gen, res.Generation)
		})
	}
}

func TestRunStepLimit(t *testing.T) {
	cfg := blankConfig(40, 40)
	cfg.Pattern = "r-pentomino"
	res, err := Run(cfg, 3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnsettled, res.Outcome)
	assert.Equal(t, 3, res.Generation)
	assert.Equal(t, 5, res.InitialLive)
	assert.GreaterOrEqual(t, res.PeakLive, res.FinalLive)
}

func TestRunUnknownPattern(t *testing.T) {
	cfg := blankConfig(10, 10)
	cfg.Pattern = "missing"
	_, err := Run(cfg, 10)
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestRunEmptyGridIsExtinctWithoutSteps(t *testing.T) {
	for _, steps := range []int{0, -1, 10} {
		res, err := Run(blankConfig(8, 8), steps)
		require.NoError(t, err)
		assert.Equal(t, OutcomeExtinct, res.Outcome, "steps=%d", steps)
		assert.Zero(t, res.Generation)
		assert.Zero(t, res.FinalLive)
	}
}
