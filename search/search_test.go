package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwalklab/qwalk/graph"
	"github.com/qwalklab/qwalk/hamiltonian"
	"github.com/qwalklab/qwalk/search"
)

// TestDefaults pins the size-derived parameters.
func TestDefaults(t *testing.T) {
	cfg := search.Defaults(16)
	assert.InDelta(t, 1.0/16, cfg.Gamma, 1e-15)
	assert.InDelta(t, math.Pi/2*4, cfg.TimeHorizon, 1e-12)
	assert.Equal(t, search.DefaultResolution, cfg.Resolution)
}

// TestRun_CompleteGraphConverges: on K_16 with γ = 1/N the success
// probability climbs to one by the horizon t = (π/2)·√N, so the peak
// sits within a sample step of the horizon.
func TestRun_CompleteGraphConverges(t *testing.T) {
	g, err := graph.Complete(16)
	require.NoError(t, err)

	res, err := search.Run(g, 3)
	require.NoError(t, err)

	horizon := search.Defaults(16).TimeHorizon
	step := horizon / float64(search.DefaultResolution-1)
	assert.Greater(t, res.MaxProbability, 0.98)
	assert.InDelta(t, horizon, res.OptimalTime, 2*step)
	assert.Equal(t, 3, res.Marked)
}

// TestRun_CurveShape checks the sweep bookkeeping: both endpoints
// sampled, the curve starts at the uniform baseline 1/N and rises well
// above it.
func TestRun_CurveShape(t *testing.T) {
	const n = 16
	g, err := graph.Complete(n)
	require.NoError(t, err)

	res, err := search.Run(g, 0)
	require.NoError(t, err)

	require.Len(t, res.Times, search.DefaultResolution)
	require.Len(t, res.SuccessProbs, search.DefaultResolution)
	assert.Zero(t, res.Times[0])
	assert.InDelta(t, search.Defaults(n).TimeHorizon, res.Times[len(res.Times)-1], 1e-12)

	assert.InDelta(t, 1.0/n, res.SuccessProbs[0], 1e-9, "t=0 reads the uniform state")
	assert.Greater(t, res.SuccessProbs[len(res.SuccessProbs)-1], 0.9)
	for _, p := range res.SuccessProbs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0+1e-9)
	}
}

// TestRun_Overrides: options replace the size-derived defaults.
func TestRun_Overrides(t *testing.T) {
	g, err := graph.Complete(8)
	require.NoError(t, err)

	res, err := search.Run(g, 0,
		search.WithResolution(50),
		search.WithTimeHorizon(1.5),
		search.WithParallelism(1),
	)
	require.NoError(t, err)

	require.Len(t, res.Times, 50)
	assert.InDelta(t, 1.5, res.Times[49], 1e-12)
}

// TestRun_WrongGammaUnderperforms: far from the critical rate 1/N the
// spectral gap closes and the peak stays low — the γ default matters.
func TestRun_WrongGammaUnderperforms(t *testing.T) {
	g, err := graph.Complete(16)
	require.NoError(t, err)

	tuned, err := search.Run(g, 0)
	require.NoError(t, err)
	detuned, err := search.Run(g, 0, search.WithGamma(10.0/16))
	require.NoError(t, err)

	assert.Greater(t, tuned.MaxProbability, detuned.MaxProbability)
}

// TestRun_MarkedOutOfRange propagates the oracle's range error.
func TestRun_MarkedOutOfRange(t *testing.T) {
	g, err := graph.Complete(8)
	require.NoError(t, err)

	_, err = search.Run(g, 8)
	assert.ErrorIs(t, err, hamiltonian.ErrMarkedVertexRange)
	_, err = search.Run(g, -1)
	assert.ErrorIs(t, err, hamiltonian.ErrMarkedVertexRange)
}

// TestOptions_PanicOnInvalid: option constructors reject nonsense
// immediately.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { search.WithGamma(0) })
	assert.Panics(t, func() { search.WithTimeHorizon(-1) })
	assert.Panics(t, func() { search.WithResolution(1) })
	assert.Panics(t, func() { search.WithParallelism(0) })
}
