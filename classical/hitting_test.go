package classical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwalklab/qwalk/classical"
	"github.com/qwalklab/qwalk/graph"
)

// TestHittingTime_CompleteGraph: on K_n every step hits the target
// with probability 1/(n-1), so the hitting time is geometric with
// mean n-1. 10000 trials put the sample mean within a few percent.
func TestHittingTime_CompleteGraph(t *testing.T) {
	g, err := graph.Complete(5)
	require.NoError(t, err)

	est, err := classical.HittingTime(g, 0, 3)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, est.MeanSteps, 0.3)
	assert.Equal(t, classical.DefaultTrials, est.Trials)
	assert.Zero(t, est.CappedTrials)
	assert.Equal(t, 250, est.StepCap)
}

// TestHittingTime_CycleAntipode: on C_n the hitting time from 0 to k
// is exactly k·(n-k); the antipode of C_8 gives 16.
func TestHittingTime_CycleAntipode(t *testing.T) {
	g, err := graph.Cycle(8)
	require.NoError(t, err)

	est, err := classical.HittingTime(g, 0, 4)
	require.NoError(t, err)

	assert.InDelta(t, 16.0, est.MeanSteps, 1.5)
	assert.Zero(t, est.CappedTrials)
}

// TestHittingTime_SameVertex: start == target is zero steps by
// convention, with no walking at all.
func TestHittingTime_SameVertex(t *testing.T) {
	g, err := graph.Star(6)
	require.NoError(t, err)

	est, err := classical.HittingTime(g, 2, 2)
	require.NoError(t, err)
	assert.Zero(t, est.MeanSteps)
	assert.Zero(t, est.CappedTrials)
}

// TestHittingTime_Determinism: equal seeds reproduce the estimate
// exactly; a different seed lands elsewhere.
func TestHittingTime_Determinism(t *testing.T) {
	g, err := graph.Hypercube(3)
	require.NoError(t, err)

	e1, err := classical.HittingTime(g, 0, 7, classical.WithTrials(500))
	require.NoError(t, err)
	e2, err := classical.HittingTime(g, 0, 7, classical.WithTrials(500))
	require.NoError(t, err)
	assert.Equal(t, e1, e2)

	e3, err := classical.HittingTime(g, 0, 7, classical.WithTrials(500), classical.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, e1.MeanSteps, e3.MeanSteps)
}

// TestHittingTime_VertexRange rejects endpoints outside [0, N).
func TestHittingTime_VertexRange(t *testing.T) {
	g, err := graph.Complete(4)
	require.NoError(t, err)

	_, err = classical.HittingTime(g, -1, 2)
	assert.ErrorIs(t, err, classical.ErrVertexRange)
	_, err = classical.HittingTime(g, 0, 4)
	assert.ErrorIs(t, err, classical.ErrVertexRange)
}

// TestOptions_PanicOnInvalid: the trials constructor rejects nonsense.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { classical.WithTrials(0) })
}
