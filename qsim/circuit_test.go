package qsim_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwalklab/qwalk/qsim"
)

// TestRun_GroundState verifies the empty circuit leaves |0…0⟩ intact.
func TestRun_GroundState(t *testing.T) {
	s, err := qsim.NewCircuit(3).Run()
	require.NoError(t, err)

	amps := s.Amplitudes()
	assert.Equal(t, complex128(1), amps[0])
	for i := 1; i < len(amps); i++ {
		assert.Zero(t, amps[i], "index %d", i)
	}
	assert.InDelta(t, 1.0, s.Norm(), 1e-12)
}

// TestRun_HadamardInvolution checks H·H = I on one qubit.
func TestRun_HadamardInvolution(t *testing.T) {
	s, err := qsim.NewCircuit(1).H(0).H(0).Run()
	require.NoError(t, err)

	amps := s.Amplitudes()
	assert.InDelta(t, 1.0, real(amps[0]), 1e-12)
	assert.InDelta(t, 0.0, real(amps[1]), 1e-12)
}

// TestRun_HadamardSuperposition checks a single H yields equal weights.
func TestRun_HadamardSuperposition(t *testing.T) {
	c := qsim.NewCircuit(2).H(0).Measure(0, 1)
	probs, err := c.Probabilities()
	require.NoError(t, err)

	assert.InDelta(t, 0.5, probs[0b00], 1e-12)
	assert.InDelta(t, 0.5, probs[0b01], 1e-12)
	assert.InDelta(t, 0.0, probs[0b10], 1e-12)
	assert.InDelta(t, 0.0, probs[0b11], 1e-12)
}

// TestRun_CXTruthTable verifies CX on every computational basis input.
func TestRun_CXTruthTable(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(c *qsim.Circuit) *qsim.Circuit
		want    int // expected basis index after CX(0,1)
	}{
		{"00→00", func(c *qsim.Circuit) *qsim.Circuit { return c }, 0b00},
		{"01→11", func(c *qsim.Circuit) *qsim.Circuit { return c.X(0) }, 0b11},
		{"10→10", func(c *qsim.Circuit) *qsim.Circuit { return c.X(1) }, 0b10},
		{"11→01", func(c *qsim.Circuit) *qsim.Circuit { return c.X(0).X(1) }, 0b01},
	}

	for _, tc := range cases {
		c := tc.prepare(qsim.NewCircuit(2)).CX(0, 1)
		s, err := c.Run()
		require.NoError(t, err, tc.name)

		amps := s.Amplitudes()
		for i, a := range amps {
			want := 0.0
			if i == tc.want {
				want = 1.0
			}
			assert.InDelta(t, want, real(a), 1e-12, "%s index %d", tc.name, i)
		}
	}
}

// TestRun_MCXRequiresAllControls verifies the Toffoli only fires when
// every control is set.
func TestRun_MCXRequiresAllControls(t *testing.T) {
	// One control set: target must stay 0.
	s, err := qsim.NewCircuit(3).X(0).MCX([]int{0, 1}, 2).Run()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(s.Amplitudes()[0b001]), 1e-12)

	// Both controls set: target flips.
	s, err = qsim.NewCircuit(3).X(0).X(1).MCX([]int{0, 1}, 2).Run()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(s.Amplitudes()[0b111]), 1e-12)
}

// TestRun_UnitaryMatchesX applies X as a dense 2×2 unitary and
// compares against the native gate.
func TestRun_UnitaryMatchesX(t *testing.T) {
	x := [][]complex128{{0, 1}, {1, 0}}

	s1, err := qsim.NewCircuit(2).Unitary([]int{1}, x).Run()
	require.NoError(t, err)
	s2, err := qsim.NewCircuit(2).X(1).Run()
	require.NoError(t, err)

	a1, a2 := s1.Amplitudes(), s2.Amplitudes()
	for i := range a1 {
		assert.InDelta(t, real(a2[i]), real(a1[i]), 1e-12, "index %d", i)
		assert.InDelta(t, imag(a2[i]), imag(a1[i]), 1e-12, "index %d", i)
	}
}

// TestRun_TwoQubitUnitaryNormPreserved applies a 4×4 Grover diffusion
// to a superposed register and checks unitarity.
func TestRun_TwoQubitUnitaryNormPreserved(t *testing.T) {
	const dim = 4
	u := make([][]complex128, dim)
	for i := range u {
		u[i] = make([]complex128, dim)
		for j := range u[i] {
			u[i][j] = complex(2.0/dim, 0)
			if i == j {
				u[i][j] -= 1
			}
		}
	}

	s, err := qsim.NewCircuit(3).H(0).H(1).H(2).Unitary([]int{0, 2}, u).Run()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Norm(), 1e-12)
}

// TestRun_GroverDiffusionOnUniform checks (2/d)·J − I fixes the
// uniform superposition (its +1 eigenvector).
func TestRun_GroverDiffusionOnUniform(t *testing.T) {
	const k = 2
	const dim = 1 << k
	u := make([][]complex128, dim)
	for i := range u {
		u[i] = make([]complex128, dim)
		for j := range u[i] {
			u[i][j] = complex(2.0/dim, 0)
			if i == j {
				u[i][j] -= 1
			}
		}
	}

	s, err := qsim.NewCircuit(k).H(0).H(1).Unitary([]int{0, 1}, u).Run()
	require.NoError(t, err)

	want := 1 / math.Sqrt(dim)
	for i, a := range s.Amplitudes() {
		assert.InDelta(t, want, real(a), 1e-12, "index %d", i)
		assert.InDelta(t, 0.0, imag(a), 1e-12, "index %d", i)
	}
}

// TestBuilder_Validation covers the builder's fail-fast contract.
func TestBuilder_Validation(t *testing.T) {
	_, err := qsim.NewCircuit(0).Run()
	assert.ErrorIs(t, err, qsim.ErrQubitCount)

	_, err = qsim.NewCircuit(2).H(2).Run()
	assert.ErrorIs(t, err, qsim.ErrQubitRange)

	_, err = qsim.NewCircuit(2).CX(1, 1).Run()
	assert.ErrorIs(t, err, qsim.ErrDuplicateQubit)

	_, err = qsim.NewCircuit(2).Unitary([]int{0}, [][]complex128{{1}}).Run()
	assert.ErrorIs(t, err, qsim.ErrUnitaryShape)

	_, err = qsim.NewCircuit(2).H(0).Probabilities()
	assert.ErrorIs(t, err, qsim.ErrNoMeasurement)

	_, err = qsim.NewCircuit(2).H(0).Measure(0).Sample(42, 0)
	assert.ErrorIs(t, err, qsim.ErrNonPositiveShots)
}

// TestBuilder_ErrorSticks ensures the first violation poisons later
// builder calls and is the one reported.
func TestBuilder_ErrorSticks(t *testing.T) {
	c := qsim.NewCircuit(2).H(5).X(0).Measure(0)
	assert.ErrorIs(t, c.Err(), qsim.ErrQubitRange)
	assert.Equal(t, 0, c.GateCount(), "no gate may be recorded after a violation")
}

// TestSample_Determinism: identical circuit + seed + shots must
// reproduce identical counts.
func TestSample_Determinism(t *testing.T) {
	build := func() *qsim.Circuit {
		return qsim.NewCircuit(3).H(0).CX(0, 1).H(2).Measure(0, 1, 2)
	}

	c1, err := build().Sample(42, 4096)
	require.NoError(t, err)
	c2, err := build().Sample(42, 4096)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)

	c3, err := build().Sample(43, 4096)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3, "a different seed should shuffle the counts")
}

// TestSample_CountsAndKeys verifies totals, key width, and convergence
// of empirical frequencies to the exact marginal.
func TestSample_CountsAndKeys(t *testing.T) {
	const shots = 8192
	c := qsim.NewCircuit(2).H(0).CX(0, 1).Measure(0, 1) // Bell pair

	counts, err := c.Sample(42, shots)
	require.NoError(t, err)

	total := 0
	for key, n := range counts {
		require.Len(t, key, 2, "keys are fixed-width bitstrings")
		v, err := strconv.ParseUint(key, 2, 64)
		require.NoError(t, err)
		require.True(t, v == 0b00 || v == 0b11, "Bell pair only yields 00 and 11, got %s", key)
		total += n
	}
	assert.Equal(t, shots, total)

	// Both outcomes near 1/2, within a generous 5σ ≈ 5·(0.5/√shots).
	assert.InDelta(t, 0.5, float64(counts["00"])/shots, 0.03)
	assert.InDelta(t, 0.5, float64(counts["11"])/shots, 0.03)
}

// TestProbabilities_MarginalOverSubset measures one qubit of an
// entangled pair and checks the reduced distribution.
func TestProbabilities_MarginalOverSubset(t *testing.T) {
	probs, err := qsim.NewCircuit(2).H(0).CX(0, 1).Measure(1).Probabilities()
	require.NoError(t, err)

	require.Len(t, probs, 2)
	assert.InDelta(t, 0.5, probs[0], 1e-12)
	assert.InDelta(t, 0.5, probs[1], 1e-12)
}
