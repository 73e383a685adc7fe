package coined

// White-box tests pinning the shift permutation. The conditional
// increment is the one explicit design choice of the discrete walk
// (one-directional, wrap-around), so its action on every basis state
// is fixed here rather than inferred from walk distributions.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwalklab/qwalk/qsim"
)

// prepareBasis sets coin qubit 0 and the position bits of value s,
// then returns the circuit for further gates.
func prepareBasis(c *qsim.Circuit, coinOn bool, k, s int) *qsim.Circuit {
	if coinOn {
		c.X(0)
	}
	for b := 0; s>>b != 0; b++ {
		if s&(1<<b) != 0 {
			c.X(k + b)
		}
	}
	return c
}

// TestConditionalIncrement_Permutation verifies s → (s+1) mod 2^p for
// every start position when the coin is |1⟩, including the wrap at
// 2^p-1.
func TestConditionalIncrement_Permutation(t *testing.T) {
	const k, p = 1, 3
	for s := 0; s < 1<<p; s++ {
		c := qsim.NewCircuit(k + p)
		prepareBasis(c, true, k, s)
		appendConditionalIncrement(c, k, p)

		st, err := c.Run()
		require.NoError(t, err)

		next := (s + 1) % (1 << p)
		wantIndex := 1 | next<<k // coin bit still set, position incremented
		for i, a := range st.Amplitudes() {
			want := 0.0
			if i == wantIndex {
				want = 1.0
			}
			assert.InDelta(t, want, real(a), 1e-12, "start=%d index=%d", s, i)
		}
	}
}

// TestConditionalIncrement_CoinZeroHolds verifies the walker stays put
// on every position when the coin is |0⟩.
func TestConditionalIncrement_CoinZeroHolds(t *testing.T) {
	const k, p = 1, 3
	for s := 0; s < 1<<p; s++ {
		c := qsim.NewCircuit(k + p)
		prepareBasis(c, false, k, s)
		appendConditionalIncrement(c, k, p)

		st, err := c.Run()
		require.NoError(t, err)

		wantIndex := s << k
		for i, a := range st.Amplitudes() {
			want := 0.0
			if i == wantIndex {
				want = 1.0
			}
			assert.InDelta(t, want, real(a), 1e-12, "start=%d index=%d", s, i)
		}
	}
}
