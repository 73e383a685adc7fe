// SPDX-License-Identifier: MIT

package contwalk

import (
	"gonum.org/v1/gonum/mat"
	"golang.org/x/sync/errgroup"
)

// Sweep evaluates Evolve(h, psi0, t) independently for every t in
// times and stacks the probability rows; ProbMatrix[i] corresponds to
// times[i] regardless of completion order.
//
// Samples are embarrassingly parallel — each runs its own spectral
// factorization in an errgroup worker, bounded by WithParallelism.
// The first failing sample cancels the rest and its error is returned.
func Sweep(h *mat.SymDense, psi0 []complex128, times []float64, opts ...Option) (*SweepResult, error) {
	o := gatherOptions(opts...)

	res := &SweepResult{
		Times:      make([]float64, len(times)),
		ProbMatrix: make([][]float64, len(times)),
	}
	copy(res.Times, times)

	var eg errgroup.Group
	eg.SetLimit(o.parallelism)
	for i, t := range times {
		i, t := i, t // per-iteration copies for the worker closure
		eg.Go(func() error {
			st, err := Evolve(h, psi0, t)
			if err != nil {
				return err
			}
			res.ProbMatrix[i] = st.Probabilities // distinct index per worker
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
