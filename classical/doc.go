// Package classical estimates random-walk hitting times by Monte
// Carlo — the baseline the quantum search scaling is judged against.
//
// A trial drops a walker on the start vertex and moves it to a
// uniformly random neighbor until it lands on the target; the estimate
// is the trial-average step count. Trials that exceed the safety cap
// (10·N² steps) are truncated at the cap and counted in
// Estimate.CappedTrials, so a nonzero capped count flags a biased mean
// rather than silently absorbing it.
//
// Runs are deterministic: a seeded generator drives all trials in
// sequence, so equal inputs produce equal estimates.
package classical
