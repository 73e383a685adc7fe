// SPDX-License-Identifier: MIT

package plotting

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/qwalklab/qwalk/coined"
	"github.com/qwalklab/qwalk/contwalk"
	"github.com/qwalklab/qwalk/search"
)

// Canvas dimensions shared by all renderers.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

var (
	// ErrNilResult indicates a renderer received a nil result.
	ErrNilResult = errors.New("plotting: result is nil")
	// ErrEmptyResult indicates a result with no data points to draw.
	ErrEmptyResult = errors.New("plotting: result holds no data")
	// ErrVertexRange indicates a requested vertex lies outside the sweep.
	ErrVertexRange = errors.New("plotting: vertex out of range")
	// ErrLengthMismatch indicates parallel inputs of different lengths.
	ErrLengthMismatch = errors.New("plotting: input lengths differ")
)

// PositionDistribution renders a coined-walk measurement histogram as
// a bar chart, one bar per position.
func PositionDistribution(res *coined.Result, path string) error {
	if res == nil {
		return fmt.Errorf("PositionDistribution: %w", ErrNilResult)
	}
	if len(res.Positions) == 0 || len(res.Positions) != len(res.Probabilities) {
		return fmt.Errorf("PositionDistribution: %w", ErrEmptyResult)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Coined walk, %d shots", res.Shots)
	p.X.Label.Text = "position"
	p.Y.Label.Text = "probability"

	bars, err := plotter.NewBarChart(plotter.Values(res.Probabilities), vg.Points(14))
	if err != nil {
		return fmt.Errorf("PositionDistribution: %w", err)
	}
	p.Add(bars)

	labels := make([]string, len(res.Positions))
	for i, pos := range res.Positions {
		labels[i] = strconv.Itoa(pos)
	}
	p.NominalX(labels...)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("PositionDistribution: %w", err)
	}
	return nil
}

// EvolutionCurves renders the continuous-walk probability of each
// requested vertex over the sweep times, one line per vertex.
func EvolutionCurves(sw *contwalk.SweepResult, vertices []int, path string) error {
	if sw == nil {
		return fmt.Errorf("EvolutionCurves: %w", ErrNilResult)
	}
	if len(sw.Times) == 0 || len(vertices) == 0 {
		return fmt.Errorf("EvolutionCurves: %w", ErrEmptyResult)
	}
	dim := len(sw.ProbMatrix[0])

	p := plot.New()
	p.Title.Text = "Continuous-time walk"
	p.X.Label.Text = "time"
	p.Y.Label.Text = "probability"
	p.Y.Min = 0

	for _, v := range vertices {
		if v < 0 || v >= dim {
			return fmt.Errorf("EvolutionCurves: vertex=%d, dim=%d: %w", v, dim, ErrVertexRange)
		}
		xys := make(plotter.XYs, len(sw.Times))
		for i, t := range sw.Times {
			xys[i] = plotter.XY{X: t, Y: sw.ProbMatrix[i][v]}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("EvolutionCurves: %w", err)
		}
		line.Color = plotutil.Color(v)
		p.Add(line)
		p.Legend.Add("vertex "+strconv.Itoa(v), line)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("EvolutionCurves: %w", err)
	}
	return nil
}

// SearchCurve renders the success probability of a spectral search
// over time and marks the optimal sample.
func SearchCurve(res *search.Result, path string) error {
	if res == nil {
		return fmt.Errorf("SearchCurve: %w", ErrNilResult)
	}
	if len(res.Times) == 0 || len(res.Times) != len(res.SuccessProbs) {
		return fmt.Errorf("SearchCurve: %w", ErrEmptyResult)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Search for vertex %d", res.Marked)
	p.X.Label.Text = "time"
	p.Y.Label.Text = "success probability"
	p.Y.Min, p.Y.Max = 0, 1.05

	xys := make(plotter.XYs, len(res.Times))
	for i, t := range res.Times {
		xys[i] = plotter.XY{X: t, Y: res.SuccessProbs[i]}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("SearchCurve: %w", err)
	}
	p.Add(line)
	p.Legend.Add("success", line)

	peak, err := plotter.NewScatter(plotter.XYs{{X: res.OptimalTime, Y: res.MaxProbability}})
	if err != nil {
		return fmt.Errorf("SearchCurve: %w", err)
	}
	p.Add(peak)
	p.Legend.Add(fmt.Sprintf("peak t=%.2f", res.OptimalTime), peak)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("SearchCurve: %w", err)
	}
	return nil
}

// BenchmarkScaling renders optimal search time against graph size,
// optionally alongside the classical hitting-time baseline.
// classicalMeans may be nil; when present it must pair up with the
// benchmark's node counts.
func BenchmarkScaling(res *search.BenchmarkResult, classicalMeans []float64, path string) error {
	if res == nil {
		return fmt.Errorf("BenchmarkScaling: %w", ErrNilResult)
	}
	if len(res.NodeCounts) == 0 || len(res.NodeCounts) != len(res.OptimalTimes) {
		return fmt.Errorf("BenchmarkScaling: %w", ErrEmptyResult)
	}
	if classicalMeans != nil && len(classicalMeans) != len(res.NodeCounts) {
		return fmt.Errorf("BenchmarkScaling: %d baselines for %d sizes: %w",
			len(classicalMeans), len(res.NodeCounts), ErrLengthMismatch)
	}

	p := plot.New()
	p.Title.Text = "Search scaling"
	p.X.Label.Text = "vertices"
	p.Y.Label.Text = "steps / time"

	quantum := make(plotter.XYs, len(res.NodeCounts))
	for i, n := range res.NodeCounts {
		quantum[i] = plotter.XY{X: float64(n), Y: res.OptimalTimes[i]}
	}
	qLine, qPoints, err := plotter.NewLinePoints(quantum)
	if err != nil {
		return fmt.Errorf("BenchmarkScaling: %w", err)
	}
	p.Add(qLine, qPoints)
	p.Legend.Add("quantum optimal time", qLine)

	if classicalMeans != nil {
		baseline := make(plotter.XYs, len(res.NodeCounts))
		for i, n := range res.NodeCounts {
			baseline[i] = plotter.XY{X: float64(n), Y: classicalMeans[i]}
		}
		cLine, cPoints, err := plotter.NewLinePoints(baseline)
		if err != nil {
			return fmt.Errorf("BenchmarkScaling: %w", err)
		}
		cLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(cLine, cPoints)
		p.Legend.Add("classical hitting time", cLine)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("BenchmarkScaling: %w", err)
	}
	return nil
}
