// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the reduction surface: Sum, Mean, Std, Min, Max, Median and
//     CountZeros, each over the whole matrix or along an Axis.
//
// Exposed API:
//   - Sum() / SumAxis(axis)         // sequential row-major fold
//   - Mean() / MeanAxis(axis)       // Sum / n
//   - Std() / StdAxis(axis)         // population standard deviation (divide by n)
//   - Min() / Max() / *Axis         // extremes
//   - Median() / MedianAxis(axis)   // middle value; mean of the two middles for even n
//   - CountZeros() / *Axis          // number of cells equal to zero
//
// Determinism & Performance:
//   - Whole-matrix folds walk the flat buffer 0..n-1.
//   - Axis folds gather each lane (column top→bottom, row left→right) and
//     fold it in that order, so results are reproducible bit for bit.
//   - Every reachable *Dense is non-empty, so no reduction has an empty input.

package matrix

import (
	"math"
	"slices"
)

// Operation name constants for unified error wrapping.
const (
	opSumAxis        = "SumAxis"
	opMeanAxis       = "MeanAxis"
	opStdAxis        = "StdAxis"
	opMinAxis        = "MinAxis"
	opMaxAxis        = "MaxAxis"
	opMedianAxis     = "MedianAxis"
	opCountZerosAxis = "CountZerosAxis"
)

// ---------- lane kernels (pure, O(n)) ----------

func foldSum(xs []float64) float64 {
	s := 0.0
	for _, v := range xs {
		s += v
	}

	return s
}

func foldMean(xs []float64) float64 { return foldSum(xs) / float64(len(xs)) }

// foldStd is the two-pass population standard deviation.
func foldStd(xs []float64) float64 {
	mu := foldMean(xs)
	ss := 0.0
	var d float64
	for _, v := range xs {
		d = v - mu
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)))
}

func foldMin(xs []float64) float64 {
	lo := xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo
}

func foldMax(xs []float64) float64 {
	hi := xs[0]
	for _, v := range xs[1:] {
		if v > hi {
			hi = v
		}
	}

	return hi
}

// foldMedian sorts a private copy; the input lane is left untouched.
func foldMedian(xs []float64) float64 {
	s := slices.Clone(xs)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}

func foldZeros(xs []float64) float64 {
	n := 0
	for _, v := range xs {
		if v == 0 {
			n++
		}
	}

	return float64(n)
}

// lanes splits m into per-column (AxisColumns) or per-row (AxisRows) copies.
// Stage 1: validate axis.
// Stage 2: gather lanes in deterministic order.
// Complexity: O(r*c) time and space.
func (m *Dense) lanes(axis Axis) ([][]float64, error) {
	if err := ValidateAxis(axis); err != nil {
		return nil, err
	}
	var out [][]float64
	if axis == AxisRows {
		out = make([][]float64, m.r)
		for i := 0; i < m.r; i++ {
			out[i] = m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
		}
		return out, nil
	}

	out = make([][]float64, m.c)
	for j := 0; j < m.c; j++ {
		col := make([]float64, m.r)
		for i := 0; i < m.r; i++ {
			col[i] = m.data[i*m.c+j]
		}
		out[j] = col
	}

	return out, nil
}

// reduceAxis applies fold to every lane along axis.
func (m *Dense) reduceAxis(op string, axis Axis, fold func([]float64) float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	ls, err := m.lanes(axis)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := make([]float64, len(ls))
	for k, lane := range ls {
		out[k] = fold(lane)
	}

	return out, nil
}

// ---------- whole-matrix reductions ----------

// Sum returns the sum of all cells (sequential row-major fold).
func (m *Dense) Sum() float64 { return foldSum(m.data) }

// Mean returns the arithmetic mean of all cells.
func (m *Dense) Mean() float64 { return foldMean(m.data) }

// Std returns the population standard deviation of all cells.
func (m *Dense) Std() float64 { return foldStd(m.data) }

// Min returns the smallest cell.
func (m *Dense) Min() float64 { return foldMin(m.data) }

// Max returns the largest cell.
func (m *Dense) Max() float64 { return foldMax(m.data) }

// Median returns the median cell; for an even cell count it is the mean of
// the two middle values.
// Complexity: O(n log n) time, O(n) space for the sorted copy.
func (m *Dense) Median() float64 { return foldMedian(m.data) }

// CountZeros returns the number of cells equal to zero.
func (m *Dense) CountZeros() int { return int(foldZeros(m.data)) }

// CountNonzero returns the number of cells equal to ZERO.
//
// Deprecated: the name is kept for callers of the historical API, whose
// implementation counted zero cells; the behavior is preserved. Use CountZeros.
func (m *Dense) CountNonzero() int { return m.CountZeros() }

// ---------- axis reductions ----------

// SumAxis returns per-column (AxisColumns) or per-row (AxisRows) sums.
// Errors: ErrBadAxis.
func (m *Dense) SumAxis(axis Axis) ([]float64, error) {
	return m.reduceAxis(opSumAxis, axis, foldSum)
}

// MeanAxis returns per-lane means. Errors: ErrBadAxis.
func (m *Dense) MeanAxis(axis Axis) ([]float64, error) {
	return m.reduceAxis(opMeanAxis, axis, foldMean)
}

// StdAxis returns per-lane population standard deviations. Errors: ErrBadAxis.
func (m *Dense) StdAxis(axis Axis) ([]float64, error) {
	return m.reduceAxis(opStdAxis, axis, foldStd)
}

// MinAxis returns per-lane minima. Errors: ErrBadAxis.
func (m *Dense) MinAxis(axis Axis) ([]float64, error) {
	return m.reduceAxis(opMinAxis, axis, foldMin)
}

// MaxAxis returns per-lane maxima. Errors: ErrBadAxis.
func (m *Dense) MaxAxis(axis Axis) ([]float64, error) {
	return m.reduceAxis(opMaxAxis, axis, foldMax)
}

// MedianAxis returns per-lane medians. Errors: ErrBadAxis.
func (m *Dense) MedianAxis(axis Axis) ([]float64, error) {
	return m.reduceAxis(opMedianAxis, axis, foldMedian)
}

// CountZerosAxis returns per-lane zero counts. Errors: ErrBadAxis.
func (m *Dense) CountZerosAxis(axis Axis) ([]int, error) {
	fs, err := m.reduceAxis(opCountZerosAxis, axis, foldZeros)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fs))
	for k, v := range fs {
		out[k] = int(v)
	}

	return out, nil
}

// CountNonzeroAxis returns per-lane counts of cells equal to ZERO.
//
// Deprecated: see CountNonzero. Use CountZerosAxis.
func (m *Dense) CountNonzeroAxis(axis Axis) ([]int, error) { return m.CountZerosAxis(axis) }
