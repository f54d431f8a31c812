package derive

import (
	"math"
	"sort"
)

// rollingMean computes the trailing simple mean over the window. The first
// window-1 entries are NaN. A NaN inside the window makes the output NaN
// for every position the value participates in.
func rollingMean(vals []float64, window int) []float64 {
	out := nans(len(vals))
	if window <= 0 || window > len(vals) {
		return out
	}
	sum := 0.0
	nanCount := 0
	for i, v := range vals {
		if math.IsNaN(v) {
			nanCount++
		} else {
			sum += v
		}
		if i >= window {
			old := vals[i-window]
			if math.IsNaN(old) {
				nanCount--
			} else {
				sum -= old
			}
		}
		if i >= window-1 && nanCount == 0 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// rollingMedian computes the trailing median over the window, NaN while the
// window is not yet full or contains NaN. Used for the long NVT-ratio
// smoothing window; O(n·w·log w) is fine at daily granularity.
func rollingMedian(vals []float64, window int) []float64 {
	out := nans(len(vals))
	if window <= 0 || window > len(vals) {
		return out
	}
	buf := make([]float64, 0, window)
	for i := window - 1; i < len(vals); i++ {
		buf = buf[:0]
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(vals[j]) {
				ok = false
				break
			}
			buf = append(buf, vals[j])
		}
		if !ok {
			continue
		}
		sort.Float64s(buf)
		mid := window / 2
		if window%2 == 1 {
			out[i] = buf[mid]
		} else {
			out[i] = (buf[mid-1] + buf[mid]) / 2
		}
	}
	return out
}

// lagRatio computes vals[i] / vals[i-lag]; NaN where history is missing.
func lagRatio(vals []float64, lag int) []float64 {
	out := nans(len(vals))
	for i := lag; i < len(vals); i++ {
		prev := vals[i-lag]
		if prev == 0 {
			continue
		}
		out[i] = vals[i] / prev
	}
	return out
}

// divide computes a[i] / b[i] elementwise, NaN on zero denominators.
// Returns the result and the number of zero-denominator rows.
func divide(a, b []float64) ([]float64, int) {
	out := nans(len(a))
	zeros := 0
	for i := range a {
		if b[i] == 0 {
			if !math.IsNaN(a[i]) {
				zeros++
			}
			continue
		}
		out[i] = a[i] / b[i]
	}
	return out, zeros
}

// scale multiplies every value by k.
func scale(vals []float64, k float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v * k
	}
	return out
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
