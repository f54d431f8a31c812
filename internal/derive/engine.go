// Package derive implements the derived-metric engine: ordered, pure,
// column-wise transformations that widen the merged frame with the named
// analytic columns consumed by the chart catalog.
package derive

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/domain"
)

// Step is one named transformation. Requires lists the columns the step
// reads; Produces lists the columns it writes. Validate uses both to catch
// ordering and configuration errors before any formula runs.
type Step struct {
	Name     string
	Requires []string
	Produces []string
	Apply    func(f *domain.Frame) error
}

// Engine runs an ordered list of steps over a frame.
type Engine struct {
	steps []Step
}

// NewEngine creates an engine over the given steps. Step order is
// significant: later steps may require columns produced by earlier ones.
func NewEngine(steps []Step) *Engine {
	return &Engine{steps: steps}
}

// Steps returns the step list.
func (e *Engine) Steps() []Step { return e.steps }

// Validate simulates execution against the frame's starting columns and
// reports every step whose requirements cannot be satisfied. A non-nil
// error here is fatal: the pipeline cannot produce a meaningful report.
func (e *Engine) Validate(f *domain.Frame) error {
	available := make(map[string]bool, f.NumColumns())
	for _, c := range f.Columns() {
		available[c] = true
	}

	var problems []string
	for _, s := range e.steps {
		var missing []string
		for _, r := range s.Requires {
			if !available[r] {
				missing = append(missing, r)
			}
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s: missing %s", s.Name, strings.Join(missing, ", ")))
		}
		for _, p := range s.Produces {
			available[p] = true
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(problems, "; "))
	}
	return nil
}

// Run validates and applies every step in order. Row-level conditions
// (insufficient history, zero denominators) surface as NaN values, never
// as errors; an error from Run means a misconfigured pipeline.
func (e *Engine) Run(f *domain.Frame) error {
	if err := e.Validate(f); err != nil {
		return err
	}
	for _, s := range e.steps {
		if err := s.Apply(f); err != nil {
			return fmt.Errorf("step %s: %w", s.Name, err)
		}
	}
	return nil
}

// setDivided writes a / b under name, logging zero-denominator rows.
func setDivided(f *domain.Frame, name string, a, b []float64) error {
	vals, zeros := divide(a, b)
	if zeros > 0 {
		log.Warn().Str("column", name).Int("rows", zeros).Msg("zero denominator, value undefined")
	}
	return f.Set(name, vals)
}

// col fetches a column that Validate has already guaranteed to exist.
func col(f *domain.Frame, name string) []float64 {
	vals, err := f.Column(name)
	if err != nil {
		// Unreachable after Validate; keep the failure loud if a step
		// declares its Requires incorrectly.
		panic(fmt.Sprintf("derive: undeclared dependency %s", name))
	}
	return vals
}
