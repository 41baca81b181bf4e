package harness

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
)

// Runner executes ordered phases of test cases sequentially. One
// command runs to completion before the next begins; there is no
// overlap between setup, primary command, trace drain and cleanup for
// a case, and no two cases ever run concurrently.
//
// The trace reader and reporter are injected collaborators: the runner
// owns the alignment of one trace drain cycle with one case execution.
type Runner struct {
	Shell    ShellFunc
	Trace    *TraceReader
	Reporter *Reporter
	Log      zerolog.Logger

	// Params are substituted into command/path templates; "mount" is
	// always present.
	Params map[string]string

	// Timeout bounds each primary command (and setup/cleanup commands).
	Timeout time.Duration

	// NoSkip disables skip propagation, forcing every case to execute
	// even after failures. Used to maximize diagnostic coverage.
	NoSkip bool

	// Policy selects when correlated trace output is printed.
	Policy DisplayPolicy

	// Filter is a case-insensitive, comma-separated list of phase-name
	// substrings with OR semantics. Empty selects all phases.
	Filter string
}

// Run executes all phases matching the filter and returns the
// aggregate counters. Degradation is phase-local: a failure in one
// phase never skips cases in the next.
func (r *Runner) Run(ctx context.Context, phases []Phase) Summary {
	var sum Summary

	for _, phase := range phases {
		if !PhaseMatches(phase.Name, r.Filter) {
			continue
		}
		r.Reporter.Phase(phase.Name)

		degraded := false
		for _, tc := range phase.Cases {
			if degraded && !r.NoSkip && !tc.IsCleanupStep() {
				r.Reporter.Case(OutcomeSkip, tc.Description, "")
				sum.Skipped++
				continue
			}

			switch r.runCase(ctx, tc) {
			case OutcomePass:
				sum.Passed++
			case OutcomeInfo:
				// Recorded for visibility only: no counter, no
				// degradation.
			case OutcomeFail:
				sum.Failed++
				degraded = true
			}
		}
	}

	return sum
}

// runCase executes one case: setup, primary command, evaluation, trace
// drain, cleanup. Setup and cleanup results are discarded; cleanup runs
// even when the case fails.
func (r *Runner) runCase(ctx context.Context, tc TestCase) Outcome {
	command := Expand(tc.Command, r.Params)

	if tc.Setup != "" {
		r.Shell(ctx, Expand(tc.Setup, r.Params), r.Timeout)
	}

	res := r.Shell(ctx, command, r.Timeout)

	checkPath := ""
	if tc.CheckPath != "" {
		checkPath = Expand(tc.CheckPath, r.Params)
	}
	passed, detail := Evaluate(tc, res, checkPath)

	outcome := OutcomePass
	if !passed {
		outcome = OutcomeFail
		if tc.Informational {
			outcome = OutcomeInfo
		}
	}
	r.Reporter.Case(outcome, tc.Description, detail)

	r.Log.Debug().
		Str("case", tc.Description).
		Str("outcome", string(outcome)).
		Int("exit_code", res.ExitCode).
		Msg("case finished")

	if r.Trace != nil {
		r.Trace.Drain(r.Policy, passed)
	}

	if tc.Cleanup != "" {
		r.Shell(ctx, Expand(tc.Cleanup, r.Params), r.Timeout)
	}

	return outcome
}

// PhaseMatches reports whether a phase name matches a comma-separated
// substring filter. Matching is caseless (Unicode case folding); an
// empty filter matches everything.
func PhaseMatches(name, filter string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}

	fold := cases.Fold()
	folded := fold.String(name)

	for _, term := range strings.Split(filter, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if strings.Contains(folded, fold.String(term)) {
			return true
		}
	}
	return false
}
