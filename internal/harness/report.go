package harness

import (
	"fmt"
	"io"
	"strings"
)

// ANSI escape sequences used for console reporting. The reporter is the
// single place that knows about color; everything else hands it plain
// strings.
const (
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiBlue   = "\033[94m"
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
)

// Summary aggregates one run. Informational outcomes are counted in
// neither Passed nor Failed.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Total is the number of counted cases (passed, failed and skipped).
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Clean reports whether every counted case passed.
func (s Summary) Clean() bool {
	return s.Failed == 0 && s.Skipped == 0
}

// Reporter renders harness progress to a terminal. It is the program's
// product rather than diagnostics, so it writes directly instead of
// going through the structured logger.
type Reporter struct {
	Out   io.Writer
	Color bool
}

// NewReporter creates a colored reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out, Color: true}
}

func (r *Reporter) paint(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + ansiReset
}

// Banner prints the run header with the effective configuration.
func (r *Reporter) Banner(lines ...string) {
	fmt.Fprintln(r.Out, r.paint(ansiBold, "BangFS Conformance Harness"))
	fmt.Fprintln(r.Out, strings.Repeat("=", 60))
	for _, l := range lines {
		fmt.Fprintln(r.Out, l)
	}
	fmt.Fprintln(r.Out, strings.Repeat("=", 60))
}

// Phase prints a phase header.
func (r *Reporter) Phase(name string) {
	fmt.Fprintf(r.Out, "\n%s\n", r.paint(ansiBlue+ansiBold, "--- "+name+" ---"))
}

// Case prints one case outcome with its optional diagnostic detail.
// Failures and informational failures are visually distinguished from
// skips so a partial implementation reads as "how far did we get".
func (r *Reporter) Case(outcome Outcome, description, detail string) {
	var tag, color string
	switch outcome {
	case OutcomePass:
		tag, color = "PASS", ansiGreen
	case OutcomeFail:
		tag, color = "FAIL", ansiRed
	case OutcomeSkip:
		tag, color = "SKIP", ansiYellow
	case OutcomeInfo:
		tag, color = "INFO", ansiBlue
	}

	fmt.Fprintf(r.Out, "  %s %s\n", r.paint(color, tag), description)
	if detail != "" && outcome != OutcomePass && outcome != OutcomeSkip {
		fmt.Fprintf(r.Out, "       %s\n", r.paint(color, detail))
	}
}

// TraceLine prints one correlated trace-log line, dimmed and indented
// beneath the case it belongs to.
func (r *Reporter) TraceLine(line string) {
	fmt.Fprintf(r.Out, "       %s\n", r.paint(ansiDim, line))
}

// Results prints the final counters and a completion banner.
func (r *Reporter) Results(s Summary) {
	fmt.Fprintf(r.Out, "\n%s\n", r.paint(ansiBold, strings.Repeat("=", 60)))
	fmt.Fprintf(r.Out, "%s %s, %s, %s / %d total\n",
		r.paint(ansiBold, "RESULTS:"),
		r.paint(ansiGreen, fmt.Sprintf("%d passed", s.Passed)),
		r.paint(ansiRed, fmt.Sprintf("%d failed", s.Failed)),
		r.paint(ansiYellow, fmt.Sprintf("%d skipped", s.Skipped)),
		s.Total())

	if s.Clean() {
		fmt.Fprintln(r.Out, r.paint(ansiGreen+ansiBold, "ALL TESTS PASSED!"))
	} else if s.Total() > 0 {
		pct := float64(s.Passed) / float64(s.Total()) * 100
		fmt.Fprintf(r.Out, "Progress: %.0f%% complete\n", pct)
	}
	fmt.Fprintln(r.Out, r.paint(ansiBold, strings.Repeat("=", 60)))
}
