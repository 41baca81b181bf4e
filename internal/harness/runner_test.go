package harness

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// scriptedShell returns a ShellFunc that records every command it
// receives and returns the result mapped to the command (zero exit for
// unmapped commands).
func scriptedShell(executed *[]string, results map[string]CommandResult) ShellFunc {
	return func(ctx context.Context, command string, timeout time.Duration) CommandResult {
		*executed = append(*executed, command)
		if res, ok := results[command]; ok {
			return res
		}
		return CommandResult{ExitCode: 0}
	}
}

func newTestRunner(shell ShellFunc) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &Runner{
		Shell:    shell,
		Reporter: &Reporter{Out: &out, Color: false},
		Log:      zerolog.Nop(),
		Params:   map[string]string{"mount": "/mnt/test"},
		Timeout:  time.Second,
	}, &out
}

func TestRunner_AllPass(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, nil))

	sum := r.Run(context.Background(), []Phase{{
		Name: "PHASE X: basics",
		Cases: []TestCase{
			{Description: "first", Command: "true", Expect: ExpectSuccess},
			{Description: "second", Command: "true", Expect: ExpectSuccess},
		},
	}})

	assert.Equal(t, Summary{Passed: 2}, sum)
	assert.Len(t, executed, 2)
}

func TestRunner_SkipPropagation(t *testing.T) {
	var executed []string
	r, out := newTestRunner(scriptedShell(&executed, map[string]CommandResult{
		"failing": {ExitCode: 1, Stderr: "nope"},
	}))

	sum := r.Run(context.Background(), []Phase{{
		Name: "PHASE X: degradation",
		Cases: []TestCase{
			{Description: "breaks", Command: "failing", Expect: ExpectSuccess},
			{Description: "never runs", Command: "skipped-cmd", Expect: ExpectSuccess},
			{Description: "cleanup still runs", Command: "cleanup-cmd", Expect: ExpectSuccess},
		},
	}})

	assert.Equal(t, Summary{Passed: 1, Failed: 1, Skipped: 1}, sum)
	// The skipped case's command is never invoked; the cleanup step's is.
	assert.Equal(t, []string{"failing", "cleanup-cmd"}, executed)
	assert.Contains(t, out.String(), "SKIP never runs")
}

func TestRunner_DegradationIsPhaseLocal(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, map[string]CommandResult{
		"failing": {ExitCode: 1},
	}))

	sum := r.Run(context.Background(), []Phase{
		{Name: "PHASE 1", Cases: []TestCase{
			{Description: "breaks", Command: "failing", Expect: ExpectSuccess},
			{Description: "skipped", Command: "x", Expect: ExpectSuccess},
		}},
		{Name: "PHASE 2", Cases: []TestCase{
			{Description: "runs fine", Command: "true", Expect: ExpectSuccess},
		}},
	})

	assert.Equal(t, Summary{Passed: 1, Failed: 1, Skipped: 1}, sum)
}

func TestRunner_NoSkipRunsEverything(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, map[string]CommandResult{
		"failing": {ExitCode: 1},
	}))
	r.NoSkip = true

	sum := r.Run(context.Background(), []Phase{{
		Name: "PHASE X",
		Cases: []TestCase{
			{Description: "breaks", Command: "failing", Expect: ExpectSuccess},
			{Description: "still runs", Command: "after", Expect: ExpectSuccess},
		},
	}})

	assert.Equal(t, Summary{Passed: 1, Failed: 1}, sum)
	assert.Equal(t, []string{"failing", "after"}, executed)
}

func TestRunner_InformationalFailure(t *testing.T) {
	var executed []string
	r, out := newTestRunner(scriptedShell(&executed, map[string]CommandResult{
		"flaky": {ExitCode: 1},
	}))

	sum := r.Run(context.Background(), []Phase{{
		Name: "PHASE X",
		Cases: []TestCase{
			{Description: "[info] known gap", Command: "flaky", Expect: ExpectSuccess, Informational: true},
			{Description: "unaffected", Command: "true", Expect: ExpectSuccess},
		},
	}})

	// The informational failure neither counts nor degrades the phase.
	assert.Equal(t, Summary{Passed: 1}, sum)
	assert.Equal(t, []string{"flaky", "true"}, executed)
	assert.Contains(t, out.String(), "INFO [info] known gap")
}

func TestRunner_SetupAndCleanupDiscarded(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, map[string]CommandResult{
		"setup-cmd": {ExitCode: 1, Stderr: "setup noise"},
	}))

	sum := r.Run(context.Background(), []Phase{{
		Name: "PHASE X",
		Cases: []TestCase{{
			Description: "with helpers",
			Command:     "true",
			Expect:      ExpectSuccess,
			Setup:       "setup-cmd",
			Cleanup:     "cleanup-cmd",
		}},
	}})

	// Setup failure doesn't fail the case; cleanup runs after it.
	assert.Equal(t, Summary{Passed: 1}, sum)
	assert.Equal(t, []string{"setup-cmd", "true", "cleanup-cmd"}, executed)
}

func TestRunner_CleanupRunsOnCaseFailure(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, map[string]CommandResult{
		"failing": {ExitCode: 1},
	}))

	r.Run(context.Background(), []Phase{{
		Name: "PHASE X",
		Cases: []TestCase{{
			Description: "fails but cleans",
			Command:     "failing",
			Expect:      ExpectSuccess,
			Cleanup:     "tidy",
		}},
	}})

	assert.Equal(t, []string{"failing", "tidy"}, executed)
}

func TestRunner_ParamExpansion(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, nil))

	r.Run(context.Background(), []Phase{{
		Name: "PHASE X",
		Cases: []TestCase{{
			Description: "templated",
			Command:     "stat '{mount}/file'",
			Expect:      ExpectSuccess,
		}},
	}})

	assert.Equal(t, []string{"stat '/mnt/test/file'"}, executed)
}

func TestRunner_PhaseFilter(t *testing.T) {
	var executed []string
	r, _ := newTestRunner(scriptedShell(&executed, nil))
	r.Filter = "write,READ"

	sum := r.Run(context.Background(), []Phase{
		{Name: "PHASE 4: File Write Operations", Cases: []TestCase{
			{Description: "a", Command: "w", Expect: ExpectSuccess}}},
		{Name: "PHASE 5: File Read Operations", Cases: []TestCase{
			{Description: "b", Command: "r", Expect: ExpectSuccess}}},
		{Name: "PHASE 8: chmod and chown", Cases: []TestCase{
			{Description: "c", Command: "never", Expect: ExpectSuccess}}},
	})

	assert.Equal(t, Summary{Passed: 2}, sum)
	assert.Equal(t, []string{"w", "r"}, executed)
}

func TestPhaseMatches(t *testing.T) {
	tests := []struct {
		name   string
		phase  string
		filter string
		want   bool
	}{
		{"empty filter matches all", "PHASE 1: Basics", "", true},
		{"blank filter matches all", "PHASE 1: Basics", "  ", true},
		{"substring match", "PHASE 4: File Write Operations (Write)", "4", true},
		{"caseless match", "PHASE 4: File Write Operations (Write)", "write", true},
		{"comma OR semantics", "PHASE 5: File Read Operations", "4,5", true},
		{"no term matches", "PHASE 5: File Read Operations", "chmod,mkdir", false},
		{"empty terms ignored", "PHASE 2: Directory Operations", ",,2,", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhaseMatches(tt.phase, tt.filter))
		})
	}
}
