package harness

import "strings"

// ExpectationKind is the closed set of ways a command's result can be
// judged pass or fail. Evaluate dispatches over this set exhaustively;
// adding a kind means adding a branch there and a loader constant here.
type ExpectationKind string

const (
	// ExpectSuccess passes when the command exits zero.
	ExpectSuccess ExpectationKind = "success"

	// ExpectFail passes when the command exits nonzero.
	ExpectFail ExpectationKind = "fail"

	// ExpectOutputContains passes when the command exits zero and its
	// trimmed stdout contains ExpectedValue as a literal substring.
	ExpectOutputContains ExpectationKind = "contains"

	// ExpectOutputEquals passes when the command exits zero and its
	// trimmed stdout equals ExpectedValue exactly.
	ExpectOutputEquals ExpectationKind = "equals"

	// ExpectFileExists passes when CheckPath exists after the command,
	// regardless of the command's exit code.
	ExpectFileExists ExpectationKind = "exists"

	// ExpectFileGone passes when CheckPath does not exist after the
	// command, regardless of the command's exit code.
	ExpectFileGone ExpectationKind = "gone"
)

// ValidExpectationKinds lists every accepted kind, for loader validation.
var ValidExpectationKinds = []ExpectationKind{
	ExpectSuccess,
	ExpectFail,
	ExpectOutputContains,
	ExpectOutputEquals,
	ExpectFileExists,
	ExpectFileGone,
}

// IsValidExpectationKind reports whether k is one of the closed set.
func IsValidExpectationKind(k ExpectationKind) bool {
	for _, v := range ValidExpectationKinds {
		if k == v {
			return true
		}
	}
	return false
}

// TestCase is one declarative conformance check: a shell command run
// against the mount, judged by an expectation kind. Cases are plain
// values; the runner interprets them.
//
// Command, Setup, Cleanup and CheckPath may contain {mount} (or any
// other parameter the runner declares), substituted before execution.
type TestCase struct {
	// Description identifies the case in reports. Assumed unique within
	// its phase for readable output; not enforced.
	Description string `yaml:"description"`

	// Command is the shell command template under test.
	Command string `yaml:"command"`

	// Expect selects the pass/fail predicate.
	Expect ExpectationKind `yaml:"expect"`

	// ExpectedValue is the literal string for the contains/equals kinds.
	ExpectedValue string `yaml:"expected_value,omitempty"`

	// Setup, if set, runs before the command. Its result is discarded.
	Setup string `yaml:"setup,omitempty"`

	// Cleanup, if set, runs after the command even when the case fails.
	// Its result is discarded.
	Cleanup string `yaml:"cleanup,omitempty"`

	// CheckPath is the path examined by the exists/gone kinds.
	CheckPath string `yaml:"check_path,omitempty"`

	// Informational marks a case whose failure is reported but neither
	// counted as a failure nor allowed to degrade the phase.
	Informational bool `yaml:"informational,omitempty"`
}

// IsCleanupStep reports whether this case is a cleanup step, which the
// runner executes even after its phase has degraded.
func (c TestCase) IsCleanupStep() bool {
	return strings.HasPrefix(strings.ToLower(c.Description), "cleanup")
}

// Phase is a named, ordered group of test cases covering one feature
// area. Order is significant: later cases may depend on filesystem
// state left by earlier ones. Phases are defined once at startup and
// immutable thereafter.
type Phase struct {
	Name  string     `yaml:"name"`
	Cases []TestCase `yaml:"cases"`
}

// Outcome classifies one executed (or skipped) test case.
type Outcome string

const (
	OutcomePass Outcome = "PASS"
	OutcomeFail Outcome = "FAIL"
	OutcomeSkip Outcome = "SKIP"
	OutcomeInfo Outcome = "INFO"
)

// Expand substitutes named parameters of the form {name} into a command
// or path template. Unknown placeholders are left untouched.
func Expand(template string, params map[string]string) string {
	out := template
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}
