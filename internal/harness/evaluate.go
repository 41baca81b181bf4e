package harness

import (
	"fmt"
	"os"
	"strings"
)

// Evaluate decides whether a command result satisfies a case's
// expectation. It returns the verdict plus a one-line diagnostic for
// the failing side; the detail is empty on pass.
//
// checkPath is the already-substituted path for the exists/gone kinds.
// No expectation kind panics or returns an error: every failure mode,
// including a missing check path, is represented as (false, detail).
func Evaluate(tc TestCase, res CommandResult, checkPath string) (bool, string) {
	switch tc.Expect {
	case ExpectSuccess:
		if res.Succeeded() {
			return true, ""
		}
		detail := res.Stderr
		if detail == "" {
			detail = "command failed"
		}
		return false, detail

	case ExpectFail:
		if !res.Succeeded() {
			return true, ""
		}
		return false, "expected failure but succeeded"

	case ExpectOutputContains:
		if res.Succeeded() && strings.Contains(res.Stdout, tc.ExpectedValue) {
			return true, ""
		}
		return false, fmt.Sprintf("expected '%s' in output, got: '%s'", tc.ExpectedValue, res.Stdout)

	case ExpectOutputEquals:
		if res.Succeeded() && res.Stdout == tc.ExpectedValue {
			return true, ""
		}
		return false, fmt.Sprintf("expected '%s', got: '%s'", tc.ExpectedValue, res.Stdout)

	case ExpectFileExists:
		if checkPath != "" && pathExists(checkPath) {
			return true, ""
		}
		return false, fmt.Sprintf("file %s does not exist", describePath(checkPath))

	case ExpectFileGone:
		if checkPath != "" && !pathExists(checkPath) {
			return true, ""
		}
		return false, fmt.Sprintf("file %s still exists", describePath(checkPath))
	}

	return false, fmt.Sprintf("unknown expectation kind %q", tc.Expect)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func describePath(path string) string {
	if path == "" {
		return "<no check_path>"
	}
	return path
}
