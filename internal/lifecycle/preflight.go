package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bangfs/conformance/internal/harness"
)

// ErrPreflight means the mount exists but does not behave like the
// filesystem under test, so no test result would be trustworthy.
var ErrPreflight = errors.New("preflight failed")

// preflightCheck is one mandatory check. An empty contains means only
// the exit code is judged.
type preflightCheck struct {
	description string
	command     string
	contains    string
}

// Preflight verifies the mount is real and responsive before any test
// executes: the mountpoint must report a FUSE-class filesystem type,
// appear in the mount registry with the bangfs tag, and answer a basic
// listing. All three must pass; the first failure dumps the correlated
// trace and aborts.
func Preflight(ctx context.Context, mount string, shell harness.ShellFunc, trace *harness.TraceReader, rep *harness.Reporter, policy harness.DisplayPolicy, timeout time.Duration) error {
	checks := []preflightCheck{
		{"mounted as FUSE filesystem", fmt.Sprintf("stat -f -c '%%T' '%s'", mount), "fuse"},
		{"mounted as bangfs in /proc/mounts", fmt.Sprintf("grep '%s ' /proc/mounts", mount), "fuse.bangfs"},
		{"ls on mountpoint works", fmt.Sprintf("ls '%s'", mount), ""},
	}

	rep.Phase("Preflight")
	for _, check := range checks {
		res := shell(ctx, check.command, timeout)

		if !res.Succeeded() {
			detail := res.Stderr
			if detail == "" {
				detail = "command failed"
			}
			rep.Case(harness.OutcomeFail, check.description, detail)
			if trace != nil {
				trace.Dump()
			}
			return fmt.Errorf("%w: %s", ErrPreflight, check.description)
		}

		if check.contains != "" && !strings.Contains(res.Stdout, check.contains) {
			rep.Case(harness.OutcomeFail, check.description,
				fmt.Sprintf("expected '%s' in output, got: '%s'", check.contains, res.Stdout))
			if trace != nil {
				trace.Dump()
			}
			return fmt.Errorf("%w: %s", ErrPreflight, check.description)
		}

		rep.Case(harness.OutcomePass, check.description, "")
		if trace != nil {
			trace.Drain(policy, true)
		}
	}
	return nil
}
