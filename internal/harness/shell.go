package harness

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds every test command. A command still running
// when it expires is killed and reported as a failed command with a
// TIMEOUT diagnostic rather than an error.
const DefaultTimeout = 30 * time.Second

// CommandResult captures one shell command invocation.
// Stdout and Stderr are whitespace-trimmed at capture time; expectation
// values are never trimmed.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Succeeded reports whether the command exited zero within its timeout.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// ShellFunc runs one shell command to completion under a timeout.
// The runner, the preflight checks and the lifecycle controller all
// execute through this signature so tests can substitute fakes.
type ShellFunc func(ctx context.Context, command string, timeout time.Duration) CommandResult

// RunShell executes command with `sh -c` and captures exit code and
// trimmed output. It never returns an error: a command that cannot be
// started, fails, or exceeds its timeout is represented in the result.
func RunShell(ctx context.Context, command string, timeout time.Duration) CommandResult {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := CommandResult{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		res.ExitCode = -1
		res.TimedOut = true
		res.Stderr = "TIMEOUT"
		return res
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// sh itself could not be started; surface the reason as
			// stderr so the evaluator can report it.
			res.ExitCode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}

	return res
}
