package lifecycle

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bangfs/conformance/internal/harness"
)

// preflightShell fakes the three checks by keying on the leading
// command word.
func preflightShell(results map[string]harness.CommandResult) harness.ShellFunc {
	return func(ctx context.Context, command string, timeout time.Duration) harness.CommandResult {
		for prefix, res := range results {
			if strings.HasPrefix(command, prefix) {
				return res
			}
		}
		return harness.CommandResult{ExitCode: 0}
	}
}

func TestPreflight_AllChecksPass(t *testing.T) {
	var out bytes.Buffer
	rep := &harness.Reporter{Out: &out, Color: false}

	shell := preflightShell(map[string]harness.CommandResult{
		"stat": {ExitCode: 0, Stdout: "fuseblk"},
		"grep": {ExitCode: 0, Stdout: "bangfs /tmp/bangfs fuse.bangfs rw 0 0"},
		"ls":   {ExitCode: 0},
	})

	err := Preflight(context.Background(), "/tmp/bangfs", shell, nil, rep, harness.DisplayOnFailure, time.Second)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "PASS mounted as FUSE filesystem")
	assert.Contains(t, out.String(), "PASS mounted as bangfs in /proc/mounts")
	assert.Contains(t, out.String(), "PASS ls on mountpoint works")
}

func TestPreflight_WrongFilesystemType(t *testing.T) {
	var out bytes.Buffer
	rep := &harness.Reporter{Out: &out, Color: false}

	shell := preflightShell(map[string]harness.CommandResult{
		"stat": {ExitCode: 0, Stdout: "ext4"},
	})

	err := Preflight(context.Background(), "/tmp/bangfs", shell, nil, rep, harness.DisplayOnFailure, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreflight)
	assert.Contains(t, out.String(), "FAIL mounted as FUSE filesystem")
	assert.Contains(t, out.String(), "expected 'fuse' in output, got: 'ext4'")
}

func TestPreflight_CommandFailureAborts(t *testing.T) {
	var out bytes.Buffer
	rep := &harness.Reporter{Out: &out, Color: false}

	calls := 0
	shell := func(ctx context.Context, command string, timeout time.Duration) harness.CommandResult {
		calls++
		return harness.CommandResult{ExitCode: 1, Stderr: "no such file or directory"}
	}

	err := Preflight(context.Background(), "/tmp/bangfs", shell, nil, rep, harness.DisplayOnFailure, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreflight)
	// First failure aborts: the remaining checks never run.
	assert.Equal(t, 1, calls)
	assert.Contains(t, out.String(), "no such file or directory")
}
