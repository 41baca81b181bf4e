package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError_Message(t *testing.T) {
	err := NewExitError(ExitFailure, "3 test(s) failed")
	assert.Equal(t, "3 test(s) failed", err.Error())

	wrapped := WrapExitError(ExitCommandError, "failed to load suite", errors.New("no such file"))
	assert.Equal(t, "failed to load suite: no such file", wrapped.Error())
	assert.ErrorIs(t, wrapped, wrapped.Err)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "tests failed")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	// Wrapped ExitErrors are still recognized.
	inner := NewExitError(ExitCommandError, "bad suite")
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("run: %w", inner)))

	// Plain errors default to failure.
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("something broke")))
}
