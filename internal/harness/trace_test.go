package harness

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrace(t *testing.T) (*TraceReader, string, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "trace.log")
	tr := NewTraceReader(path, &Reporter{Out: &out, Color: false})
	return tr, path, &out
}

func appendLines(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString(content)
	require.NoError(t, err)
}

func TestTraceReader_TruncatesAtConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	require.NoError(t, os.WriteFile(path, []byte("stale line\n"), 0o644))

	var out bytes.Buffer
	tr := NewTraceReader(path, &Reporter{Out: &out, Color: false})

	tr.Flush()
	assert.Empty(t, out.String(), "pre-existing content must not survive construction")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestTraceReader_FlushPrintsNewLines(t *testing.T) {
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "op=getattr path=/\nop=readdir path=/\n")
	tr.Flush()

	assert.Contains(t, out.String(), "op=getattr path=/")
	assert.Contains(t, out.String(), "op=readdir path=/")

	// The cursor advanced: a second flush prints nothing new.
	out.Reset()
	tr.Flush()
	assert.Empty(t, out.String())
}

func TestTraceReader_DiscardSuppressesOutput(t *testing.T) {
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "noise from a passing test\n")
	tr.Discard()
	assert.Empty(t, out.String())

	// Discarded lines stay discarded: they never reappear later.
	appendLines(t, path, "fresh line\n")
	tr.Flush()
	assert.NotContains(t, out.String(), "noise from a passing test")
	assert.Contains(t, out.String(), "fresh line")
}

func TestTraceReader_CaptureBuffersAcrossReads(t *testing.T) {
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "first\n")
	tr.Capture()
	appendLines(t, path, "second\n")
	tr.Dump()

	assert.Contains(t, out.String(), "first")
	assert.Contains(t, out.String(), "second")
}

func TestTraceReader_DrainCausality(t *testing.T) {
	// A passing case under the on-failure policy prints nothing even
	// when the log received new content during the case.
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "lines written during a passing case\n")
	tr.Drain(DisplayOnFailure, true)
	assert.Empty(t, out.String())

	appendLines(t, path, "lines written during a failing case\n")
	tr.Drain(DisplayOnFailure, false)
	assert.Contains(t, out.String(), "lines written during a failing case")
	assert.NotContains(t, out.String(), "passing case")
}

func TestTraceReader_DrainAlwaysPolicy(t *testing.T) {
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "visible even on pass\n")
	tr.Drain(DisplayAlways, true)
	assert.Contains(t, out.String(), "visible even on pass")
}

func TestTraceReader_MissingLogYieldsNothing(t *testing.T) {
	tr, path, out := newTestTrace(t)

	require.NoError(t, os.Remove(path))
	assert.NotPanics(t, func() { tr.Flush() })
	assert.Empty(t, out.String())
}

func TestTraceReader_ShrunkLogYieldsNothing(t *testing.T) {
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "one\ntwo\nthree\n")
	tr.Discard()

	// Rotate the log underneath the reader: the cursor is now past EOF.
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	assert.NotPanics(t, func() { tr.Flush() })
	assert.Empty(t, out.String())
}

func TestTraceReader_SkipsBlankLines(t *testing.T) {
	tr, path, out := newTestTrace(t)

	appendLines(t, path, "real line\n\n   \n")
	tr.Flush()

	assert.Contains(t, out.String(), "real line")
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
}
