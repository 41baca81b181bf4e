package harness

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// DisplayPolicy selects when correlated trace output is printed.
type DisplayPolicy string

const (
	// DisplayAlways flushes every case's trace, for live debugging.
	DisplayAlways DisplayPolicy = "always"

	// DisplayOnFailure dumps trace only for failing cases; passing
	// cases discard theirs silently. This is the default.
	DisplayOnFailure DisplayPolicy = "on-failure"
)

// TraceReader tails the append-only trace log written by the filesystem
// under test, associating new lines with whatever the harness ran since
// the previous drain. It holds no test identity: the runner aligns one
// drain cycle with exactly one case execution.
//
// The log file is truncated once at construction so the cursor starts
// at a known empty state. That is the harness's only write to the log.
type TraceReader struct {
	path     string
	pos      int64
	buffer   []string
	reporter *Reporter
}

// NewTraceReader creates a reader over the trace log at path, printing
// through rep. The log is truncated; a log that cannot be created is
// tolerated and simply yields no lines.
func NewTraceReader(path string, rep *Reporter) *TraceReader {
	if f, err := os.Create(path); err == nil {
		f.Close()
	}
	return &TraceReader{path: path, reporter: rep}
}

// readNew returns log lines appended since the last read and advances
// the cursor. A missing log, a failed seek, or a log truncated below
// the cursor all read as "no new data"; the cursor is never rewound.
func (t *TraceReader) readNew() []string {
	f, err := os.Open(t.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	if _, err := f.Seek(t.pos, io.SeekStart); err != nil {
		return nil
	}

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		t.pos += int64(len(line))
		if trimmed := strings.TrimRight(line, "\n"); strings.TrimSpace(trimmed) != "" {
			lines = append(lines, trimmed)
		}
		if err != nil {
			break
		}
	}
	return lines
}

// Capture reads new trace lines into the buffer without printing.
func (t *TraceReader) Capture() {
	t.buffer = append(t.buffer, t.readNew()...)
}

// Flush captures, prints the buffer immediately, then clears it.
func (t *TraceReader) Flush() {
	t.Capture()
	t.printBuffer()
}

// Dump captures, prints the buffer, then clears it. Used on failure.
func (t *TraceReader) Dump() {
	t.Capture()
	t.printBuffer()
}

// Discard captures then clears the buffer without printing. Used when a
// case passes under the on-failure policy.
func (t *TraceReader) Discard() {
	t.Capture()
	t.buffer = t.buffer[:0]
}

// Drain applies the display policy for one completed case: always
// flush, dump on failure, otherwise discard.
func (t *TraceReader) Drain(policy DisplayPolicy, passed bool) {
	switch {
	case policy == DisplayAlways:
		t.Flush()
	case !passed:
		t.Dump()
	default:
		t.Discard()
	}
}

func (t *TraceReader) printBuffer() {
	for _, line := range t.buffer {
		t.reporter.TraceLine(line)
	}
	t.buffer = t.buffer[:0]
}
