// Package harness executes declarative conformance test cases against
// a live BangFS mount.
//
// A case is a plain value: a shell command template, an expectation
// kind from a closed set, and optional setup/cleanup commands. The
// Runner is the single place that interprets expectation kinds; cases
// carry no behavior of their own.
//
// # Suite Format
//
// Extra phases can be loaded from YAML files with the following
// structure:
//
//	phases:
//	  - name: "PHASE X: symlinks"
//	    cases:
//	      - description: "symlink creation"
//	        command: "ln -s target '{mount}/link'"
//	        expect: success
//	      - description: "readlink round trip"
//	        command: "readlink '{mount}/link'"
//	        expect: equals
//	        expected_value: target
//
// Valid expect values are success, fail, contains, equals, exists and
// gone. The {mount} placeholder is substituted in commands and paths
// before execution.
//
// # Execution Model
//
// Execution is fully sequential. Within a phase, the first failure of
// a non-informational case degrades the phase: subsequent cases are
// skipped (their commands never run) except cleanup steps, identified
// by a description starting with "cleanup". Informational cases are
// reported but never counted and never degrade the phase.
//
// # Trace Correlation
//
// The TraceReader tails the trace log written by the filesystem under
// test. The runner drains it exactly once per case, so new log lines
// are attributed to the case that was running when they appeared.
package harness
