package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bangfs/conformance/internal/config"
	"github.com/bangfs/conformance/internal/harness"
	"github.com/bangfs/conformance/internal/lifecycle"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	NoSetup    bool
	NoTeardown bool
	Phase      string
	Trace      bool
	NoSkip     bool
	Dummy      bool
	Host       string
	Port       int
	Namespace  string
	Mount      string
	TraceLog   string
	SuiteDir   string
	Timeout    int
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions, cfg config.Config) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [mountpoint]",
		Short: "Provision, mount and test a BangFS filesystem",
		Long: `Run the conformance suite against a BangFS mount.

By default the harness provisions a fresh filesystem, mounts it,
verifies the mount with preflight checks, runs every phase, and tears
everything down afterwards. Passing a mountpoint as a positional
argument skips setup and teardown and just runs tests against it.

Examples:
  bangfs-conform run                  # full setup, test, teardown
  bangfs-conform run --no-setup       # assume already mounted
  bangfs-conform run --phase 4,5      # only phases matching "4" or "5"
  bangfs-conform run /mnt/custom      # legacy mode: just run tests`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			legacyMount := ""
			if len(args) == 1 {
				legacyMount = args[0]
			}
			return runHarness(opts, legacyMount)
		},
	}

	cmd.Flags().BoolVar(&opts.NoSetup, "no-setup", false, "skip setup (mkfs, mount)")
	cmd.Flags().BoolVar(&opts.NoTeardown, "no-teardown", false, "skip teardown (keep filesystem mounted)")
	cmd.Flags().StringVar(&opts.Phase, "phase", cfg.PhaseFilter, "run only phases matching this comma-separated list of substrings")
	cmd.Flags().BoolVar(&opts.Trace, "trace", cfg.TraceAlways, "print correlated trace output for every case, not just failures")
	cmd.Flags().BoolVar(&opts.NoSkip, "no-skip", cfg.NoSkip, "run every case even after a failure in its phase")
	cmd.Flags().BoolVar(&opts.Dummy, "dummy", cfg.Backend.Dummy, "use the file-backed store under /tmp instead of Riak")
	cmd.Flags().StringVar(&opts.Host, "host", cfg.Backend.Host, "Riak host")
	cmd.Flags().IntVar(&opts.Port, "port", cfg.Backend.Port, "Riak port")
	cmd.Flags().StringVar(&opts.Namespace, "namespace", cfg.Namespace, "filesystem namespace")
	cmd.Flags().StringVar(&opts.Mount, "mount", cfg.Mountpoint, "mountpoint path")
	cmd.Flags().StringVar(&opts.TraceLog, "tracelog", cfg.TraceLog, "trace log path")
	cmd.Flags().StringVar(&opts.SuiteDir, "suite", "", "directory of extra suite YAML files, appended after the builtin phases")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", cfg.TimeoutSeconds, "per-command timeout in seconds")

	return cmd
}

func runHarness(opts *RunOptions, legacyMount string) error {
	log := newLogger(opts.Verbose)

	// Legacy mode: a bare mountpoint argument means "just run tests".
	mount := opts.Mount
	doSetup := !opts.NoSetup
	doTeardown := !opts.NoTeardown
	if legacyMount != "" {
		mount = legacyMount
		doSetup = false
		doTeardown = false
	}

	phases := harness.BuiltinPhases()
	if opts.SuiteDir != "" {
		extra, err := harness.LoadSuiteDir(opts.SuiteDir)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load suite", err)
		}
		phases = append(phases, extra...)
	}

	ctl := lifecycle.NewController(lifecycle.Config{
		Host:       opts.Host,
		Port:       opts.Port,
		Namespace:  opts.Namespace,
		Mountpoint: mount,
		TraceLog:   opts.TraceLog,
		Dummy:      opts.Dummy,
	}, log)

	rep := harness.NewReporter(os.Stdout)
	backend := fmt.Sprintf("Riak (%s:%d)", opts.Host, opts.Port)
	if opts.Dummy {
		backend = fmt.Sprintf("file (/tmp/bangfs_%s/)", opts.Namespace)
	}
	rep.Banner(
		fmt.Sprintf("Backend:    %s", backend),
		fmt.Sprintf("Namespace:  %s", opts.Namespace),
		fmt.Sprintf("Mountpoint: %s", mount),
		fmt.Sprintf("Setup:      %s", yesno(doSetup)),
		fmt.Sprintf("Teardown:   %s", yesno(doTeardown)),
	)

	// One teardown path shared by normal completion, fatal errors and
	// the interrupt handler. Teardown itself is idempotent; the Once
	// just keeps the interrupt race from tearing down twice.
	var once sync.Once
	finalize := func() {
		once.Do(ctl.Teardown)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; !ok {
			return
		}
		fmt.Fprintln(os.Stderr, "\nInterrupted, cleaning up...")
		finalize()
		os.Exit(ExitFailure)
	}()

	if doTeardown {
		defer finalize()
	}

	ctx := context.Background()
	timeout := time.Duration(opts.Timeout) * time.Second

	// Constructing the reader truncates the log, so it happens before
	// the mount starts writing.
	trace := harness.NewTraceReader(opts.TraceLog, rep)

	if doSetup {
		if err := ctl.Setup(); err != nil {
			return WrapExitError(ExitFailure, "setup failed", err)
		}
	}

	policy := harness.DisplayOnFailure
	if opts.Trace {
		policy = harness.DisplayAlways
	}

	if err := lifecycle.Preflight(ctx, mount, harness.RunShell, trace, rep, policy, timeout); err != nil {
		fmt.Fprintln(os.Stderr, "\nPreflight failed - aborting.")
		return WrapExitError(ExitFailure, "preflight failed", err)
	}

	runner := &harness.Runner{
		Shell:    harness.RunShell,
		Trace:    trace,
		Reporter: rep,
		Log:      log,
		Params:   map[string]string{"mount": mount},
		Timeout:  timeout,
		NoSkip:   opts.NoSkip,
		Policy:   policy,
		Filter:   opts.Phase,
	}

	summary := runner.Run(ctx, phases)
	rep.Results(summary)

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d test(s) failed", summary.Failed))
	}
	return nil
}

// newLogger builds the structured logger for harness internals. Test
// outcomes go through the reporter instead; these are diagnostics.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
