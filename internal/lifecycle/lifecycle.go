// Package lifecycle provisions, mounts and tears down the filesystem
// under test by driving its external command-line tools. Every
// operation is idempotent and independently retriable by re-invocation,
// which is what makes Teardown safe to call from both the normal
// completion path and the interrupt handler.
package lifecycle

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// Fatal error categories. Provisioning and mount failures abort the
// run before any test executes; everything else in this package is
// warn-and-continue.
var (
	ErrProvision = errors.New("filesystem provisioning failed")
	ErrMount     = errors.New("filesystem mount failed")
)

// Commander runs one external binary to completion and returns its
// combined output. Injected so tests can fake the filesystem tools.
type Commander interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecCommander is the production Commander backed by os/exec.
type ExecCommander struct{}

func (ExecCommander) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// Config selects the backend and paths for one run.
type Config struct {
	// Host and Port locate the Riak backend. Ignored when Dummy is set.
	Host string
	Port int

	// Namespace is the filesystem namespace to provision and mount.
	Namespace string

	// Mountpoint is the directory the filesystem is mounted on.
	Mountpoint string

	// TraceLog is the path the mounted filesystem writes its trace to.
	TraceLog string

	// Dummy selects the file-backed store instead of Riak.
	Dummy bool
}

// Controller owns the mount lifecycle. Zero-value is not usable;
// construct with NewController.
type Controller struct {
	cfg Config
	cmd Commander
	log zerolog.Logger

	// sleep is swapped out in tests so settle intervals don't stall
	// the suite.
	sleep func(time.Duration)

	// procMounts is overridable in tests.
	procMounts string
}

// NewController creates a controller driving the real external tools.
func NewController(cfg Config, log zerolog.Logger) *Controller {
	return &Controller{
		cfg:        cfg,
		cmd:        ExecCommander{},
		log:        log,
		sleep:      time.Sleep,
		procMounts: "/proc/mounts",
	}
}

// backendArgs returns the backend selection flags shared by every
// external tool: -dummy for the file-backed store, -host/-port for Riak.
func (c *Controller) backendArgs() []string {
	if c.cfg.Dummy {
		return []string{"-dummy"}
	}
	return []string{"-host", c.cfg.Host, "-port", strconv.Itoa(c.cfg.Port)}
}

// IsMounted reports whether the mountpoint currently carries a FUSE
// filesystem. It prefers a statfs magic-number check and falls back to
// scanning the mount registry; it never returns an error, and an
// uninspectable mountpoint reads as not mounted.
func (c *Controller) IsMounted() bool {
	var statfs unix.Statfs_t
	if err := unix.Statfs(c.cfg.Mountpoint, &statfs); err == nil {
		// FUSE filesystems carry the magic number 0x65735546
		// (FUSE_SUPER_MAGIC).
		const fuseSuperMagic = 0x65735546
		if statfs.Type == fuseSuperMagic {
			return true
		}
	}

	f, err := os.Open(c.procMounts)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), c.cfg.Mountpoint+" ") {
			return true
		}
	}
	return false
}

// Provision creates a fresh filesystem in the backend with
// mkfs-bangfs. A nonzero exit is fatal: tests cannot run against an
// unformatted backend.
func (c *Controller) Provision() error {
	c.log.Info().Str("namespace", c.cfg.Namespace).Msg("creating filesystem")

	args := append(c.backendArgs(), "-namespace", c.cfg.Namespace)
	out, err := c.cmd.Run("mkfs-bangfs", args...)
	if err != nil {
		return fmt.Errorf("%w: mkfs-bangfs: %v: %s", ErrProvision, err, strings.TrimSpace(string(out)))
	}

	c.log.Info().Msg("filesystem created")
	return nil
}

// Wipe erases any existing filesystem state from the backend with
// reformat-bangfs. Absence of prior state is expected, so a nonzero
// exit is logged as a warning and swallowed.
func (c *Controller) Wipe() {
	c.log.Info().Str("namespace", c.cfg.Namespace).Msg("wiping existing filesystem")

	args := append(c.backendArgs(), "-namespace", c.cfg.Namespace, "-force")
	if out, err := c.cmd.Run("reformat-bangfs", args...); err != nil {
		c.log.Warn().
			Err(err).
			Str("output", strings.TrimSpace(string(out))).
			Msg("no existing filesystem to wipe (or wipe failed)")
	}
}

// mountSettle is how long the daemonized mount gets to come up before
// the post-mount verification.
const mountSettle = 2 * time.Second

// Mount creates the mountpoint directory, mounts the filesystem in
// daemon mode with tracing enabled, waits a settle interval, then
// verifies the mount actually appeared. Failure at either step is
// fatal.
func (c *Controller) Mount() error {
	c.log.Info().Str("mountpoint", c.cfg.Mountpoint).Msg("creating mountpoint")
	if err := os.MkdirAll(c.cfg.Mountpoint, 0o755); err != nil {
		return fmt.Errorf("%w: create mountpoint: %v", ErrMount, err)
	}

	c.log.Info().Msg("mounting filesystem in daemon mode")
	args := append(c.backendArgs(),
		"-namespace", c.cfg.Namespace,
		"-mount", c.cfg.Mountpoint,
		"-daemon",
		"-trace",
		"-tracelog", c.cfg.TraceLog,
	)
	out, err := c.cmd.Run("mount-fuse-bangfs", args...)
	if err != nil {
		return fmt.Errorf("%w: mount-fuse-bangfs: %v: %s", ErrMount, err, strings.TrimSpace(string(out)))
	}

	c.sleep(mountSettle)

	if !c.IsMounted() {
		return fmt.Errorf("%w: filesystem not mounted after settle interval", ErrMount)
	}

	c.log.Info().Str("mountpoint", c.cfg.Mountpoint).Msg("filesystem mounted")
	return nil
}

// Unmount detaches the filesystem if it is mounted. A graceful
// fusermount is tried first with a short bounded retry; a forced
// umount is the fallback. Not mounted is a no-op, not an error.
func (c *Controller) Unmount() error {
	if !c.IsMounted() {
		return nil
	}

	c.log.Info().Str("mountpoint", c.cfg.Mountpoint).Msg("unmounting")

	graceful := func() error {
		out, err := c.cmd.Run("fusermount", "-u", c.cfg.Mountpoint)
		if err != nil {
			return fmt.Errorf("fusermount -u: %v: %s", err, strings.TrimSpace(string(out)))
		}
		return nil
	}

	err := backoff.Retry(graceful, backoff.WithMaxRetries(backoff.NewConstantBackOff(1*time.Second), 3))
	if err != nil {
		c.log.Warn().Err(err).Msg("graceful unmount failed, forcing umount")
		if out, ferr := c.cmd.Run("umount", c.cfg.Mountpoint); ferr != nil {
			return fmt.Errorf("umount: %v: %s", ferr, strings.TrimSpace(string(out)))
		}
	}

	c.sleep(1 * time.Second)
	return nil
}

// Setup provisions and mounts the filesystem.
func (c *Controller) Setup() error {
	if err := c.Provision(); err != nil {
		return err
	}
	return c.Mount()
}

// Teardown unconditionally unmounts and wipes, swallowing every
// internal failure so it always runs to completion once invoked. It is
// idempotent and safe to call from the interrupt path even after an
// upstream fatal error.
func (c *Controller) Teardown() {
	c.log.Info().Msg("tearing down")
	if err := c.Unmount(); err != nil {
		c.log.Warn().Err(err).Msg("unmount failed during teardown")
	}
	c.Wipe()
	c.log.Info().Msg("teardown complete")
}
