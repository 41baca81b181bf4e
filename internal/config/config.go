// Package config loads harness settings in three layers: embedded
// defaults, an optional YAML file named by CONFIG_PATH, then the
// BANGFS_* / RIAK_* environment variables. Command-line flags are
// seeded from the result, so flags always win.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed config.default.yaml
var defaultConfig []byte

// Backend selects where filesystem state lives.
type Backend struct {
	Host  string `key:"host"`
	Port  int    `key:"port"`
	Dummy bool   `key:"dummy"`
}

// Config holds every runtime setting of the harness.
type Config struct {
	Backend        Backend `key:"backend"`
	Namespace      string  `key:"namespace"`
	Mountpoint     string  `key:"mountpoint"`
	TraceLog       string  `key:"tracelog"`
	TimeoutSeconds int     `key:"timeoutSeconds"`

	// TraceAlways flushes correlated trace output after every case
	// instead of only after failures.
	TraceAlways bool `key:"traceAlways"`

	// NoSkip disables skip propagation after a phase failure.
	NoSkip bool `key:"noSkip"`

	// PhaseFilter is a comma-separated list of phase-name substrings.
	PhaseFilter string `key:"phaseFilter"`
}

// Load builds the configuration from defaults, optional CONFIG_PATH
// file and environment variables, in that order.
func Load() (Config, error) {
	kf := koanf.New(".")

	if err := kf.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load default config: %w", err)
	}

	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		if err := kf.Load(file.Provider(cp), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config from %s: %w", cp, err)
		}
	}

	var cfg Config
	if err := kf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "key"}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays the documented environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RIAK_HOST"); v != "" {
		cfg.Backend.Host = v
	}
	if v := os.Getenv("RIAK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Backend.Port = port
		}
	}
	if v := os.Getenv("BANGFS_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv("BANGFS_MOUNTDIR"); v != "" {
		cfg.Mountpoint = v
	}
	if v := os.Getenv("TRACE_LOG"); v != "" {
		cfg.TraceLog = v
	}
	if v, ok := os.LookupEnv("BANGFS_TEST_TRACE"); ok {
		cfg.TraceAlways = truthy(v)
	}
	if v, ok := os.LookupEnv("BANGFS_TEST_NOSKIP"); ok {
		cfg.NoSkip = truthy(v)
	}
	if v := os.Getenv("BANGFS_TEST_PHASE"); v != "" {
		cfg.PhaseFilter = v
	}
}

// truthy treats anything except the usual off-values as enabled.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}
