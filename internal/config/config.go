// Package config provides layered configuration for tri-ops. Values are
// resolved, highest priority first, from: command-line flags, then
// TRIOPS_* environment variables, then a project file (.triops/config.yaml
// in the current working directory), then compiled-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every knob a tri-ops command may consult.
type Config struct {
	// StateDir is the root of the coordination tree. Resolution order at
	// the CLI layer is flag > TRI_STATE_DIR (the one legacy knob kept
	// verbatim for compatibility) > this field > unset.
	StateDir string `yaml:"state_dir" json:"state_dir"`

	// Output is the default output form ("text" or "json") when the --json
	// flag is not given.
	Output string `yaml:"output" json:"output"`

	// DefaultLeaseSeconds is used by commands that accept a --lease-seconds
	// flag when the flag is omitted.
	DefaultLeaseSeconds int `yaml:"default_lease_seconds" json:"default_lease_seconds"`

	// LogLevel is one of zerolog's level names: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogJSON selects structured JSON log lines over human-readable console
	// output on stderr.
	LogJSON bool `yaml:"log_json" json:"log_json"`
}

const (
	defaultOutput             = "text"
	defaultLeaseSeconds       = 300
	defaultLogLevel           = "info"
	envPrefix                 = "TRIOPS_"
	projectConfigRelativePath = ".triops/config.yaml"
	legacyStateDirEnvVar      = "TRI_STATE_DIR"
)

// Default returns the compiled-in defaults.
func Default() *Config {
	return &Config{
		Output:              defaultOutput,
		DefaultLeaseSeconds: defaultLeaseSeconds,
		LogLevel:            defaultLogLevel,
		LogJSON:             false,
	}
}

// Load resolves configuration: defaults, then the project file if present,
// then TRIOPS_* environment variables, then flagOverrides (any non-zero
// field in flagOverrides wins). Passing a nil flagOverrides skips that step.
func Load(flagOverrides *Config) (*Config, error) {
	cfg := Default()

	projectCfg, err := loadProjectFile()
	if err != nil {
		return nil, err
	}
	if projectCfg != nil {
		mergeNonEmpty(cfg, projectCfg)
	}

	applyEnv(cfg)

	if flagOverrides != nil {
		mergeNonEmpty(cfg, flagOverrides)
	}

	return cfg, nil
}

func projectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, projectConfigRelativePath)
}

func loadProjectFile() (*Config, error) {
	path := projectConfigPath()
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envPrefix + "STATE_DIR")); v != "" {
		cfg.StateDir = v
	}
	if v := strings.TrimSpace(os.Getenv(envPrefix + "OUTPUT")); v != "" {
		cfg.Output = v
	}
	if v := strings.TrimSpace(os.Getenv(envPrefix + "DEFAULT_LEASE_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultLeaseSeconds = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(envPrefix + "LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(envPrefix + "LOG_JSON")); v == "true" || v == "1" {
		cfg.LogJSON = true
	}
}

// mergeNonEmpty copies every non-zero field of src into dst.
func mergeNonEmpty(dst, src *Config) {
	if src.StateDir != "" {
		dst.StateDir = src.StateDir
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.DefaultLeaseSeconds != 0 {
		dst.DefaultLeaseSeconds = src.DefaultLeaseSeconds
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogJSON {
		dst.LogJSON = true
	}
}

// ResolveStateDir implements §6's state-directory resolution: an explicit
// flag value wins, then the legacy TRI_STATE_DIR environment variable, then
// the layered config's StateDir, in that order. ok is false when none of
// the three produced a value, signalling the caller should exit 2.
func ResolveStateDir(flagValue string, cfg *Config) (dir string, ok bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if v := strings.TrimSpace(os.Getenv(legacyStateDirEnvVar)); v != "" {
		return v, true
	}
	if cfg != nil && cfg.StateDir != "" {
		return cfg.StateDir, true
	}
	return "", false
}
