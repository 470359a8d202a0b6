package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "text" {
		t.Errorf("Default Output = %q, want %q", cfg.Output, "text")
	}
	if cfg.DefaultLeaseSeconds != 300 {
		t.Errorf("Default DefaultLeaseSeconds = %d, want %d", cfg.DefaultLeaseSeconds, 300)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Default LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogJSON {
		t.Error("Default LogJSON = true, want false")
	}
}

func TestMergeNonEmpty(t *testing.T) {
	dst := Default()
	src := &Config{Output: "json", StateDir: "/custom/state"}

	mergeNonEmpty(dst, src)

	if dst.Output != "json" {
		t.Errorf("mergeNonEmpty Output = %q, want %q", dst.Output, "json")
	}
	if dst.StateDir != "/custom/state" {
		t.Errorf("mergeNonEmpty StateDir = %q, want %q", dst.StateDir, "/custom/state")
	}
	if dst.LogLevel != "info" {
		t.Errorf("mergeNonEmpty should preserve default LogLevel, got %q", dst.LogLevel)
	}
}

func TestMergeNonEmpty_LogJSONOnlyTurnsOn(t *testing.T) {
	dst := Default()
	dst.LogJSON = true
	src := &Config{}

	mergeNonEmpty(dst, src)

	if !dst.LogJSON {
		t.Error("mergeNonEmpty must not clear LogJSON when src leaves it false")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TRIOPS_OUTPUT", "json")
	t.Setenv("TRIOPS_STATE_DIR", "/env/state")
	t.Setenv("TRIOPS_LOG_LEVEL", "debug")
	t.Setenv("TRIOPS_LOG_JSON", "true")
	t.Setenv("TRIOPS_DEFAULT_LEASE_SECONDS", "120")

	cfg := Default()
	applyEnv(cfg)

	if cfg.Output != "json" {
		t.Errorf("applyEnv Output = %q, want %q", cfg.Output, "json")
	}
	if cfg.StateDir != "/env/state" {
		t.Errorf("applyEnv StateDir = %q, want %q", cfg.StateDir, "/env/state")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("applyEnv LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.LogJSON {
		t.Error("applyEnv LogJSON = false, want true")
	}
	if cfg.DefaultLeaseSeconds != 120 {
		t.Errorf("applyEnv DefaultLeaseSeconds = %d, want %d", cfg.DefaultLeaseSeconds, 120)
	}
}

func TestApplyEnv_InvalidLeaseSecondsIsIgnored(t *testing.T) {
	t.Setenv("TRIOPS_DEFAULT_LEASE_SECONDS", "not-a-number")

	cfg := Default()
	applyEnv(cfg)

	if cfg.DefaultLeaseSeconds != defaultLeaseSeconds {
		t.Errorf("applyEnv DefaultLeaseSeconds = %d, want unchanged default %d", cfg.DefaultLeaseSeconds, defaultLeaseSeconds)
	}
}

func TestLoadProjectFile_Missing(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadProjectFile()
	if err != nil {
		t.Fatalf("loadProjectFile() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("loadProjectFile() for missing file = %+v, want nil", cfg)
	}
}

func TestLoadProjectFile_Present(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(dir, ".triops"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "output: json\ndefault_lease_seconds: 90\n"
	if err := os.WriteFile(filepath.Join(dir, projectConfigRelativePath), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadProjectFile()
	if err != nil {
		t.Fatalf("loadProjectFile() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("loadProjectFile() = nil, want a config")
	}
	if cfg.Output != "json" {
		t.Errorf("loadProjectFile Output = %q, want %q", cfg.Output, "json")
	}
	if cfg.DefaultLeaseSeconds != 90 {
		t.Errorf("loadProjectFile DefaultLeaseSeconds = %d, want %d", cfg.DefaultLeaseSeconds, 90)
	}
}

func TestLoad_PrecedenceFlagsOverEnvOverProjectOverDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ".triops"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "output: yaml\nlog_level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, projectConfigRelativePath), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TRIOPS_OUTPUT", "json")

	cfg, err := Load(&Config{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Load Output = %q, want %q (env over project)", cfg.Output, "json")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Load LogLevel = %q, want %q (flag over project)", cfg.LogLevel, "debug")
	}
}

func TestLoad_NilOverridesReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != defaultOutput {
		t.Errorf("Load(nil) Output = %q, want %q", cfg.Output, defaultOutput)
	}
}

func TestResolveStateDir_FlagWins(t *testing.T) {
	t.Setenv("TRI_STATE_DIR", "/env/state")
	dir, ok := ResolveStateDir("/flag/state", &Config{StateDir: "/cfg/state"})
	if !ok || dir != "/flag/state" {
		t.Errorf("ResolveStateDir = (%q, %v), want (/flag/state, true)", dir, ok)
	}
}

func TestResolveStateDir_LegacyEnvBeatsConfig(t *testing.T) {
	t.Setenv("TRI_STATE_DIR", "/env/state")
	dir, ok := ResolveStateDir("", &Config{StateDir: "/cfg/state"})
	if !ok || dir != "/env/state" {
		t.Errorf("ResolveStateDir = (%q, %v), want (/env/state, true)", dir, ok)
	}
}

func TestResolveStateDir_FallsBackToConfig(t *testing.T) {
	t.Setenv("TRI_STATE_DIR", "")
	dir, ok := ResolveStateDir("", &Config{StateDir: "/cfg/state"})
	if !ok || dir != "/cfg/state" {
		t.Errorf("ResolveStateDir = (%q, %v), want (/cfg/state, true)", dir, ok)
	}
}

func TestResolveStateDir_NoneSetIsNotOK(t *testing.T) {
	t.Setenv("TRI_STATE_DIR", "")
	dir, ok := ResolveStateDir("", &Config{})
	if ok || dir != "" {
		t.Errorf("ResolveStateDir = (%q, %v), want (\"\", false)", dir, ok)
	}
}
