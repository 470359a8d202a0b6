package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentops/tri-ops/internal/archive"
	"github.com/agentops/tri-ops/internal/claims"
	"github.com/agentops/tri-ops/internal/config"
	"github.com/agentops/tri-ops/internal/currentbuild"
	"github.com/agentops/tri-ops/internal/gc"
	"github.com/agentops/tri-ops/internal/layout"
	"github.com/agentops/tri-ops/internal/lock"
	"github.com/agentops/tri-ops/internal/logging"
	"github.com/agentops/tri-ops/internal/queue"
	"github.com/agentops/tri-ops/internal/sink"
)

var (
	// Global flags, shared by every subcommand.
	stateDirFlag string
	jsonOutput   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tri-ops",
	Short: "Filesystem-backed coordination for a fleet of rebuild agents",
	Long: `tri-ops coordinates a fleet of independent agents negotiating rebuild work
entirely through a shared state directory. Requesters enqueue work, workers
claim and renew it, the build lock serializes the builder role, and a
janitor periodically garbage-collects expired leases and archives completed
requests.

There is no daemon and no in-process shared state: every invocation is a
single short-lived read-modify-write against the filesystem.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stateDirFlag, "state-dir", "", "coordination state directory (else $TRI_STATE_DIR)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of text")
}

// Execute runs the root command and maps the returned error, if any, to the
// exit codes documented in the spec's external-interfaces section.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a command error to its documented exit code: 2 for
// input/user errors, 3 for ownership or lease conflicts, 1 otherwise.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, errInput):
		return 2
	case errors.Is(err, lock.ErrConflict),
		errors.Is(err, lock.ErrMismatch),
		errors.Is(err, claims.ErrOwnerMismatch):
		return 3
	case errors.Is(err, queue.ErrNoProjects):
		return 2
	case errors.Is(err, queue.ErrNoCandidate):
		return 2
	default:
		return 1
	}
}

// errInput is wrapped around diagnostics for missing or malformed user input
// (e.g. an unresolved state directory) so exitCodeFor can recognize them
// without the caller needing to construct a distinct sentinel per site.
var errInput = errors.New("input error")

// inputErrorf builds an error that exitCodeFor maps to exit code 2.
func inputErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errInput)
}

// loadConfig resolves the layered Config once per command invocation and
// initializes the diagnostic logger from it. A configured Output of "json"
// turns on JSON output unless --json was given explicitly.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}
	logging.Init(cfg)
	if cfg.Output == "json" && !rootCmd.PersistentFlags().Changed("json") {
		jsonOutput = true
	}
	return cfg, nil
}

// resolveTree resolves --state-dir / TRI_STATE_DIR / config, ensures the
// tree exists on disk, and returns it. Every subcommand that touches state
// calls this first.
func resolveTree(cfg *config.Config) (layout.Tree, error) {
	dir, ok := config.ResolveStateDir(stateDirFlag, cfg)
	if !ok {
		logging.Logger.Error().Msg("state directory not set: pass --state-dir or set TRI_STATE_DIR")
		return layout.Tree{}, inputErrorf("state directory not set: pass --state-dir or set TRI_STATE_DIR")
	}
	logging.Logger.Debug().Str("state_dir", dir).Msg("resolved state directory")
	tree := layout.New(dir)
	if err := tree.Ensure(); err != nil {
		return layout.Tree{}, err
	}
	return tree, nil
}

// The following constructors keep each subcommand file focused on flag
// parsing and output formatting rather than wiring.

func newQueue(tree layout.Tree) *queue.Queue                 { return queue.New(tree) }
func newClaims(tree layout.Tree) *claims.Registry            { return claims.New(tree) }
func newLock(tree layout.Tree) *lock.Manager                 { return lock.New(tree) }
func newSink(tree layout.Tree) *sink.Sink                    { return sink.New(tree) }
func newGC(tree layout.Tree) *gc.Collector                   { return gc.New(tree) }
func newArchive(tree layout.Tree) *archive.Manager           { return archive.New(tree) }
func newCurrentBuild(tree layout.Tree) *currentbuild.Registry { return currentbuild.New(tree) }
