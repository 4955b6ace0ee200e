package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/config"
	"github.com/abhisek/middlemath/internal/store"
)

// cfg is loaded once in PersistentPreRunE and read by every command.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "middlemath",
	Short: "Grade 7-8 math practice problems",
	Long: `middlemath generates grade 7 and 8 math practice problems, checks answers
that can be typed as decimals, fractions, ratios or expressions, and keeps a
local practice log.

Run without a subcommand to open the interactive practice screen.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, practiceFlags{count: cfg.Practice.Count})
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/middlemath/config.yaml)")
	pf.String("db", "", "Path to SQLite practice log (overrides MIDDLEMATH_DB)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(auditCmd)
}

// loadConfig layers flags over the config file and environment, then
// installs the default logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		loaded.Database.Path = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		loaded.Log.Level = l
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		loaded.Log.Format = f
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// openStore opens the practice log at the configured path.
func openStore() (*store.Store, error) {
	dbPath, err := cfg.Database.ResolvePath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("practice log opened", "path", dbPath)
	return st, nil
}

// exitError carries a process exit code without printing an error.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(exitError); ok {
		return e.code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}
