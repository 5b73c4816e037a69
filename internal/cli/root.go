// Package cli implements the snakesladders command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snakesladders/internal/config"
	"github.com/katalvlaran/snakesladders/internal/store"
	"github.com/katalvlaran/snakesladders/internal/telemetry"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

const serviceName = "snakesladders"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configFile   string
	logLevel     string
	workers      int
	dbPath       string
	record       bool
	otelEndpoint string
}

// app carries state resolved in PersistentPreRunE.
type app struct {
	flags    rootFlags
	cfg      config.Config
	log      *slog.Logger
	store    *store.Store
	shutdown func(context.Context) error
}

// NewRootCmd creates the top-level command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "snakesladders",
		Short: "Minimum dice rolls on Snakes and Ladders boards",
		Long: `snakesladders reads Snakes-and-Ladders boards and prints the minimum
number of six-sided-die rolls needed to travel from square 1 to square 100.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (default: ./snakesladders.yaml)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&a.flags.workers, "workers", 0, "number of boards solved concurrently")
	pf.StringVar(&a.flags.dbPath, "db", "", "path to the SQLite history database")
	pf.BoolVar(&a.flags.record, "record", false, "record solves in the history database")
	pf.StringVar(&a.flags.otelEndpoint, "otel-endpoint", "", "OTLP/HTTP endpoint URL for traces")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newVersionCmd())

	// cobra skips post-run hooks after a failed RunE, so cleanup wraps RunE
	for _, c := range root.Commands() {
		if c.RunE != nil {
			c.RunE = a.withCleanup(c.RunE)
		}
	}

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// setup loads configuration, applies explicitly set flags on top, and
// initialises logging and tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.configFile)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if f.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if f.Changed("db") {
		cfg.DBPath = a.flags.dbPath
	}
	if f.Changed("record") {
		cfg.Record = a.flags.record
	}
	if f.Changed("otel-endpoint") {
		cfg.OTelEndpoint = a.flags.otelEndpoint
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Level()
	a.log = newLogger(cmd.ErrOrStderr(), lvl)

	a.shutdown, err = telemetry.Setup(cmd.Context(), cfg.OTelEndpoint, serviceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	a.log.Debug("configured", "workers", cfg.Workers, "record", cfg.Record, "db", cfg.DBPath)

	return nil
}

// withCleanup runs fn and then releases the store and flushes tracing,
// whether or not fn failed.
func (a *app) withCleanup(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		return errors.Join(err, a.teardown(cmd.Context()))
	}
}

func (a *app) teardown(ctx context.Context) error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
		a.shutdown = nil
	}
	return errors.Join(errs...)
}

// openStore opens the history database once per command.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	s, err := store.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
