// Package cmd implements the calc command line interface.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lovromazgon/calc/grpc"
	"github.com/lovromazgon/calc/internal/config"
	"github.com/lovromazgon/calc/sdk"
	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// options holds the persistent flags shared by all commands.
type options struct {
	configPath            string
	plugin                string
	maxConcurrentRequests int
	logLevel              string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the calc command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Integer calculator backed by a Wasm plugin",
		Long: `calc evaluates integer arithmetic.

Operations run in-process unless a calculator plugin is configured, in which
case they are executed by the Wasm plugin through wazero.

Negative operands must follow "--" so they are not parsed as flags:
  calc sub -- 1 -2`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.plugin, "plugin", "", "path to the calculator Wasm plugin (default in-process)")
	flags.IntVar(&opts.maxConcurrentRequests, "max-concurrent-requests", config.DefaultMaxConcurrentRequests, "maximum concurrent calls into the plugin")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	for _, c := range newOperationCommands(opts) {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(newEvalCommand(opts))
	rootCmd.AddCommand(newBenchCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// load reads the config file and applies flags that were set explicitly.
func (o *options) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("plugin") {
		cfg.Plugin = o.plugin
	}
	if flags.Changed("max-concurrent-requests") {
		cfg.MaxConcurrentRequests = o.maxConcurrentRequests
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	return nil
}

// calculator returns the configured Calculator and a function that releases
// its resources.
func (o *options) calculator(ctx context.Context) (sdk.Calculator, func(), error) {
	if o.cfg.Plugin == "" {
		srv := grpc.NewServer(grpc.WithLogger(o.logger))
		sdk.RegisterCalculator(srv, sdk.NewLocal(sdk.WithLocalLogger(o.logger)))
		return sdk.NewCalculatorFromConn(grpc.NewLocalClient(srv)), func() {}, nil
	}

	wasmBytes, err := os.ReadFile(o.cfg.Plugin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Wasm file %q: %w", o.cfg.Plugin, err)
	}

	// Create a Wasm runtime, set up WASI.
	r := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	module, calc, err := sdk.InstantiateModuleAndCalculator(
		ctx, r, wasmBytes,
		grpc.WithLogger(o.logger),
		grpc.WithMaxConcurrentRequests(o.cfg.MaxConcurrentRequests),
	)
	if err != nil {
		_ = r.Close(ctx)
		return nil, nil, err
	}
	o.logger.DebugContext(ctx, "loaded calculator plugin", "path", o.cfg.Plugin)

	closeFn := func() {
		_ = module.Close(ctx)
		_ = r.Close(ctx)
	}
	return calc, closeFn, nil
}
