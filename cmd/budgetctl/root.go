package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/budget_engine/internal/core/services"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/middleware"
	"github.com/SscSPs/budget_engine/internal/platform/config"
	"github.com/SscSPs/budget_engine/internal/repositories"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagOutput  string
	flagBackend string
	flagSeed    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "budgetctl",
	Short:         "Multi-currency expense and budget tool",
	Long:          "Convert amounts, manage exchange rates, total expenses and inspect budgets against the configured store.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Override STORAGE_BACKEND (postgres, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Override SEED_FILE")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr at debug level")
}

// app bundles what every subcommand needs. close must be called when the command ends.
type app struct {
	services *portssvc.ServiceContainer
	close    func()
}

// newApp loads config, applies flag overrides and wires storage and services.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.StorageBackend = flagBackend
	}
	if flagSeed != "" {
		cfg.SeedFile = flagSeed
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := middleware.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	repos, err := repositories.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s storage: %w", cfg.StorageBackend, err)
	}
	closeFn := func() {}
	if repos.Close != nil {
		closeFn = repos.Close
	}
	return &app{
		services: services.NewServiceContainer(cfg, repos),
		close:    closeFn,
	}, nil
}

// withApp adapts a handler that needs an app into a cobra RunE.
func withApp(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return run(cmd, a, args)
	}
}

// render writes v in the selected output format. text falls back to the given line.
func render(w io.Writer, v interface{}, text string) error {
	switch flagOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case "text", "":
		_, err := fmt.Fprintln(w, text)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", flagOutput)
	}
}
