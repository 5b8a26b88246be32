package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"fxcalc/internal/app"
	"fxcalc/internal/config"
	"fxcalc/internal/conversion"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errReported marks an error whose message has already been printed for the user.
var errReported = errors.New("reported")

// NewRootCmd builds the fxcalc command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "fxcalc",
		Short: "Currency conversion calculator with a fixed service fee",
		Long: `fxcalc converts amounts between currencies using a fixed rate table and
deducts a 2% service fee from the converted amount.

Run "fxcalc serve" for the HTTP API or use the convert, rate and swap
commands directly from the shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newConvertCmd(&configPath),
		newRateCmd(&configPath),
		newSwapCmd(&configPath),
	)
	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(*configPath)
		},
	}
}

// loadEngine builds an engine from config for the offline commands.
// Only errors are logged unless the config asks for debug output, so stderr
// carries the user-facing messages.
func loadEngine(ctx context.Context, configPath string, stderr io.Writer) (*conversion.Engine, error) {
	cfg, err := config.Init(configPath)
	if err != nil {
		return nil, err
	}
	app.SetupLogging(cfg.Logging)
	logrus.SetOutput(stderr)
	if lvl := logrus.GetLevel(); lvl > logrus.ErrorLevel && lvl < logrus.DebugLevel {
		logrus.SetLevel(logrus.ErrorLevel)
	}

	table, err := app.LoadRateTable(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	return conversion.NewEngine(table), nil
}
