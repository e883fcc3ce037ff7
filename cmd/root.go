package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/asifkhanbk/price-calculator/config"
	"github.com/asifkhanbk/price-calculator/logging"
	"github.com/asifkhanbk/price-calculator/pricing"
)

// app carries the state shared by the subcommands once the root has resolved config.
type app struct {
	configFile string
	pointsRate int64
	logLevel   string

	log  zerolog.Logger
	calc *pricing.Calculator
}

// NewRootCmd builds the CLI command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "price-calculator",
		Short:         "Checkout price calculator",
		Long:          "Compute final checkout prices after coupon and loyalty-points discounts, and convert amounts into loyalty points.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().Int64Var(&a.pointsRate, "points-rate", 0, "Points per currency unit (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(newFinalCmd(a), newPointsCmd(a))
	return rootCmd
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.pointsRate > 0 {
		cfg.PointsRate = a.pointsRate
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	a.log = logging.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	a.calc = pricing.New(pricing.WithPointsRate(cfg.PointsRate))
	a.log.Debug().
		Str("config_file", a.configFile).
		Int64("points_rate", a.calc.PointsRate()).
		Str("log_level", cfg.LogLevel).
		Msg("config resolved")
	return nil
}
