package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/investcalc/calculators/internal/calculation"
	"github.com/investcalc/calculators/internal/config"
	"github.com/investcalc/calculators/internal/domain"
	"github.com/investcalc/calculators/internal/logging"
)

// app carries what every subcommand needs once settings are loaded.
type app struct {
	configPath string
	settings   *config.Settings
	logger     *zap.Logger
	engine     *calculation.ProjectionEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "investcalc",
		Short: "SIP, mutual fund and fixed deposit projection calculator",
		Long: `investcalc projects the growth of a monthly SIP, a lump-sum mutual fund
investment or a fixed deposit, year by year, and reports total investment,
total returns and maturity value in rupees.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "settings file (YAML)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.Bool("legacy-rounding", false, "derive lump-sum total returns from the rounded final year point")
	pf.Int64("divisor", 100000, "display unit for year-wise figures (100000 = lakhs)")

	root.AddCommand(
		newCalcCmd(a, "sip", "Project a monthly SIP", "amount", "monthly investment amount", domain.ProductSIP),
		newCalcCmd(a, "mf", "Project a lump-sum mutual fund investment", "amount", "initial investment", domain.ProductMutualFund),
		newCalcCmd(a, "fd", "Project a fixed deposit", "principal", "principal amount", domain.ProductFixedDeposit),
		newRunCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(settings.Logging)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	engine := calculation.NewProjectionEngineWithOptions(calculation.Options{
		Divisor:        decimal.NewFromInt(settings.Engine.Divisor),
		LegacyRounding: settings.Engine.LegacyRounding,
		MaxYears:       settings.Engine.MaxYears,
	})
	engine.SetLogger(logger.Sugar())

	a.settings = settings
	a.logger = logger
	a.engine = engine
	logger.Debug("settings loaded", zap.String("config", a.configPath), zap.String("cache", settings.Cache.Backend))
	return nil
}
