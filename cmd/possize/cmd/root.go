package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ergung/position-calculator/config"
	"github.com/ergung/position-calculator/internal/logging"
)

// rootConfig carries the persistent flags and what setup builds from them.
type rootConfig struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	rc := &rootConfig{}

	cmd := &cobra.Command{
		Use:   "possize",
		Short: "Risk-based position size calculator for leveraged trading",
		Long: `possize sizes a leveraged position from an entry price, a stop-loss price and
the most you are willing to lose if the stop is hit.

It provides:
  - Unit and contract sizing with exact loss-at-stop
  - Take-profit targets from a reward multiple (R)
  - Spreadsheet-ready rows (TSV, pipe, CSV, XLSX) and Org-mode journal blocks
  - An HTTP endpoint for browser front ends`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "config file (YAML or JSON; defaults are used when empty)")
	cmd.PersistentFlags().StringVar(&rc.EnvFile, "env-file", ".env", "dotenv file with POSSIZE_* overrides")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rc.setup()
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if rc.logger != nil {
			_ = rc.logger.Sync()
		}
	}

	cmd.AddCommand(
		newCalcCmd(rc),
		newConfigCmd(),
		newServeCmd(rc),
		newVersionCmd(),
	)

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (rc *rootConfig) setup() error {
	if err := config.LoadEnv(rc.EnvFile); err != nil {
		return err
	}

	c := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return err
		}
		c = loaded
	}
	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if rc.LogLevel != "" {
		c.Logging.Level = rc.LogLevel
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(c.Logging)
	if err != nil {
		return err
	}

	rc.cfg, rc.logger = c, logger
	return nil
}
