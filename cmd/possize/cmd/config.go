package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ergung/position-calculator/config"
)

func newConfigCmd() *cobra.Command {
	var (
		output string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
		Long: `Manage calculator configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  possize config init -o possize.yaml
  possize config validate -f possize.yaml`,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Created default configuration: %s\n", output)
			fmt.Fprintln(out, "\nEdit the file and run with:")
			fmt.Fprintf(out, "  possize --config %s calc ...\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "possize.yaml", "output config file path")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFromFile(file)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration valid: %s\n", file)
			fmt.Fprintf(out, "  Display: %s (price %d dp, money %d dp, quantity %d dp)\n",
				c.Display.QuoteCurrency, c.Display.PricePlaces, c.Display.MoneyPlaces, c.Display.QuantityPlaces)
			fmt.Fprintf(out, "  Export: %s (%s)\n", c.Export.Format, c.Export.DateLayout)
			if c.Policy.Enabled() {
				fmt.Fprintln(out, "  Policy: enabled")
			} else {
				fmt.Fprintln(out, "  Policy: none")
			}
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&file, "file", "f", "", "path to config file (required)")
	validateCmd.MarkFlagRequired("file")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
