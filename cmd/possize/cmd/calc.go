package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ergung/position-calculator/form"
	"github.com/ergung/position-calculator/internal/calc"
	"github.com/ergung/position-calculator/journal"
)

func newCalcCmd(rc *rootConfig) *cobra.Command {
	var (
		values form.Values

		output string
		export string
		header bool
		xlsx   string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Size a position from entry, stop and max loss",
		Long: `Size a position so that hitting the stop loses exactly --risk.

Without --contract-size the quantity is in units of the asset; with it, in
contracts. --reward adds a take-profit at that multiple of the stop distance.

Outputs:
  table  full breakdown (default)
  lines  short summary
  row    spreadsheet row in the export format (tsv, pipe or csv)
  org    Org-mode journal block
  json   machine-readable result

Examples:
  possize calc --entry 100 --stop 95 --risk 50
  possize calc --entry 100 --stop 105 --risk 50 --contract-size 1 --reward 2
  possize calc --entry 0.5123 --stop 0.5311 --risk 15 -O row --export pipe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values.UseContract = cmd.Flags().Changed("contract-size")

			opts, err := rc.cfg.ExportOptions()
			if err != nil {
				return err
			}
			if export != "" {
				if opts.Format, err = journal.ParseFormat(export); err != nil {
					return err
				}
			}

			svc := &calc.Service{Export: opts, Policy: rc.cfg.Policy, Logger: rc.logger}
			rep, err := svc.Run(values)
			if err != nil {
				return err
			}

			if err := writeReport(cmd, rep, opts, output, header); err != nil {
				return err
			}

			if xlsx != "" {
				if err := journal.WriteXLSX(xlsx, []journal.Entry{rep.Entry}, opts); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", xlsx)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&values.Entry, "entry", "", "entry price (required)")
	cmd.Flags().StringVar(&values.Stop, "stop", "", "stop-loss price (required)")
	cmd.Flags().StringVar(&values.MaxLoss, "risk", "", "max loss in quote currency if the stop is hit (required)")
	cmd.Flags().StringVar(&values.ContractSize, "contract-size", "", "units per contract; enables contract mode")
	cmd.Flags().StringVar(&values.Reward, "reward", "", "reward multiple R for a take-profit target")
	cmd.Flags().StringVarP(&output, "output", "O", "table", "output: table|lines|row|org|json")
	cmd.Flags().StringVar(&export, "export", "", "row format: tsv|pipe|csv (overrides config)")
	cmd.Flags().BoolVar(&header, "header", false, "print a header line before the row (row output only)")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "also write the row to this .xlsx file")
	cmd.MarkFlagRequired("entry")
	cmd.MarkFlagRequired("stop")
	cmd.MarkFlagRequired("risk")

	return cmd
}

func writeReport(cmd *cobra.Command, rep *calc.Report, opts journal.Options, output string, header bool) error {
	out := cmd.OutOrStdout()

	switch output {
	case "table":
		opts.Display.Table(out, rep.Inputs, rep.Result, rep.Decision)
		fmt.Fprintln(out)
		fmt.Fprintln(out, journal.FormatRow(rep.Entry, opts))
	case "lines":
		for _, l := range opts.Display.Lines(rep.Result) {
			fmt.Fprintln(out, l)
		}
		for _, v := range rep.Decision.Violations {
			fmt.Fprintf(out, "⚠ %s\n", v.Msg)
		}
	case "row":
		w := journal.NewWriter(out, opts)
		if header {
			if err := w.WriteHeader(); err != nil {
				return err
			}
		}
		if err := w.Write(rep.Entry); err != nil {
			return err
		}
		return w.Flush()
	case "org":
		fmt.Fprint(out, journal.FormatOrg(rep.Entry, opts))
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep.View(opts))
	default:
		return fmt.Errorf("unknown output %q (want table, lines, row, org or json)", output)
	}
	return nil
}
