package cmd

import (
	"encoding/json"
	"fmt"

	resultsview "github.com/bnema/devicefarm-e2e/internal/adapters/render/results"
	"github.com/bnema/devicefarm-e2e/internal/application"
	"github.com/spf13/cobra"
)

func newResultsCmd(app *app) *cobra.Command {
	var group string
	var asJSON bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "results [test]",
		Short: "Show stored test results",
		Long:  "Show the latest run of every stored test, grouped by test group. Pass a test name to show only that test.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := loadResults(cmd, app, group, args)
			if err != nil {
				return err
			}
			return writeResultsOutput(cmd, app, results, verbose, asJSON)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Only show tests of this group")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include log files")

	return cmd
}

func loadResults(cmd *cobra.Command, app *app, group string, args []string) ([]application.TestResult, error) {
	if len(args) == 0 {
		return app.results.List(cmd.Context(), group)
	}

	result, err := app.results.Get(cmd.Context(), args[0])
	if err != nil {
		return nil, err
	}
	return []application.TestResult{result}, nil
}

func writeResultsOutput(cmd *cobra.Command, app *app, results []application.TestResult, verbose, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	rendered, err := app.resultsRenderer(results, resultsview.RenderOptions{Verbose: verbose})
	if err != nil {
		return fmt.Errorf("render results: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
