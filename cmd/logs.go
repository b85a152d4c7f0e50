package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func newLogsCmd(app *app) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "logs <test>",
		Short: "List the device logs attached to a test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.results.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(result.LogsPaths) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no logs attached to %s (logs dir: %s)\n", result.Name, app.sink.LogsDir())
				return err
			}

			names := make([]string, 0, len(result.LogsPaths))
			for name := range result.LogsPaths {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				path := result.LogsPaths[name]
				if !show {
					if _, err := fmt.Fprintf(out, "%s\t%s\n", name, path); err != nil {
						return err
					}
					continue
				}

				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read log %s: %w", name, err)
				}
				if _, err := fmt.Fprintf(out, "==> %s <==\n%s\n", name, content); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print log contents instead of paths")

	return cmd
}
