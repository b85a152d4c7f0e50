package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dfe",
		Short:         "Device farm e2e CLI (dfe): results, logs and farm credentials",
		Long:          "dfe inspects the results and device logs written by multi-device e2e test groups, manages the device farm credentials those groups use, and checks the farm hub.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(rootCmd.ErrOrStderr())
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newResultsCmd(app),
		newLogsCmd(app),
		newCredsCmd(app),
		newHubCmd(app),
		newCapsCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
