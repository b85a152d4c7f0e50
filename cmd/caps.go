package cmd

import (
	"fmt"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/spf13/cobra"
)

func newCapsCmd(app *app) *cobra.Command {
	var group string
	var kind string
	var quantity int

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Print the session capabilities a group would request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := app.cfg.DeviceSpec(group)
			if kind != "" {
				spec.Kind = domain.DeviceKind(kind)
			}
			if quantity > 0 {
				spec.Quantity = quantity
			}
			if err := spec.Validate(); err != nil {
				return fmt.Errorf("invalid device spec: %w", err)
			}

			caps, err := spec.Capabilities()
			if err != nil {
				return err
			}
			data, err := caps.JSON()
			if err != nil {
				return fmt.Errorf("encode capabilities: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "# %d x %s session(s), app data in %s\n", spec.Quantity, kindLabel(spec.Kind),
				domain.AppDataDir(app.cfg.App.Package, app.cfg.App.APK)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Group name used as the session name")
	cmd.Flags().StringVar(&kind, "kind", "", "Device kind: emulator or real")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "Number of sessions")

	return cmd
}

func kindLabel(kind domain.DeviceKind) string {
	if kind == "" {
		return string(domain.DeviceKindEmulator)
	}
	return string(kind)
}
