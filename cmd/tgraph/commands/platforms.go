package commands

import "github.com/spf13/cobra"

func (c *CLI) newPlatformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the platforms, SDKs and toolchains of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Platforms(cmd.Context(), format)
		},
	}
	cmd.Flags().StringP("format", "o", "text", "Output format: text or json")
	return cmd
}
