package commands

import "github.com/spf13/cobra"

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <digest>",
		Short: "Show a plan stored by resolve --save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Show(cmd.Context(), args[0], format)
		},
	}
	cmd.Flags().StringP("format", "o", "text", "Output format: text or json")
	return cmd
}
