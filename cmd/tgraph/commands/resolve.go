package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tgraph/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [targets...]",
		Short: "Resolve the configured target graph of the specified targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			flags := cmd.Flags()
			platform, _ := flags.GetString("platform")
			variant, _ := flags.GetString("sdk-variant")
			arch, _ := flags.GetString("arch")
			configuration, _ := flags.GetString("configuration")
			index, _ := flags.GetBool("index")
			toolchain, _ := flags.GetString("toolchain")
			overrides, _ := flags.GetStringArray("set")
			envOverrides, _ := flags.GetStringArray("env-set")
			jobs, _ := flags.GetInt("jobs")
			sequential, _ := flags.GetBool("sequential")
			strict, _ := flags.GetBool("strict-platform-fallback")
			opaque, _ := flags.GetBool("opaque-aggregates")
			format, _ := flags.GetString("format")
			save, _ := flags.GetBool("save")

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				Platform:               platform,
				SDKVariant:             variant,
				Arch:                   arch,
				Configuration:          configuration,
				Index:                  index,
				Toolchain:              toolchain,
				Overrides:              overrides,
				EnvOverrides:           envOverrides,
				Jobs:                   jobs,
				Sequential:             sequential,
				StrictPlatformFallback: strict,
				OpaqueAggregates:       opaque,
				Format:                 format,
				Save:                   save,
			})
		},
	}
	flags := cmd.Flags()
	flags.StringP("platform", "p", "", "Run destination platform (default: host platform)")
	flags.String("sdk-variant", "", "Run destination SDK variant, e.g. iosmac")
	flags.String("arch", "", "Active architecture")
	flags.StringP("configuration", "c", app.DefaultConfiguration, "Build configuration")
	flags.Bool("index", false, "Configure every target for every platform it supports")
	flags.String("toolchain", "", "Toolchain identifier or alias")
	flags.StringArray("set", nil, "Build setting override KEY=VALUE (repeatable)")
	flags.StringArray("env-set", nil, "Environment-level build setting KEY=VALUE (repeatable)")
	flags.IntP("jobs", "j", 0, "Maximum concurrent settings evaluations (default: GOMAXPROCS)")
	flags.Bool("sequential", false, "Evaluate settings on a single goroutine")
	flags.Bool("strict-platform-fallback", false, "Treat ambiguous platform fallback as an error")
	flags.Bool("opaque-aggregates", false, "Let aggregate targets impose their platform on dependencies")
	flags.StringP("format", "o", "text", "Output format: text or json")
	flags.Bool("save", false, "Store the resolved plan under .tgraph/store")
	return cmd
}
