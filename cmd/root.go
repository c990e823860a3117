// Package cmd implements the gridkit command line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/pkg/logger"
	"github.com/oakwood-commons/gridkit/pkg/settings"
)

func newRootCmd() *cobra.Command {
	run := settings.NewCliParams()

	rootCmd := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "Column type, width, style and deduplication helpers for data grids",
		Long: `gridkit exposes the helpers a data grid uses to size and classify its columns:
default widths per column type, inline min/max width styles, number rounding,
and order-preserving deduplication of records.`,
		Example: "\n  gridkit types\n  gridkit style --type status\n  gridkit round 2.345 1.005 --decimals 2\n  gridkit distinct records.json --by '_.id' -o json\n  gridkit layout columns.yaml\n",
		Version:       cliVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(cmd, run.Output); err != nil {
				return err
			}
			lgr := logger.ForCommand(logger.Get(run.MinLogLevel), cmd.Name())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logger.WithLogger(ctx, lgr)
			ctx = settings.IntoContext(ctx, run)
			cmd.SetContext(ctx)
			lgr.V(1).Info("starting command", "args", cmd.Flags().Args(), "output", run.Output)
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	addRunFlags(rootCmd.PersistentFlags(), run)

	rootCmd.AddCommand(
		newTypesCmd(),
		newWidthCmd(),
		newRoundCmd(),
		newStyleCmd(),
		newDistinctCmd(),
		newLayoutCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func addRunFlags(fs *pflag.FlagSet, run *settings.Run) {
	fs.Int8Var(&run.MinLogLevel, "log-level", run.MinLogLevel, "minimum log level (-1 debug, 0 info, 1 warn, 2 error)")
	fs.BoolVarP(&run.IsQuiet, "quiet", "q", run.IsQuiet, "suppress informational messages on stderr")
	fs.BoolVar(&run.NoColor, "no-color", run.NoColor, "disable colored table output")
	fs.StringVarP(&run.Output, "output", "o", run.Output, fmt.Sprintf("output format: %s|%s|%s (%s for style)", formatter.OutputTable, formatter.OutputJSON, formatter.OutputYAML, outputCSS))
}

// validateOutput rejects output formats the running command cannot produce
// before it does any work.
func validateOutput(cmd *cobra.Command, output string) error {
	allowed := []string{formatter.OutputTable, formatter.OutputJSON, formatter.OutputYAML}
	if cmd.Name() == "style" {
		allowed = append(allowed, outputCSS)
	}
	return formatter.ValidateOutput(output, allowed...)
}

// Execute runs the gridkit command tree.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
}
