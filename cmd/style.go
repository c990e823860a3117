package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/pkg/column"
	"github.com/oakwood-commons/gridkit/pkg/logger"
	"github.com/oakwood-commons/gridkit/pkg/settings"
	"github.com/oakwood-commons/gridkit/pkg/style"
)

const outputCSS = "css"

type styleResult struct {
	Type  column.Type `json:"type" yaml:"type"`
	Width string      `json:"width" yaml:"width"`
	Style style.Style `json:"style" yaml:"style"`
}

func newStyleCmd() *cobra.Command {
	var (
		typeName string
		width    string
		scaled   bool
	)

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Compute the inline width style of a column",
		Long: `Compute the min-width/max-width inline style for a column.

--width accepts a pixel count (120 or 120px), "auto" for the type default, or
"none" for no constraint. When omitted, the type default is used. A scaled
column only gets a min-width so it may grow. Besides the global output
formats, -o css prints the style as CSS declarations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := style.ParseWidth(width)
			if err != nil {
				return err
			}
			cfg := &style.Config{Width: w, Type: column.Type(typeName), Scaled: scaled}
			if typeName != "" && !cfg.Type.Valid() {
				notef(cmd, "warning: unrecognized column type %q, using the fallback width", typeName)
			}

			el := &style.InlineStyle{}
			s := cfg.Inline(el)
			logger.FromContext(cmd.Context()).V(1).Info("computed style",
				"type", typeName, "configured", width, "resolved", cfg.Width.String(), "scaled", scaled)

			if settings.FromContextOrDefault(cmd.Context()).Output == outputCSS {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), el.String())
				return err
			}

			res := styleResult{Type: cfg.Type, Width: cfg.Width.String(), Style: s}
			return writeResult(cmd, res, table(
				[]string{"PROPERTY", "VALUE"},
				[][]string{
					{"width", res.Width},
					{"min-width", s.MinWidth},
					{"max-width", s.MaxWidth},
				},
				nil,
			))
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "column type (see `gridkit types`)")
	cmd.Flags().StringVarP(&width, "width", "w", "", "configured width: pixels, auto or none")
	cmd.Flags().BoolVar(&scaled, "scaled", false, "allow the column to grow beyond its width")
	return cmd
}
