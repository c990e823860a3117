package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/pkg/settings"
)

// renderer produces the table form of a command result.
type renderer func(noColor bool) string

// writeResult prints v in the output format selected for this run. The table
// form is produced by table; json and yaml serialize v directly.
func writeResult(cmd *cobra.Command, v any, table renderer) error {
	run := settings.FromContextOrDefault(cmd.Context())

	var (
		out string
		err error
	)
	switch run.Output {
	case formatter.OutputJSON:
		out, err = formatter.FormatJSON(v)
	case formatter.OutputYAML:
		out, err = formatter.FormatYAML(v, 2)
	case formatter.OutputTable:
		out = table(run.NoColor)
	default:
		err = formatter.ValidateOutput(run.Output, formatter.OutputTable, formatter.OutputJSON, formatter.OutputYAML)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// notef writes an informational message to stderr unless --quiet is set.
func notef(cmd *cobra.Command, format string, args ...any) {
	if settings.FromContextOrDefault(cmd.Context()).IsQuiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func table(columns []string, rows [][]string, hints map[string]formatter.ColumnHint) renderer {
	return func(noColor bool) string {
		return formatter.RenderColumnarTable(columns, rows, formatter.ColumnarOptions{
			NoColor:     noColor,
			TotalWidth:  formatter.TerminalWidth(),
			ColumnHints: hints,
		})
	}
}
