package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/internal/config"
	"github.com/oakwood-commons/gridkit/internal/export"
	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/pkg/column"
	"github.com/oakwood-commons/gridkit/pkg/loader"
	"github.com/oakwood-commons/gridkit/pkg/logger"
	"github.com/oakwood-commons/gridkit/pkg/style"
)

type layoutColumn struct {
	Name       string      `json:"name" yaml:"name"`
	Type       column.Type `json:"type,omitempty" yaml:"type,omitempty"`
	TextOrEnum bool        `json:"textOrEnum" yaml:"textOrEnum"`
	Width      string      `json:"width" yaml:"width"`
	Scaled     bool        `json:"scaled" yaml:"scaled"`
	Style      style.Style `json:"style" yaml:"style"`
}

type layoutResult struct {
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Columns []layoutColumn `json:"columns" yaml:"columns"`
}

var (
	layoutColumns = []string{"NAME", "TYPE", "WIDTH", "MIN-WIDTH", "MAX-WIDTH"}
	layoutHints   = map[string]formatter.ColumnHint{
		"NAME":  {Priority: 2},
		"WIDTH": {Align: "right"},
	}
)

type layoutOptions struct {
	totalWidth int
	xlsx       string
	data       string
}

func newLayoutCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Resolve the widths and styles of a column layout file",
		Long: `Load a YAML or TOML column layout file and print, for every column, the
resolved width and the inline style a grid would apply to it. The table preview
is laid out to --total-width columns (terminal width when 0).

With --xlsx, the layout is also written to a workbook whose header row carries
the column names and whose column widths follow the resolved widths. Records
from --data fill the rows below, matched to columns by name.`,
		Example: `  gridkit layout columns.yaml
  gridkit layout columns.toml --xlsx orders.xlsx --data orders.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.data != "" && opts.xlsx == "" {
				return fmt.Errorf("--data requires --xlsx")
			}
			lgr := logger.FromContext(cmd.Context())
			l, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			lgr.V(1).Info("loaded layout", "file", args[0], "name", l.Name, "columns", len(l.Columns))

			res, cols, err := resolveLayout(l)
			if err != nil {
				return err
			}
			if opts.xlsx != "" {
				if err := writeWorkbook(cmd, opts, l.Name, cols); err != nil {
					return err
				}
			}
			return writeResult(cmd, res, func(noColor bool) string {
				rows := layoutRows(res)
				totalWidth := opts.totalWidth
				if totalWidth <= 0 {
					totalWidth = formatter.TerminalWidth()
				} else if need := formatter.NaturalWidth(layoutColumns, rows, layoutHints); need > totalWidth {
					notef(cmd, "preview needs %d columns, truncating to %d", need, totalWidth)
				}
				return formatter.RenderColumnarTable(layoutColumns, rows, formatter.ColumnarOptions{
					NoColor:     noColor,
					TotalWidth:  totalWidth,
					RowNumbers:  true,
					ColumnHints: layoutHints,
				})
			})
		},
	}
	cmd.Flags().IntVar(&opts.totalWidth, "total-width", 0, "width of the table preview (0 = terminal width)")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "also write the layout to this .xlsx workbook")
	cmd.Flags().StringVar(&opts.data, "data", "", "record file whose rows fill the --xlsx workbook")
	return cmd
}

func resolveLayout(l config.Layout) (layoutResult, []export.Column, error) {
	res := layoutResult{Name: l.Name, Columns: make([]layoutColumn, 0, len(l.Columns))}
	cols := make([]export.Column, 0, len(l.Columns))
	for i, c := range l.Columns {
		cfg, err := c.StyleConfig()
		if err != nil {
			return res, nil, fmt.Errorf("columns[%d] (%s): %w", i, c.Name, err)
		}
		s := cfg.Inline(nil)
		cols = append(cols, export.Column{Header: c.Name, Width: cfg.Width})
		res.Columns = append(res.Columns, layoutColumn{
			Name:       c.Name,
			Type:       cfg.Type,
			TextOrEnum: column.IsTextOrEnum(column.Attributes{column.AttrCellType: string(cfg.Type)}),
			Width:      cfg.Width.String(),
			Scaled:     cfg.Scaled,
			Style:      s,
		})
	}
	return res, cols, nil
}

func writeWorkbook(cmd *cobra.Command, opts layoutOptions, sheet string, cols []export.Column) error {
	var records []any
	if opts.data != "" {
		var err error
		if records, err = loader.LoadFile(opts.data); err != nil {
			return fmt.Errorf("%s: %w", opts.data, err)
		}
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, sheet, cols, records); err != nil {
		return fmt.Errorf("write %s: %w", opts.xlsx, err)
	}
	if err := os.WriteFile(opts.xlsx, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if name := export.SheetName(sheet); name != sheet && sheet != "" {
		notef(cmd, "sheet name %q written as %q", sheet, name)
	}
	notef(cmd, "wrote %d column(s) and %d row(s) to %s", len(cols), len(records), opts.xlsx)
	return nil
}

func layoutRows(res layoutResult) [][]string {
	rows := make([][]string, 0, len(res.Columns))
	for _, c := range res.Columns {
		t := string(c.Type)
		if t == "" {
			t = "-"
		}
		minWidth, maxWidth := c.Style.MinWidth, c.Style.MaxWidth
		if c.Style.IsEmpty() {
			minWidth, maxWidth = "-", "-"
		}
		rows = append(rows, []string{c.Name, t, c.Width, minWidth, maxWidth})
	}
	return rows
}

