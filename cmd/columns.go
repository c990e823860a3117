package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/pkg/column"
	"github.com/oakwood-commons/gridkit/pkg/logger"
)

type typeInfo struct {
	Type         column.Type `json:"type" yaml:"type"`
	DefaultWidth int         `json:"defaultWidth" yaml:"defaultWidth"`
	TextOrEnum   bool        `json:"textOrEnum" yaml:"textOrEnum"`
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the recognized column types with their default widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := column.Types()
			infos := make([]typeInfo, 0, len(types))
			rows := make([][]string, 0, len(types))
			for _, t := range types {
				info := typeInfo{
					Type:         t,
					DefaultWidth: column.DefaultWidth(t),
					TextOrEnum:   column.IsTextOrEnum(column.Attributes{column.AttrCellType: string(t)}),
				}
				infos = append(infos, info)
				rows = append(rows, []string{string(t), strconv.Itoa(info.DefaultWidth), strconv.FormatBool(info.TextOrEnum)})
			}
			return writeResult(cmd, infos, table(
				[]string{"TYPE", "WIDTH", "TEXT/ENUM"},
				rows,
				map[string]formatter.ColumnHint{"WIDTH": {Align: "right"}},
			))
		},
	}
}

type widthInfo struct {
	Type  string `json:"type" yaml:"type"`
	Width int    `json:"width" yaml:"width"`
	Known bool   `json:"known" yaml:"known"`
}

func newWidthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width TYPE...",
		Short: "Print the default pixel width of column types",
		Long: `Print the default pixel width of each given column type.
Unrecognized types are not an error; they get the fallback width of 44.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lgr := logger.FromContext(cmd.Context())
			infos := make([]widthInfo, 0, len(args))
			rows := make([][]string, 0, len(args))
			for _, arg := range args {
				t := column.Type(strings.TrimSpace(arg))
				info := widthInfo{Type: string(t), Width: column.DefaultWidth(t), Known: t.Valid()}
				if !info.Known {
					lgr.V(1).Info("unrecognized column type, using fallback width", "type", arg, "width", info.Width)
				}
				infos = append(infos, info)
				rows = append(rows, []string{info.Type, strconv.Itoa(info.Width)})
			}
			return writeResult(cmd, infos, table(
				[]string{"TYPE", "WIDTH"},
				rows,
				map[string]formatter.ColumnHint{"WIDTH": {Align: "right"}},
			))
		},
	}
}
