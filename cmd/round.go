package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/pkg/numfmt"
)

type roundResult struct {
	Value   float64 `json:"value" yaml:"value"`
	Rounded float64 `json:"rounded" yaml:"rounded"`
}

func newRoundCmd() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "round VALUE...",
		Short: "Round numbers to a number of decimal digits",
		Long: `Round each VALUE to --decimals fractional digits, rounding halves up.
A --decimals of 0 uses the default of 2; negative values round to tens,
hundreds and so on.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]roundResult, 0, len(args))
			rows := make([][]string, 0, len(args))
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				r := roundResult{Value: v, Rounded: numfmt.Round(v, decimals)}
				results = append(results, r)
				rows = append(rows, []string{arg, strconv.FormatFloat(r.Rounded, 'f', -1, 64)})
			}
			return writeResult(cmd, results, table(
				[]string{"VALUE", "ROUNDED"},
				rows,
				map[string]formatter.ColumnHint{"VALUE": {Align: "right"}, "ROUNDED": {Align: "right"}},
			))
		},
	}
	cmd.Flags().IntVarP(&decimals, "decimals", "d", numfmt.DefaultDecimals, "fractional digits to keep (0 uses the default)")
	return cmd
}
