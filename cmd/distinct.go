package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gridkit/internal/expr"
	"github.com/oakwood-commons/gridkit/internal/formatter"
	"github.com/oakwood-commons/gridkit/internal/limiter"
	"github.com/oakwood-commons/gridkit/pkg/distinct"
	"github.com/oakwood-commons/gridkit/pkg/loader"
	"github.com/oakwood-commons/gridkit/pkg/logger"
)

type distinctOptions struct {
	by     string
	format string
	limit  limiter.Config
}

func newDistinctCmd() *cobra.Command {
	var opts distinctOptions

	cmd := &cobra.Command{
		Use:   "distinct [FILE]",
		Short: "Remove duplicate records, keeping the first occurrence",
		Long: `Read a list of records and drop duplicates, keeping the first occurrence
of each in the original order.

Input may be JSON, NDJSON, YAML (including multi-document streams) or TOML and
is read from stdin when FILE is omitted. Without --by, records are compared by
value. With --by, a CEL expression over the record (bound to _) computes the
key that decides equality.`,
		Example: `  gridkit distinct users.json --by '_.email'
  cat events.ndjson | gridkit distinct --by '[_.source, _.id]' --tail 10 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistinct(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.by, "by", "", "CEL expression computing the key of a record (record is bound to _)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: json|ndjson|yaml|toml (detected when omitted)")
	cmd.Flags().IntVar(&opts.limit.Limit, "limit", 0, "show only the first N records (0 = unlimited)")
	cmd.Flags().IntVar(&opts.limit.Offset, "offset", 0, "skip the first N records")
	cmd.Flags().IntVar(&opts.limit.Tail, "tail", 0, "show only the last N records")
	return cmd
}

func runDistinct(cmd *cobra.Command, args []string, opts distinctOptions) error {
	lgr := logger.FromContext(cmd.Context())
	if err := opts.limit.Validate(); err != nil {
		return err
	}

	records, source, err := readRecords(cmd, args, loader.Format(strings.ToLower(opts.format)))
	if err != nil {
		return err
	}

	var prog *expr.Program
	if opts.by != "" {
		ev, err := expr.NewEvaluator()
		if err != nil {
			return err
		}
		if prog, err = ev.Compile(opts.by); err != nil {
			return err
		}
		if paths := ev.ReferencedPaths(opts.by); len(paths) > 0 {
			notef(cmd, "keying records by %s", strings.Join(paths, ", "))
		}
	}

	unique, err := distinct.By(records, expr.KeySelector(prog))
	if err != nil {
		return err
	}
	lgr.V(1).Info("deduplicated records", "source", source, "in", len(records), "out", len(unique))
	if removed := len(records) - len(unique); removed > 0 {
		notef(cmd, "removed %d duplicate(s) from %d record(s)", removed, len(records))
	}

	unique = limiter.Apply(opts.limit, unique)
	columns, rows := recordTable(unique)
	return writeResult(cmd, unique, table(columns, rows, nil))
}

func readRecords(cmd *cobra.Command, args []string, format loader.Format) ([]any, string, error) {
	if len(args) == 0 || args[0] == "-" {
		records, err := loader.ReadRecords(cmd.InOrStdin(), format)
		if err != nil {
			return nil, "stdin", fmt.Errorf("stdin: %w", err)
		}
		return records, "stdin", nil
	}

	path := args[0]
	if format == "" {
		records, err := loader.LoadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("%s: %w", path, err)
		}
		return records, path, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	defer f.Close()
	records, err := loader.ReadRecords(f, format)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return records, path, nil
}

// recordTable lays records out as rows. Map records contribute the union of
// their keys as columns; anything else is shown in a single VALUE column.
func recordTable(records []any) ([]string, [][]string) {
	seen := map[string]struct{}{}
	var keys []string
	for _, r := range records {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		for k := range m {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}

	if len(keys) == 0 {
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{formatter.Stringify(r)})
		}
		return []string{"VALUE"}, rows
	}

	sort.Strings(keys)
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(keys))
		if m, ok := r.(map[string]any); ok {
			for i, k := range keys {
				if v, ok := m[k]; ok {
					row[i] = formatter.Stringify(v)
				}
			}
		} else if len(row) > 0 {
			row[0] = formatter.Stringify(r)
		}
		rows = append(rows, row)
	}
	return keys, rows
}
