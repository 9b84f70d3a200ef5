package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/oleg578/csvcolumns"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var opts tableOptions
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a CSV file and print its columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(table); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "table":
				if err := writeTable(out, table); err != nil {
					return fmt.Errorf("write table: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, table)")

	return cmd
}

var cellEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`)

// writeTable prints the columns side by side. Short columns leave blank cells.
func writeTable(w io.Writer, table *csvcolumns.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	keys := table.Keys()
	columns := make([][]string, len(keys))
	height := 0
	for i, key := range keys {
		columns[i], _ = table.Column(key)
		height = max(height, len(columns[i]))
	}

	cells := make([]string, len(keys))
	for i, key := range keys {
		cells[i] = cellEscaper.Replace(key)
	}
	fmt.Fprintln(tw, strings.Join(cells, "\t"))

	for row := 0; row < height; row++ {
		for i, column := range columns {
			cells[i] = ""
			if row < len(column) {
				cells[i] = cellEscaper.Replace(column[row])
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
