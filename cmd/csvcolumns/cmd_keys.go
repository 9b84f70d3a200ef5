package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	var opts tableOptions

	cmd := &cobra.Command{
		Use:   "keys <file|->",
		Short: "List column keys with their value counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.load(args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, key := range table.Keys() {
				values, _ := table.Column(key)
				fmt.Fprintf(tw, "%q\t%d\n", key, len(values))
			}
			return tw.Flush()
		},
	}

	opts.register(cmd)

	return cmd
}
