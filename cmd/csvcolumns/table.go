package main

import (
	"fmt"

	"github.com/oleg578/csvcolumns"
	"github.com/oleg578/csvcolumns/internal/textsource"
	"github.com/spf13/cobra"
)

// tableOptions are the flags shared by every command that loads a table.
type tableOptions struct {
	header          bool
	charset         string
	strict          bool
	fieldsPerRecord int
}

func (o *tableOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.header, "header", "H", false, "use the first record as column keys")
	cmd.Flags().StringVar(&o.charset, "charset", textsource.Auto, "input charset (auto, utf-8, windows-1251, utf-16le, ...)")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "reject bare and unterminated quotes")
	cmd.Flags().IntVar(&o.fieldsPerRecord, "fields-per-record", 0, "required fields per record (0 disables, -1 uses the first record)")
}

func (o *tableOptions) load(path string) (*csvcolumns.Table, error) {
	log.Debugf("reading %s (charset %s)", path, o.charset)
	text, err := textsource.ReadFile(path, o.charset)
	if err != nil {
		return nil, err
	}

	p := csvcolumns.Parser{
		HasHeader:       o.header,
		FieldsPerRecord: o.fieldsPerRecord,
		StrictQuotes:    o.strict,
	}
	table, err := p.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Infof("parsed %s: %d columns, %d records", path, table.Len(), table.Rows())
	return table, nil
}
