package csvcolumns

import "strconv"

// FieldsFromFirstRecord makes Parser.FieldsPerRecord take the width of the first record.
const FieldsFromFirstRecord = -1

// Parser assembles CSV text into a Table. The zero value parses permissively,
// exactly like Parse; validation is only done when asked for.
type Parser struct {
	// HasHeader makes the first record supply the column keys.
	HasHeader bool
	// FieldsPerRecord expects each record, the header included, to contain this many fields.
	// Zero disables the check and FieldsFromFirstRecord captures the width of the first record.
	FieldsPerRecord int
	// StrictQuotes rejects bare and unterminated quotes instead of passing them through.
	StrictQuotes bool
}

// Parse splits text into records and fields and returns the column table.
// With hasHeader the first record supplies the column keys, otherwise columns
// are keyed by their zero-based field position. Parse never fails: ragged
// records and malformed quoting are tolerated.
func Parse(text string, hasHeader bool) *Table {
	p := Parser{HasHeader: hasHeader}
	table, _ := p.Parse(text)
	return table
}

// Parse assembles text into a Table, applying the configured validation.
// On a validation failure it returns nil and a *ParseError.
func (p *Parser) Parse(text string) (*Table, error) {
	var cfg Parser
	if p != nil {
		cfg = *p
	}

	records := splitRecords(text)
	table := newTable()
	width := cfg.FieldsPerRecord
	var header []string
	first := 0

	if cfg.HasHeader {
		rec := records[0]
		line := text[rec.start:rec.end]
		fields := splitFields(line)
		if err := cfg.check(text, 1, rec, fields, &width); err != nil {
			return nil, err
		}
		header = make([]string, len(fields))
		for i, f := range fields {
			header[i] = Unescape(line[f.start:f.end])
			table.ensure(header[i])
		}
		first = 1
	}

	for n := first; n < len(records); n++ {
		rec := records[n]
		line := text[rec.start:rec.end]
		fields := splitFields(line)
		if err := cfg.check(text, n+1, rec, fields, &width); err != nil {
			return nil, err
		}
		for i, f := range fields {
			table.add(columnKey(header, i), Unescape(line[f.start:f.end]))
		}
		table.rows++
	}

	return table, nil
}

// columnKey maps a field position to its column: the header at that position,
// or the stringified position when there is no header for it.
func columnKey(header []string, i int) string {
	if i < len(header) {
		return header[i]
	}
	return strconv.Itoa(i)
}

// check validates one record. width holds the expected field count and is
// captured from the first checked record when it is FieldsFromFirstRecord.
func (p Parser) check(text string, record int, rec span, fields []span, width *int) error {
	if p.StrictQuotes {
		for _, f := range fields {
			if offset, err := checkQuotes(text[rec.start+f.start : rec.start+f.end]); err != nil {
				return newParseError(text, record, rec.start+f.start+offset, err)
			}
		}
	}

	if *width == FieldsFromFirstRecord {
		*width = len(fields)
		return nil
	}
	if *width > 0 && len(fields) != *width {
		return newParseError(text, record, rec.start, ErrorFieldCount)
	}
	return nil
}

// checkQuotes verifies that a raw field is either unquoted without any quote,
// or fully wrapped in quotes with inner quotes doubled. It returns the byte
// offset of the offending position within the field.
func checkQuotes(field string) (int, error) {
	if field == "" || field[0] != quote {
		for i := 0; i < len(field); i++ {
			if field[i] == quote {
				return i, ErrBareQuote
			}
		}
		return 0, nil
	}

	for i := 1; i < len(field); i++ {
		if field[i] != quote {
			continue
		}
		if i+1 < len(field) && field[i+1] == quote {
			i++
			continue
		}
		if i == len(field)-1 {
			return 0, nil
		}
		return i, ErrBareQuote
	}
	return len(field), ErrUnterminatedQuote
}
