// # csvcolumns: Column-Oriented RFC 4180 Parsing for Go
//
// csvcolumns turns CSV text into a column-oriented table: every column key maps to the ordered values found at that position in each record. Keys come from a header record or are the zero-based field positions ("0", "1", ...).
//
// # Features
//
// - Single-pass, quote-aware splitting of records (CRLF) and fields (comma), with quoted commas and line breaks kept as data.
// - Doubled-quote unescaping with wrapping quotes stripped; spaces are never trimmed.
// - Permissive by default: `Parse` always returns a `Table`, ragged and malformed input included.
// - Opt-in validation through `Parser.FieldsPerRecord` and `Parser.StrictQuotes`, reported as `ParseError` wrapping `ErrBareQuote`, `ErrUnterminatedQuote`, or `ErrorFieldCount`.
// - Insertion-ordered, immutable `Table` with ordered JSON encoding.
//
// # Getting Started
//
//	table := csvcolumns.Parse("name,age\r\nada,36\r\n", true)
//	ages, _ := table.Column("age") // ["36"]
//
// Character decoding is left to the caller; `internal/textsource` and `cmd/csvcolumns` show one way to do it.
package csvcolumns
