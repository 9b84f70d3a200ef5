package csvcolumns

import (
	"strings"
	"unicode/utf8"
)

// Unescape resolves a raw field into its value. A field that begins with a
// quote loses its first and last characters, then every doubled quote is
// collapsed into one, left to right. Nothing else is changed; whitespace in
// particular is kept.
//
// Malformed fields are passed through without panicking: a lone quote
// resolves to the empty string, and a field that opens with a quote but ends
// with another character loses that whole character.
func Unescape(raw string) string {
	if raw != "" && raw[0] == quote {
		raw = raw[1:]
		switch {
		case raw == "":
		case raw[len(raw)-1] == quote:
			raw = raw[:len(raw)-1]
		default:
			_, size := utf8.DecodeLastRuneInString(raw)
			raw = raw[:len(raw)-size]
		}
	}
	if strings.IndexByte(raw, quote) == -1 {
		return raw
	}
	return strings.ReplaceAll(raw, `""`, `"`)
}

// Quote returns value as a quoted field: wrapped in quotes with every quote
// doubled. Unescape(Quote(v)) == v for any v.
func Quote(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte(quote)
	b.WriteString(strings.ReplaceAll(value, `"`, `""`))
	b.WriteByte(quote)
	return b.String()
}
