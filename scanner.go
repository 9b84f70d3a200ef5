package csvcolumns

import "strings"

const (
	quote = '"'
	comma = ','
)

// span is the half-open byte range [start, end) of one segment of the scanned text.
type span struct {
	start int
	end   int
}

// quoteState tracks whether the scan position is inside a quoted span.
type quoteState uint8

const (
	unquoted quoteState = iota
	quoted
	// quoteInQuoted follows a quote that closed a span. A quote right after
	// it turns the pair into an escaped literal quote and reopens the span.
	quoteInQuoted
)

// next returns the state after consuming a quote character.
func (s quoteState) next() quoteState {
	if s == quoted {
		return quoteInQuoted
	}
	return quoted
}

// delimiter reports the width of a structural delimiter starting at text[i],
// or 0 when text[i] does not start one.
type delimiter func(text string, i int) int

func matchComma(text string, i int) int {
	if text[i] == comma {
		return 1
	}
	return 0
}

// matchCRLF only recognises a carriage return immediately followed by a line feed.
// A carriage return in the last position is simply not a match.
func matchCRLF(text string, i int) int {
	if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
		return 2
	}
	return 0
}

// scan walks text once, left to right, and splits it at every delimiter that
// is not inside a quoted span. The quote state is local to the call.
//
// The segment after the last delimiter is always returned unless dropTrailing
// is set and the last delimiter ended exactly at the end of text. At least one
// segment is always returned.
func scan(text string, delim delimiter, dropTrailing bool) []span {
	spans := make([]span, 0, 8)
	state := unquoted
	start := 0

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == quote {
			state = state.next()
			continue
		}
		if state == quoteInQuoted {
			state = unquoted
		}
		if state == quoted {
			// Fast-path quoted data: only the next quote can change anything.
			idx := strings.IndexByte(text[i+1:], quote)
			if idx == -1 {
				break
			}
			i += idx
			continue
		}
		if w := delim(text, i); w > 0 {
			spans = append(spans, span{start: start, end: i})
			start = i + w
			i += w - 1
		}
	}

	if !dropTrailing || start != len(text) || len(spans) == 0 {
		spans = append(spans, span{start: start, end: len(text)})
	}
	return spans
}

// splitRecords splits the whole input into logical records at unquoted CRLF.
// A CRLF inside quotes stays in the record; a trailing CRLF does not produce
// an empty final record.
func splitRecords(text string) []span {
	return scan(text, matchCRLF, true)
}

// splitFields splits one record into raw fields at unquoted commas.
func splitFields(record string) []span {
	return scan(record, matchComma, false)
}

// substrings slices text by spans.
func substrings(text string, spans []span) []string {
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = text[sp.start:sp.end]
	}
	return out
}
