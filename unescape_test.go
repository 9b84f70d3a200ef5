package csvcolumns

import "testing"

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "abc", want: "abc"},
		{name: "empty", raw: "", want: ""},
		{name: "wrapped", raw: "\"abc\"", want: "abc"},
		{name: "emptyQuoted", raw: "\"\"", want: ""},
		{name: "doubledQuote", raw: "\"a\"\"b\"", want: "a\"b"},
		{name: "onlyEscapedQuote", raw: "\"\"\"\"", want: "\""},
		{name: "doubledQuoteUnwrapped", raw: "a\"\"b", want: "a\"b"},
		{name: "spacesKept", raw: "\" spaced \"", want: " spaced "},
		{name: "embeddedCRLF", raw: "\"t\r\nwo\"", want: "t\r\nwo"},
		{name: "undoubledInnerQuotes", raw: "\"two with \"quotes\"\"", want: "two with \"quotes\""},
		{name: "loneQuote", raw: "\"", want: ""},
		{name: "unterminatedMultiByte", raw: "\"abé", want: "ab"},
		{name: "unterminatedASCII", raw: "\"abc", want: "ab"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Unescape(tc.raw); got != tc.want {
				t.Fatalf("Unescape(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{"", "plain", "a,b,c", "say \"hi\"", "\"", "\"\"", "line1\r\nline2", " padded ", "ünïcödé"}
	for _, v := range values {
		q := Quote(v)
		if got := Unescape(q); got != v {
			t.Fatalf("Unescape(Quote(%q)) = %q via %q", v, got, q)
		}
	}

	if got := Quote("a\"b"); got != "\"a\"\"b\"" {
		t.Fatalf("Quote(%q) = %q, want %q", "a\"b", got, "\"a\"\"b\"")
	}
}
