package csvcolumns

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Table is a column-oriented view of a CSV document: an insertion-ordered
// mapping from column key to the values of that column in record order.
// A Table is never modified after Parse returns it; accessors hand out copies.
type Table struct {
	keys    []string
	columns map[string][]string
	rows    int
}

func newTable() *Table {
	return &Table{columns: make(map[string][]string)}
}

// ensure creates an empty column for key unless it already exists.
func (t *Table) ensure(key string) {
	if _, ok := t.columns[key]; ok {
		return
	}
	t.keys = append(t.keys, key)
	t.columns[key] = []string{}
}

func (t *Table) add(key, value string) {
	t.ensure(key)
	t.columns[key] = append(t.columns[key], value)
}

// Keys returns the column keys in first-seen order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// Column returns a copy of the values stored under key and whether the column exists.
func (t *Table) Column(key string) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	values, ok := t.columns[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(values), true
}

// Len returns the number of columns.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Rows returns the number of data records, the header record excluded.
// Columns may hold fewer values than Rows when records are ragged.
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Map returns the table as a plain map. Key order is lost; use Keys to recover it.
func (t *Table) Map() map[string][]string {
	if t == nil {
		return nil
	}
	out := make(map[string][]string, len(t.columns))
	for key, values := range t.columns {
		out[key] = slices.Clone(values)
	}
	return out
}

// Equal reports whether both tables have the same keys in the same order and equal columns.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.rows != other.rows || !slices.Equal(t.keys, other.keys) {
		return false
	}
	for _, key := range t.keys {
		if !slices.Equal(t.columns[key], other.columns[key]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the table as a JSON object whose members follow key order.
func (t *Table) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(t.columns[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the table in key order, for debugging.
func (t *Table) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(key))
		b.WriteString(": [")
		for j, v := range t.columns[key] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(v))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}
