package textsource

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestReadCharsets(t *testing.T) {
	t.Parallel()

	cyrillic, err := charmap.Windows1251.NewEncoder().String("имя,город\r\nПётр,Москва")
	if err != nil {
		t.Fatalf("encode windows-1251: %v", err)
	}
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("a,b\r\nc,d")
	if err != nil {
		t.Fatalf("encode utf-16: %v", err)
	}

	tests := []struct {
		name    string
		input   []byte
		charset string
		want    string
	}{
		{name: "utf8Explicit", input: []byte("a,é\r\n"), charset: "utf-8", want: "a,é\r\n"},
		{name: "utf8BOMStripped", input: append([]byte{0xEF, 0xBB, 0xBF}, "h0,h1"...), charset: "utf-8", want: "h0,h1"},
		{name: "windows1251", input: []byte(cyrillic), charset: "windows-1251", want: "имя,город\r\nПётр,Москва"},
		{name: "labelCaseAndSpaces", input: []byte(cyrillic), charset: " Windows-1251 ", want: "имя,город\r\nПётр,Москва"},
		{name: "utf16BOMAuto", input: []byte(utf16), charset: Auto, want: "a,b\r\nc,d"},
		{name: "asciiAuto", input: []byte("one,two\r\nthree,four"), charset: "", want: "one,two\r\nthree,four"},
		{name: "emptyAuto", input: nil, charset: Auto, want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Read(bytes.NewReader(tc.input), tc.charset)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("Read() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadUnknownCharset(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader("a,b"), "no-such-charset")
	if !errors.Is(err, ErrUnknownCharset) {
		t.Fatalf("Read() error = %v, want ErrUnknownCharset", err)
	}
}

func TestReadNilReader(t *testing.T) {
	t.Parallel()

	if _, err := Read(nil, Auto); err == nil {
		t.Fatalf("Read(nil) expected error")
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("x,y\r\n1,2\r\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile(path, "utf-8")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got != "x,y\r\n1,2\r\n" {
		t.Fatalf("ReadFile() = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), Auto); err == nil {
		t.Fatalf("ReadFile(missing) expected error")
	}
}

func TestDetectFallsBackToUTF8(t *testing.T) {
	t.Parallel()

	if got := Detect(nil); got != "utf-8" {
		t.Fatalf("Detect(nil) = %q, want utf-8", got)
	}
	if got := Detect([]byte("plain ascii text, nothing else")); got == "" {
		t.Fatalf("Detect() returned empty charset")
	}
}
