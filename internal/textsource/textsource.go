// Package textsource turns raw CSV bytes into text for csvcolumns.Parse,
// decoding legacy charsets to UTF-8 on the way.
package textsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto asks Read to detect the charset from the data.
const Auto = "auto"

const sniffSize = 2048

// ErrUnknownCharset is returned when a charset name has no decoder.
var ErrUnknownCharset = errors.New("textsource: unknown charset")

// Read decodes everything from r into UTF-8 text. charset names the source
// encoding using WHATWG labels ("utf-8", "windows-1251", "utf-16le", ...);
// an empty charset or Auto detects it. A byte order mark wins over both.
func Read(r io.Reader, charset string) (string, error) {
	if r == nil {
		return "", errors.New("textsource: reader cannot be nil")
	}
	br := bufio.NewReader(r)

	enc, err := resolve(br, charset)
	if err != nil {
		return "", err
	}

	dec := transform.NewReader(br, unicode.BOMOverride(enc.NewDecoder()))
	data, err := io.ReadAll(dec)
	if err != nil {
		return "", fmt.Errorf("textsource: decode: %w", err)
	}
	return string(data), nil
}

// ReadFile decodes the file at path, or stdin when path is "-".
func ReadFile(path, charset string) (string, error) {
	if path == "-" {
		return Read(os.Stdin, charset)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("textsource: open: %w", err)
	}
	defer f.Close()
	return Read(f, charset)
}

// Detect guesses the charset of sample and returns its lower-case name.
// It falls back to utf-8 when nothing better is found.
func Detect(sample []byte) string {
	if len(sample) == 0 {
		return "utf-8"
	}
	res, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || res == nil || res.Charset == "" {
		return "utf-8"
	}
	return strings.ToLower(res.Charset)
}

func resolve(br *bufio.Reader, charset string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == Auto {
		peek, err := br.Peek(sniffSize)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, fmt.Errorf("textsource: sniff: %w", err)
		}
		name = Detect(peek)
		if _, err := htmlindex.Get(name); err != nil {
			// Detected but undecodable charsets are read as UTF-8.
			name = "utf-8"
		}
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	return enc, nil
}
