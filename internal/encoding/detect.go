package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

var boms = []struct {
	prefix []byte
	enc    xencoding.Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, nil},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
}

// Charsets reported by chardet that spreadsheet exports commonly use.
var charsets = map[string]xencoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
	"ISO-8859-9":   charmap.ISO8859_9,
	"windows-1256": charmap.Windows1256,
}

// NewUTF8Reader returns a reader decoding r to UTF-8. A BOM wins, then valid
// UTF-8 is passed through, then chardet is consulted and Windows-1252 is the
// fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	sample, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(sample, bom.prefix) {
			continue
		}

		if bom.enc == nil {
			_, _ = br.Discard(len(bom.prefix))
			return br, nil
		}

		return transform.NewReader(br, bom.enc.NewDecoder()), nil
	}

	if validUTF8Prefix(sample) {
		return br, nil
	}

	return transform.NewReader(br, detect(sample).NewDecoder()), nil
}

func detect(sample []byte) xencoding.Encoding {
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err == nil {
		if enc, ok := charsets[result.Charset]; ok {
			return enc
		}
	}

	return charmap.Windows1252
}

// validUTF8Prefix tolerates a multi-byte rune cut by the sniff window.
func validUTF8Prefix(b []byte) bool {
	if utf8.Valid(b) {
		return true
	}

	if len(b) < sniffSize {
		return false
	}

	for cut := 1; cut < utf8.UTFMax && cut < len(b); cut++ {
		if utf8.Valid(b[:len(b)-cut]) {
			return !utf8.FullRune(b[len(b)-cut:])
		}
	}

	return false
}

// Separator guesses the field separator of a CSV sample from its first line:
// semicolon, comma or tab, whichever occurs most outside quotes.
func Separator(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}

	counts := map[rune]int{}
	quoted := false

	for _, r := range string(sample) {
		switch {
		case r == '"':
			quoted = !quoted
		case !quoted && (r == ';' || r == ',' || r == '\t'):
			counts[r]++
		}
	}

	best := ';'
	for _, r := range []rune{',', '\t'} {
		if counts[r] > counts[best] {
			best = r
		}
	}

	return best
}
