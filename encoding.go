package morphdict

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Encoding is the case-normalized character-set label declared by an affix
// file's SET command. The zero value is the empty (undeclared) encoding.
// "UTF8" is collapsed to "UTF-8" on construction.
type Encoding struct {
	name string
}

// NewEncoding normalizes an encoding label: ASCII upper-casing, with the
// spelling UTF8 aliased to UTF-8.
func NewEncoding(label string) Encoding {
	name := asciiUpper(label)
	if name == "UTF8" {
		name = "UTF-8"
	}
	return Encoding{name: name}
}

// Value returns the normalized label.
func (e Encoding) Value() string { return e.name }

// Empty reports whether no encoding was declared.
func (e Encoding) Empty() bool { return e.name == "" }

// IsUTF8 reports whether the declared encoding is UTF-8.
func (e Encoding) IsUTF8() bool { return e.name == "UTF-8" }

// decodeString transcodes s from the declared legacy encoding to UTF-8.
// UTF-8 input is returned unchanged. Undeclared or unresolvable labels fall
// back to ISO-8859-1, which widens every byte to the rune of equal value and
// never fails.
func (e Encoding) decodeString(s string) string {
	if e.IsUTF8() {
		return s
	}
	out, err := e.lookup().NewDecoder().String(s)
	if err != nil {
		tracer().Errorf("cannot transcode %q from %s", s, e.name)
		return s
	}
	return out
}

// lookup resolves the label to an x/text encoding. Hunspell dictionaries use
// a few label spellings that predate the WHATWG registry, so the label is
// massaged before the index lookup.
func (e Encoding) lookup() encoding.Encoding {
	if e.name == "" {
		return charmap.ISO8859_1
	}
	label := strings.ToLower(e.name)
	switch {
	case strings.HasPrefix(label, "iso8859-"):
		label = "iso-8859-" + label[len("iso8859-"):]
	case strings.HasPrefix(label, "microsoft-cp"):
		label = "windows-" + label[len("microsoft-cp"):]
	case label == "tis620-2533":
		label = "tis-620"
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		tracer().Errorf("unknown dictionary encoding %s, assuming ISO-8859-1", e.name)
		return charmap.ISO8859_1
	}
	return enc
}

// asciiUpper upper-cases s under the classic ASCII rules, leaving bytes above
// 127 untouched. Affix-file keywords and labels are ASCII-7 by contract, and
// locale-specific case folding must not leak in here.
func asciiUpper(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c - 'a' + 'A'
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

// stripBOM consumes a leading UTF-8 byte-order mark if present. The reader is
// left untouched otherwise, including on short reads.
func stripBOM(r *bufio.Reader) {
	bom, err := r.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		r.Discard(3)
	}
}

// validUTF8 reports whether s decodes without error to a sequence of Unicode
// scalar values.
func validUTF8(s string) bool {
	return utf8.ValidString(s)
}
