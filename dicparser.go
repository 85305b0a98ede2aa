package morphdict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseDic parses a dictionary word-list file into the state object. The
// affix file must have been parsed first: flag type, encoding, flag aliases
// and locale all come from there. A missing or unreadable word-count line is
// fatal; problems on individual word lines warn and skip the line.
func (ad *AffData) ParseDic(r io.Reader) error {
	br := bufio.NewReader(r)
	stripBOM(br)
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return err
		}
		return errors.New("dictionary file has no word count line")
	}
	lineNum := 1
	line := scanner.Text()
	if ad.Encoding.IsUTF8() && !validUTF8(line) {
		tracer().Errorf("invalid UTF-8 in dictionary file line %d", lineNum)
	}
	approx, ok := parseLeadingInt(strings.TrimSpace(line))
	if !ok {
		return fmt.Errorf("dictionary file has no word count: %q", line)
	}
	ad.Words = NewWordList(ad.upperCaser())
	ad.Words.Reserve(approx)

	for scanner.Scan() {
		lineNum++
		line = scanner.Text()
		if line == "" {
			continue
		}
		if ad.Encoding.IsUTF8() && !validUTF8(line) {
			tracer().Errorf("invalid UTF-8 in dictionary file line %d", lineNum)
		}
		var word string
		var flags FlagSet
		if slash := findUnescapedSlash(line); slash >= 0 {
			// slash found, word until slash, flags after it
			word = line[:slash]
			fs, ok := decodeFlagsAlias(firstField(line[slash+1:]), lineNum,
				ad.FlagType, ad.Encoding, ad.FlagAliases)
			if !ok {
				continue
			}
			flags = fs
		} else if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			// tab found, word until tab, no flags,
			// morphological fields after the tab
			word = line[:tab]
		} else if end := dicFindEndOfWord(line); end >= 0 {
			word = line[:end]
		} else {
			word = line
		}
		if word == "" {
			continue
		}
		ad.Words.Add(ad.Encoding.decodeString(word), flags)
	}
	return scanner.Err()
}

// findUnescapedSlash locates the earliest "/" not preceded by a backslash.
// A slash in the very first column counts as unescaped.
func findUnescapedSlash(line string) int {
	pos := 0
	for {
		i := strings.IndexByte(line[pos:], '/')
		if i < 0 {
			return -1
		}
		i += pos
		if i == 0 || line[i-1] != '\\' {
			return i
		}
		pos = i + 1
	}
}

// dicFindEndOfWord scans line for a morphological field "xy:" (two ASCII
// lowercase letters and a colon) and returns the position of the whitespace
// run preceding it, which ends the word. Returns -1 when no such field
// exists.
func dicFindEndOfWord(line string) int {
	if len(line) < 4 {
		return -1
	}
	a := 0
	for {
		i := strings.IndexByte(line[a:], ' ')
		if i < 0 {
			break
		}
		a += i
		b := a
		for b < len(line) && line[b] == ' ' {
			b++
		}
		if b == len(line) {
			break
		}
		if b > len(line)-3 {
			break
		}
		if line[b] >= 'a' && line[b] <= 'z' &&
			line[b+1] >= 'a' && line[b+1] <= 'z' && line[b+2] == ':' {
			return a
		}
		a = b
	}
	return -1
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) > 0 {
		return fields[0]
	}
	return ""
}
