package morphdict

import (
	"strconv"
)

// decodeFlags decodes one whitespace-delimited flag token under the active
// flag type and encoding. The returned sequence preserves the order in which
// flags appear in the token; callers wanting set semantics wrap the result in
// NewFlagSet. An empty result means the token held no decodable flag.
func decodeFlags(token string, lineNum int, typ FlagType, enc Encoding) []Flag {
	var ret []Flag
	switch typ {
	case FlagSingle:
		if token == "" {
			tracer().Errorf("missing single-character flag in line %d", lineNum)
			break
		}
		if enc.IsUTF8() && !isAllASCII(token) {
			// Bytes above 127 of a UTF-8 stream should not be treated
			// alone as flags. Hungarian dictionaries rely on exactly
			// that, so decoding continues byte-wise.
			tracer().Errorf("bytes above 127 treated as single flags in line %d, "+
				"the dictionary should use FLAG UTF-8", lineNum)
		}
		for i := 0; i < len(token); i++ {
			ret = append(ret, Flag(token[i]))
		}
	case FlagDouble:
		if token == "" {
			tracer().Errorf("missing double-character flag in line %d", lineNum)
			break
		}
		if enc.IsUTF8() && !isAllASCII(token) {
			tracer().Errorf("bytes above 127 in double-character flags in line %d", lineNum)
		}
		i := 0
		for ; i+1 < len(token); i += 2 {
			ret = append(ret, Flag(token[i])<<8|Flag(token[i+1]))
		}
		if i < len(token) {
			// odd length, trailing byte keeps a zero high byte
			ret = append(ret, Flag(token[i]))
		}
	case FlagNumber:
		rest := token
		for {
			j := 0
			for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
				j++
			}
			if j == 0 {
				if len(ret) == 0 {
					tracer().Errorf("missing numerical flag in line %d", lineNum)
				} else {
					tracer().Errorf("numerical flag list, no number after comma in line %d", lineNum)
				}
				break
			}
			n, err := strconv.ParseUint(rest[:j], 10, 16)
			if err != nil {
				tracer().Errorf("numerical flag out of range in line %d", lineNum)
				break
			}
			ret = append(ret, Flag(n))
			rest = rest[j:]
			if len(rest) == 0 || rest[0] != ',' {
				break
			}
			rest = rest[1:]
		}
	case FlagUTF8:
		if !enc.IsUTF8() {
			tracer().Errorf("file encoding is not UTF-8, yet flags are")
		}
		if token == "" {
			tracer().Errorf("missing UTF-8 flag in line %d", lineNum)
			break
		}
		for _, r := range token {
			if r > 0xFFFF {
				tracer().Errorf("flags must be in BMP, skipping non-BMP flag in line %d", lineNum)
				continue
			}
			ret = append(ret, Flag(r))
		}
	}
	return ret
}

// decodeSingleFlag returns the first flag of a token, or NoFlag when the token
// held none.
func decodeSingleFlag(token string, lineNum int, typ FlagType, enc Encoding) Flag {
	flags := decodeFlags(token, lineNum, typ, enc)
	if len(flags) > 0 {
		return flags[0]
	}
	return NoFlag
}

// decodeFlagsAlias decodes a flag token that may be a flag-alias index. With a
// non-empty alias table the token must parse as a positive integer; index i
// in [1,len] returns the i-th alias set verbatim. The second result is false
// when the token was unreadable where a number was required, which skips the
// surrounding dictionary line.
func decodeFlagsAlias(token string, lineNum int, typ FlagType, enc Encoding,
	aliases []FlagSet) (FlagSet, bool) {
	//
	if token == "" {
		tracer().Errorf("missing flags in line %d", lineNum)
		return FlagSet{}, false
	}
	if len(aliases) == 0 {
		return NewFlagSet(decodeFlags(token, lineNum, typ, enc)), true
	}
	j := 0
	for j < len(token) && token[j] >= '0' && token[j] <= '9' {
		j++
	}
	if j == 0 {
		tracer().Errorf("invalid flag alias index in line %d", lineNum)
		return FlagSet{}, false
	}
	i, err := strconv.Atoi(token[:j])
	if err != nil || i < 1 || i > len(aliases) {
		tracer().Errorf("flag alias index out of range in line %d", lineNum)
		return FlagSet{}, true
	}
	return aliases[i-1], true
}

func isAllASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
