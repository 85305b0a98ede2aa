package morphdict

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// rawAffix is one PFX/SFX body line before transcoding and condition
// compilation. The parser collects raw entries and freezes them into the
// indexes at end of stream.
type rawAffix struct {
	flag      Flag
	cross     bool
	strip     string
	append    string
	cont      FlagSet
	condition string
	morph     []string
}

type affixHeaderKey struct {
	kind byte // 'P' or 'S'
	flag Flag
}

// affixHeader records the cross-product bit and remaining body-line count of
// a PFX/SFX header. One flag is tied to one cross-product value; the first
// header wins and later headers under the same flag continue its count.
type affixHeader struct {
	cross bool
	count int
}

var (
	doubleRuleRE = regexp.MustCompile(`\((..)\)([?*]?)`)
	numberRuleRE = regexp.MustCompile(`\(([0-9]+)\)([?*]?)`)
)

// ParseAff parses an affix file into the state object. The parser warns and
// continues on recoverable problems; a nil return means the end of the
// stream was reached cleanly.
func (ad *AffData) ParseAff(r io.Reader) error {
	var (
		languageCode  string
		ignoreChars   string
		prefixes      []rawAffix
		suffixes      []rawAffix
		breakPatterns []string
		breakExists   bool
		iconv         []ReplacePair
		oconv         []ReplacePair
		rep           []ReplacePair
		phone         []ReplacePair
		mapChars      []string
	)
	ad.FlagType = FlagSingle

	stringSettings := map[string]*string{
		"LANG":      &languageCode,
		"IGNORE":    &ignoreChars,
		"KEY":       &ad.KeyboardLayout,
		"TRY":       &ad.TryChars,
		"WORDCHARS": &ad.WordChars,
	}
	boolSettings := map[string]*bool{
		"COMPLEXPREFIXES":      &ad.ComplexPrefixes,
		"ONLYMAXDIFF":          &ad.OnlyMaxDiff,
		"NOSPLITSUGS":          &ad.NoSplitSuggestions,
		"SUGSWITHDOTS":         &ad.SuggestWithDots,
		"FORBIDWARN":           &ad.ForbidWarn,
		"COMPOUNDMORESUFFIXES": &ad.CompoundMoreSuffixes,
		"CHECKCOMPOUNDDUP":     &ad.CompoundCheckDup,
		"CHECKCOMPOUNDREP":     &ad.CompoundCheckRep,
		"CHECKCOMPOUNDCASE":    &ad.CompoundCheckCase,
		"CHECKCOMPOUNDTRIPLE":  &ad.CompoundCheckTriple,
		"SIMPLIFIEDTRIPLE":     &ad.CompoundSimplifiedTriple,
		"FULLSTRIP":            &ad.FullStrip,
		"CHECKSHARPS":          &ad.CheckSharps,
	}
	shortSettings := map[string]*int{
		"MAXCPDSUGS":      &ad.MaxCompoundSuggestions,
		"MAXNGRAMSUGS":    &ad.MaxNgramSuggestions,
		"MAXDIFF":         &ad.MaxDiffFactor,
		"COMPOUNDMIN":     &ad.CompoundMinimum,
		"COMPOUNDWORDMAX": &ad.CompoundWordMax,
	}
	flagSettings := map[string]*Flag{
		"NOSUGGEST":          &ad.NosuggestFlag,
		"WARN":               &ad.WarnFlag,
		"COMPOUNDFLAG":       &ad.CompoundFlag,
		"COMPOUNDBEGIN":      &ad.CompoundBeginFlag,
		"COMPOUNDLAST":       &ad.CompoundLastFlag,
		"COMPOUNDMIDDLE":     &ad.CompoundMiddleFlag,
		"ONLYINCOMPOUND":     &ad.CompoundOnlyinFlag,
		"COMPOUNDPERMITFLAG": &ad.CompoundPermitFlag,
		"COMPOUNDFORBIDFLAG": &ad.CompoundForbidFlag,
		"COMPOUNDROOT":       &ad.CompoundRootFlag,
		"FORCEUCASE":         &ad.CompoundForceUpper,
		"CIRCUMFIX":          &ad.CircumfixFlag,
		"FORBIDDENWORD":      &ad.ForbiddenWordFlag,
		"KEEPCASE":           &ad.KeepCaseFlag,
		"NEEDAFFIX":          &ad.NeedAffixFlag,
		"SUBSTANDARD":        &ad.SubstandardFlag,
	}
	pairTables := map[string]*[]ReplacePair{
		"REP":   &rep,
		"PHONE": &phone,
		"ICONV": &iconv,
		"OCONV": &oconv,
	}

	vecCounts := make(map[string]int)
	affHeaders := make(map[affixHeaderKey]*affixHeader)

	br := bufio.NewReader(r)
	stripBOM(br)
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if ad.Encoding.IsUTF8() && !validUTF8(line) {
			// Hungarian mixes UTF-8 and Latin-2 in one file; keep going.
			tracer().Errorf("invalid UTF-8 in affix file line %d", lineNum)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0][0] == '#' {
			continue
		}
		command := asciiUpper(fields[0])
		args := fields[1:]
		switch {
		case command == "PFX" || command == "SFX":
			ad.parseAffix(command[0], args, lineNum, affHeaders, &prefixes, &suffixes)
		case stringSettings[command] != nil:
			p := stringSettings[command]
			if *p != "" {
				tracer().Errorf("setting %s more than once, ignoring, in line %d", command, lineNum)
			} else if len(args) > 0 {
				*p = args[0]
			}
		case boolSettings[command] != nil:
			*boolSettings[command] = true
		case shortSettings[command] != nil:
			if n, ok := parseLeadingInt(firstArg(args)); ok {
				*shortSettings[command] = n
			} else {
				tracer().Errorf("cannot parse %s value in line %d", command, lineNum)
			}
		case flagSettings[command] != nil:
			*flagSettings[command] = decodeSingleFlag(firstArg(args), lineNum, ad.FlagType, ad.Encoding)
		case pairTables[command] != nil:
			tab := pairTables[command]
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				if len(args) < 2 {
					return false
				}
				*tab = append(*tab, ReplacePair{Pattern: args[0], Repl: args[1]})
				return true
			})
		case command == "MAP":
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				if len(args) == 0 {
					return false
				}
				mapChars = append(mapChars, args[0])
				return true
			})
		case command == "SET":
			if !ad.Encoding.Empty() {
				tracer().Errorf("setting SET more than once, ignoring, in line %d", lineNum)
			} else if len(args) > 0 {
				ad.Encoding = NewEncoding(args[0])
			}
		case command == "FLAG":
			ad.parseFlagType(firstArg(args), lineNum)
		case command == "AF":
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				if len(args) == 0 {
					return false
				}
				flags := decodeFlags(args[0], lineNum, ad.FlagType, ad.Encoding)
				ad.FlagAliases = append(ad.FlagAliases, NewFlagSet(flags))
				return true
			})
		case command == "AM":
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				ad.MorphAliases = append(ad.MorphAliases, append([]string(nil), args...))
				return true
			})
		case command == "BREAK":
			breakExists = true
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				if len(args) == 0 {
					return false
				}
				breakPatterns = append(breakPatterns, args[0])
				return true
			})
		case command == "CHECKCOMPOUNDPATTERN":
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				p, ok := ad.parseCompoundPattern(args, lineNum)
				if !ok {
					return false
				}
				ad.CompoundCheckPatterns = append(ad.CompoundCheckPatterns, p)
				return true
			})
		case command == "COMPOUNDRULE":
			parseVectorEntry(vecCounts, command, lineNum, args, func(args []string) bool {
				rule := ad.parseCompoundRule(firstArg(args), lineNum)
				if len(rule) == 0 {
					return false
				}
				ad.CompoundRules = append(ad.CompoundRules, rule)
				return true
			})
		case command == "COMPOUNDSYLLABLE":
			if n, ok := parseLeadingInt(firstArg(args)); ok {
				ad.CompoundSyllableMax = n
			} else {
				tracer().Errorf("cannot parse COMPOUNDSYLLABLE count in line %d", lineNum)
			}
			if len(args) > 1 {
				ad.CompoundSyllableVowels = args[1]
			}
		case command == "SYLLABLENUM":
			flags := decodeFlags(firstArg(args), lineNum, ad.FlagType, ad.Encoding)
			ad.CompoundSyllableNum = NewFlagSet(flags)
		default:
			tracer().Infof("unknown affix command %s in line %d", command, lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// default BREAK definition
	if !breakExists {
		breakPatterns = append(breakPatterns, "-", "^-", "-$")
	}

	// Fill the frozen structures from the intermediate lists. UTF-8 input is
	// already in the internal representation; legacy encodings transcode
	// every table string on the way in.
	ad.setLanguage(languageCode)
	tr := ad.Encoding.decodeString
	ad.IgnoreChars = tr(ignoreChars)
	ad.KeyboardLayout = tr(ad.KeyboardLayout)
	ad.TryChars = tr(ad.TryChars)
	ad.WordChars = tr(ad.WordChars)
	ad.CompoundSyllableVowels = tr(ad.CompoundSyllableVowels)
	ad.Replacements = transcodePairs(rep, tr)
	ad.PhoneticReplacements = transcodePairs(phone, tr)
	ad.InputConversion = NewSubstrReplacer(transcodePairs(iconv, tr))
	ad.OutputConversion = NewSubstrReplacer(transcodePairs(oconv, tr))
	ad.MapRelatedChars = transcodeStrings(mapChars, tr)
	ad.Breaks = NewBreakTable(transcodeStrings(breakPatterns, tr))
	for i := range ad.CompoundCheckPatterns {
		p := &ad.CompoundCheckPatterns[i]
		p.FirstWordEnd = tr(p.FirstWordEnd)
		p.SecondWordBegin = tr(p.SecondWordBegin)
		p.Replacement = tr(p.Replacement)
	}

	pes := make([]*PrefixEntry, 0, len(prefixes))
	for _, x := range prefixes {
		pe, err := NewPrefixEntry(x.flag, x.cross, tr(x.strip), tr(x.append),
			tr(x.condition), x.cont, x.morph)
		if err != nil {
			tracer().Errorf("invalid prefix condition %q: %v", x.condition, err)
			continue
		}
		pes = append(pes, pe)
	}
	ad.Prefixes = NewPrefixIndex(pes)
	ses := make([]*SuffixEntry, 0, len(suffixes))
	for _, x := range suffixes {
		se, err := NewSuffixEntry(x.flag, x.cross, tr(x.strip), tr(x.append),
			tr(x.condition), x.cont, x.morph)
		if err != nil {
			tracer().Errorf("invalid suffix condition %q: %v", x.condition, err)
			continue
		}
		ses = append(ses, se)
	}
	ad.Suffixes = NewSuffixIndex(ses)
	return nil
}

// parseVectorEntry drives one line of a counted table command. The first
// occurrence carries the entry count; a malformed count reads as zero and all
// entries are ignored. The next count occurrences each parse one entry, and
// anything beyond the count warns.
func parseVectorEntry(counts map[string]int, command string, lineNum int,
	args []string, parseEntry func([]string) bool) {
	//
	n, seen := counts[command]
	if !seen {
		cnt, ok := parseLeadingInt(firstArg(args))
		if !ok || cnt < 0 {
			cnt = 0
			tracer().Errorf("table command %s has no count, ignoring all entries, in line %d",
				command, lineNum)
		}
		counts[command] = cnt
		return
	}
	if n > 0 {
		if !parseEntry(args) {
			tracer().Errorf("invalid entry of table command %s in line %d", command, lineNum)
		}
		counts[command] = n - 1
		return
	}
	tracer().Errorf("extra entries of %s in line %d", command, lineNum)
}

// parseAffix handles one PFX or SFX line: a header line the first time a flag
// is seen, a body line while the header's count lasts.
func (ad *AffData) parseAffix(kind byte, args []string, lineNum int,
	headers map[affixHeaderKey]*affixHeader, prefixes, suffixes *[]rawAffix) {
	//
	if len(args) == 0 {
		tracer().Errorf("affix command without flag in line %d", lineNum)
		return
	}
	f := decodeSingleFlag(args[0], lineNum, ad.FlagType, ad.Encoding)
	if f == NoFlag {
		return
	}
	key := affixHeaderKey{kind: kind, flag: f}
	hdr, seen := headers[key]
	if !seen {
		cross := false
		cnt := 0
		if len(args) >= 3 {
			cross = args[1] == "Y"
			if n, ok := parseLeadingInt(args[2]); ok && n >= 0 {
				cnt = n
			} else {
				tracer().Errorf("affix header has an invalid count in line %d", lineNum)
			}
		} else {
			tracer().Errorf("affix header is missing count or cross product in line %d", lineNum)
		}
		headers[key] = &affixHeader{cross: cross, count: cnt}
		return
	}
	if hdr.count <= 0 {
		tracer().Errorf("extra entries of %cFX %s in line %d", kind, args[0], lineNum)
		return
	}
	if len(args) < 3 {
		tracer().Errorf("invalid affix entry in line %d", lineNum)
		return
	}
	elem := rawAffix{flag: f, cross: hdr.cross}
	elem.strip = args[1]
	if elem.strip == "0" {
		elem.strip = ""
	}
	app := args[2]
	if i := strings.IndexByte(app, '/'); i >= 0 {
		cont, ok := decodeFlagsAlias(app[i+1:], lineNum, ad.FlagType, ad.Encoding, ad.FlagAliases)
		if !ok {
			tracer().Errorf("invalid affix continuation flags in line %d", lineNum)
			return
		}
		elem.cont = cont
		app = app[:i]
	}
	if app == "0" {
		app = ""
	}
	elem.append = app
	elem.condition = "."
	if len(args) > 3 && args[3] != "" {
		elem.condition = args[3]
	}
	if len(args) > 4 {
		elem.morph = append([]string(nil), args[4:]...)
	}
	if kind == 'P' {
		*prefixes = append(*prefixes, elem)
	} else {
		*suffixes = append(*suffixes, elem)
	}
	hdr.count--
}

// parseFlagType switches the flag decoding scheme. Unknown arguments warn
// and keep the current scheme.
func (ad *AffData) parseFlagType(token string, lineNum int) {
	switch asciiUpper(token) {
	case "LONG":
		ad.FlagType = FlagDouble
	case "NUM":
		ad.FlagType = FlagNumber
	case "UTF-8":
		ad.FlagType = FlagUTF8
	default:
		tracer().Errorf("unknown FLAG type %q in line %d", token, lineNum)
	}
}

// parseCompoundRule parses one COMPOUNDRULE body. Single-char and UTF-8 flag
// types read the body as a raw flag sequence. Long and numeric flag types
// enclose each flag in parentheses, optionally followed by a "?" or "*"
// quantifier which is preserved verbatim as a flag value.
func (ad *AffData) parseCompoundRule(token string, lineNum int) []Flag {
	var rule []Flag
	switch ad.FlagType {
	case FlagSingle, FlagUTF8:
		rule = decodeFlags(token, lineNum, ad.FlagType, ad.Encoding)
	case FlagDouble:
		for _, m := range doubleRuleRE.FindAllStringSubmatch(token, -1) {
			pair := m[1]
			switch {
			case len(pair) >= 2:
				rule = append(rule, Flag(pair[0])<<8|Flag(pair[1]))
			case len(pair) == 1:
				rule = append(rule, Flag(pair[0]))
			}
			if m[2] != "" {
				rule = append(rule, Flag(m[2][0]))
			}
		}
	case FlagNumber:
		for _, m := range numberRuleRE.FindAllStringSubmatch(token, -1) {
			if n, err := strconv.ParseUint(m[1], 10, 64); err == nil && n <= 0xFFFF {
				rule = append(rule, Flag(n))
			}
			if m[2] != "" {
				rule = append(rule, Flag(m[2][0]))
			}
		}
	}
	return rule
}

// parseCompoundPattern parses one CHECKCOMPOUNDPATTERN body:
// endchars[/flag] beginchars[/flag] [replacement].
func (ad *AffData) parseCompoundPattern(args []string, lineNum int) (CompoundPattern, bool) {
	var p CompoundPattern
	if len(args) < 2 {
		return p, false
	}
	p.FirstWordEnd = args[0]
	if i := strings.IndexByte(p.FirstWordEnd, '/'); i >= 0 {
		p.FirstWordFlag = decodeSingleFlag(p.FirstWordEnd[i+1:], lineNum, ad.FlagType, ad.Encoding)
		p.FirstWordEnd = p.FirstWordEnd[:i]
	}
	p.SecondWordBegin = args[1]
	if i := strings.IndexByte(p.SecondWordBegin, '/'); i >= 0 {
		p.SecondWordFlag = decodeSingleFlag(p.SecondWordBegin[i+1:], lineNum, ad.FlagType, ad.Encoding)
		p.SecondWordBegin = p.SecondWordBegin[:i]
	}
	if len(args) > 2 {
		p.Replacement = args[2]
	}
	return p, true
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// parseLeadingInt parses the leading decimal digits of a token, the way a
// stream extractor would, ignoring trailing junk.
func parseLeadingInt(token string) (int, bool) {
	j := 0
	for j < len(token) && token[j] >= '0' && token[j] <= '9' {
		j++
	}
	if j == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(token[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

func transcodeStrings(in []string, tr func(string) string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = tr(s)
	}
	return out
}

func transcodePairs(in []ReplacePair, tr func(string) string) []ReplacePair {
	out := make([]ReplacePair, len(in))
	for i, p := range in {
		out[i] = ReplacePair{Pattern: tr(p.Pattern), Repl: tr(p.Repl)}
	}
	return out
}
