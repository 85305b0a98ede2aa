package morphdict

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompoundPattern is one CHECKCOMPOUNDPATTERN row: compounding of two words
// is forbidden when the first ends in FirstWordEnd and the second begins with
// SecondWordBegin, optionally restricted by flags and rewritten by
// Replacement.
type CompoundPattern struct {
	FirstWordEnd    string
	FirstWordFlag   Flag
	SecondWordBegin string
	SecondWordFlag  Flag
	Replacement     string
}

// AffData is the parsed state of an affix file plus, after ParseDic, the word
// list of its companion dictionary file. A fully parsed AffData is immutable
// and safe for concurrent read-only use.
type AffData struct {
	Encoding     Encoding
	FlagType     FlagType
	LanguageCode string
	Language     language.Tag

	// suggestion-related string settings
	IgnoreChars    string
	KeyboardLayout string
	TryChars       string
	WordChars      string

	// boolean options
	ComplexPrefixes          bool
	OnlyMaxDiff              bool
	NoSplitSuggestions       bool
	SuggestWithDots          bool
	ForbidWarn               bool
	CompoundMoreSuffixes     bool
	CompoundCheckDup         bool
	CompoundCheckRep         bool
	CompoundCheckCase        bool
	CompoundCheckTriple      bool
	CompoundSimplifiedTriple bool
	FullStrip                bool
	CheckSharps              bool

	// numeric options
	MaxCompoundSuggestions int
	MaxNgramSuggestions    int
	MaxDiffFactor          int
	CompoundMinimum        int
	CompoundWordMax        int
	CompoundSyllableMax    int

	CompoundSyllableVowels string
	CompoundSyllableNum    FlagSet

	// flag-tagged options
	NosuggestFlag      Flag
	WarnFlag           Flag
	CompoundFlag       Flag
	CompoundBeginFlag  Flag
	CompoundLastFlag   Flag
	CompoundMiddleFlag Flag
	CompoundOnlyinFlag Flag
	CompoundPermitFlag Flag
	CompoundForbidFlag Flag
	CompoundRootFlag   Flag
	CompoundForceUpper Flag
	CircumfixFlag      Flag
	ForbiddenWordFlag  Flag
	KeepCaseFlag       Flag
	NeedAffixFlag      Flag
	SubstandardFlag    Flag

	// aliases
	FlagAliases  []FlagSet
	MorphAliases [][]string

	// counted tables, frozen at end of parse
	Replacements          []ReplacePair // REP, consumed by suggesters
	PhoneticReplacements  []ReplacePair // PHONE
	InputConversion       *SubstrReplacer
	OutputConversion      *SubstrReplacer
	MapRelatedChars       []string
	Breaks                *BreakTable
	CompoundRules         [][]Flag
	CompoundCheckPatterns []CompoundPattern

	// affix indexes
	Prefixes *PrefixIndex
	Suffixes *SuffixIndex

	// dictionary word list, populated by ParseDic
	Words *WordList
}

// NewAffData returns an empty state object ready for ParseAff.
func NewAffData() *AffData {
	return &AffData{
		FlagType: FlagSingle,
		Language: language.Und,
	}
}

// setLanguage installs the LANG code as a language tag. Hunspell codes use
// underscores ("hu_HU"); BCP 47 wants hyphens.
func (ad *AffData) setLanguage(code string) {
	ad.LanguageCode = code
	if code == "" {
		ad.Language = language.Und
		return
	}
	tag, err := language.Parse(underscoreToHyphen(code))
	if err != nil {
		tracer().Errorf("cannot parse language code %q: %v", code, err)
		tag = language.Und
	}
	ad.Language = tag
}

func underscoreToHyphen(code string) string {
	b := []byte(code)
	for i := range b {
		if b[i] == '_' {
			b[i] = '-'
		}
	}
	return string(b)
}

// upperCaser returns the locale-aware upper-casing function of the parsed
// language, as used by the hidden-homonym discipline.
func (ad *AffData) upperCaser() func(string) string {
	caser := cases.Upper(ad.Language)
	return func(s string) string { return caser.String(s) }
}
