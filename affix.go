package morphdict

import (
	"regexp"
	"strings"
)

// AffixEntry is the payload shared by prefix and suffix rules: the flag that
// activates the rule, the cross-product bit, the surface text stripped and
// appended when the rule fires, continuation flags for the derived form, and
// an anchored condition over the root.
//
// The parser normalizes a strip or append of "0" to the empty string and an
// empty condition to "." before entries are constructed; constructors do not
// re-check this.
type AffixEntry struct {
	Flag         Flag
	CrossProduct bool
	Strip        string
	Append       string
	ContFlags    FlagSet
	MorphFields  []string
	condition    *regexp.Regexp
}

// Condition returns the compiled, anchored condition expression.
func (ae *AffixEntry) Condition() string { return ae.condition.String() }

// CheckCondition reports whether the anchored condition matches word.
func (ae *AffixEntry) CheckCondition(word string) bool {
	return ae.condition.MatchString(word)
}

// PrefixEntry is an affix rule applying at the start of a word. Its condition
// is anchored at the word start.
type PrefixEntry struct {
	AffixEntry
}

// NewPrefixEntry compiles a prefix rule. The condition is anchored with a
// leading "^".
func NewPrefixEntry(flag Flag, cross bool, strip, append_, condition string,
	cont FlagSet, morph []string) (*PrefixEntry, error) {
	//
	re, err := regexp.Compile("^" + condition)
	if err != nil {
		return nil, err
	}
	return &PrefixEntry{AffixEntry{
		Flag:         flag,
		CrossProduct: cross,
		Strip:        strip,
		Append:       append_,
		ContFlags:    cont,
		MorphFields:  morph,
		condition:    re,
	}}, nil
}

// ToRoot undoes this prefix: the leading append is replaced by strip. The
// word must start with the append text.
func (pe *PrefixEntry) ToRoot(word string) string {
	return pe.Strip + word[len(pe.Append):]
}

// ToDerived applies this prefix: the leading strip is replaced by append.
// The word must start with the strip text.
func (pe *PrefixEntry) ToDerived(word string) string {
	return pe.Append + word[len(pe.Strip):]
}

// SuffixEntry is an affix rule applying at the end of a word. Its condition
// is anchored at the word end.
type SuffixEntry struct {
	AffixEntry
}

// NewSuffixEntry compiles a suffix rule. The condition is anchored with a
// trailing "$".
func NewSuffixEntry(flag Flag, cross bool, strip, append_, condition string,
	cont FlagSet, morph []string) (*SuffixEntry, error) {
	//
	re, err := regexp.Compile(condition + "$")
	if err != nil {
		return nil, err
	}
	return &SuffixEntry{AffixEntry{
		Flag:         flag,
		CrossProduct: cross,
		Strip:        strip,
		Append:       append_,
		ContFlags:    cont,
		MorphFields:  morph,
		condition:    re,
	}}, nil
}

// ToRoot undoes this suffix: the trailing append is replaced by strip. The
// word must end with the append text.
func (se *SuffixEntry) ToRoot(word string) string {
	return word[:len(word)-len(se.Append)] + se.Strip
}

// ToDerived applies this suffix: the trailing strip is replaced by append.
// The word must end with the strip text.
func (se *SuffixEntry) ToDerived(word string) string {
	return word[:len(word)-len(se.Strip)] + se.Append
}

func (ae *AffixEntry) String() string {
	var sb strings.Builder
	sb.WriteString("affix[")
	sb.WriteString(FlagSet{flags: []Flag{ae.Flag}}.String())
	sb.WriteString(" -")
	sb.WriteString(ae.Strip)
	sb.WriteString(" +")
	sb.WriteString(ae.Append)
	sb.WriteString(" /")
	sb.WriteString(ae.condition.String())
	sb.WriteString("]")
	return sb.String()
}
