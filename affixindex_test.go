package morphdict

import (
	"testing"
)

func mustPrefix(t *testing.T, flag Flag, strip, append_ string) *PrefixEntry {
	t.Helper()
	pe, err := NewPrefixEntry(flag, false, strip, append_, ".", FlagSet{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return pe
}

func mustSuffix(t *testing.T, flag Flag, strip, append_ string) *SuffixEntry {
	t.Helper()
	se, err := NewSuffixEntry(flag, false, strip, append_, ".", FlagSet{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return se
}

func TestPrefixIndexMatching(t *testing.T) {
	ix := NewPrefixIndex([]*PrefixEntry{
		mustPrefix(t, 'A', "", "un"),
		mustPrefix(t, 'B', "", "under"),
		mustPrefix(t, 'C', "", "re"),
		mustPrefix(t, 'D', "", ""),
	})
	got := map[Flag]bool{}
	for _, e := range ix.Matching("understand") {
		got[e.Flag] = true
	}
	if !got['A'] || !got['B'] || !got['D'] {
		t.Errorf(`"understand" should match appends "", "un" and "under", got %v`, got)
	}
	if got['C'] {
		t.Error(`"understand" must not match append "re"`)
	}
	if n := len(ix.Matching("xylophone")); n != 1 {
		t.Errorf("only the empty append matches, got %d entries", n)
	}
}

func TestSuffixIndexMatching(t *testing.T) {
	ix := NewSuffixIndex([]*SuffixEntry{
		mustSuffix(t, 'S', "", "s"),
		mustSuffix(t, 'T', "", "ings"),
		mustSuffix(t, 'U', "y", "ies"),
	})
	got := map[Flag]bool{}
	for _, e := range ix.Matching("meetings") {
		got[e.Flag] = true
	}
	if !got['S'] || !got['T'] {
		t.Errorf(`"meetings" should match appends "s" and "ings", got %v`, got)
	}
	if got['U'] {
		t.Error(`"meetings" must not match append "ies"`)
	}
}

func TestSuffixIndexUnicodeAppend(t *testing.T) {
	ix := NewSuffixIndex([]*SuffixEntry{
		mustSuffix(t, 'F', "", "ül"),
	})
	if n := len(ix.Matching("betül")); n != 1 {
		t.Fatalf(`"betül" should match append "ül", got %d entries`, n)
	}
	if n := len(ix.Matching("hello")); n != 0 {
		t.Fatalf(`"hello" matches nothing, got %d entries`, n)
	}
}

func TestAffixIndexDuplicateAppends(t *testing.T) {
	ix := NewSuffixIndex([]*SuffixEntry{
		mustSuffix(t, 'A', "", "s"),
		mustSuffix(t, 'B', "", "s"),
	})
	if n := len(ix.Matching("cats")); n != 2 {
		t.Fatalf("both entries under the same append must surface, got %d", n)
	}
}
