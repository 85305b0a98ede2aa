package morphdict

import (
	"strings"
	"testing"
)

func loadDic(t *testing.T, ad *AffData, dic string) {
	t.Helper()
	if err := ad.ParseDic(strings.NewReader(dic)); err != nil {
		t.Fatal(err)
	}
}

func TestParseDicMissingWordCountIsFatal(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	if err := ad.ParseDic(strings.NewReader("")); err == nil {
		t.Error("an empty dictionary file must fail")
	}
	if err := ad.ParseDic(strings.NewReader("words\nhello\n")); err == nil {
		t.Error("a non-numeric first line must fail")
	}
}

func TestParseDicSlashFlags(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "2\nhello/XY\nworld\n")
	hello := ad.Words.Lookup("hello")
	if len(hello) != 1 || !hello[0].Equal(NewFlagSet([]Flag{'X', 'Y'})) {
		t.Fatalf(`expected ("hello", {X,Y}), got %v`, hello)
	}
	world := ad.Words.Lookup("world")
	if len(world) != 1 || !world[0].Empty() {
		t.Fatalf(`expected ("world", {}), got %v`, world)
	}
}

func TestParseDicFlagAliases(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\nFLAG UTF-8\nAF 2\nAF AB\nAF CD\n")
	loadDic(t, ad, "1\nword/1\n")
	got := ad.Words.Lookup("word")
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %v", got)
	}
	if !got[0].Equal(NewFlagSet([]Flag{'A', 'B'})) {
		t.Errorf("alias 1 should resolve to {A,B}, got %s", got[0])
	}
}

func TestParseDicHiddenHomonym(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "1\nAb/X\n")
	ab := ad.Words.Lookup("Ab")
	if len(ab) != 1 || !ab[0].Equal(NewFlagSet([]Flag{'X'})) {
		t.Fatalf(`expected ("Ab", {X}), got %v`, ab)
	}
	up := ad.Words.Lookup("AB")
	if len(up) != 1 {
		t.Fatalf(`expected hidden homonym entry for "AB", got %v`, up)
	}
	if !up[0].Contains('X') || !up[0].Contains(HiddenHomonym) {
		t.Errorf(`"AB" should carry {X, hidden homonym}, got %s`, up[0])
	}
}

func TestParseDicTabSeparatesMorphology(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "1\nstem\tst:stem po:noun\n")
	if !ad.Words.Contains("stem") {
		t.Fatal("word before the tab should be inserted")
	}
	if ad.Words.Contains("stem\tst:stem po:noun") {
		t.Error("morphological fields after the tab are not part of the word")
	}
}

func TestParseDicMorphFieldHeuristic(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "2\nhello st:greeting\nplain line without colon fields\n")
	if !ad.Words.Contains("hello") {
		t.Error(`heuristic should cut the word before "st:"`)
	}
	if ad.Words.Contains("hello st:greeting") {
		t.Error("morphological field must not be part of the word")
	}
	if !ad.Words.Contains("plain line without colon fields") {
		t.Error("without flags, tab or morph pattern the whole line is the word")
	}
}

func TestParseDicEscapedSlash(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "1\nand\\/or/X\n")
	got := ad.Words.Lookup(`and\/or`)
	if len(got) != 1 {
		t.Fatalf("escaped slash belongs to the word, words missing")
	}
	if !got[0].Equal(NewFlagSet([]Flag{'X'})) {
		t.Errorf("flags after the unescaped slash misparsed: %s", got[0])
	}
}

func TestParseDicDropsEmptyWords(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "2\n/X\n\n")
	if ad.Words.Size() != 0 {
		t.Errorf("empty words are dropped silently, got %d entries", ad.Words.Size())
	}
}

func TestParseDicLegacyEncoding(t *testing.T) {
	ad := loadAff(t, "SET ISO8859-1\n")
	loadDic(t, ad, "1\nsch\xf6n/X\n")
	got := ad.Words.Lookup("schön")
	if len(got) != 1 || !got[0].Contains('X') {
		t.Fatalf("legacy-encoded word should be transcoded on insert, got %v", got)
	}
}

func TestParseDicCountWithTrailingText(t *testing.T) {
	ad := loadAff(t, "SET UTF-8\n")
	loadDic(t, ad, "3 approximate\nword\n")
	if !ad.Words.Contains("word") {
		t.Error("a count line with trailing text still parses its leading integer")
	}
}
