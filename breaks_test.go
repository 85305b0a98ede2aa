package morphdict

import (
	"testing"
)

func TestBreakTablePartitions(t *testing.T) {
	bt := NewBreakTable([]string{"^pre", "post$", "mid", "^", "$", ""})
	start := bt.StartWordBreaks()
	if len(start) != 1 || start[0] != "pre" {
		t.Fatalf("expected start partition [pre], got %v", start)
	}
	end := bt.EndWordBreaks()
	if len(end) != 1 || end[0] != "post" {
		t.Fatalf("expected end partition [post], got %v", end)
	}
	mid := bt.MiddleWordBreaks()
	if len(mid) != 1 || mid[0] != "mid" {
		t.Fatalf("expected middle partition [mid], got %v", mid)
	}
}

func TestBreakAndSpell(t *testing.T) {
	bt := NewBreakTable([]string{"^-", "-$", "-"})
	var probes []string
	record := func(s string) bool {
		probes = append(probes, s)
		return true
	}
	probes = nil
	if !bt.BreakAndSpell("a-b", record) {
		t.Error("a-b should split successfully")
	}
	if len(probes) != 2 || probes[0] != "a" || probes[1] != "b" {
		t.Errorf(`"a-b" should probe ("a","b"), probed %v`, probes)
	}
	probes = nil
	if !bt.BreakAndSpell("-a", record) {
		t.Error("-a should split successfully")
	}
	if len(probes) != 1 || probes[0] != "a" {
		t.Errorf(`"-a" should probe ("a"), probed %v`, probes)
	}
	probes = nil
	if !bt.BreakAndSpell("a-", record) {
		t.Error("a- should split successfully")
	}
	if len(probes) != 1 || probes[0] != "a" {
		t.Errorf(`"a-" should probe ("a"), probed %v`, probes)
	}
}

func TestBreakAndSpellMiddleNeedsBothHalves(t *testing.T) {
	bt := NewBreakTable([]string{"-"})
	good := map[string]bool{"a": true, "b": false}
	if bt.BreakAndSpell("a-b", func(s string) bool { return good[s] }) {
		t.Error("middle split must require both halves to probe successfully")
	}
	if !bt.BreakAndSpell("a-a", func(s string) bool { return good[s] }) {
		t.Error("middle split with two good halves should succeed")
	}
}

func TestBreakAndSpellTriesEveryOccurrence(t *testing.T) {
	bt := NewBreakTable([]string{"-"})
	ok := func(s string) bool { return s == "x-y" || s == "z" }
	// splitting at the first dash yields ("x", "y-z"), which fails; the
	// second dash yields ("x-y", "z"), which succeeds
	if !bt.BreakAndSpell("x-y-z", ok) {
		t.Error("all interior occurrences of a middle break must be tried")
	}
}
