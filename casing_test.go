package morphdict

import (
	"testing"
)

func TestClassifyCasing(t *testing.T) {
	cases := []struct {
		word string
		want Casing
	}{
		{"table", AllLower},
		{"étude", AllLower},
		{"x", AllLower},
		{"1234", AllLower},
		{"", AllLower},
		{"TABLE", AllCapital},
		{"X", AllCapital},
		{"NASA", AllCapital},
		{"Ab", Pascal},
		{"Table", Pascal},
		{"McDonald", Pascal},
		{"iPod", Camel},
		{"camelCase", Camel},
		{"1aB", Mixed},
	}
	for _, c := range cases {
		if got := classifyCasing(c.word); got != c.want {
			t.Errorf("casing of %q should be %s, is %s", c.word, c.want, got)
		}
	}
}
