/*
Package morphdict loads Hunspell-format morphological dictionaries.

A dictionary is described by two companion files: an affix file (".aff") with
the language's orthographic conventions (flag declarations, prefix and suffix
rules, substring conversions, break patterns, compounding parameters) and a
dictionary file (".dic") listing root words tagged with flag sets. Package
morphdict parses both into frozen lookup structures designed for fast
recognition: sorted flag sets, longest-match substring replacers, anchored
break tables, double-array-trie affix indexes keyed by appended surface text,
and an ordered word list with hidden-homonym entries for case-variant roots.

Legacy 8-bit dictionary encodings are supported; table strings are transcoded
to UTF-8 when the parsed tables are frozen, so all query operations take plain
Go strings.

Spell-check recognition, compounding and suggestion policies are downstream
consumers of the loaded structures and not part of this package.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package morphdict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'morphdict'
func tracer() tracing.Trace {
	return tracing.Select("morphdict")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
