package morphdict

import (
	"strings"
)

// affixIndexCore stores lookup keys of affix entries in a frozen trie and
// maps trie states to entry-ID lists. Entries whose key cannot live in the
// trie (empty keys, keys with non-BMP runes) go to a linear overflow bucket
// that callers scan on every lookup.
type affixIndexCore struct {
	trie    affixTrie
	byState [][]int32
	linear  []int32
}

func buildAffixIndex(keys []string) *affixIndexCore {
	core := &affixIndexCore{trie: mustNewDATBackend()}
	type pendingEntry struct {
		pos int
		id  int32
	}
	pending := make([]pendingEntry, 0, len(keys))
	for i, key := range keys {
		if key == "" {
			core.linear = append(core.linear, int32(i))
			continue
		}
		encoded, ok := core.trie.EncodeKey(key)
		if !ok {
			core.linear = append(core.linear, int32(i))
			continue
		}
		pos := core.trie.AllocPositionForKey(encoded)
		if pos == 0 {
			core.linear = append(core.linear, int32(i))
			continue
		}
		pending = append(pending, pendingEntry{pos: pos, id: int32(i)})
	}
	core.trie.Freeze()
	for _, p := range pending {
		state := core.trie.ResolvePosition(p.pos)
		assert(state != 0, "trie position did not survive the freeze")
		for state >= len(core.byState) {
			core.byState = append(core.byState, nil)
		}
		core.byState[state] = append(core.byState[state], p.id)
	}
	stats := core.trie.Stats()
	tracer().Infof("affix trie stats backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	return core
}

// visit calls f with the ID of every entry whose key is a prefix of probe,
// in order of increasing key length. Runs in O(len(probe) + matches).
func (core *affixIndexCore) visit(probe string, f func(id int32)) {
	encoded, ok := core.trie.EncodeKey(probe)
	if !ok {
		return
	}
	it := core.trie.Iterator()
	for _, c := range encoded {
		state := it.Next(c)
		if state == 0 {
			break
		}
		if state < len(core.byState) {
			for _, id := range core.byState[state] {
				f(id)
			}
		}
	}
}

// PrefixIndex holds all prefix entries of an affix file, keyed by the
// appending surface text for reverse lookup.
type PrefixIndex struct {
	entries []*PrefixEntry
	core    *affixIndexCore
}

// NewPrefixIndex freezes prefix entries into an index.
func NewPrefixIndex(entries []*PrefixEntry) *PrefixIndex {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Append
	}
	return &PrefixIndex{entries: entries, core: buildAffixIndex(keys)}
}

// All returns every entry of the index.
func (ix *PrefixIndex) All() []*PrefixEntry { return ix.entries }

// Size returns the number of entries.
func (ix *PrefixIndex) Size() int { return len(ix.entries) }

// Matching enumerates the entries whose append is a prefix of word,
// including entries with an empty append.
func (ix *PrefixIndex) Matching(word string) []*PrefixEntry {
	var out []*PrefixEntry
	for _, id := range ix.core.linear {
		e := ix.entries[id]
		if strings.HasPrefix(word, e.Append) {
			out = append(out, e)
		}
	}
	ix.core.visit(word, func(id int32) {
		out = append(out, ix.entries[id])
	})
	return out
}

// SuffixIndex holds all suffix entries of an affix file, keyed by the
// reversed appending surface text for reverse lookup.
type SuffixIndex struct {
	entries []*SuffixEntry
	core    *affixIndexCore
}

// NewSuffixIndex freezes suffix entries into an index.
func NewSuffixIndex(entries []*SuffixEntry) *SuffixIndex {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = reverseRunes(e.Append)
	}
	return &SuffixIndex{entries: entries, core: buildAffixIndex(keys)}
}

// All returns every entry of the index.
func (ix *SuffixIndex) All() []*SuffixEntry { return ix.entries }

// Size returns the number of entries.
func (ix *SuffixIndex) Size() int { return len(ix.entries) }

// Matching enumerates the entries whose append is a suffix of word,
// including entries with an empty append.
func (ix *SuffixIndex) Matching(word string) []*SuffixEntry {
	var out []*SuffixEntry
	for _, id := range ix.core.linear {
		e := ix.entries[id]
		if strings.HasSuffix(word, e.Append) {
			out = append(out, e)
		}
	}
	ix.core.visit(reverseRunes(word), func(id int32) {
		out = append(out, ix.entries[id])
	})
	return out
}

func reverseRunes(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
