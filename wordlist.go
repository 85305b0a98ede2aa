package morphdict

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// WordList is the parsed dictionary word list: an ordered multimap from
// surface form to flag set. Repeated keys appear when homonyms carry
// distinct flag sets. Insertion applies the hidden-homonym discipline for
// case-variant roots; after the dictionary file is loaded the list is
// read-only.
type WordList struct {
	words *treemap.Map // word string -> []FlagSet
	upper func(string) string
	size  int
}

// NewWordList creates an empty word list. upper is the locale-aware
// upper-casing function used for hidden homonyms; nil falls back to
// strings.ToUpper.
func NewWordList(upper func(string) string) *WordList {
	if upper == nil {
		upper = strings.ToUpper
	}
	return &WordList{
		words: treemap.NewWithStringComparator(),
		upper: upper,
	}
}

// Reserve announces the approximate number of words to come. The backing
// tree needs no pre-sizing; the hint is kept for contract parity with the
// dictionary-file header.
func (wl *WordList) Reserve(n int) {
	tracer().Debugf("word list expects about %d entries", n)
}

// Size returns the number of stored entries, hidden homonyms included.
func (wl *WordList) Size() int { return wl.size }

// Lookup returns the flag sets stored under word, in insertion order.
// The result is nil when the word is absent and must not be modified.
func (wl *WordList) Lookup(word string) []FlagSet {
	v, found := wl.words.Get(word)
	if !found {
		return nil
	}
	return v.([]FlagSet)
}

// Contains reports whether word has at least one entry.
func (wl *WordList) Contains(word string) bool {
	_, found := wl.words.Get(word)
	return found
}

// Each walks all entries in lexicographic key order.
func (wl *WordList) Each(f func(word string, flags FlagSet)) {
	wl.words.Each(func(key, value interface{}) {
		for _, fs := range value.([]FlagSet) {
			f(key.(string), fs)
		}
	})
}

// EachInRange walks the entries with from <= word < to in lexicographic key
// order.
func (wl *WordList) EachInRange(from, to string, f func(word string, flags FlagSet)) {
	it := wl.words.Iterator()
	for it.Next() {
		word := it.Key().(string)
		if word < from {
			continue
		}
		if word >= to {
			break
		}
		for _, fs := range it.Value().([]FlagSet) {
			f(word, fs)
		}
	}
}

func (wl *WordList) appendEntry(word string, flags FlagSet) {
	if v, found := wl.words.Get(word); found {
		wl.words.Put(word, append(v.([]FlagSet), flags))
	} else {
		wl.words.Put(word, []FlagSet{flags})
	}
	wl.size++
}

// Add inserts a word with its flag set, applying the hidden-homonym
// discipline for its casing class:
//
//   - an all-capitals word replaces the flags of an existing hidden-homonym
//     entry, so a pascal/camel root seen earlier no longer shadows the real
//     all-caps word;
//   - a pascal or camel word additionally inserts its locale-uppercase form
//     tagged with HiddenHomonym, unless such an entry already exists;
//   - anything else inserts as given.
func (wl *WordList) Add(word string, flags FlagSet) {
	switch classifyCasing(word) {
	case AllCapital:
		if v, found := wl.words.Get(word); found {
			entries := v.([]FlagSet)
			for i := range entries {
				if entries[i].Contains(HiddenHomonym) {
					entries[i] = flags
					wl.words.Put(word, entries)
					return
				}
			}
		}
		wl.appendEntry(word, flags)
	case Pascal, Camel:
		wl.appendEntry(word, flags)
		up := wl.upper(word)
		if v, found := wl.words.Get(up); found {
			for _, fs := range v.([]FlagSet) {
				if fs.Contains(HiddenHomonym) {
					return
				}
			}
		}
		wl.appendEntry(up, flags.Union(HiddenHomonym))
	default:
		wl.appendEntry(word, flags)
	}
}
