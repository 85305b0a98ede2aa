package morphdict

import (
	"sort"
	"strings"
)

// Flag is a single affix flag: a 16-bit tag attached to dictionary roots and
// affix rules. Flags are opaque; their meaning comes from the affix-file
// command that registered them (COMPOUNDFLAG, NOSUGGEST, ...).
type Flag uint16

// NoFlag is the reserved zero value, meaning "no flag set".
const NoFlag Flag = 0

// HiddenHomonym tags word-list entries that exist only to block false
// acceptance of all-caps variants. WordList.Lookup returns them alongside
// ordinary entries; this flag is what tells them apart.
const HiddenHomonym Flag = 0xFFFF

// FlagType selects how flag tokens of an affix file are decoded. It is chosen
// once per affix file by the FLAG command.
type FlagType int8

const (
	// FlagSingle is the default: one byte per flag.
	FlagSingle FlagType = iota
	// FlagDouble pairs two bytes per flag, high byte first (FLAG long).
	FlagDouble
	// FlagNumber reads comma-separated decimal flags (FLAG num).
	FlagNumber
	// FlagUTF8 reads one flag per BMP scalar value (FLAG UTF-8).
	FlagUTF8
)

func (t FlagType) String() string {
	switch t {
	case FlagSingle:
		return "single char"
	case FlagDouble:
		return "double char"
	case FlagNumber:
		return "number"
	case FlagUTF8:
		return "utf8"
	}
	return "unknown"
}

// FlagSet is a sorted, duplicate-free set of flags. The zero value is the
// empty set and ready to use.
type FlagSet struct {
	flags []Flag
}

// NewFlagSet builds a flag set from an arbitrary flag sequence.
func NewFlagSet(flags []Flag) FlagSet {
	fs := FlagSet{flags: append([]Flag(nil), flags...)}
	fs.sortUniq()
	return fs
}

func (fs *FlagSet) sortUniq() {
	f := fs.flags
	sort.Slice(f, func(i, j int) bool { return f[i] < f[j] })
	out := f[:0]
	for i, flag := range f {
		if i == 0 || flag != f[i-1] {
			out = append(out, flag)
		}
	}
	fs.flags = out
}

// Size returns the number of flags in the set.
func (fs FlagSet) Size() int { return len(fs.flags) }

// Empty reports whether the set contains no flags.
func (fs FlagSet) Empty() bool { return len(fs.flags) == 0 }

// Flags exposes the backing sequence, sorted ascending. Callers must not
// modify it.
func (fs FlagSet) Flags() []Flag { return fs.flags }

// Contains reports set membership.
func (fs FlagSet) Contains(f Flag) bool {
	i := sort.Search(len(fs.flags), func(k int) bool { return fs.flags[k] >= f })
	return i < len(fs.flags) && fs.flags[i] == f
}

// ContainsAny reports whether the sets intersect.
func (fs FlagSet) ContainsAny(other FlagSet) bool {
	a, b := fs, other
	if a.Size() > b.Size() {
		a, b = b, a
	}
	for _, f := range a.flags {
		if b.Contains(f) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every flag of other is in the set.
func (fs FlagSet) ContainsAll(other FlagSet) bool {
	for _, f := range other.flags {
		if !fs.Contains(f) {
			return false
		}
	}
	return true
}

// Insert unions other into the set.
func (fs *FlagSet) Insert(other FlagSet) {
	fs.flags = append(fs.flags, other.flags...)
	fs.sortUniq()
}

// Union returns a new set holding the flags of fs plus extra.
func (fs FlagSet) Union(extra ...Flag) FlagSet {
	merged := make([]Flag, 0, len(fs.flags)+len(extra))
	merged = append(merged, fs.flags...)
	merged = append(merged, extra...)
	return NewFlagSet(merged)
}

// Erase removes f and reports whether it was present.
func (fs *FlagSet) Erase(f Flag) bool {
	i := sort.Search(len(fs.flags), func(k int) bool { return fs.flags[k] >= f })
	if i < len(fs.flags) && fs.flags[i] == f {
		fs.flags = append(fs.flags[:i], fs.flags[i+1:]...)
		return true
	}
	return false
}

// Equal reports whether both sets hold an identical flag sequence.
func (fs FlagSet) Equal(other FlagSet) bool {
	if len(fs.flags) != len(other.flags) {
		return false
	}
	for i, f := range fs.flags {
		if other.flags[i] != f {
			return false
		}
	}
	return true
}

func (fs FlagSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range fs.flags {
		if i > 0 {
			sb.WriteByte(',')
		}
		if f >= 0x20 && f < 0x7F {
			sb.WriteByte(byte(f))
		} else {
			sb.WriteString("0x")
			const hex = "0123456789abcdef"
			sb.WriteByte(hex[f>>12])
			sb.WriteByte(hex[(f>>8)&0xF])
			sb.WriteByte(hex[(f>>4)&0xF])
			sb.WriteByte(hex[f&0xF])
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
