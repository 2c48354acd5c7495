// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

// FlagSet is a set of affix/behavior flags attached to a dictionary entry.
type FlagSet map[rune]bool

// NewFlagSet returns a FlagSet containing the given flags.
func NewFlagSet(flags ...rune) FlagSet {
	fs := make(FlagSet, len(flags))
	for _, f := range flags {
		if f != 0 {
			fs[f] = true
		}
	}
	return fs
}

// Has reports whether fs contains flag. The zero rune is never present,
// so callers can pass an unset FlagConfig field without a nil check.
func (fs FlagSet) Has(flag rune) bool {
	if flag == 0 {
		return false
	}
	return fs[flag]
}

// Entry is one dictionary stem and the flags attached to it.
type Entry struct {
	Word  string
	Flags FlagSet
}

// Dic is the dictionary-store contract the suggestion engine is built
// against (spec §6): an iterable word list plus a flag-membership test.
// Parsing a real Hunspell .dic file is out of scope for this package;
// callers populate a Dic directly (see NewDic) or decode one from a
// dictionary profile (see LoadProfile).
type Dic struct {
	entries []Entry
	byWord  map[string][]int
}

// NewDic returns a Dic over the given entries.
func NewDic(entries []Entry) *Dic {
	d := &Dic{
		entries: entries,
		byWord:  make(map[string][]int, len(entries)),
	}
	for i, e := range entries {
		d.byWord[e.Word] = append(d.byWord[e.Word], i)
	}
	return d
}

// Words returns every entry in the dictionary, in load order.
func (d *Dic) Words() []Entry { return d.entries }

// Add appends e to the dictionary, indexing it for Lookup. Dictionaries
// built by the suggestion engine proper treat Dic as read-only (spec §5),
// but a Spell wrapping one for interactive use (e.g. recording identifiers
// found while scanning source) needs to grow its word list at run time.
func (d *Dic) Add(e Entry) {
	d.byWord[e.Word] = append(d.byWord[e.Word], len(d.entries))
	d.entries = append(d.entries, e)
}

// Lookup returns the entries stored under the exact spelling word.
func (d *Dic) Lookup(word string) []Entry {
	idx := d.byWord[word]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = d.entries[j]
	}
	return out
}

// HasFlag reports whether any stored entry for word carries flag.
func (d *Dic) HasFlag(word string, flag rune) bool {
	for _, e := range d.Lookup(word) {
		if e.Flags.Has(flag) {
			return true
		}
	}
	return false
}

// badFlags, for a given Aff, is the set of flags that exclude a word from
// the n-gram candidate pool (spec §3's NgramWords set): FORBIDDENWORD,
// NOSUGGEST and ONLYINCOMPOUND.
func badFlags(aff *Aff) []rune {
	return []rune{aff.Flags.ForbiddenWord, aff.Flags.NoSuggest, aff.Flags.OnlyInCompound}
}

// NgramWords returns the subset of d whose flag set is disjoint from aff's
// bad-flag set. It is computed once and is safe to cache for the life of
// an engine built over d and aff.
func NgramWords(aff *Aff, d *Dic) []Entry {
	bad := badFlags(aff)
	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		excluded := false
		for _, f := range bad {
			if e.Flags.Has(f) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, e)
		}
	}
	return out
}
