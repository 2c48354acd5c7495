// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "strings"

// CorrectOpts controls which forms of a word Lookup.Correct will accept,
// per spec §6.
type CorrectOpts struct {
	// Caps additionally accepts the lowercased form of the query.
	Caps bool
	// AllowNoSuggest accepts stems flagged NOSUGGEST. Edit and compound
	// rounds leave this false so that such stems are never offered as
	// suggestions even though they spell-check as correct.
	AllowNoSuggest bool
	// AffixForms accepts word as a dictionary stem plus a recognized
	// prefix/suffix.
	AffixForms bool
	// CompoundForms accepts word as the concatenation of two or more
	// dictionary stems.
	CompoundForms bool
}

// Lookup is the correctness-oracle contract the suggestion engine is
// built against (spec §6): it answers whether a candidate is a real word
// under the dictionary's affix and compounding rules, and whether a word
// is explicitly forbidden. The full Hunspell condition/affix grammar is
// out of scope; Lookup implements prefix/suffix concatenation and
// compound-stem concatenation, which is sufficient to drive every
// invariant and scenario in spec §8.
type Lookup struct {
	aff *Aff
	dic *Dic
}

// NewLookup returns a Lookup over aff and dic.
func NewLookup(aff *Aff, dic *Dic) *Lookup {
	return &Lookup{aff: aff, dic: dic}
}

// Correct reports whether word is accepted under opts.
func (l *Lookup) Correct(word string, opts CorrectOpts) bool {
	if word == "" {
		return false
	}
	if l.matches(word, opts) {
		return true
	}
	if opts.Caps {
		if lower := strings.ToLower(word); lower != word && l.matches(lower, opts) {
			return true
		}
	}
	return false
}

// Check performs a plain spell check: word is correct if it is a stem, an
// affixed form, or a compound, and is not forbidden.
func (l *Lookup) Check(word string) bool {
	if l.IsForbidden(word) {
		return false
	}
	return l.Correct(word, CorrectOpts{
		Caps:           true,
		AllowNoSuggest: true,
		AffixForms:     true,
		CompoundForms:  true,
	})
}

// IsForbidden reports whether text is an exact-spelling dictionary entry
// carrying the FORBIDDENWORD flag.
func (l *Lookup) IsForbidden(text string) bool {
	return l.dic.HasFlag(text, l.aff.Flags.ForbiddenWord)
}

func (l *Lookup) matches(word string, opts CorrectOpts) bool {
	if entries := l.dic.Lookup(word); len(entries) != 0 {
		for _, e := range entries {
			if e.Flags.Has(l.aff.Flags.OnlyInCompound) {
				continue
			}
			if !opts.AllowNoSuggest && e.Flags.Has(l.aff.Flags.NoSuggest) {
				continue
			}
			return true
		}
	}
	if opts.AffixForms && l.affixMatch(word) {
		return true
	}
	if opts.CompoundForms && l.compoundMatch(word) {
		return true
	}
	return false
}

// affixMatch reports whether word is a dictionary stem with a recognized
// prefix and/or suffix applied.
func (l *Lookup) affixMatch(word string) bool {
	for _, sfx := range l.aff.SFX {
		stems, ok := sfx.strip(word)
		if !ok {
			continue
		}
		for _, stem := range stems {
			if l.isStemFor(stem, sfx.Flag) {
				return true
			}
			if sfx.CrossProduct {
				for _, pfx := range l.aff.PFX {
					if !pfx.CrossProduct {
						continue
					}
					pstems, ok := pfx.strip(stem)
					if !ok {
						continue
					}
					for _, pstem := range pstems {
						if l.isStemWithFlags(pstem, pfx.Flag, sfx.Flag) {
							return true
						}
					}
				}
			}
		}
	}
	for _, pfx := range l.aff.PFX {
		stems, ok := pfx.strip(word)
		if !ok {
			continue
		}
		for _, stem := range stems {
			if l.isStemFor(stem, pfx.Flag) {
				return true
			}
		}
	}
	return false
}

// isStemFor reports whether stem is a dictionary entry authorizing the
// given affix flag.
func (l *Lookup) isStemFor(stem string, flag rune) bool {
	for _, e := range l.dic.Lookup(stem) {
		if e.Flags.Has(flag) {
			return true
		}
	}
	return false
}

// isStemWithFlags reports whether stem is a dictionary entry authorizing
// both flags (used for cross-product prefix+suffix combinations).
func (l *Lookup) isStemWithFlags(stem string, a, b rune) bool {
	for _, e := range l.dic.Lookup(stem) {
		if e.Flags.Has(a) && e.Flags.Has(b) {
			return true
		}
	}
	return false
}

// compoundMatch reports whether word can be split into two or more
// dictionary stems, recursively.
func (l *Lookup) compoundMatch(word string) bool {
	return l.compoundSplit(word, 0)
}

func (l *Lookup) compoundSplit(word string, parts int) bool {
	if word == "" {
		return parts >= 2
	}
	runes := []rune(word)
	for i := 1; i <= len(runes); i++ {
		head := string(runes[:i])
		if len(l.dic.Lookup(head)) == 0 {
			continue
		}
		if l.compoundSplit(string(runes[i:]), parts+1) {
			return true
		}
	}
	return false
}
