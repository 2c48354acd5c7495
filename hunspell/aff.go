// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "strings"

// FlagConfig names which rune represents each of the flags the suggestion
// engine consults. A zero value for a field means "unused": no dictionary
// entry carries that flag.
type FlagConfig struct {
	ForbiddenWord  rune
	NoSuggest      rune
	OnlyInCompound rune
	KeepCase       rune
	CompoundFlag   rune
}

// Aff is the affix-table contract the suggestion engine is built against
// (spec §6). It carries the tables and knobs a real Hunspell .aff file
// would supply; parsing that file format is out of scope for this
// package, so callers populate an Aff directly (see NewAff) or decode one
// from a dictionary profile (see LoadProfile).
type Aff struct {
	Flags FlagConfig

	REP   []RepRule
	MAP   []MapClass
	KEY   KeyLayout
	TRY   string
	PHONE []PhoneRule
	PFX   map[rune]AffixTable
	SFX   map[rune]AffixTable
	OCONV Oconv

	MaxCpdSugs   int
	MaxNgramSugs int
	MaxDiff      int
	OnlyMaxDiff  bool
	NoSplitSugs  bool
	ForceUcase   bool

	Casing Casing

	// Classes names an affix flag by the short label a profile gives it
	// (e.g. "item" for a noun-pluralization SFX class), so callers adding
	// words at run time can request an affix class without knowing its
	// underlying flag rune.
	Classes map[string]rune
}

// NewAff returns an Aff with its maps initialized and sane defaults for
// the numeric knobs (MAXCPDSUGS=3, MAXNGRAMSUGS=4, MAX_SUGGESTIONS-scale
// defaults matching Hunspell's own).
func NewAff() *Aff {
	return &Aff{
		PFX:          make(map[rune]AffixTable),
		SFX:          make(map[rune]AffixTable),
		Classes:      make(map[string]rune),
		MaxCpdSugs:   3,
		MaxNgramSugs: 4,
		MaxDiff:      5,
	}
}

// Dashes reports whether the TRY alphabet contains '-' or 'a'. This is
// "dumb but how Hunspell does it" (spec §9's open question) and is
// preserved verbatim: it is not a considered heuristic, just the upstream
// behavior this engine must match.
func (a *Aff) Dashes() bool {
	return strings.ContainsRune(a.TRY, '-') || strings.ContainsRune(a.TRY, 'a')
}

// IsSharps reports whether text contains the German sharp-s special case,
// which needs its own case-coercion handling because ß has no single-rune
// uppercase form in the classic casing rules Hunspell follows.
func (a *Aff) IsSharps(text string) bool {
	return strings.ContainsRune(text, 'ß')
}

// mapClassFor returns the MAP class containing r, if any.
func (a *Aff) mapClassFor(r rune) (MapClass, bool) {
	for _, c := range a.MAP {
		for _, m := range c {
			if m == r {
				return c, true
			}
		}
	}
	return nil, false
}
