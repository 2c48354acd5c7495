// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"strings"
	"unicode"
)

// Handled is the set of final candidate texts already emitted in the
// current top-level suggestion call (spec §3). It is monotone: once a
// text is added it is never removed.
type Handled struct {
	set map[string]bool
}

// NewHandled returns an empty Handled set.
func NewHandled() *Handled {
	return &Handled{set: make(map[string]bool)}
}

// Contains reports whether text has already been added.
func (h *Handled) Contains(text string) bool { return h.set[text] }

// Add records text as handled.
func (h *Handled) Add(text string) { h.set[text] = true }

// ContainsDash reports whether any handled text contains a dash. Dash
// recursion checks this before splitting and is skipped once any handled
// text contains a dash (spec §4.1 step 3e).
func (h *Handled) ContainsDash() bool {
	for t := range h.set {
		if strings.ContainsRune(t, '-') {
			return true
		}
	}
	return false
}

// ContainsSubstringOf reports whether any previously-added text, compared
// lowercased, is a substring of the lowercased form of text. This
// suppresses n-gram candidates that merely extend a form already
// suggested.
func (h *Handled) ContainsSubstringOf(text string) bool {
	lower := strings.ToLower(text)
	for t := range h.set {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// handle normalizes and deduplicates a single filtered suggestion (spec
// §4.5). It returns the (possibly rewritten) suggestion and whether it
// should be emitted.
func handle(word string, captype CapType, handled *Handled, s Suggestion, checkInclusion bool, aff *Aff, dic *Dic, lookup *Lookup) (Suggestion, bool) {
	text := s.Text()

	if !dic.HasFlag(text, aff.Flags.KeepCase) || aff.IsSharps(text) {
		coerced := aff.Casing.Coerce(text, captype)
		if coerced != text && !lookup.IsForbidden(coerced) {
			text = coerced
		}
		if captype == CapHUH || captype == CapHUHINIT {
			text = spliceHuhCase(word, text)
		}
	}

	if lookup.IsForbidden(text) {
		return Suggestion{}, false
	}

	if len(aff.OCONV) != 0 {
		text = aff.OCONV.Match(text)
	}

	if handled.Contains(text) {
		return Suggestion{}, false
	}

	if checkInclusion && handled.ContainsSubstringOf(text) {
		return Suggestion{}, false
	}

	handled.Add(text)
	return s.WithText(text), true
}

// spliceHuhCase implements the HUH/HUHINIT case-fix described in spec
// §4.5 step 2c: it restores the original word's casing for the character
// immediately following the first space in text, when that character's
// case looks like it was lost by the split. Behavior for text with more
// than one space is unspecified by the source and is deliberately not
// generalized here: only the first space is considered (spec §9).
func spliceHuhCase(word, text string) string {
	wr := []rune(word)
	tr := []rune(text)
	p := runeIndexOf(tr, ' ')
	if p < 0 || p+1 >= len(tr) || p >= len(wr) {
		return text
	}
	if tr[p+1] == wr[p] || unicode.ToUpper(tr[p+1]) != wr[p] {
		return text
	}
	out := append([]rune(nil), tr[:p+1]...)
	out = append(out, wr[p])
	out = append(out, tr[p+2:]...)
	return string(out)
}

func runeIndexOf(rs []rune, target rune) int {
	for i, r := range rs {
		if r == target {
			return i
		}
	}
	return -1
}
