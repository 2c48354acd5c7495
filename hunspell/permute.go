// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"strings"

	"github.com/lest-day/gospell/internal/seq"
)

// Splitter supplies fragment boundaries for a compound-like word, which
// splitPositions merges with the plain character-position scan of the
// spaceword and twowords generators. It is satisfied by
// github.com/kortschak/camel's Splitter, which returns the
// camelCase/underscore fragments of an identifier. The position scan
// already yields every internal position, so a Splitter never adds a
// split point the scan lacks. It is optional: a nil Splitter gives the
// plain position scan alone.
type Splitter interface {
	Split(word string) []string
}

// permutations yields every permutation-generator candidate for word, in
// the fixed order given by spec §4.3. None of the generators consult a
// dictionary; filtering against one happens downstream in filterCandidates.
//
// Each generator below returns its (small, bounded) output as a slice
// rather than an incremental iterator: permutation output sizes are
// O(len(word)) or O(len(word)·|alphabet|), which is cheap enough that
// eagerly building them costs nothing, and doing so keeps thirteen
// generators readable. The laziness spec.md's design notes call
// "critical" is about not exhausting every variant/round/fallback stage
// once a limit or a good edit has been found; that short-circuiting
// happens at the seq.Take and orchestrator level, not inside a single
// generator's bounded output.
func permutations(word string, aff *Aff, splitter Splitter) seq.Seq[Candidate] {
	lazy := func(gen func() []Candidate) seq.Seq[Candidate] {
		return seq.Defer(func() seq.Seq[Candidate] { return seq.FromSlice(gen()) })
	}
	return seq.Concat(
		lazy(func() []Candidate { return genUppercase(word, aff) }),
		lazy(func() []Candidate { return genReplChars(word, aff) }),
		lazy(func() []Candidate { return genSpaceword(word, aff, splitter) }),
		lazy(func() []Candidate { return genMapChars(word, aff) }),
		lazy(func() []Candidate { return genSwapChar(word) }),
		lazy(func() []Candidate { return genLongSwapChar(word) }),
		lazy(func() []Candidate { return genBadCharKey(word, aff) }),
		lazy(func() []Candidate { return genExtraChar(word) }),
		lazy(func() []Candidate { return genForgotChar(word, aff) }),
		lazy(func() []Candidate { return genMoveChar(word) }),
		lazy(func() []Candidate { return genBadChar(word, aff) }),
		lazy(func() []Candidate { return genDoubleTwoChars(word) }),
		lazy(func() []Candidate { return genTwoWords(word, aff, splitter) }),
	)
}

// genUppercase is generator 1: the full-upper form of word.
func genUppercase(word string, aff *Aff) []Candidate {
	return []Candidate{Suggestion{text: aff.Casing.Upper(word), kind: KindUppercase}}
}

// genReplChars is generator 2: REP-table substitutions, including the
// split-pair form.
func genReplChars(word string, aff *Aff) []Candidate {
	var out []Candidate
	for _, rule := range aff.REP {
		if rule.Pattern == "" {
			continue
		}
		start := 0
		for {
			idx := strings.Index(word[start:], rule.Pattern)
			if idx < 0 {
				break
			}
			pos := start + idx
			replaced := word[:pos] + rule.Replacement + word[pos+len(rule.Pattern):]
			out = append(out, Suggestion{text: replaced, kind: KindReplChars})
			if rule.isPair() {
				parts := strings.SplitN(rule.Split, " ", 2)
				if len(parts) == 2 {
					out = append(out, NewMultiWordSuggestion(parts, KindReplChars, false))
				}
			}
			start = pos + len(rule.Pattern)
		}
	}
	return out
}

// splitPositions returns the rune-index split points for word: every
// internal position. Boundaries from splitter are merged in without
// duplicates, so they never add to that set.
func splitPositions(runes []rune, word string, splitter Splitter) []int {
	seen := make(map[int]bool, len(runes))
	var out []int
	add := func(p int) {
		if p > 0 && p < len(runes) && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for i := 1; i < len(runes); i++ {
		add(i)
	}
	if splitter != nil {
		frags := splitter.Split(word)
		if len(frags) > 1 {
			pos := 0
			for i, f := range frags {
				pos += len([]rune(f))
				if i < len(frags)-1 {
					add(pos)
				}
			}
		}
	}
	return out
}

// genSpaceword is generator 3: two-word splits, yielded as a
// MultiWordSuggestion so each word is validated on its own rather than as
// one space-containing string (which no dictionary lookup can ever
// match). Unlike genTwoWords, this is never gated by NOSPLITSUGS.
func genSpaceword(word string, aff *Aff, splitter Splitter) []Candidate {
	runes := []rune(word)
	dashes := aff.Dashes()
	var out []Candidate
	for _, p := range splitPositions(runes, word, splitter) {
		words := []string{string(runes[:p]), string(runes[p:])}
		out = append(out, NewMultiWordSuggestion(words, KindSpaceWord, dashes))
	}
	return out
}

// genMapChars is generator 4: MAP-class character substitutions.
func genMapChars(word string, aff *Aff) []Candidate {
	runes := []rune(word)
	var out []Candidate
	for i, r := range runes {
		class, ok := aff.mapClassFor(r)
		if !ok {
			continue
		}
		for _, m := range class {
			if m == r {
				continue
			}
			cp := append([]rune(nil), runes...)
			cp[i] = m
			out = append(out, Suggestion{text: string(cp), kind: KindMapChars})
		}
	}
	return out
}

// genSwapChar is generator 5: adjacent-pair swaps, plus Hunspell's
// four/five-letter corner-swap special cases.
func genSwapChar(word string) []Candidate {
	runes := []rune(word)
	n := len(runes)
	var out []Candidate
	for i := 0; i < n-1; i++ {
		cp := append([]rune(nil), runes...)
		cp[i], cp[i+1] = cp[i+1], cp[i]
		out = append(out, Suggestion{text: string(cp), kind: KindSwapChar})
	}
	if n == 4 || n == 5 {
		cp := append([]rune(nil), runes...)
		cp[0], cp[1] = cp[1], cp[0]
		cp[n-1], cp[n-2] = cp[n-2], cp[n-1]
		out = append(out, Suggestion{text: string(cp), kind: KindSwapChar})
		if n == 5 {
			cp2 := append([]rune(nil), cp...)
			cp2[2], cp2[3] = cp2[3], cp2[2]
			out = append(out, Suggestion{text: string(cp2), kind: KindSwapChar})
		}
	}
	return out
}

// genLongSwapChar is generator 6: swaps of non-adjacent character pairs.
func genLongSwapChar(word string) []Candidate {
	runes := []rune(word)
	n := len(runes)
	var out []Candidate
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			cp := append([]rune(nil), runes...)
			cp[i], cp[j] = cp[j], cp[i]
			out = append(out, Suggestion{text: string(cp), kind: KindLongSwapChar})
		}
	}
	return out
}

// genBadCharKey is generator 7: keyboard-neighbor substitutions, plus a
// per-position case swap.
func genBadCharKey(word string, aff *Aff) []Candidate {
	runes := []rune(word)
	var out []Candidate
	for i, r := range runes {
		for _, n := range aff.KEY.Neighbors(r) {
			cp := append([]rune(nil), runes...)
			cp[i] = n
			out = append(out, Suggestion{text: string(cp), kind: KindBadCharKey})
		}
		swapped := swapRuneCase(r)
		if swapped != r {
			cp := append([]rune(nil), runes...)
			cp[i] = swapped
			out = append(out, Suggestion{text: string(cp), kind: KindBadCharKey})
		}
	}
	return out
}

// genExtraChar is generator 8: single-character deletions.
func genExtraChar(word string) []Candidate {
	runes := []rune(word)
	n := len(runes)
	if n <= 1 {
		return nil
	}
	out := make([]Candidate, 0, n)
	for i := range runes {
		cp := make([]rune, 0, n-1)
		cp = append(cp, runes[:i]...)
		cp = append(cp, runes[i+1:]...)
		out = append(out, Suggestion{text: string(cp), kind: KindExtraChar})
	}
	return out
}

// genForgotChar is generator 9: single-character insertions from TRY.
func genForgotChar(word string, aff *Aff) []Candidate {
	if aff.TRY == "" {
		return nil
	}
	runes := []rune(word)
	alphabet := []rune(aff.TRY)
	var out []Candidate
	for i := 0; i <= len(runes); i++ {
		for _, c := range alphabet {
			cp := make([]rune, 0, len(runes)+1)
			cp = append(cp, runes[:i]...)
			cp = append(cp, c)
			cp = append(cp, runes[i:]...)
			out = append(out, Suggestion{text: string(cp), kind: KindForgotChar})
		}
	}
	return out
}

// genMoveChar is generator 10: moving a character forward or backward by
// 2..N positions.
func genMoveChar(word string) []Candidate {
	runes := []rune(word)
	n := len(runes)
	var out []Candidate
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			out = append(out, Suggestion{text: string(moveRune(runes, i, j)), kind: KindMoveChar})
		}
	}
	for i := n - 1; i >= 0; i-- {
		for j := i - 2; j >= 0; j-- {
			out = append(out, Suggestion{text: string(moveRune(runes, i, j)), kind: KindMoveChar})
		}
	}
	return out
}

// moveRune returns a copy of runes with the character at from relocated
// to position to, shifting the intervening characters to close the gap.
func moveRune(runes []rune, from, to int) []rune {
	cp := append([]rune(nil), runes...)
	c := cp[from]
	if from < to {
		copy(cp[from:to], cp[from+1:to+1])
		cp[to] = c
	} else {
		copy(cp[to+1:from+1], cp[to:from])
		cp[to] = c
	}
	return cp
}

// genBadChar is generator 11: single-character replacement from TRY.
func genBadChar(word string, aff *Aff) []Candidate {
	if aff.TRY == "" {
		return nil
	}
	runes := []rune(word)
	alphabet := []rune(aff.TRY)
	var out []Candidate
	for i, r := range runes {
		for _, c := range alphabet {
			if c == r {
				continue
			}
			cp := append([]rune(nil), runes...)
			cp[i] = c
			out = append(out, Suggestion{text: string(cp), kind: KindBadChar})
		}
	}
	return out
}

// genDoubleTwoChars is generator 12: collapses an immediately repeated
// two-character unit, e.g. "abab" -> "ab".
func genDoubleTwoChars(word string) []Candidate {
	runes := []rune(word)
	var out []Candidate
	for i := 0; i+4 <= len(runes); i++ {
		if runes[i] == runes[i+2] && runes[i+1] == runes[i+3] {
			cp := make([]rune, 0, len(runes)-2)
			cp = append(cp, runes[:i+2]...)
			cp = append(cp, runes[i+4:]...)
			out = append(out, Suggestion{text: string(cp), kind: KindDoubleTwoChars})
		}
	}
	return out
}

// genTwoWords is generator 13: MultiWordSuggestion splits, skipped
// entirely when NOSPLITSUGS is set.
func genTwoWords(word string, aff *Aff, splitter Splitter) []Candidate {
	if aff.NoSplitSugs {
		return nil
	}
	runes := []rune(word)
	dashes := aff.Dashes()
	var out []Candidate
	for _, p := range splitPositions(runes, word, splitter) {
		words := []string{string(runes[:p]), string(runes[p:])}
		out = append(out, NewMultiWordSuggestion(words, KindTwoWords, dashes))
	}
	return out
}

// swapRuneCase returns r with its case inverted, or r unchanged if it has
// no case.
func swapRuneCase(r rune) rune {
	upper := strings.ToUpper(string(r))
	lower := strings.ToLower(string(r))
	switch {
	case upper != string(r):
		ur := []rune(upper)
		return ur[0]
	case lower != string(r):
		lr := []rune(lower)
		return lr[0]
	default:
		return r
	}
}
