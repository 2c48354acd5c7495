// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hunspell implements a Hunspell-compatible suggestion engine: the
// part of a spell checker that, given a misspelled word, produces an
// ordered stream of candidate corrections. It is driven by an affix table
// (Aff), a word list (Dic) and a correctness oracle (Lookup), all of which
// this package also defines in simplified form so that the engine can be
// exercised without a full Hunspell .aff/.dic file-format parser.
package hunspell

import "strings"

// Kind identifies which generator produced a Suggestion or
// MultiWordSuggestion.
type Kind string

// The fixed set of suggestion kinds, one per generator or orchestrator
// stage that can emit a candidate.
const (
	KindUppercase      Kind = "uppercase"
	KindReplChars      Kind = "replchars"
	KindMapChars       Kind = "mapchars"
	KindSwapChar       Kind = "swapchar"
	KindLongSwapChar   Kind = "longswapchar"
	KindBadCharKey     Kind = "badcharkey"
	KindExtraChar      Kind = "extrachar"
	KindForgotChar     Kind = "forgotchar"
	KindMoveChar       Kind = "movechar"
	KindBadChar        Kind = "badchar"
	KindDoubleTwoChars Kind = "doubletwochars"
	KindSpaceWord      Kind = "spaceword"
	KindTwoWords       Kind = "twowords"
	KindDashes         Kind = "dashes"
	KindCase           Kind = "case"
	KindForceUcase     Kind = "forceucase"
	KindNgram          Kind = "ngram"
	KindPhonet         Kind = "phonet"
)

// goodEdits is the set of kinds strong enough that no further, weaker
// variants should be explored once one has been emitted.
var goodEdits = map[Kind]bool{
	KindReplChars: true,
	KindMapChars:  true,
}

// noCompoundKinds is the set of kinds that, once seen, suppress the
// compound-edit round for the current variant.
var noCompoundKinds = map[Kind]bool{
	KindUppercase: true,
	KindReplChars: true,
	KindMapChars:  true,
}

// Candidate is implemented by Suggestion and MultiWordSuggestion: anything
// a permutation generator can yield.
type Candidate interface {
	Kind() Kind
}

// Suggestion is a single candidate correction together with the kind of
// generator that produced it.
type Suggestion struct {
	text string
	kind Kind
}

// NewSuggestion returns a Suggestion with the given text and kind.
func NewSuggestion(text string, kind Kind) Suggestion {
	return Suggestion{text: text, kind: kind}
}

// Text returns the candidate text.
func (s Suggestion) Text() string { return s.text }

// Kind returns the generator kind that produced s.
func (s Suggestion) Kind() Kind { return s.kind }

// WithText returns a copy of s with its text replaced, preserving kind.
func (s Suggestion) WithText(text string) Suggestion {
	return Suggestion{text: text, kind: s.kind}
}

// MultiWordSuggestion is an ordered sequence of tokens produced by a
// word-split generator.
type MultiWordSuggestion struct {
	words     []string
	kind      Kind
	allowDash bool
}

// NewMultiWordSuggestion returns a MultiWordSuggestion over the given
// tokens.
func NewMultiWordSuggestion(words []string, kind Kind, allowDash bool) MultiWordSuggestion {
	cp := make([]string, len(words))
	copy(cp, words)
	return MultiWordSuggestion{words: cp, kind: kind, allowDash: allowDash}
}

// Words returns the suggestion's tokens.
func (m MultiWordSuggestion) Words() []string { return m.words }

// Kind returns the generator kind that produced m.
func (m MultiWordSuggestion) Kind() Kind { return m.kind }

// AllowDash reports whether the dash-joined stringification is also
// acceptable for m.
func (m MultiWordSuggestion) AllowDash() bool { return m.allowDash }

// String joins the tokens with a space.
func (m MultiWordSuggestion) String() string { return strings.Join(m.words, " ") }

// DashString joins the tokens with a dash. Callers should check AllowDash
// before using this form.
func (m MultiWordSuggestion) DashString() string { return strings.Join(m.words, "-") }

// CapType classifies the caseness of a word.
type CapType int

const (
	// CapNO is all-lowercase.
	CapNO CapType = iota
	// CapINIT is an initial capital followed by lowercase.
	CapINIT
	// CapALL is all-uppercase.
	CapALL
	// CapHUH is irregular mixed case.
	CapHUH
	// CapHUHINIT is CapHUH with an initial capital.
	CapHUHINIT
)

// String returns the name of c.
func (c CapType) String() string {
	switch c {
	case CapNO:
		return "NO"
	case CapINIT:
		return "INIT"
	case CapALL:
		return "ALL"
	case CapHUH:
		return "HUH"
	case CapHUHINIT:
		return "HUHINIT"
	default:
		return "unknown"
	}
}
