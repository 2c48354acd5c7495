// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "strings"

// RepRule is one REP-table rewrite rule: a common-typo substitution. When
// Split is non-empty, the rule is a "pair" rule: it offers both a
// single-word replacement and a two-word split (e.g. "alot" -> "a lot").
type RepRule struct {
	Pattern     string
	Replacement string
	Split       string
}

// isPair reports whether r should also be offered as a two-word split.
func (r RepRule) isPair() bool { return r.Split != "" }

// MapClass is a set of characters that Hunspell considers interchangeable
// for suggestion purposes, e.g. {a, á, à}.
type MapClass []rune

// KeyLayout is a keyboard adjacency table: each element is one row of
// physically-adjacent keys, used to model fat-finger substitutions.
type KeyLayout []string

// Neighbors returns the keys adjacent to r in any row of k.
func (k KeyLayout) Neighbors(r rune) []rune {
	var out []rune
	for _, row := range k {
		runes := []rune(row)
		for i, c := range runes {
			if c != r {
				continue
			}
			if i > 0 {
				out = append(out, runes[i-1])
			}
			if i < len(runes)-1 {
				out = append(out, runes[i+1])
			}
		}
	}
	return out
}

// PhoneRule is one entry of a PHONE replacement table, used to build a
// Hunspell-style phonetic transform of a word.
type PhoneRule struct {
	// Search is the literal substring to match. A leading '^' anchors
	// the match to the start of the word and a trailing
	// '$' anchors it to the end.
	Search string
	// Replace is substituted for the match. "_" means delete the
	// match with no replacement.
	Replace string
	// Priority, when true, means this rule is tried before rules
	// appearing later in the table at the same position.
	Priority bool
}

// Oconv is an ordered list of output-conversion rewrite rules, applied in
// order to a final suggestion text before it is emitted.
type Oconv []OconvRule

// OconvRule is one OCONV rewrite rule.
type OconvRule struct {
	Pattern     string
	Replacement string
}

// Match applies every rule in o, in order, to s and returns the result.
func (o Oconv) Match(s string) string {
	for _, r := range o {
		s = strings.ReplaceAll(s, r.Pattern, r.Replacement)
	}
	return s
}

// AffixRule is one prefix or suffix rule: stems ending (for a suffix) or
// starting (for a prefix) with Cond have Strip removed and Add appended
// (prefixed, for a prefix rule) to produce a surface form.
type AffixRule struct {
	Strip string
	Add   string
	Cond  string
}

// AffixTable is the set of rules sharing a single affix flag.
type AffixTable struct {
	Flag         rune
	CrossProduct bool
	Prefix       bool
	Rules        []AffixRule
}

// apply returns the surface forms obtainable from stem by this table's
// rules, and true if any rule applied.
func (t AffixTable) apply(stem string) ([]string, bool) {
	var out []string
	for _, r := range t.Rules {
		if t.Prefix {
			if !strings.HasPrefix(stem, r.Cond) {
				continue
			}
			base := strings.TrimPrefix(stem, r.Strip)
			if r.Strip != "" && base == stem {
				continue
			}
			out = append(out, r.Add+base)
		} else {
			if !strings.HasSuffix(stem, r.Cond) {
				continue
			}
			base := strings.TrimSuffix(stem, r.Strip)
			if r.Strip != "" && base == stem {
				continue
			}
			out = append(out, base+r.Add)
		}
	}
	return out, len(out) != 0
}

// strip returns the possible stems that would produce surface if this
// table's rules were applied, and true if any rule could.
func (t AffixTable) strip(surface string) ([]string, bool) {
	var out []string
	for _, r := range t.Rules {
		if t.Prefix {
			if !strings.HasPrefix(surface, r.Add) {
				continue
			}
			stem := r.Strip + strings.TrimPrefix(surface, r.Add)
			if !strings.HasPrefix(stem, r.Cond) {
				continue
			}
			out = append(out, stem)
		} else {
			if !strings.HasSuffix(surface, r.Add) {
				continue
			}
			stem := strings.TrimSuffix(surface, r.Add) + r.Strip
			if !strings.HasSuffix(stem, r.Cond) {
				continue
			}
			out = append(out, stem)
		}
	}
	return out, len(out) != 0
}
