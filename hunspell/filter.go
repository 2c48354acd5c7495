// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "github.com/lest-day/gospell/internal/seq"

// filterCandidates validates each candidate against lookup (spec §4.4)
// and yields the accepted ones as Suggestions, in order. A
// MultiWordSuggestion that passes expands into its space-joined form,
// and additionally its dash-joined form when AllowDash is set.
func filterCandidates(cands seq.Seq[Candidate], lookup *Lookup, compounds bool) seq.Seq[Suggestion] {
	opts := CorrectOpts{
		Caps:           false,
		AllowNoSuggest: false,
		AffixForms:     !compounds,
		CompoundForms:  compounds,
	}
	var pending []Suggestion
	return func() (Suggestion, bool) {
		for {
			if len(pending) != 0 {
				s := pending[0]
				pending = pending[1:]
				return s, true
			}
			c, ok := cands()
			if !ok {
				return Suggestion{}, false
			}
			switch v := c.(type) {
			case Suggestion:
				if lookup.Correct(v.Text(), opts) {
					return v, true
				}
			case MultiWordSuggestion:
				if allWordsCorrect(v.Words(), lookup, opts) {
					pending = append(pending, Suggestion{text: v.String(), kind: v.Kind()})
					if v.AllowDash() {
						pending = append(pending, Suggestion{text: v.DashString(), kind: v.Kind()})
					}
				}
			}
		}
	}
}

func allWordsCorrect(words []string, lookup *Lookup, opts CorrectOpts) bool {
	for _, w := range words {
		if !lookup.Correct(w, opts) {
			return false
		}
	}
	return true
}

// edits implements spec §4.2: take(limit) of handle ∘ filter(compounds) ∘
// permutations(w). Filtering happens against the dictionary before
// normalization, exactly as spec.md requires.
func edits(w string, captype CapType, handled *Handled, limit int, compounds bool, aff *Aff, dic *Dic, lookup *Lookup, splitter Splitter) seq.Seq[Suggestion] {
	cands := permutations(w, aff, splitter)
	filtered := filterCandidates(cands, lookup, compounds)
	handledSeq := seq.FilterMap(filtered, func(s Suggestion) (Suggestion, bool) {
		return handle(w, captype, handled, s, false, aff, dic, lookup)
	})
	return seq.Take(handledSeq, limit)
}
