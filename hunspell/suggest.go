// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"strings"

	"github.com/lest-day/gospell/internal/seq"
)

// MaxSuggestions is the per-variant edit-round cap (spec §4.1/§6). This is
// Hunspell's own MAX_SUGGESTIONS.
const MaxSuggestions = 15

// MaxPhonetSuggestions is the cap on phonetic-fallback output (spec §4.7).
const MaxPhonetSuggestions = 2

// Engine is the suggestion-generation orchestrator (spec §4.1). It holds no
// per-call state; Suggest is safe to call concurrently from multiple
// goroutines as long as the underlying Aff/Dic are not mutated.
type Engine struct {
	aff       *Aff
	dic       *Dic
	lookup    *Lookup
	ngramPool []Entry
	splitter  Splitter
}

// NewEngine returns an Engine over aff and dic. splitter may be nil.
func NewEngine(aff *Aff, dic *Dic, splitter Splitter) *Engine {
	return &Engine{
		aff:       aff,
		dic:       dic,
		lookup:    NewLookup(aff, dic),
		ngramPool: NgramWords(aff, dic),
		splitter:  splitter,
	}
}

// Suggest returns the ordered, deduplicated suggestions for word (spec
// §4.1). The returned slice is computed eagerly; callers that want to
// short-circuit on the first few results can inline this method's loop
// using seq.Take directly, but for a CLI consumer draining the whole stream
// is the natural call shape.
func (e *Engine) Suggest(word string) []Suggestion {
	var out []Suggestion
	handled := NewHandled()

	captype, variants := e.aff.Casing.Corrections(word)

	if e.aff.ForceUcase && captype == CapNO {
		for _, variant := range e.aff.Casing.Capitalize(word) {
			if e.lookup.Correct(variant, CorrectOpts{Caps: true, AllowNoSuggest: true, AffixForms: true, CompoundForms: true}) {
				if s, ok := handle(word, captype, handled, NewSuggestion(variant, KindForceUcase), false, e.aff, e.dic, e.lookup); ok {
					out = append(out, s)
				}
				return out
			}
		}
	}

	for i, variant := range variants {
		if i != 0 && e.lookup.Correct(variant, CorrectOpts{Caps: false, AllowNoSuggest: true, AffixForms: true, CompoundForms: true}) {
			if s, ok := handle(word, captype, handled, NewSuggestion(variant, KindCase), false, e.aff, e.dic, e.lookup); ok {
				out = append(out, s)
			}
		}

		goodEditsFound := false
		noCompound := false

		seq.ForEach(edits(variant, captype, handled, MaxSuggestions, false, e.aff, e.dic, e.lookup, e.splitter), func(s Suggestion) bool {
			out = append(out, s)
			if goodEdits[s.Kind()] {
				goodEditsFound = true
			}
			if noCompoundKinds[s.Kind()] {
				noCompound = true
			}
			return s.Kind() != KindSpaceWord
		})
		if len(out) != 0 && out[len(out)-1].Kind() == KindSpaceWord {
			return out
		}

		if !noCompound {
			seq.ForEach(edits(word, captype, handled, e.aff.MaxCpdSugs, true, e.aff, e.dic, e.lookup, e.splitter), func(s Suggestion) bool {
				out = append(out, s)
				if goodEdits[s.Kind()] {
					goodEditsFound = true
				}
				return true
			})
		}

		if goodEditsFound {
			return out
		}

		if dashed := e.dashRecursion(word, captype, handled); dashed != nil {
			out = append(out, *dashed)
		}
	}

	out = append(out, e.fallback(word, handled)...)
	return out
}

// dashRecursion implements spec §4.1 step 3e: split word on '-', recurse
// into any chunk that doesn't spell-check, and emit the joined repair.
func (e *Engine) dashRecursion(word string, captype CapType, handled *Handled) *Suggestion {
	if !strings.Contains(word, "-") || handled.ContainsDash() {
		return nil
	}
	chunks := strings.Split(word, "-")
	changed := false
	for i, chunk := range chunks {
		if e.lookup.Check(chunk) {
			continue
		}
		sub := e.Suggest(chunk)
		if len(sub) == 0 {
			continue
		}
		chunks[i] = sub[0].Text()
		changed = true
	}
	if !changed {
		return nil
	}
	joined := strings.Join(chunks, "-")
	if !e.lookup.Check(joined) {
		return nil
	}
	if s, ok := handle(word, captype, handled, NewSuggestion(joined, KindDashes), false, e.aff, e.dic, e.lookup); ok {
		return &s
	}
	return nil
}

// fallback implements spec §4.1 step 3f: the n-gram and phonetic scan,
// run once the edit-round variants have all been exhausted without a good
// edit.
func (e *Engine) fallback(word string, handled *Handled) []Suggestion {
	if e.aff.MaxNgramSugs <= 0 && len(e.aff.PHONE) == 0 {
		return nil
	}

	lowerHandled := make(map[string]bool, len(handled.set))
	for t := range handled.set {
		lowerHandled[strings.ToLower(t)] = true
	}

	var ngram *NgramBuilder
	if e.aff.MaxNgramSugs > 0 {
		ngram = NewNgramBuilder(word, e.aff, lowerHandled)
	}
	var phonet *PhonetBuilder
	if len(e.aff.PHONE) != 0 {
		phonet = NewPhonetBuilder(word, e.aff)
	}

	for _, entry := range e.ngramPool {
		if ngram != nil {
			ngram.Step(entry)
		}
		if phonet != nil {
			phonet.Step(entry)
		}
	}

	var out []Suggestion
	if ngram != nil {
		for _, text := range firstN(ngram.Finish(), e.aff.MaxNgramSugs) {
			if s, ok := handle(word, CapNO, handled, NewSuggestion(text, KindNgram), true, e.aff, e.dic, e.lookup); ok {
				out = append(out, s)
			}
		}
	}
	if phonet != nil {
		for _, text := range firstN(phonet.Finish(), MaxPhonetSuggestions) {
			if s, ok := handle(word, CapNO, handled, NewSuggestion(text, KindPhonet), false, e.aff, e.dic, e.lookup); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func firstN(xs []string, n int) []string {
	if n < 0 || n > len(xs) {
		return xs
	}
	return xs[:n]
}
