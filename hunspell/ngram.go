// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"sort"
	"strings"
)

// scored is one candidate text and its similarity score, shared by the
// n-gram and phonetic builders' bounded top-K heaps.
type scored struct {
	text  string
	score int
}

// NgramBuilder scans the n-gram word pool and scores each entry against
// a fixed target word (spec §4.6).
type NgramBuilder struct {
	target  string
	aff     *Aff
	handled map[string]bool

	cache map[string][]string
	top   []scored
	maxK  int
}

// NewNgramBuilder returns a builder that will score dictionary entries
// against target. handled is the lowercased set of texts already emitted
// in the current suggestion call; entries whose lowercased root is in it
// are skipped entirely, per spec §4.6.
func NewNgramBuilder(target string, aff *Aff, handled map[string]bool) *NgramBuilder {
	return &NgramBuilder{
		target:  strings.ToLower(target),
		aff:     aff,
		handled: handled,
		cache:   make(map[string][]string),
		maxK:    100,
	}
}

// Step scores one dictionary entry and folds it into the builder's
// bounded top-K set.
func (b *NgramBuilder) Step(e Entry) {
	lowerStem := strings.ToLower(e.Word)
	if b.handled[lowerStem] {
		return
	}
	bestText := e.Word
	best := ngramScore(b.target, lowerStem)
	for _, surface := range b.surfaceForms(e) {
		if sc := ngramScore(b.target, strings.ToLower(surface)); sc > best {
			best = sc
			bestText = surface
		}
	}
	b.insert(bestText, best)
}

// surfaceForms returns the PFX/SFX-expanded surface forms of e, caching
// the result by stem for the life of this builder (spec §4.6/§9: "a
// potential hot spot").
func (b *NgramBuilder) surfaceForms(e Entry) []string {
	if cached, ok := b.cache[e.Word]; ok {
		return cached
	}
	var out []string
	for flag := range e.Flags {
		if t, ok := b.aff.SFX[flag]; ok {
			if forms, ok := t.apply(e.Word); ok {
				out = append(out, forms...)
			}
		}
		if t, ok := b.aff.PFX[flag]; ok {
			if forms, ok := t.apply(e.Word); ok {
				out = append(out, forms...)
			}
		}
	}
	b.cache[e.Word] = out
	return out
}

func (b *NgramBuilder) insert(text string, score int) {
	b.top = append(b.top, scored{text, score})
	sort.SliceStable(b.top, func(i, j int) bool { return b.top[i].score > b.top[j].score })
	if len(b.top) > b.maxK {
		b.top = b.top[:b.maxK]
	}
}

// Finish returns the scanned candidates ordered by descending score. If
// ONLYMAXDIFF is set on the affix table, candidates whose score trails
// the best by more than MAXDIFF are pruned; otherwise MAXDIFF has no
// effect here and cutoff is left to the caller's take(MAXNGRAMSUGS).
func (b *NgramBuilder) Finish() []string {
	if len(b.top) == 0 {
		return nil
	}
	best := b.top[0].score
	out := make([]string, 0, len(b.top))
	for _, c := range b.top {
		if b.aff.OnlyMaxDiff && best-c.score > b.aff.MaxDiff {
			continue
		}
		out = append(out, c.text)
	}
	return out
}
