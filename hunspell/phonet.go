// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"sort"
	"strings"
)

// PhonetBuilder scans the n-gram word pool and scores each entry by
// combining phonetic-form similarity (via the PHONE replacement table)
// with orthographic similarity (spec §4.7).
type PhonetBuilder struct {
	word       string
	phoneWord  string
	rules      []PhoneRule
	top        []scored
	maxK       int
}

// NewPhonetBuilder returns a builder comparing dictionary entries against
// word using aff's PHONE table. PHONE patterns are matched against the
// uppercased word, following the PHONE table's own uppercase convention;
// the orthographic half of the score still compares lowercase forms.
func NewPhonetBuilder(word string, aff *Aff) *PhonetBuilder {
	rules := make([]PhoneRule, len(aff.PHONE))
	copy(rules, aff.PHONE)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority && !rules[j].Priority })

	lower := strings.ToLower(word)
	return &PhonetBuilder{
		word:      lower,
		phoneWord: phoneticTransform(strings.ToUpper(word), rules),
		rules:     rules,
		maxK:      100,
	}
}

// Step scores one dictionary entry and folds it into the builder's
// bounded top-K set.
func (b *PhonetBuilder) Step(e Entry) {
	lower := strings.ToLower(e.Word)
	phone := phoneticTransform(strings.ToUpper(e.Word), b.rules)
	score := 2*ngramScore(b.phoneWord, phone) + ngramScore(b.word, lower)
	b.top = append(b.top, scored{e.Word, score})
	sort.SliceStable(b.top, func(i, j int) bool { return b.top[i].score > b.top[j].score })
	if len(b.top) > b.maxK {
		b.top = b.top[:b.maxK]
	}
}

// Finish returns the scanned candidates ordered by descending score.
func (b *PhonetBuilder) Finish() []string {
	out := make([]string, len(b.top))
	for i, c := range b.top {
		out[i] = c.text
	}
	return out
}

// phoneticTransform applies rules, in order, to word: at each position
// the first matching rule (checking '^'/'$'-anchored rules against word
// start/end) consumes its match and emits its replacement ("_" means
// delete with no replacement); an unmatched rune is copied through
// unchanged.
func phoneticTransform(word string, rules []PhoneRule) string {
	if len(rules) == 0 {
		return word
	}
	src := []rune(word)
	var out []rune
	for i := 0; i < len(src); {
		matched := false
		for _, r := range rules {
			core, anchorStart, anchorEnd := parsePhonePattern(r.Search)
			cr := []rune(core)
			if len(cr) == 0 {
				continue
			}
			if anchorStart && i != 0 {
				continue
			}
			if i+len(cr) > len(src) {
				continue
			}
			if string(src[i:i+len(cr)]) != core {
				continue
			}
			if anchorEnd && i+len(cr) != len(src) {
				continue
			}
			if r.Replace != "_" {
				out = append(out, []rune(r.Replace)...)
			}
			i += len(cr)
			matched = true
			break
		}
		if !matched {
			out = append(out, src[i])
			i++
		}
	}
	return string(out)
}

func parsePhonePattern(pattern string) (core string, anchorStart, anchorEnd bool) {
	core = pattern
	if strings.HasPrefix(core, "^") {
		anchorStart = true
		core = core[1:]
	}
	if strings.HasSuffix(core, "$") {
		anchorEnd = true
		core = core[:len(core)-1]
	}
	return core, anchorStart, anchorEnd
}
