// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

// Spell is the convenience wrapper a consumer embeds to get a single
// check/suggest/grow surface over an Aff, a Dic and the suggestion Engine,
// in the shape callers like a source-spelling checker want: IsCorrect to
// test a word, Suggest to repair one, and Add/AddWithAffix to grow the
// dictionary with words discovered at run time (identifiers, author names,
// license text). Unlike Engine, Spell is not safe for concurrent use while
// Add or AddWithAffix may be called, since growing the dictionary rebuilds
// the engine's n-gram pool.
type Spell struct {
	aff    *Aff
	dic    *Dic
	lookup *Lookup
	engine *Engine

	splitter Splitter
}

// NewSpell returns a Spell over aff and dic. splitter may be nil.
func NewSpell(aff *Aff, dic *Dic, splitter Splitter) *Spell {
	s := &Spell{aff: aff, dic: dic, splitter: splitter}
	s.rebuild()
	return s
}

func (s *Spell) rebuild() {
	s.lookup = NewLookup(s.aff, s.dic)
	s.engine = NewEngine(s.aff, s.dic, s.splitter)
}

// IsCorrect reports whether word spell-checks against the dictionary.
func (s *Spell) IsCorrect(word string) bool {
	return s.lookup.Check(word)
}

// Suggest returns the ordered suggestion texts for word.
func (s *Spell) Suggest(word string) []string {
	sugs := s.engine.Suggest(word)
	out := make([]string, len(sugs))
	for i, sg := range sugs {
		out[i] = sg.Text()
	}
	return out
}

// Add adds word to the dictionary as a bare stem with no affix class, and
// reports whether it was added. It always succeeds unless word is empty.
func (s *Spell) Add(word string) bool {
	if word == "" {
		return false
	}
	s.dic.Add(Entry{Word: word})
	s.rebuild()
	return true
}

// AddWithAffix adds word to the dictionary carrying the named affix class's
// flag, so the class's PFX/SFX rules also spell-check word's affixed forms.
// It reports false if class is not one of aff.Classes.
func (s *Spell) AddWithAffix(word, class string) bool {
	flag, ok := s.aff.Classes[class]
	if !ok || word == "" {
		return false
	}
	s.dic.Add(Entry{Word: word, Flags: NewFlagSet(flag)})
	s.rebuild()
	return true
}
