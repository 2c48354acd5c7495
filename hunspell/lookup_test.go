// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "testing"

func newTestLookup() *Lookup {
	aff := NewAff()
	aff.Flags.ForbiddenWord = '!'
	aff.Flags.NoSuggest = '#'
	aff.Flags.OnlyInCompound = 'O'
	aff.SFX['S'] = AffixTable{
		Flag: 'S',
		Rules: []AffixRule{
			{Strip: "", Add: "s", Cond: ""},
		},
	}
	d := NewDic([]Entry{
		{Word: "cat", Flags: NewFlagSet('S')},
		{Word: "dog"},
		{Word: "bad", Flags: NewFlagSet('!')},
		{Word: "secret", Flags: NewFlagSet('#')},
		{Word: "house"},
		{Word: "boat"},
	})
	return NewLookup(aff, d)
}

func TestLookupCorrectAffixForms(t *testing.T) {
	l := newTestLookup()
	opts := CorrectOpts{AffixForms: true}
	if !l.Correct("cat", opts) {
		t.Error("Correct(cat) = false, want true")
	}
	if !l.Correct("cats", opts) {
		t.Error("Correct(cats) = false, want true (affixed form)")
	}
	if l.Correct("dogs", opts) {
		t.Error("Correct(dogs) = true, want false (dog has no S flag)")
	}
}

func TestLookupCorrectCompound(t *testing.T) {
	l := newTestLookup()
	opts := CorrectOpts{CompoundForms: true}
	if !l.Correct("houseboat", opts) {
		t.Error("Correct(houseboat) = false, want true (compound of house+boat)")
	}
	if l.Correct("zzzznotaword", opts) {
		t.Error("Correct(zzzznotaword) = true, want false: no dictionary stem decomposition exists")
	}
}

func TestLookupIsForbidden(t *testing.T) {
	l := newTestLookup()
	if !l.IsForbidden("bad") {
		t.Error("IsForbidden(bad) = false, want true")
	}
	if l.IsForbidden("cat") {
		t.Error("IsForbidden(cat) = true, want false")
	}
}

func TestLookupCheck(t *testing.T) {
	l := newTestLookup()
	if l.Check("bad") {
		t.Error("Check(bad) = true, want false (forbidden)")
	}
	if !l.Check("cat") {
		t.Error("Check(cat) = false, want true")
	}
	if !l.Check("secret") {
		t.Error("Check(secret) = false, want true (NOSUGGEST is still correct)")
	}
	if l.Check("nonexistent") {
		t.Error("Check(nonexistent) = true, want false")
	}
}

func TestLookupOnlyInCompoundExcludedFromPlainMatch(t *testing.T) {
	aff := NewAff()
	aff.Flags.OnlyInCompound = 'O'
	d := NewDic([]Entry{{Word: "gas", Flags: NewFlagSet('O')}})
	l := NewLookup(aff, d)
	if l.Correct("gas", CorrectOpts{}) {
		t.Error("Correct(gas) = true, want false: ONLYINCOMPOUND stems aren't plain matches")
	}
}
