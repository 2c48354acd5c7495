// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "testing"

func TestHandledContainsDash(t *testing.T) {
	h := NewHandled()
	if h.ContainsDash() {
		t.Error("ContainsDash() = true on empty set, want false")
	}
	h.Add("well-known")
	if !h.ContainsDash() {
		t.Error("ContainsDash() = false, want true")
	}
}

func TestHandledContainsSubstringOf(t *testing.T) {
	h := NewHandled()
	h.Add("cat")
	if !h.ContainsSubstringOf("concatenate") {
		t.Error("ContainsSubstringOf(concatenate) = false, want true")
	}
	if h.ContainsSubstringOf("dog") {
		t.Error("ContainsSubstringOf(dog) = true, want false")
	}
}

func TestHandleDedup(t *testing.T) {
	aff := NewAff()
	d := NewDic(nil)
	l := NewLookup(aff, d)
	h := NewHandled()

	s, ok := handle("teh", CapNO, h, NewSuggestion("the", KindSwapChar), false, aff, d, l)
	if !ok || s.Text() != "the" {
		t.Fatalf("first handle() = (%v, %v), want (the, true)", s, ok)
	}

	_, ok = handle("teh", CapNO, h, NewSuggestion("the", KindSwapChar), false, aff, d, l)
	if ok {
		t.Error("second handle() of the same text succeeded, want dedup to suppress it")
	}
}

func TestHandleForbidden(t *testing.T) {
	aff := NewAff()
	aff.Flags.ForbiddenWord = '!'
	d := NewDic([]Entry{{Word: "curse", Flags: NewFlagSet('!')}})
	l := NewLookup(aff, d)
	h := NewHandled()

	_, ok := handle("curze", CapNO, h, NewSuggestion("curse", KindSwapChar), false, aff, d, l)
	if ok {
		t.Error("handle() accepted a forbidden word")
	}
}

func TestHandleCoercesCase(t *testing.T) {
	aff := NewAff()
	d := NewDic(nil)
	l := NewLookup(aff, d)
	h := NewHandled()

	s, ok := handle("Teh", CapINIT, h, NewSuggestion("the", KindSwapChar), false, aff, d, l)
	if !ok {
		t.Fatalf("handle() = (_, false), want true")
	}
	if s.Text() != "The" {
		t.Errorf("handle() text = %q, want %q", s.Text(), "The")
	}
}

func TestSpliceHuhCase(t *testing.T) {
	tests := []struct {
		word, text, want string
	}{
		{"xY", "x y", "x Y"},
		{"iPhone", "i phone case", "i Phone case"},
		{"hello world", "hello world", "hello world"},
	}
	for _, test := range tests {
		got := spliceHuhCase(test.word, test.text)
		if got != test.want {
			t.Errorf("spliceHuhCase(%q, %q) = %q, want %q", test.word, test.text, got, test.want)
		}
	}
}
