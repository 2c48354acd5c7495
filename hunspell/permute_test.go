// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lest-day/gospell/internal/seq"
)

func candidateTexts(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		if s, ok := c.(Suggestion); ok {
			out[i] = s.Text()
		}
	}
	return out
}

func TestGenUppercase(t *testing.T) {
	aff := NewAff()
	got := genUppercase("hello", aff)
	want := []Candidate{Suggestion{text: "HELLO", kind: KindUppercase}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genUppercase mismatch\n%s", cmp.Diff(got, want, cmp.AllowUnexported(Suggestion{})))
	}
}

func TestGenReplChars(t *testing.T) {
	aff := NewAff()
	aff.REP = []RepRule{{Pattern: "ei", Replacement: "ie"}}
	got := candidateTexts(genReplChars("xei", aff))
	want := []string{"xie"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genReplChars = %v, want %v", got, want)
	}
}

func TestGenReplCharsPairSplit(t *testing.T) {
	aff := NewAff()
	aff.REP = []RepRule{{Pattern: "alot", Replacement: "allot", Split: "a lot"}}
	got := genReplChars("alot", aff)
	if len(got) != 2 {
		t.Fatalf("genReplChars(alot) returned %d candidates, want 2", len(got))
	}
	if s, ok := got[0].(Suggestion); !ok || s.Text() != "allot" {
		t.Errorf("genReplChars(alot)[0] = %v, want Suggestion(allot)", got[0])
	}
	m, ok := got[1].(MultiWordSuggestion)
	if !ok {
		t.Fatalf("genReplChars(alot)[1] is %T, want MultiWordSuggestion", got[1])
	}
	if !reflect.DeepEqual(m.Words(), []string{"a", "lot"}) {
		t.Errorf("genReplChars(alot)[1].Words() = %v, want [a lot]", m.Words())
	}
}

func TestSplitPositions(t *testing.T) {
	runes := []rune("cat")
	want := []int{1, 2}

	got := splitPositions(runes, "cat", nil)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitPositions(nil splitter) = %v, want %v", got, want)
	}

	got = splitPositions(runes, "cat", stubSplitter{"c", "at"})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitPositions(splitter) = %v, want %v (the plain position scan already covers every internal boundary a splitter could add)", got, want)
	}
}

type stubSplitter []string

func (s stubSplitter) Split(string) []string { return []string(s) }

func TestGenSpaceword(t *testing.T) {
	aff := NewAff()
	aff.TRY = "a"

	cands := genSpaceword("cat", aff, nil)
	if len(cands) != 2 {
		t.Fatalf("genSpaceword(cat) returned %d candidates, want 2", len(cands))
	}
	for _, c := range cands {
		m, ok := c.(MultiWordSuggestion)
		if !ok {
			t.Fatalf("genSpaceword candidate is %T, want MultiWordSuggestion", c)
		}
		if m.Kind() != KindSpaceWord {
			t.Errorf("Kind() = %v, want %v", m.Kind(), KindSpaceWord)
		}
		if !m.AllowDash() {
			t.Errorf("AllowDash() = false, want true (TRY contains 'a')")
		}
	}
	if got := cands[0].(MultiWordSuggestion).Words(); !reflect.DeepEqual(got, []string{"c", "at"}) {
		t.Errorf("genSpaceword(cat)[0].Words() = %v, want [c at]", got)
	}
	if got := cands[1].(MultiWordSuggestion).Words(); !reflect.DeepEqual(got, []string{"ca", "t"}) {
		t.Errorf("genSpaceword(cat)[1].Words() = %v, want [ca t]", got)
	}
}

func TestGenSpacewordThroughFilterCandidates(t *testing.T) {
	aff := NewAff()
	aff.TRY = "a"
	d := NewDic([]Entry{{Word: "good"}, {Word: "bye"}})
	l := NewLookup(aff, d)

	cands := genSpaceword("goodbye", aff, nil)
	suggestions := seq.Collect(filterCandidates(seq.FromSlice(cands), l, false))

	var got []string
	for _, s := range suggestions {
		got = append(got, s.Text())
	}
	want := []string{"good bye", "good-bye"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filterCandidates(genSpaceword(goodbye)) = %v, want %v", got, want)
	}
	for _, s := range suggestions {
		if s.Kind() != KindSpaceWord {
			t.Errorf("suggestion %q has kind %v, want %v", s.Text(), s.Kind(), KindSpaceWord)
		}
	}
}

func TestGenMapChars(t *testing.T) {
	aff := NewAff()
	aff.MAP = []MapClass{{'a', 'á'}}
	got := candidateTexts(genMapChars("cat", aff))
	want := []string{"cát"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genMapChars = %v, want %v", got, want)
	}
}

func TestGenSwapChar(t *testing.T) {
	got := candidateTexts(genSwapChar("cat"))
	want := []string{"act", "cta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genSwapChar(cat) = %v, want %v", got, want)
	}
}

func TestGenSwapCharFourLetterCorner(t *testing.T) {
	got := candidateTexts(genSwapChar("wrod"))
	want := []string{"rwod", "word", "wrdo", "rwdo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genSwapChar(wrod) = %v, want %v", got, want)
	}
}

func TestGenSwapCharFiveLetterCorner(t *testing.T) {
	got := candidateTexts(genSwapChar("abcde"))
	want := []string{"bacde", "acbde", "abdce", "abced", "baced", "baecd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genSwapChar(abcde) = %v, want %v", got, want)
	}
}

func TestGenLongSwapChar(t *testing.T) {
	got := candidateTexts(genLongSwapChar("abcd"))
	want := []string{"cbad", "dbca", "adcb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genLongSwapChar(abcd) = %v, want %v", got, want)
	}
}

func TestGenBadCharKey(t *testing.T) {
	aff := NewAff()
	aff.KEY = KeyLayout{"abc"}
	got := candidateTexts(genBadCharKey("b", aff))
	want := []string{"a", "c", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genBadCharKey(b) = %v, want %v", got, want)
	}
}

func TestGenExtraChar(t *testing.T) {
	got := candidateTexts(genExtraChar("cat"))
	want := []string{"at", "ct", "ca"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genExtraChar(cat) = %v, want %v", got, want)
	}
	if got := genExtraChar("a"); got != nil {
		t.Errorf("genExtraChar(a) = %v, want nil", got)
	}
}

func TestGenForgotChar(t *testing.T) {
	aff := NewAff()
	aff.TRY = "xy"
	got := candidateTexts(genForgotChar("ab", aff))
	want := []string{"xab", "yab", "axb", "ayb", "abx", "aby"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genForgotChar(ab) = %v, want %v", got, want)
	}
	if got := genForgotChar("ab", NewAff()); got != nil {
		t.Errorf("genForgotChar with empty TRY = %v, want nil", got)
	}
}

func TestGenMoveChar(t *testing.T) {
	got := candidateTexts(genMoveChar("abcd"))
	if len(got) != 6 {
		t.Fatalf("genMoveChar(abcd) returned %d candidates, want 6", len(got))
	}
	found := false
	for _, s := range got {
		if s == "bcad" {
			found = true
		}
	}
	if !found {
		t.Errorf("genMoveChar(abcd) = %v, want it to include %q (moving index 0 to index 2)", got, "bcad")
	}
}

func TestMoveRune(t *testing.T) {
	tests := []struct {
		word     string
		from, to int
		want     string
	}{
		{"abcd", 0, 2, "bcad"},
		{"abcd", 1, 3, "acdb"},
	}
	for _, test := range tests {
		got := string(moveRune([]rune(test.word), test.from, test.to))
		if got != test.want {
			t.Errorf("moveRune(%q, %d, %d) = %q, want %q", test.word, test.from, test.to, got, test.want)
		}
	}
}

func TestGenBadChar(t *testing.T) {
	aff := NewAff()
	aff.TRY = "xy"
	got := candidateTexts(genBadChar("ab", aff))
	want := []string{"xb", "yb", "ax", "ay"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genBadChar(ab) = %v, want %v", got, want)
	}
	if got := genBadChar("ab", NewAff()); got != nil {
		t.Errorf("genBadChar with empty TRY = %v, want nil", got)
	}
}

func TestGenDoubleTwoChars(t *testing.T) {
	got := candidateTexts(genDoubleTwoChars("abab"))
	want := []string{"ab"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("genDoubleTwoChars(abab) = %v, want %v", got, want)
	}
	if got := genDoubleTwoChars("abcd"); got != nil {
		t.Errorf("genDoubleTwoChars(abcd) = %v, want nil", got)
	}
}

func TestGenTwoWords(t *testing.T) {
	aff := NewAff()
	got := genTwoWords("catdog", aff, nil)
	if len(got) != 5 {
		t.Fatalf("genTwoWords(catdog) returned %d candidates, want 5", len(got))
	}
	m, ok := got[0].(MultiWordSuggestion)
	if !ok {
		t.Fatalf("genTwoWords(catdog)[0] is %T, want MultiWordSuggestion", got[0])
	}
	if !reflect.DeepEqual(m.Words(), []string{"c", "atdog"}) {
		t.Errorf("genTwoWords(catdog)[0].Words() = %v, want [c atdog]", m.Words())
	}
	if m.Kind() != KindTwoWords {
		t.Errorf("Kind() = %v, want %v", m.Kind(), KindTwoWords)
	}
	if m.AllowDash() {
		t.Error("AllowDash() = true, want false (TRY is empty)")
	}
}

func TestGenTwoWordsNoSplitSugs(t *testing.T) {
	aff := NewAff()
	aff.NoSplitSugs = true
	if got := genTwoWords("catdog", aff, nil); got != nil {
		t.Errorf("genTwoWords with NOSPLITSUGS = %v, want nil", got)
	}
}

func TestSwapRuneCase(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
	}{
		{'a', 'A'},
		{'A', 'a'},
		{'1', '1'},
	}
	for _, test := range tests {
		if got := swapRuneCase(test.r); got != test.want {
			t.Errorf("swapRuneCase(%q) = %q, want %q", test.r, got, test.want)
		}
	}
}
