// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlagSetHas(t *testing.T) {
	fs := NewFlagSet('!', '#', 0)
	if !fs.Has('!') {
		t.Error("Has('!') = false, want true")
	}
	if fs.Has('?') {
		t.Error("Has('?') = true, want false")
	}
	if fs.Has(0) {
		t.Error("Has(0) = true, want false")
	}
}

func TestDicLookupAndAdd(t *testing.T) {
	d := NewDic([]Entry{
		{Word: "cat", Flags: NewFlagSet('S')},
	})
	if got := d.Lookup("dog"); got != nil {
		t.Errorf("Lookup(dog) = %v, want nil", got)
	}
	got := d.Lookup("cat")
	want := []Entry{{Word: "cat", Flags: NewFlagSet('S')}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(cat) mismatch\n%s", cmp.Diff(got, want))
	}

	d.Add(Entry{Word: "dog", Flags: NewFlagSet('G')})
	got = d.Lookup("dog")
	want = []Entry{{Word: "dog", Flags: NewFlagSet('G')}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(dog) after Add mismatch\n%s", cmp.Diff(got, want))
	}
	if len(d.Words()) != 2 {
		t.Errorf("Words() has %d entries, want 2", len(d.Words()))
	}
}

func TestDicHasFlag(t *testing.T) {
	d := NewDic([]Entry{{Word: "cat", Flags: NewFlagSet('S')}})
	if !d.HasFlag("cat", 'S') {
		t.Error("HasFlag(cat, S) = false, want true")
	}
	if d.HasFlag("cat", 'G') {
		t.Error("HasFlag(cat, G) = true, want false")
	}
	if d.HasFlag("dog", 'S') {
		t.Error("HasFlag(dog, S) = true, want false")
	}
}

func TestNgramWords(t *testing.T) {
	aff := NewAff()
	aff.Flags.ForbiddenWord = '!'
	aff.Flags.NoSuggest = '#'
	aff.Flags.OnlyInCompound = 'O'
	d := NewDic([]Entry{
		{Word: "cat"},
		{Word: "badword", Flags: NewFlagSet('!')},
		{Word: "quiet", Flags: NewFlagSet('#')},
		{Word: "compoundonly", Flags: NewFlagSet('O')},
	})
	got := NgramWords(aff, d)
	want := []Entry{{Word: "cat"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NgramWords mismatch\n%s", cmp.Diff(got, want))
	}
}
