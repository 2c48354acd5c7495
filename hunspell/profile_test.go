// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"strings"
	"testing"
)

const testProfile = `
try = "esianrtolcdugmphbyfvkwz'"
key = ["qwertyuiop", "asdfghjkl", "zxcvbnm"]
max_cpd_sugs = 2
max_ngram_sugs = 3
max_diff = 4

[flags]
forbidden_word = "!"
no_suggest = "#"
keep_case = "K"

[[rep]]
pattern = "ie"
replacement = "ei"

[[map]]
chars = "oO0"

[[phone]]
search = "^KN"
replace = "N"
priority = true

[[class]]
name = "item"
flag = "S"
kind = "suffix"
cross_product = false
[[class.rule]]
strip = ""
add = "s"
cond = "[^sxz]"

[[word]]
text = "the"

[[word]]
text = "cat"
classes = ["item"]

[[word]]
text = "bad"
`

func TestLoadProfile(t *testing.T) {
	aff, dic, err := LoadProfile(strings.NewReader(testProfile))
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if aff.TRY != "esianrtolcdugmphbyfvkwz'" {
		t.Errorf("TRY = %q", aff.TRY)
	}
	if aff.MaxCpdSugs != 2 {
		t.Errorf("MaxCpdSugs = %d, want 2", aff.MaxCpdSugs)
	}
	if aff.Flags.ForbiddenWord != '!' {
		t.Errorf("ForbiddenWord = %q, want '!'", aff.Flags.ForbiddenWord)
	}
	if len(aff.REP) != 1 || aff.REP[0].Pattern != "ie" {
		t.Errorf("REP = %v", aff.REP)
	}
	if len(aff.PHONE) != 1 || aff.PHONE[0].Search != "^KN" {
		t.Errorf("PHONE = %v", aff.PHONE)
	}
	flag, ok := aff.Classes["item"]
	if !ok || flag != 'S' {
		t.Errorf("Classes[item] = %q, %v, want 'S', true", flag, ok)
	}
	if _, ok := aff.SFX['S']; !ok {
		t.Error("SFX['S'] not populated")
	}

	if got := dic.Lookup("the"); len(got) != 1 {
		t.Errorf("Lookup(the) = %v", got)
	}
	catEntries := dic.Lookup("cat")
	if len(catEntries) != 1 || !catEntries[0].Flags.Has('S') {
		t.Errorf("Lookup(cat) = %v, want flag S", catEntries)
	}
}

func TestLoadProfileUnknownClass(t *testing.T) {
	_, _, err := LoadProfile(strings.NewReader(`
[[word]]
text = "cat"
classes = ["nosuch"]
`))
	if err == nil {
		t.Fatal("LoadProfile did not error on unknown class")
	}
}

func TestLoadProfileBadFlag(t *testing.T) {
	_, _, err := LoadProfile(strings.NewReader(`
[flags]
forbidden_word = "!!"
`))
	if err == nil {
		t.Fatal("LoadProfile did not error on multi-rune flag")
	}
}
