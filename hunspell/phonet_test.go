// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "testing"

var phoneticTransformTests = []struct {
	word  string
	rules []PhoneRule
	want  string
}{
	{
		word:  "KNEE",
		rules: []PhoneRule{{Search: "^KN", Replace: "N", Priority: true}},
		want:  "NEE",
	},
	{
		word:  "CLIMB",
		rules: []PhoneRule{{Search: "MB$", Replace: "M"}},
		want:  "CLIM",
	},
	{
		word:  "PHONE",
		rules: []PhoneRule{{Search: "PH", Replace: "F"}},
		want:  "FONE",
	},
	{
		word:  "BOMB",
		rules: []PhoneRule{{Search: "B", Replace: "_"}},
		want:  "OM",
	},
	{
		word:  "hello",
		rules: nil,
		want:  "hello",
	},
}

func TestPhoneticTransform(t *testing.T) {
	for _, test := range phoneticTransformTests {
		got := phoneticTransform(test.word, test.rules)
		if got != test.want {
			t.Errorf("phoneticTransform(%q) = %q, want %q", test.word, got, test.want)
		}
	}
}

func TestNewPhonetBuilderUppercasesForMatching(t *testing.T) {
	aff := NewAff()
	aff.PHONE = []PhoneRule{{Search: "^KN", Replace: "N", Priority: true}}

	pb := NewPhonetBuilder("knight", aff)
	pb.Step(Entry{Word: "night"})
	pb.Step(Entry{Word: "xyz"})

	got := pb.Finish()
	if len(got) == 0 || got[0] != "night" {
		t.Errorf("Finish() = %v, want first entry %q", got, "night")
	}
}

func TestParsePhonePattern(t *testing.T) {
	tests := []struct {
		pattern     string
		core        string
		anchorStart bool
		anchorEnd   bool
	}{
		{"^KN", "KN", true, false},
		{"MB$", "MB", false, true},
		{"PH", "PH", false, false},
		{"^X$", "X", true, true},
	}
	for _, test := range tests {
		core, start, end := parsePhonePattern(test.pattern)
		if core != test.core || start != test.anchorStart || end != test.anchorEnd {
			t.Errorf("parsePhonePattern(%q) = (%q, %v, %v), want (%q, %v, %v)",
				test.pattern, core, start, end, test.core, test.anchorStart, test.anchorEnd)
		}
	}
}
