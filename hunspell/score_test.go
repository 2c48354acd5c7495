// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import "testing"

func TestLeftCommon(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"hello", "help", 3},
		{"hello", "world", 0},
		{"hello", "hello", 5},
		{"", "hello", 0},
	}
	for _, test := range tests {
		got := leftCommon([]rune(test.a), []rune(test.b))
		if got != test.want {
			t.Errorf("leftCommon(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestNgramOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		n    int
		want int
	}{
		{"hello", "hello", 1, 5},
		{"aab", "aba", 1, 3},
		{"abc", "xyz", 1, 0},
		{"abc", "ab", 4, 0},
	}
	for _, test := range tests {
		got := ngramOverlap([]rune(test.a), []rune(test.b), test.n)
		if got != test.want {
			t.Errorf("ngramOverlap(%q, %q, %d) = %d, want %d", test.a, test.b, test.n, got, test.want)
		}
	}
}

func TestCommonCharCount(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"hello", "world", 2},
		{"aab", "ab", 2},
		{"", "abc", 0},
	}
	for _, test := range tests {
		got := commonCharCount([]rune(test.a), []rune(test.b))
		if got != test.want {
			t.Errorf("commonCharCount(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestNgramScoreIdentical(t *testing.T) {
	if got, self := ngramScore("receive", "believe"), ngramScore("receive", "receive"); got >= self {
		t.Errorf("ngramScore(receive, believe) = %d should be less than self-score %d", got, self)
	}
}
