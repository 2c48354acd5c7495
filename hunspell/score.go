// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

// ngramScore combines left-common-substring length, n-gram overlap at
// n=1..3, and common-character count into a single similarity score
// between two lowercased strings, per the weighting spec §4.6 describes
// ("combines ... with Hunspell's weighting") without pinning down exact
// coefficients. Longer, more specific overlaps are weighted more.
func ngramScore(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	score := 3 * leftCommon(ar, br)
	for n := 1; n <= 3; n++ {
		score += n * ngramOverlap(ar, br, n)
	}
	score += commonCharCount(ar, br)
	return score
}

// leftCommon returns the length of the common prefix of a and b.
func leftCommon(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// ngramOverlap counts the common n-grams of a and b as a multiset
// intersection: each n-gram in b consumes at most one matching
// occurrence from a.
func ngramOverlap(a, b []rune, n int) int {
	if len(a) < n || len(b) < n {
		return 0
	}
	counts := make(map[string]int, len(a)-n+1)
	for i := 0; i+n <= len(a); i++ {
		counts[string(a[i:i+n])]++
	}
	overlap := 0
	for i := 0; i+n <= len(b); i++ {
		g := string(b[i : i+n])
		if counts[g] > 0 {
			counts[g]--
			overlap++
		}
	}
	return overlap
}

// commonCharCount returns the multiset intersection size of the runes of
// a and b, ignoring order.
func commonCharCount(a, b []rune) int {
	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}
	common := 0
	for _, r := range b {
		if counts[r] > 0 {
			counts[r]--
			common++
		}
	}
	return common
}
