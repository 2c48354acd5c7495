// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"strings"
	"unicode"
)

// Casing classifies and rewrites the case of words the way Hunspell's
// casing module does.
type Casing struct{}

// Classify returns the CapType of word.
func (Casing) Classify(word string) CapType {
	runes := []rune(word)
	if len(runes) == 0 {
		return CapNO
	}
	var numUpper, numLower int
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			numUpper++
		case unicode.IsLower(r):
			numLower++
		}
	}
	firstUpper := unicode.IsUpper(runes[0])
	switch {
	case numUpper == 0:
		return CapNO
	case numLower == 0:
		return CapALL
	case firstUpper && numUpper == 1:
		return CapINIT
	case firstUpper:
		return CapHUHINIT
	default:
		return CapHUH
	}
}

// Corrections returns the CapType of word along with the ordered list of
// recapitalization variants worth retrying. variants[0] is always word
// itself.
func (c Casing) Corrections(word string) (CapType, []string) {
	ct := c.Classify(word)
	variants := []string{word}
	switch ct {
	case CapINIT:
		variants = append(variants, strings.ToLower(word))
	case CapALL:
		lower := strings.ToLower(word)
		variants = append(variants, lower, initCap(lower))
	case CapHUH, CapHUHINIT:
		variants = append(variants, strings.ToLower(word))
	}
	return ct, variants
}

// Capitalize returns the capitalizations of word that FORCEUCASE should
// try, most to least common.
func (Casing) Capitalize(word string) []string {
	return []string{initCap(word), strings.ToUpper(word)}
}

// Upper returns the full-upper form of word.
func (Casing) Upper(word string) string { return strings.ToUpper(word) }

// Coerce rewrites text to have the casing described by captype. CapHUH and
// CapHUHINIT text is not rewritten: an irregular-case source word gives no
// reliable casing to coerce a suggestion into.
func (Casing) Coerce(text string, captype CapType) string {
	switch captype {
	case CapALL:
		return strings.ToUpper(text)
	case CapINIT:
		return initCap(text)
	default:
		return text
	}
}

// initCap upper-cases the first rune of s, leaving the rest unchanged.
func initCap(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
