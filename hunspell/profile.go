// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hunspell

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Profile is the TOML-decoded form of a dictionary profile: an affix table
// and a word list bundled together in one file, standing in for a real
// Hunspell .aff/.dic pair (parsing that file format is out of scope; see
// package doc).
//
// A profile file looks like:
//
//	try = "esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ'"
//	key = ["qwertyuiop", "asdfghjkl", "zxcvbnm"]
//	max_cpd_sugs = 3
//	max_ngram_sugs = 4
//	max_diff = 5
//
//	[flags]
//	forbidden_word = "!"
//	no_suggest = "#"
//	keep_case = "K"
//
//	[[rep]]
//	pattern = "ie"
//	replacement = "ei"
//
//	[[map]]
//	chars = "oO0"
//
//	[[phone]]
//	search = "^KN"
//	replace = "N"
//	priority = true
//
//	[[class]]
//	name = "item"
//	flag = "S"
//	kind = "suffix"
//	cross_product = false
//	[[class.rule]]
//	strip = ""
//	add = "s"
//	cond = "[^sxz]"
//
//	[[word]]
//	text = "the"
//
//	[[word]]
//	text = "cat"
//	classes = ["item"]
type Profile struct {
	Try          string     `toml:"try"`
	Key          []string   `toml:"key"`
	MaxCpdSugs   int        `toml:"max_cpd_sugs"`
	MaxNgramSugs int        `toml:"max_ngram_sugs"`
	MaxDiff      int        `toml:"max_diff"`
	OnlyMaxDiff  bool       `toml:"only_max_diff"`
	NoSplitSugs  bool       `toml:"no_split_sugs"`
	ForceUcase   bool       `toml:"force_ucase"`

	Flags struct {
		ForbiddenWord  string `toml:"forbidden_word"`
		NoSuggest      string `toml:"no_suggest"`
		OnlyInCompound string `toml:"only_in_compound"`
		KeepCase       string `toml:"keep_case"`
		CompoundFlag   string `toml:"compound_flag"`
	} `toml:"flags"`

	Rep []struct {
		Pattern     string `toml:"pattern"`
		Replacement string `toml:"replacement"`
		Split       string `toml:"split"`
	} `toml:"rep"`

	Map []struct {
		Chars string `toml:"chars"`
	} `toml:"map"`

	Phone []struct {
		Search   string `toml:"search"`
		Replace  string `toml:"replace"`
		Priority bool   `toml:"priority"`
	} `toml:"phone"`

	Oconv []struct {
		Pattern     string `toml:"pattern"`
		Replacement string `toml:"replacement"`
	} `toml:"oconv"`

	Classes []struct {
		Name         string `toml:"name"`
		Flag         string `toml:"flag"`
		Kind         string `toml:"kind"` // "prefix" or "suffix"
		CrossProduct bool   `toml:"cross_product"`
		Rule         []struct {
			Strip string `toml:"strip"`
			Add   string `toml:"add"`
			Cond  string `toml:"cond"`
		} `toml:"rule"`
	} `toml:"class"`

	Word []struct {
		Text    string   `toml:"text"`
		Classes []string `toml:"classes"`
	} `toml:"word"`
}

// LoadProfile decodes a dictionary profile from r and builds the Aff+Dic
// pair it describes.
func LoadProfile(r io.Reader) (*Aff, *Dic, error) {
	var p Profile
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return nil, nil, fmt.Errorf("decode profile: %w", err)
	}
	return p.build()
}

func (p *Profile) build() (*Aff, *Dic, error) {
	aff := NewAff()
	aff.TRY = p.Try
	aff.KEY = KeyLayout(p.Key)
	if p.MaxCpdSugs != 0 {
		aff.MaxCpdSugs = p.MaxCpdSugs
	}
	if p.MaxNgramSugs != 0 {
		aff.MaxNgramSugs = p.MaxNgramSugs
	}
	if p.MaxDiff != 0 {
		aff.MaxDiff = p.MaxDiff
	}
	aff.OnlyMaxDiff = p.OnlyMaxDiff
	aff.NoSplitSugs = p.NoSplitSugs
	aff.ForceUcase = p.ForceUcase

	var err error
	aff.Flags.ForbiddenWord, err = soleRune("flags.forbidden_word", p.Flags.ForbiddenWord)
	if err != nil {
		return nil, nil, err
	}
	aff.Flags.NoSuggest, err = soleRune("flags.no_suggest", p.Flags.NoSuggest)
	if err != nil {
		return nil, nil, err
	}
	aff.Flags.OnlyInCompound, err = soleRune("flags.only_in_compound", p.Flags.OnlyInCompound)
	if err != nil {
		return nil, nil, err
	}
	aff.Flags.KeepCase, err = soleRune("flags.keep_case", p.Flags.KeepCase)
	if err != nil {
		return nil, nil, err
	}
	aff.Flags.CompoundFlag, err = soleRune("flags.compound_flag", p.Flags.CompoundFlag)
	if err != nil {
		return nil, nil, err
	}

	for _, r := range p.Rep {
		aff.REP = append(aff.REP, RepRule{Pattern: r.Pattern, Replacement: r.Replacement, Split: r.Split})
	}
	for _, m := range p.Map {
		aff.MAP = append(aff.MAP, MapClass([]rune(m.Chars)))
	}
	for _, ph := range p.Phone {
		aff.PHONE = append(aff.PHONE, PhoneRule{Search: ph.Search, Replace: ph.Replace, Priority: ph.Priority})
	}
	for _, o := range p.Oconv {
		aff.OCONV = append(aff.OCONV, OconvRule{Pattern: o.Pattern, Replacement: o.Replacement})
	}

	for _, c := range p.Classes {
		flag, err := soleRune(fmt.Sprintf("class %q", c.Name), c.Flag)
		if err != nil {
			return nil, nil, err
		}
		table := AffixTable{Flag: flag, CrossProduct: c.CrossProduct, Prefix: c.Kind == "prefix"}
		for _, r := range c.Rule {
			table.Rules = append(table.Rules, AffixRule{Strip: r.Strip, Add: r.Add, Cond: r.Cond})
		}
		if table.Prefix {
			aff.PFX[flag] = table
		} else {
			aff.SFX[flag] = table
		}
		if c.Name != "" {
			aff.Classes[c.Name] = flag
		}
	}

	var entries []Entry
	for _, w := range p.Word {
		if w.Text == "" {
			continue
		}
		var flags FlagSet
		if len(w.Classes) != 0 {
			rs := make([]rune, 0, len(w.Classes))
			for _, name := range w.Classes {
				flag, ok := aff.Classes[name]
				if !ok {
					return nil, nil, fmt.Errorf("word %q: unknown class %q", w.Text, name)
				}
				rs = append(rs, flag)
			}
			flags = NewFlagSet(rs...)
		}
		entries = append(entries, Entry{Word: w.Text, Flags: flags})
	}

	return aff, NewDic(entries), nil
}

// soleRune returns the single rune held by s, or the zero rune if s is
// empty. It errors if s holds more than one rune: profile flags are always
// single-character, matching Hunspell's default (non-"long"/non-numeric)
// FLAG encoding.
func soleRune(field, s string) (rune, error) {
	rs := []rune(s)
	switch len(rs) {
	case 0:
		return 0, nil
	case 1:
		return rs[0], nil
	default:
		return 0, fmt.Errorf("%s: flag must be a single character, got %q", field, s)
	}
}
