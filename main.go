// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The gospell command finds and highlights misspelled words in Go source
// comments and strings. It uses a bundled suggestion-engine dictionary to
// identify misspellings and only emits coloured output for visual
// inspection; don't use it in automated linting.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"os"
	"runtime/debug"

	"golang.org/x/tools/go/packages"
)

func main() { os.Exit(gospel()) }

func gospel() (status int) {
	cfg, status, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return status
	}

	version := flag.Bool("version", false, "print build information and exit")
	show := flag.Bool("show", cfg.Show, "print comment or string with misspellings")
	checkStrings := flag.Bool("check-strings", cfg.CheckStrings, "check string literals")
	checkEmbedded := flag.Bool("check-embedded", cfg.CheckEmbedded, "check spelling in go:embed'd files")
	ignoreUpper := flag.Bool("ignore-upper", cfg.IgnoreUpper, "ignore all-uppercase words")
	ignoreSingle := flag.Bool("ignore-single", cfg.IgnoreSingle, "ignore single letter words")
	ignoreIdents := flag.Bool("ignore-idents", cfg.IgnoreIdents, "ignore words matching identifiers")
	ignoreNumbers := flag.Bool("ignore-numbers", cfg.IgnoreNumbers, "ignore Go syntax number literals")
	readLicenses := flag.Bool("read-licenses", cfg.ReadLicenses, "add words found in license files to the dictionary")
	gitLog := flag.Bool("read-git-log", cfg.GitLog, "add author names and emails found in git log to the dictionary")
	maskURLs := flag.Bool("mask-urls", cfg.MaskURLs, "mask URLs before checking")
	camelSplit := flag.Bool("camel", cfg.CamelSplit, "split words on camel case")
	minNakedHex := flag.Int("min-naked-hex", cfg.MinNakedHex, "length to recognize hex-digit words as number (0 is never ignore)")
	maxWordLen := flag.Int("max-word-len", cfg.MaxWordLen, "ignore words longer than this (0 is no limit)")
	suggestVal := flag.Int("suggest", int(cfg.MakeSuggestions), "make suggestions for misspellings (0 - never, 1 - first instance, 2 - each, 3 - always)")
	words := flag.String("misspellings", "", "file to write a dictionary of misspellings (.words format)")
	update := flag.Bool("update-dict", false, "update misspellings dictionary instead of creating a new one")
	profile := flag.String("profile", "", "dictionary profile TOML file (defaults to the bundled profile)")
	since := flag.String("since", "", "only report misspellings in lines added since this git ref")
	diffContext := flag.Int("diff-context", cfg.DiffContext, "number of context lines to include around a diff addition")
	_ = flag.Bool("config", true, "read .gospel.conf from the module root")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `usage: %s [options] [packages]

The gospel program will report misspellings in Go source comments and strings.

The position of each comment block or string with misspelled a word will be
output. If the -show flag is true, the complete comment block or string will
be printed with misspelled words highlighted.

If files with the name ".words" exist at module roots, they are loaded as
dictionaries unless the misspellings flag is set without update-dict. The
".words" file has one word per line after an initial count-hint line, and is
populated correctly by the misspellings option; it may be edited to remove
incorrect words without requiring the hint to be adjusted.

`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		if info, ok := debug.ReadBuildInfo(); ok {
			buildSettings(info)
		}
		return success
	}

	if *suggestVal < int(never) || int(always) < *suggestVal {
		fmt.Fprintln(os.Stderr, "invalid suggest flag value")
		return invocationError
	}
	cfg.Show = *show
	cfg.CheckStrings = *checkStrings
	cfg.CheckEmbedded = *checkEmbedded
	cfg.IgnoreUpper = *ignoreUpper
	cfg.IgnoreSingle = *ignoreSingle
	cfg.IgnoreIdents = *ignoreIdents
	cfg.IgnoreNumbers = *ignoreNumbers
	cfg.ReadLicenses = *readLicenses
	cfg.GitLog = *gitLog
	cfg.MaskURLs = *maskURLs
	cfg.CamelSplit = *camelSplit
	cfg.MinNakedHex = *minNakedHex
	cfg.MaxWordLen = *maxWordLen
	cfg.MakeSuggestions = suggest(*suggestVal)
	cfg.DiffContext = *diffContext
	cfg.words = *words
	cfg.update = *update
	cfg.profile = *profile
	cfg.since = *since

	loadMode := packages.NeedFiles |
		packages.NeedImports |
		packages.NeedDeps |
		packages.NeedSyntax |
		packages.NeedTypes |
		packages.NeedTypesInfo |
		packages.NeedModule
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode}, flag.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		return internalError
	}
	if packages.PrintErrors(pkgs) != 0 {
		return internalError
	}

	d, err := newDictionary(pkgs, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return internalError
	}

	c, err := newChecker(d, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return internalError
	}

	var changes changeFilter
	if cfg.since != "" {
		changes, err = gitAdditionsSince(cfg.since, cfg.DiffContext)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not compute changes since %s: %v\n", cfg.since, err)
			return internalError
		}
	}

	var embedPatterns []string
	for _, p := range pkgs {
		if p.Module != nil {
			embedPatterns = append(embedPatterns, p.PkgPath+"/...")
		}
	}

	for _, p := range pkgs {
		c.fileset = p.Fset
		for _, f := range p.Syntax {
			if cfg.CheckStrings && changes.fileIsInChange(f.Pos(), c.fileset) {
				ast.Walk(&changeAwareVisitor{checker: c, changes: changes}, f)
			}
			for _, g := range f.Comments {
				if changes.isInChange(g.Pos(), c.fileset) {
					c.check(g.Text(), g.Pos(), "comment")
				}
			}
		}
	}

	if cfg.CheckEmbedded && len(embedPatterns) != 0 {
		files, err := embedFiles(embedPatterns)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not list embedded files: %v\n", err)
			return internalError
		}
		for _, path := range files {
			e, err := c.loadEmbedded(path, cfg.MaxWordLen*4+80)
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not read embedded file %s: %v\n", path, err)
				continue
			}
			if e.Text() == "" {
				continue
			}
			c.fileset = e
			c.check(e.Text(), e.Pos(), "embedded file "+rel(path))
		}
	}

	if d.misspellings != 0 {
		status |= spellingError
	}

	if err := d.writeMisspellings(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return internalError
	}

	return status
}

// changeAwareVisitor restricts string-literal checking to nodes inside a
// changeFilter, when one is in effect.
type changeAwareVisitor struct {
	checker *checker
	changes changeFilter
}

func (v *changeAwareVisitor) Visit(n ast.Node) ast.Visitor {
	if !v.changes.isInChange(n.Pos(), v.checker.fileset) {
		return nil
	}
	v.checker.Visit(n)
	return v
}
