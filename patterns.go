// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"regexp"
)

// patterns is a heuristic that accepts words matching any of a set of
// user-provided regular expressions.
type patterns struct {
	res []*regexp.Regexp
}

// newPatterns compiles exprs into a patterns heuristic.
func newPatterns(exprs []string) (patterns, error) {
	p := patterns{res: make([]*regexp.Regexp, len(exprs))}
	for i, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return patterns{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
		}
		p.res[i] = re
	}
	return p, nil
}

// isAcceptable returns whether word matches any configured pattern.
func (p patterns) isAcceptable(word string, _ bool) bool {
	for _, re := range p.res {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}
