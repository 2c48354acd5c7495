// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq provides small pull-based lazy sequence combinators.
//
// The suggestion pipeline is naturally expressed as composable lazy
// generators; a Seq is the pull-based iterator form of that idea: each
// call to the function produces the next element, or reports that the
// sequence is exhausted. Nothing is materialized until it is asked for,
// so a Take(n) downstream of an expensive generator only ever runs the
// generator n times.
package seq

// Seq is a pull-based lazy sequence of T. Calling it advances the
// sequence by one element.
type Seq[T any] func() (T, bool)

// Empty returns a sequence that yields nothing.
func Empty[T any]() Seq[T] {
	return func() (T, bool) {
		var zero T
		return zero, false
	}
}

// FromSlice returns a sequence over the elements of xs, in order.
func FromSlice[T any](xs []T) Seq[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(xs) {
			var zero T
			return zero, false
		}
		v := xs[i]
		i++
		return v, true
	}
}

// Defer returns a sequence that calls thunk to build the real sequence
// only when first pulled. Used to keep an expensive generator from
// running at all when an upstream Take or short-circuit means none of
// its output is ever needed.
func Defer[T any](thunk func() Seq[T]) Seq[T] {
	var s Seq[T]
	started := false
	return func() (T, bool) {
		if !started {
			s = thunk()
			started = true
		}
		return s()
	}
}

// Concat returns a sequence that yields every element of each of ss in
// turn.
func Concat[T any](ss ...Seq[T]) Seq[T] {
	i := 0
	return func() (T, bool) {
		for i < len(ss) {
			v, ok := ss[i]()
			if ok {
				return v, true
			}
			i++
		}
		var zero T
		return zero, false
	}
}

// Map returns a sequence that applies f to every element of s.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return func() (U, bool) {
		v, ok := s()
		if !ok {
			var zero U
			return zero, false
		}
		return f(v), true
	}
}

// FilterMap returns a sequence of the results of f for which f reports
// true, skipping elements for which it reports false.
func FilterMap[T, U any](s Seq[T], f func(T) (U, bool)) Seq[U] {
	return func() (U, bool) {
		for {
			v, ok := s()
			if !ok {
				var zero U
				return zero, false
			}
			if u, keep := f(v); keep {
				return u, true
			}
		}
	}
}

// Filter returns a sequence of the elements of s for which f reports
// true.
func Filter[T any](s Seq[T], f func(T) bool) Seq[T] {
	return FilterMap(s, func(v T) (T, bool) { return v, f(v) })
}

// Take returns a sequence of at most the first n elements of s. The
// upstream sequence is never asked for more than n elements, so it is
// safe to place Take downstream of an unbounded or expensive generator.
func Take[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return Empty[T]()
	}
	remaining := n
	return func() (T, bool) {
		if remaining <= 0 {
			var zero T
			return zero, false
		}
		v, ok := s()
		if !ok {
			remaining = 0
			return v, false
		}
		remaining--
		return v, true
	}
}

// Collect drains s into a slice. It is intended for tests and small,
// known-bounded sequences; draining an unbounded sequence will not
// return.
func Collect[T any](s Seq[T]) []T {
	var out []T
	for {
		v, ok := s()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ForEach calls f with each element of s in turn until s is exhausted or
// f returns false.
func ForEach[T any](s Seq[T], f func(T) bool) {
	for {
		v, ok := s()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
