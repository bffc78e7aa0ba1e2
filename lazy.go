// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

// lazyMatcher wraps findBestMatch with a one-position lookahead (spec.md
// §4.2). Unlike the reference implementation, which threads this through
// file-scope globals (next_byte_match_flag/length/distance in
// pyfastyaz0yay0.c), the carry lives here as call-scoped state so separate
// encode calls never interact (spec.md §5, §9).
type lazyMatcher struct {
	src         []byte
	searchDepth uint

	carrySet bool
	carry    match
}

func newLazyMatcher(src []byte, searchDepth uint) *lazyMatcher {
	return &lazyMatcher{src: src, searchDepth: searchDepth}
}

// next returns the match to use at cursor, applying the lazy-match demotion
// rule: if the match one position ahead beats the current one by at least
// 2, emit a literal now and carry the lookahead result forward.
func (m *lazyMatcher) next(cursor int) match {
	if m.carrySet {
		m.carrySet = false
		return m.carry
	}

	current := findBestMatch(m.src, cursor, m.searchDepth)
	if current.length < minMatchLength {
		return current
	}

	lookahead := findBestMatch(m.src, cursor+1, m.searchDepth)
	if lookahead.length >= current.length+2 {
		m.carry = lookahead
		m.carrySet = true
		return match{length: 1, distance: 0}
	}

	return current
}
