// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

// match is the result of a back-reference search: length bytes can be
// copied from distance bytes before cursor. length 0 means no usable match
// was found; the caller falls back to a literal.
type match struct {
	length   int
	distance int
}

// findBestMatch implements the bounded brute-force longest-match search
// (spec.md §4.1). It considers every starting position in the window
// [cursor-windowSize, cursor) and extends each candidate as far as it
// agrees with src[cursor:], capped at maxRunLength and at the remaining
// input length. Ties keep the first (smallest window index, equivalently
// largest distance) match found, matching the reference's strict
// greater-than update.
func findBestMatch(src []byte, cursor int, searchDepth uint) match {
	if cursor <= 0 {
		return match{}
	}

	remaining := len(src) - cursor
	if remaining <= 0 {
		return match{}
	}
	if remaining > maxRunLength {
		remaining = maxRunLength
	}

	windowSize := cursor
	if searchDepth < uint(windowSize) {
		windowSize = int(searchDepth)
	}
	// Both wire formats pack distance into a 12-bit field (d = distance-1),
	// so no match further back than maxDistance is usable regardless of how
	// deep the caller asks us to search.
	if windowSize > maxDistance {
		windowSize = maxDistance
	}

	best := match{}
	windowStart := cursor - windowSize
	for i := 0; i < windowSize; i++ {
		oldStart := windowStart + i

		length := 0
		for length < remaining && src[oldStart+length] == src[cursor+length] {
			length++
		}

		if length > best.length {
			best.length = length
			best.distance = windowSize - i
			if best.length == remaining {
				break
			}
		}
	}

	return best
}
