// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

// Shared wire-format constants for both codecs.

const (
	// maxRunLength is the longest match either codec can encode in one
	// back-reference: 0xFF (the largest one-byte length extension) + 0x12
	// (the base length of the long form).
	maxRunLength = 0xFF + 0x12

	// minMatchLength is the shortest run worth encoding as a back-reference;
	// anything shorter is cheaper as a literal.
	minMatchLength = 3

	headerSize = 0x10

	// maxDistance is the largest back-reference distance either codec's
	// 12-bit distance field can express (d = distance-1, d <= 0x0FFF).
	maxDistance = 0x1000
)

var (
	magicYaz0 = [4]byte{'Y', 'a', 'z', '0'}
	magicYay0 = [4]byte{'Y', 'a', 'y', '0'}
)

// yaz0LongLenBase is where Yaz0's three-byte reference form takes over from
// the two-byte form (spec.md §4.3): lengths 3..17 use the short form,
// lengths >= 18 use the long form with a length-extension byte.
const yaz0LongLenBase = 18

// yay0LongLenBase is the Yay0 equivalent (spec.md §4.4): same split, but the
// length nibble lives in the high bits of a 16-bit link word instead of a
// lead byte.
const yay0LongLenBase = 18
