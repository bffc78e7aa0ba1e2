// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

// lowByte truncates v to its low 8 bits. Used when packing distance/length
// fragments into control and reference bytes, where callers have already
// range-checked the fragment and only want the serialized low byte.
func lowByte(v int) byte {
	return byte(v & 0xff)
}
