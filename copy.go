// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

// copyBackRef copies length bytes from dst[dstOff-distance:] to
// dst[dstOff:dstOff+length], one byte at a time. spec.md §4.5/§9 require
// this to be scalar, not a bulk memmove: distance can be smaller than
// length (e.g. distance=1 is a run-fill), so bytes this call writes must
// become visible as source for later bytes within the same call.
func copyBackRef(dst []byte, dstOff, distance, length int) error {
	srcStart := dstOff - distance
	if srcStart < 0 {
		return ErrCorruptReference
	}
	if dstOff+length > len(dst) {
		return ErrTruncatedInput
	}

	for i := 0; i < length; i++ {
		dst[dstOff+i] = dst[srcStart+i]
	}
	return nil
}
