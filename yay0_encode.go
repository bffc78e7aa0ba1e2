// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

import (
	"encoding/binary"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"
)

// EncodeYay0 compresses src into the Yay0 container: a header plus three
// independent streams (mask/link/chunk), see spec.md §4.4.
// opts may be nil, equivalent to DefaultEncodeOptions(0).
func EncodeYay0(src []byte, opts *EncodeOptions) ([]byte, error) {
	out, _, err := EncodeYay0WithStats(src, opts)
	return out, err
}

// EncodeYay0WithDepth is a convenience wrapper over EncodeYay0 for callers
// who only want to set the search depth.
func EncodeYay0WithDepth(src []byte, searchDepth uint) ([]byte, error) {
	return EncodeYay0(src, DefaultEncodeOptions(searchDepth))
}

// EncodeYay0WithStats behaves like EncodeYay0 but also returns per-call
// encoder statistics (SPEC_FULL.md §5).
func EncodeYay0WithStats(src []byte, opts *EncodeOptions) (result []byte, stats *EncodeStats, err error) {
	n := len(src)
	srcOff := 0

	defer func() {
		if r := recover(); r != nil {
			result, stats = nil, nil
			err = newEncodeError("encode_yay0", srcOff, pkgerrors.Wrap(ErrAllocationFailure, fmt.Sprintf("recovered: %v", r)))
		}
	}()

	maskBuf := bytebufferpool.Get()
	linkBuf := bytebufferpool.Get()
	chunkBuf := bytebufferpool.Get()
	defer bytebufferpool.Put(maskBuf)
	defer bytebufferpool.Put(linkBuf)
	defer bytebufferpool.Put(chunkBuf)

	stats = &EncodeStats{}
	lazy := newLazyMatcher(src, opts.searchDepth())

	var maskReg uint32
	bitsDone := 0

	for srcOff < n {
		if bitsDone == 32 {
			maskBuf.B = binary.BigEndian.AppendUint32(maskBuf.B, maskReg)
			maskReg = 0
			bitsDone = 0
		}

		m := lazy.next(srcOff)
		if m.length < minMatchLength {
			chunkBuf.B = append(chunkBuf.B, src[srcOff])
			maskReg |= 1 << (31 - uint(bitsDone))
			srcOff++
			stats.Literals++
		} else {
			length := m.length
			if length > maxRunLength {
				length = maxRunLength
			}
			dist := uint16(m.distance - 1)
			linkWord := dist & 0x0FFF

			if length >= yay0LongLenBase {
				chunkBuf.B = append(chunkBuf.B, lowByte(length-yay0LongLenBase))
				stats.LongRefs++
			} else {
				linkWord |= uint16(length-2) << 12
				stats.ShortRefs++
			}

			linkBuf.B = binary.BigEndian.AppendUint16(linkBuf.B, linkWord)
			srcOff += length
		}

		bitsDone++
	}

	if bitsDone > 0 {
		maskBuf.B = binary.BigEndian.AppendUint32(maskBuf.B, maskReg)
	}
	stats.Groups = len(maskBuf.B) / 4

	out := bytebufferpool.Get()
	defer bytebufferpool.Put(out)

	maskSize := len(maskBuf.B)
	linkSize := len(linkBuf.B)
	linkOff := headerSize + maskSize
	chunkOff := linkOff + linkSize

	out.B = append(out.B, magicYay0[:]...)
	out.B = binary.BigEndian.AppendUint32(out.B, uint32(n))                //nolint:gosec // G115: spec caps input at 2^31-1
	out.B = binary.BigEndian.AppendUint32(out.B, uint32(linkOff))          //nolint:gosec // G115: bounded by input size
	out.B = binary.BigEndian.AppendUint32(out.B, uint32(chunkOff))         //nolint:gosec // G115: bounded by input size
	out.B = append(out.B, maskBuf.B...)
	out.B = append(out.B, linkBuf.B...)
	out.B = append(out.B, chunkBuf.B...)

	result = make([]byte, len(out.B))
	copy(result, out.B)

	stats.logSummary(opts.logger(), "encode_yay0", n, len(result))

	return result, stats, nil
}
