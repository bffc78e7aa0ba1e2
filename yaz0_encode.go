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

// EncodeYaz0 compresses src into the Yaz0 container (spec.md §4.3).
// opts may be nil, equivalent to DefaultEncodeOptions(0).
func EncodeYaz0(src []byte, opts *EncodeOptions) ([]byte, error) {
	out, _, err := EncodeYaz0WithStats(src, opts)
	return out, err
}

// EncodeYaz0WithDepth is a convenience wrapper over EncodeYaz0 for callers
// who only want to set the search depth, mirroring the teacher's
// Compress1X999Level direct entry point.
func EncodeYaz0WithDepth(src []byte, searchDepth uint) ([]byte, error) {
	return EncodeYaz0(src, DefaultEncodeOptions(searchDepth))
}

// EncodeYaz0WithStats behaves like EncodeYaz0 but also returns per-call
// encoder statistics (SPEC_FULL.md §5).
func EncodeYaz0WithStats(src []byte, opts *EncodeOptions) (out []byte, stats *EncodeStats, err error) {
	n := len(src)
	srcOff := 0

	// make([]byte, ...) and the pooled buffer's growth can only panic on
	// allocation failure; recovered here so that case surfaces as
	// ErrAllocationFailure like the rest of this package's error taxonomy
	// instead of an unrecoverable runtime panic (spec.md §2.1).
	defer func() {
		if r := recover(); r != nil {
			out, stats = nil, nil
			err = newEncodeError("encode_yaz0", srcOff, pkgerrors.Wrap(ErrAllocationFailure, fmt.Sprintf("recovered: %v", r)))
		}
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = append(buf.B, magicYaz0[:]...)
	buf.B = binary.BigEndian.AppendUint32(buf.B, uint32(n)) //nolint:gosec // G115: spec caps input at 2^31-1
	buf.B = append(buf.B, make([]byte, 8)...)

	stats = &EncodeStats{}
	lazy := newLazyMatcher(src, opts.searchDepth())

	blocksInGroup := 0
	groupCtrlPos := 0
	justClosedGroup := false

	for srcOff < n {
		if blocksInGroup == 0 {
			groupCtrlPos = len(buf.B)
			buf.B = append(buf.B, 0)
			stats.Groups++
		}

		m := lazy.next(srcOff)
		if m.length < minMatchLength {
			buf.B[groupCtrlPos] |= 1 << (7 - uint(blocksInGroup))
			buf.B = append(buf.B, src[srcOff])
			srcOff++
			stats.Literals++
		} else {
			length := m.length
			if length > maxRunLength {
				length = maxRunLength
			}
			d := m.distance - 1

			if length >= yaz0LongLenBase {
				buf.B = append(buf.B,
					lowByte((d>>8)&0x0F),
					lowByte(d),
					lowByte(length-yaz0LongLenBase),
				)
				stats.LongRefs++
			} else {
				buf.B = append(buf.B,
					lowByte(((length-2)<<4)|((d>>8)&0x0F)),
					lowByte(d),
				)
				stats.ShortRefs++
			}
			srcOff += length
		}

		blocksInGroup++
		if blocksInGroup == 8 {
			blocksInGroup = 0
			justClosedGroup = true
		} else {
			justClosedGroup = false
		}
	}

	// Legacy fence-post: a stream that finishes exactly on a group boundary
	// gets one trailing zero byte, matching historical Wind Waker/Twilight
	// Princess output (spec.md §4.3).
	if opts.fencePost() && justClosedGroup {
		buf.B = append(buf.B, 0)
	}

	out = make([]byte, len(buf.B))
	copy(out, buf.B)

	stats.logSummary(opts.logger(), "encode_yaz0", n, len(out))

	return out, stats, nil
}
