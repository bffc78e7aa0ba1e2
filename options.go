// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

import "github.com/sirupsen/logrus"

// EncodeOptions configures an EncodeYaz0 / EncodeYay0 call.
type EncodeOptions struct {
	// SearchDepth bounds how many preceding input bytes the match finder
	// considers (spec.md §4.1, §6). Higher trades compute for ratio, up to
	// maxDistance (0x1000): both wire formats pack distance into a 12-bit
	// field, so raising SearchDepth past that finds no additional matches.
	// Zero disables matching entirely (every byte is emitted as a literal).
	SearchDepth uint

	// FencePost controls the legacy trailing zero byte emitted when the
	// Yaz0 payload closes exactly on a group boundary (spec.md §4.3). ON
	// by default for compatibility with Wind Waker / Twilight Princess
	// assets. Ignored by EncodeYay0 (Yay0 has no such fence-post).
	FencePost bool

	// Logger, if non-nil, receives one Debug-level structured log entry
	// per call summarizing literal/reference/group counts. Nil (the
	// default) adds no overhead.
	Logger *logrus.Entry
}

// DefaultEncodeOptions returns options with the given search depth, the
// fence-post byte enabled, and no logger.
func DefaultEncodeOptions(searchDepth uint) *EncodeOptions {
	return &EncodeOptions{SearchDepth: searchDepth, FencePost: true}
}

func (o *EncodeOptions) searchDepth() uint {
	if o == nil {
		return 0
	}
	return o.SearchDepth
}

func (o *EncodeOptions) fencePost() bool {
	return o == nil || o.FencePost
}

func (o *EncodeOptions) logger() *logrus.Entry {
	if o == nil {
		return nil
	}
	return o.Logger
}

// DecodeOptions configures a DecodeYaz0 / DecodeYay0 call.
type DecodeOptions struct {
	// Strict additionally validates the magic bytes before decoding.
	// spec.md §7: the reference reads uncomp_size unconditionally and a
	// magic mismatch is not an error by default; Strict opts into the
	// hardening the spec allows.
	Strict bool
}

// DefaultDecodeOptions returns permissive decode options (no magic check).
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

func (o *DecodeOptions) strict() bool {
	return o != nil && o.Strict
}

// EncodeStats reports per-call encoder statistics, mirroring the counters
// the teacher compressor tracks internally for benchmarking (m1am, m2m, ...
// in the LZO implementation this package is adapted from).
type EncodeStats struct {
	Literals  int // blocks emitted as raw literals
	ShortRefs int // back-references emitted in the short (2-byte) form
	LongRefs  int // back-references emitted in the long (3-byte) form
	Groups    int // control-word groups written
}

func (s *EncodeStats) logSummary(logger *logrus.Entry, op string, srcLen, dstLen int) {
	if logger == nil || s == nil {
		return
	}
	logger.WithFields(logrus.Fields{
		"op":         op,
		"src_bytes":  srcLen,
		"dst_bytes":  dstLen,
		"literals":   s.Literals,
		"short_refs": s.ShortRefs,
		"long_refs":  s.LongRefs,
		"groups":     s.Groups,
	}).Debug("yaz0: encode complete")
}
