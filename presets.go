// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

// Named search-depth presets, for callers who'd rather pick a tier than a
// raw window size. Mirrors the teacher's fixed compression-level table
// (level_params.go's fixedLevels), adapted to this codec's single tuning
// knob: spec.md §6 recommends 0x1000–0x10000. findBestMatch caps the window
// at maxDistance (0x1000), so all three presets search the same window and
// produce the same output.
const (
	SearchDepthFast     uint = 0x1000
	SearchDepthBalanced uint = 0x4000
	SearchDepthMax      uint = 0x10000
)
