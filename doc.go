// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

/*
Package yaz0 implements the Yaz0 and Yay0 compression codecs used for
Nintendo GameCube/Wii game assets.

Both codecs share one LZ-style back-reference matching engine with a
one-step lazy-match lookahead; they differ only in how the compressed
stream is laid out. Yaz0 interleaves a one-byte control word with its
literal/reference payload every 8 blocks. Yay0 instead writes three
independent streams (a 32-bit mask stream, a 16-bit link stream, and a raw
chunk stream) and a small header of stream offsets.

# Encode

	out, err := yaz0.EncodeYaz0(data, yaz0.DefaultEncodeOptions(yaz0.SearchDepthBalanced))
	out, err := yaz0.EncodeYay0(data, yaz0.DefaultEncodeOptions(yaz0.SearchDepthBalanced))

SearchDepth trades compute for compression ratio up to 0x1000, the largest
distance either format can encode; deeper values search the same window as
0x1000, so SearchDepthFast, SearchDepthBalanced, and SearchDepthMax all
produce the same output. It has no effect on decoder compatibility.

# Decode

	out, err := yaz0.DecodeYaz0(compressed, yaz0.DefaultDecodeOptions())
	out, err := yaz0.DecodeYay0(compressed, yaz0.DefaultDecodeOptions())

Decoding never depends on the options used to encode; the uncompressed size
is carried in the stream header.
*/
package yaz0
