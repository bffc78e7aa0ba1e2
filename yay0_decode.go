// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

import "encoding/binary"

// DecodeYay0 decompresses a Yay0 container (spec.md §4.6).
// opts may be nil, equivalent to DefaultDecodeOptions().
func DecodeYay0(src []byte, opts *DecodeOptions) ([]byte, error) {
	if len(src) < headerSize {
		return nil, newDecodeError("decode_yay0", len(src), ErrInvalidHeader)
	}
	if opts.strict() && [4]byte(src[0:4]) != magicYay0 {
		return nil, newDecodeError("decode_yay0", 0, ErrBadMagic)
	}

	uncompSize := binary.BigEndian.Uint32(src[4:8])
	linkOff := int(binary.BigEndian.Uint32(src[8:12]))
	chunkOff := int(binary.BigEndian.Uint32(src[12:16]))

	dst := make([]byte, uncompSize)

	maskOff := headerSize
	linkPos := linkOff
	chunkPos := chunkOff
	dstOff := 0
	var ctrl uint32
	bitsLeft := 0

	for dstOff < len(dst) {
		if bitsLeft == 0 {
			if maskOff+4 > len(src) {
				return nil, newDecodeError("decode_yay0", maskOff, ErrTruncatedInput)
			}
			ctrl = binary.BigEndian.Uint32(src[maskOff : maskOff+4])
			maskOff += 4
			bitsLeft = 32
		}

		if ctrl&0x80000000 != 0 {
			if chunkPos >= len(src) {
				return nil, newDecodeError("decode_yay0", chunkPos, ErrTruncatedInput)
			}
			dst[dstOff] = src[chunkPos]
			chunkPos++
			dstOff++
		} else {
			if linkPos+2 > len(src) {
				return nil, newDecodeError("decode_yay0", linkPos, ErrTruncatedInput)
			}
			link := binary.BigEndian.Uint16(src[linkPos : linkPos+2])
			linkPos += 2

			distance := int(link & 0x0FFF)
			lengthNibble := int(link >> 12)

			var length int
			if lengthNibble == 0 {
				if chunkPos >= len(src) {
					return nil, newDecodeError("decode_yay0", chunkPos, ErrTruncatedInput)
				}
				length = int(src[chunkPos]) + yay0LongLenBase
				chunkPos++
			} else {
				length = lengthNibble + 2
			}

			if err := copyBackRef(dst, dstOff, distance+1, length); err != nil {
				return nil, newDecodeError("decode_yay0", dstOff, err)
			}
			dstOff += length
		}

		ctrl <<= 1
		bitsLeft--
	}

	return dst, nil
}
