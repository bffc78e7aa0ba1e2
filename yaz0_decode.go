// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

import "encoding/binary"

// DecodeYaz0 decompresses a Yaz0 container (spec.md §4.5).
// opts may be nil, equivalent to DefaultDecodeOptions().
func DecodeYaz0(src []byte, opts *DecodeOptions) ([]byte, error) {
	if len(src) < headerSize {
		return nil, newDecodeError("decode_yaz0", len(src), ErrInvalidHeader)
	}
	if opts.strict() && [4]byte(src[0:4]) != magicYaz0 {
		return nil, newDecodeError("decode_yaz0", 0, ErrBadMagic)
	}

	uncompSize := binary.BigEndian.Uint32(src[4:8])
	dst := make([]byte, uncompSize)

	srcOff := headerSize
	dstOff := 0
	var ctrl byte
	bitsLeft := 0

	for dstOff < len(dst) {
		if bitsLeft == 0 {
			if srcOff >= len(src) {
				return nil, newDecodeError("decode_yaz0", srcOff, ErrTruncatedInput)
			}
			ctrl = src[srcOff]
			srcOff++
			bitsLeft = 8
		}

		if ctrl&0x80 != 0 {
			if srcOff >= len(src) {
				return nil, newDecodeError("decode_yaz0", srcOff, ErrTruncatedInput)
			}
			dst[dstOff] = src[srcOff]
			srcOff++
			dstOff++
		} else {
			if srcOff+2 > len(src) {
				return nil, newDecodeError("decode_yaz0", srcOff, ErrTruncatedInput)
			}
			b0 := src[srcOff]
			b1 := src[srcOff+1]
			srcOff += 2

			distance := int(b0&0x0F)<<8 | int(b1)
			lengthNibble := int(b0 >> 4)

			var length int
			if lengthNibble == 0 {
				if srcOff >= len(src) {
					return nil, newDecodeError("decode_yaz0", srcOff, ErrTruncatedInput)
				}
				length = int(src[srcOff]) + yaz0LongLenBase
				srcOff++
			} else {
				length = lengthNibble + 2
			}

			if err := copyBackRef(dst, dstOff, distance+1, length); err != nil {
				return nil, newDecodeError("decode_yaz0", dstOff, err)
			}
			dstOff += length
		}

		ctrl <<= 1
		bitsLeft--
	}

	return dst, nil
}
