// SPDX-License-Identifier: MIT
// Copyright (c) 2026 kesho-dev
// Source: github.com/kesho-dev/yaz0yay0

package yaz0

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors, checkable with errors.Is against the wrapped values
// DecodeError/EncodeError carry.
var (
	// ErrInvalidHeader is returned when a compressed buffer is shorter than
	// the 16-byte header both codecs require.
	ErrInvalidHeader = errors.New("yaz0: invalid header")
	// ErrTruncatedInput is returned when the decoder exhausts its source
	// before producing uncompSize output bytes.
	ErrTruncatedInput = errors.New("yaz0: truncated input")
	// ErrCorruptReference is returned when a back-reference's distance
	// would read before the start of the output buffer.
	ErrCorruptReference = errors.New("yaz0: corrupt back-reference")
	// ErrAllocationFailure is returned when an output buffer of the
	// required size could not be obtained.
	ErrAllocationFailure = errors.New("yaz0: allocation failure")
	// ErrBadMagic is returned in DecodeOptions.Strict mode when the magic
	// bytes don't match the codec being decoded.
	ErrBadMagic = errors.New("yaz0: bad magic")
)

// DecodeError annotates a sentinel with the stream position it was detected at.
type DecodeError struct {
	Op     string // "decode_yaz0" or "decode_yay0"
	Offset int    // byte offset in the compressed source, or dst_off for overrun checks
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(op string, offset int, err error) error {
	return pkgerrors.WithStack(&DecodeError{Op: op, Offset: offset, Err: err})
}

// EncodeError annotates a sentinel with the input cursor an encode call failed at.
type EncodeError struct {
	Op     string
	Offset int
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func newEncodeError(op string, offset int, err error) error {
	return pkgerrors.WithStack(&EncodeError{Op: op, Offset: offset, Err: err})
}
