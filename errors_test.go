package yaz0

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise the same wrapping EncodeYaz0WithStats/EncodeYay0WithStats's
// recover() handlers use to turn an allocation panic into ErrAllocationFailure,
// without having to actually exhaust memory in a test run.
func TestEncodeError_WrapsAllocationFailure(t *testing.T) {
	err := newEncodeError("encode_yaz0", 42, pkgerrors.Wrap(ErrAllocationFailure, "recovered: test"))

	require.ErrorIs(t, err, ErrAllocationFailure)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "encode_yaz0", encErr.Op)
	assert.Equal(t, 42, encErr.Offset)
	assert.Contains(t, encErr.Error(), "encode_yaz0")
}

func TestDecodeError_Unwraps(t *testing.T) {
	err := newDecodeError("decode_yay0", 7, ErrTruncatedInput)

	require.ErrorIs(t, err, ErrTruncatedInput)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 7, decErr.Offset)
}
