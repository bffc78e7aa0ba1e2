package yaz0

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyBackRef_RunFill(t *testing.T) {
	dst := make([]byte, 10)
	dst[0] = 0xAB

	require.NoError(t, copyBackRef(dst, 1, 1, 9))
	assert.True(t, bytes.Equal(dst, bytes.Repeat([]byte{0xAB}, 10)))
}

func TestCopyBackRef_NonOverlapping(t *testing.T) {
	dst := make([]byte, 8)
	copy(dst, []byte{1, 2, 3, 4})

	require.NoError(t, copyBackRef(dst, 4, 4, 4))
	assert.Equal(t, []byte{1, 2, 3, 4, 1, 2, 3, 4}, dst)
}

func TestCopyBackRef_RejectsNegativeSource(t *testing.T) {
	dst := make([]byte, 10)
	err := copyBackRef(dst, 2, 5, 3)
	require.ErrorIs(t, err, ErrCorruptReference)
}

func TestCopyBackRef_RejectsOverrun(t *testing.T) {
	dst := make([]byte, 4)
	err := copyBackRef(dst, 2, 1, 10)
	require.ErrorIs(t, err, ErrTruncatedInput)
}
