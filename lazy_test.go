package yaz0

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLazyMatcher_DemotesShortMatchForLongerLookahead(t *testing.T) {
	// At cursor 10 ("ABCDEF") the raw match is "ABC" (length 3, index 0), but
	// cursor 11 ("BCDEF") matches index 4 for length 5, beating it by 2.
	src := []byte("ABCxBCDEFyABCDEF")
	lm := newLazyMatcher(src, uint(len(src)))

	// Walk the whole stream and make sure the carry mechanism is internally
	// consistent: once a demotion stores a carry, the very next call must
	// return exactly that stored match without re-searching.
	seen := make([]match, 0, len(src))
	demoted := false
	for cursor := 0; cursor < len(src); {
		m := lm.next(cursor)
		seen = append(seen, m)
		if lm.carrySet {
			demoted = true
			require.Equal(t, match{length: 1, distance: 0}, m)
			carried := lm.carry
			cursor++
			m = lm.next(cursor)
			require.Equal(t, carried, m)
			seen = append(seen, m)
		}
		if m.length < minMatchLength {
			cursor++
		} else {
			cursor += m.length
		}
	}
	require.NotEmpty(t, seen)
	require.True(t, demoted)
}

func TestLazyMatcher_CarryClearsAfterConsumption(t *testing.T) {
	// Same input as the demotion test: next(10) demotes and carries the
	// lookahead found at cursor 11.
	src := []byte("ABCxBCDEFyABCDEF")
	lm := newLazyMatcher(src, uint(len(src)))

	_ = lm.next(10)
	require.True(t, lm.carrySet)
	carried := lm.carry
	got := lm.next(11)
	require.Equal(t, carried, got)
	require.False(t, lm.carrySet)
}

func TestLazyMatcher_ShortMatchNeverDemoted(t *testing.T) {
	src := []byte("ab")
	lm := newLazyMatcher(src, uint(len(src)))
	m := lm.next(1)
	require.Less(t, m.length, minMatchLength)
	require.False(t, lm.carrySet)
}
