package commands

import (
	"testing"

	"github.com/0wafi0/ng-snake/session"
	"github.com/stretchr/testify/require"
)

func newHistory(frames int) *session.History {
	h := &session.History{}
	for i := 0; i < frames; i++ {
		h.Append(session.Frame{Turn: int64(i)})
	}
	return h
}

func TestMoveFrameForwards(t *testing.T) {
	h := newHistory(3)

	idx, f, done := moveFrameForwards(0, h)
	require.Equal(t, 1, idx)
	require.Equal(t, int64(1), f.Turn)
	require.False(t, done)

	idx, f, done = moveFrameForwards(idx, h)
	require.Equal(t, 2, idx)
	require.Equal(t, int64(2), f.Turn)
	require.False(t, done)

	idx, f, done = moveFrameForwards(idx, h)
	require.Equal(t, 2, idx)
	require.Equal(t, int64(2), f.Turn)
	require.True(t, done)
}

func TestMoveFrameBackwards(t *testing.T) {
	h := newHistory(3)

	idx, f := moveFrameBackwards(2, h)
	require.Equal(t, 1, idx)
	require.Equal(t, int64(1), f.Turn)

	idx, f = moveFrameBackwards(0, h)
	require.Equal(t, 0, idx)
	require.Equal(t, int64(0), f.Turn)
}
