package history

import (
	"testing"

	"scribble/internal/drawable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stroke(points ...float64) *drawable.Stroke {
	s := drawable.NewStroke(2)
	for i := 0; i+1 < len(points); i += 2 {
		s.AddPoint(points[i], points[i+1])
	}
	return s
}

func TestEmptyHistory(t *testing.T) {
	h := New()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	d, ok := h.Undo()
	assert.False(t, ok)
	assert.Nil(t, d)

	d, ok = h.Redo()
	assert.False(t, ok)
	assert.Nil(t, d)
	assert.Empty(t, h.Committed())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		h := New()
		for i := 0; i < n; i++ {
			h.Commit(stroke(float64(i), 0, float64(i), 1))
		}
		before := h.Committed()

		undone, ok := h.Undo()
		require.True(t, ok)
		assert.Same(t, before[n-1], undone)

		redone, ok := h.Redo()
		require.True(t, ok)
		assert.Same(t, undone, redone)
		assert.Equal(t, before, h.Committed())
		assert.False(t, h.CanRedo())
	}
}

func TestCommitClearsRedo(t *testing.T) {
	h := New()
	h.Commit(stroke(0, 0, 1, 1))
	h.Commit(stroke(2, 2, 3, 3))
	h.Undo()
	h.Undo()
	require.True(t, h.CanRedo())

	h.Commit(stroke(4, 4, 5, 5))
	assert.False(t, h.CanRedo())
	assert.Empty(t, h.RedoBuffer())
	assert.Equal(t, 1, h.Len())
}

func TestRedoBufferOrder(t *testing.T) {
	h := New()
	a, b, c := stroke(0, 0), stroke(1, 1), stroke(2, 2)
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)

	h.Undo()
	h.Undo()

	redo := h.RedoBuffer()
	require.Len(t, redo, 2)
	assert.Same(t, b, redo[0])
	assert.Same(t, c, redo[1])

	d, _ := h.Redo()
	assert.Same(t, b, d)
	assert.Equal(t, []drawable.Drawable{a, b}, h.Committed())
}

func TestSequencesStayDisjoint(t *testing.T) {
	h := New()
	a, b := stroke(0, 0), stroke(1, 1)
	h.Commit(a)
	h.Commit(b)
	h.Undo()

	for _, d := range h.RedoBuffer() {
		assert.NotContains(t, h.Committed(), d)
	}
}

func TestClearIdempotent(t *testing.T) {
	h := New()
	h.Commit(stroke(0, 0, 1, 1))
	h.Commit(stroke(1, 1, 2, 2))
	h.Undo()

	h.Clear()
	assert.Empty(t, h.Committed())
	assert.Empty(t, h.RedoBuffer())
	h.Clear()
	assert.Empty(t, h.Committed())
	assert.Empty(t, h.RedoBuffer())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestCursorNeverCommitted(t *testing.T) {
	h := New()
	h.Commit(drawable.NewCursor(10))
	h.Commit(nil)
	assert.Equal(t, 0, h.Len())
}

func TestCommittedIsCopy(t *testing.T) {
	h := New()
	h.Commit(stroke(0, 0))
	got := h.Committed()
	got[0] = nil
	assert.NotNil(t, h.Committed()[0])
}

func TestCommitReleasesRedoBuffer(t *testing.T) {
	h := New()
	h.Commit(stroke(0, 0, 1, 1))
	h.Commit(stroke(2, 2, 3, 3))
	h.Undo()
	h.Undo()
	require.True(t, h.CanRedo())

	h.Commit(stroke(4, 4, 5, 5))
	assert.False(t, h.CanRedo())
	for i, d := range h.redo[:cap(h.redo)] {
		assert.Nil(t, d, "redo slot %d still holds a drawable", i)
	}
}
