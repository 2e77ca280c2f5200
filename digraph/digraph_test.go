package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/digraph"
)

// TestNew_NegativeCount verifies that a negative vertex count is rejected.
func TestNew_NegativeCount(t *testing.T) {
	_, err := digraph.New(-1)
	assert.ErrorIs(t, err, digraph.ErrNegativeVertexCount)
}

// TestNew_Empty verifies that a zero-vertex graph is legal and inert.
func TestNew_Empty(t *testing.T) {
	g, err := digraph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.ArcCount())
}

// TestAddArc_OutOfRange ensures both endpoints are bounds-checked and the
// graph is not corrupted by a rejected insertion.
func TestAddArc_OutOfRange(t *testing.T) {
	g, err := digraph.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddArc(-1, 0, 1), digraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddArc(3, 0, 1), digraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddArc(0, -1, 1), digraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddArc(0, 3, 1), digraph.ErrVertexOutOfRange)

	assert.Equal(t, 0, g.ArcCount(), "rejected AddArc must not record an arc")
	assert.Empty(t, g.ArcsFrom(0))
}

// TestAddArc_InsertionOrder verifies ArcsFrom preserves insertion order and
// keeps parallel arcs.
func TestAddArc_InsertionOrder(t *testing.T) {
	g, err := digraph.New(2)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(0, 1, 7))
	require.NoError(t, g.AddArc(0, 1, 3)) // parallel arc, kept
	require.NoError(t, g.AddArc(0, 0, -2))

	want := []digraph.Arc{
		{From: 0, To: 1, Weight: 7},
		{From: 0, To: 1, Weight: 3},
		{From: 0, To: 0, Weight: -2},
	}
	assert.Equal(t, want, g.ArcsFrom(0))
	assert.Equal(t, 3, g.ArcCount())
	assert.Empty(t, g.ArcsFrom(1))
}

// TestArcsFrom_OutOfRange documents the nil contract for bad read indices.
func TestArcsFrom_OutOfRange(t *testing.T) {
	g, err := digraph.New(1)
	require.NoError(t, err)

	assert.Nil(t, g.ArcsFrom(-1))
	assert.Nil(t, g.ArcsFrom(1))
}

// TestNegativeWeights verifies negative arc weights are stored verbatim.
func TestNegativeWeights(t *testing.T) {
	g, err := digraph.New(2)
	require.NoError(t, err)

	require.NoError(t, g.AddArc(0, 1, -42))
	assert.Equal(t, int64(-42), g.ArcsFrom(0)[0].Weight)
}
