package configtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTree(t *testing.T, raw map[string]any) *Node {
	t.Helper()
	tree, err := NewNodeFrom(raw, "")
	require.NoError(t, err)
	return tree
}

func TestDiff_SingleChangedKey(t *testing.T) {
	// Arrange
	a := mustTree(t, map[string]any{"x": 5, "same": "v"})
	b := mustTree(t, map[string]any{"x": 6, "same": "v"})

	// Act
	changes := a.Diff(b)

	// Assert
	require.Len(t, changes, 1)
	assert.Equal(t, "x", changes[0].Key)
	assert.Equal(t, int64(5), changes[0].Old.Int())
	assert.Equal(t, int64(6), changes[0].New.Int())
}

func TestDiff_KeysOnlyInOtherAreIgnored(t *testing.T) {
	// Arrange
	a := mustTree(t, map[string]any{"x": 5})
	b := mustTree(t, map[string]any{"x": 5, "extra": "only in b"})

	// Act
	changes := a.Diff(b)

	// Assert
	assert.Empty(t, changes)
}

func TestDiff_KeysMissingFromOtherAreSkipped(t *testing.T) {
	// Arrange
	a := mustTree(t, map[string]any{"x": 5, "gone": 1})
	b := mustTree(t, map[string]any{"x": 5})

	// Act
	changes := a.Diff(b)

	// Assert
	assert.Empty(t, changes)
}

func TestDiff_StrictTypedEquality(t *testing.T) {
	tests := []struct {
		name     string
		oldVal   any
		newVal   any
		expected int // number of diff entries
	}{
		{"int vs equal string", 12, "12", 1},
		{"int vs equal float", 12, 12.0, 1},
		{"equal ints", 12, 12, 0},
		{"equal strings", "12", "12", 0},
		{"equal floats", 1.5, 1.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			a := mustTree(t, map[string]any{"k": tt.oldVal})
			b := mustTree(t, map[string]any{"k": tt.newVal})

			// Act
			changes := a.Diff(b)

			// Assert
			assert.Len(t, changes, tt.expected)
		})
	}
}

func TestDiff_NestedLeaves(t *testing.T) {
	// Arrange
	a := mustTree(t, map[string]any{"srv": map[string]any{"port": 80, "host": "a"}})
	b := mustTree(t, map[string]any{"srv": map[string]any{"port": 81, "host": "a"}})

	// Act
	changes := a.Diff(b)

	// Assert
	require.Len(t, changes, 1)
	assert.Equal(t, "srv/port", changes[0].Key)
}

func TestApplyDiff_ReconcilesExistingKeys(t *testing.T) {
	// Arrange
	a := mustTree(t, map[string]any{"x": 5, "y": "old", "only_a": 1})
	b := mustTree(t, map[string]any{"x": 6, "y": "new", "only_b": 2})

	// Act
	err := a.ApplyDiff(a.Diff(b))

	// Assert: A now equals B restricted to keys originally in A
	require.NoError(t, err)
	for _, key := range []string{"x", "y"} {
		av, err := a.Get(key)
		require.NoError(t, err)
		bv, err := b.Get(key)
		require.NoError(t, err)
		assert.True(t, av.Equal(bv), "key %q should match after ApplyDiff", key)
	}

	onlyA, err := a.Get("only_a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), onlyA.Int())

	_, err = a.Get("only_b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyDiff_LaterEntriesWin(t *testing.T) {
	// Arrange
	tree := mustTree(t, map[string]any{"k": 0})
	first, err := wrap(1, "k")
	require.NoError(t, err)
	second, err := wrap(2, "k")
	require.NoError(t, err)

	// Act
	err = tree.ApplyDiff([]Change{
		{Key: "k", New: &first},
		{Key: "k", New: &second},
	})

	// Assert
	require.NoError(t, err)
	val, err := tree.Get("k")
	require.NoError(t, err)
	assert.Equal(t, int64(2), val.Int())
}

func TestApplyDiff_SkipsEmptyEntries(t *testing.T) {
	// Arrange
	tree := mustTree(t, map[string]any{"k": 1})
	newVal, err := wrap(9, "k")
	require.NoError(t, err)

	// Act
	err = tree.ApplyDiff([]Change{
		{Key: "", New: &newVal},
		{Key: "k", New: nil},
	})

	// Assert: nothing applied
	require.NoError(t, err)
	val, err := tree.Get("k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), val.Int())
}

func TestMerge_OverridesAndPreserves(t *testing.T) {
	// Arrange
	tree := mustTree(t, map[string]any{
		"srv":  map[string]any{"host": "a", "port": 80},
		"keep": "untouched",
	})

	// Act
	err := tree.Merge(map[string]any{
		"srv": map[string]any{"port": 81},
		"new": "added",
	})

	// Assert
	require.NoError(t, err)

	port, err := tree.Int64("srv/port")
	require.NoError(t, err)
	assert.Equal(t, int64(81), port)

	host, err := tree.Str("srv/host")
	require.NoError(t, err)
	assert.Equal(t, "a", host)

	keep, err := tree.Str("keep")
	require.NoError(t, err)
	assert.Equal(t, "untouched", keep)

	added, err := tree.Str("new")
	require.NoError(t, err)
	assert.Equal(t, "added", added)
}

func TestValueEqual_ListsAndSubtrees(t *testing.T) {
	// Arrange
	a := mustTree(t, map[string]any{"l": []any{1, "x"}, "t": map[string]any{"k": 1}})
	b := mustTree(t, map[string]any{"l": []any{1, "x"}, "t": map[string]any{"k": 1}})
	c := mustTree(t, map[string]any{"l": []any{1, "y"}, "t": map[string]any{"k": 2}})

	av, _ := a.Get("l")
	bv, _ := b.Get("l")
	cv, _ := c.Get("l")
	at, _ := a.Get("t")
	bt, _ := b.Get("t")
	ct, _ := c.Get("t")

	// Assert
	assert.True(t, av.Equal(bv))
	assert.False(t, av.Equal(cv))
	assert.True(t, at.Equal(bt))
	assert.False(t, at.Equal(ct))
}
