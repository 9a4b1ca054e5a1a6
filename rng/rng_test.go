package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/awpgen/rng"
)

func TestDerive_Deterministic(t *testing.T) {
	a := rng.Derive(42, 7, 0)
	assert.Equal(t, a, rng.Derive(42, 7, 0))
	assert.NotEqual(t, a, rng.Derive(42, 8, 0))
	assert.NotEqual(t, a, rng.Derive(42, 7, 1))
	assert.NotEqual(t, a, rng.Derive(43, 7, 0))
	assert.GreaterOrEqual(t, a, int64(0))
}

func TestSource_Reproducible(t *testing.T) {
	s1, s2 := rng.New(99), rng.New(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, s1.IntRange(3, 9), s2.IntRange(3, 9))
	}
	assert.Equal(t, int64(99), s1.Seed())
}

func TestIntRange_Bounds(t *testing.T) {
	s := rng.New(1)
	for i := 0; i < 500; i++ {
		v := s.IntRange(2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
	}
	assert.Equal(t, 5, s.IntRange(5, 5))
	assert.Equal(t, 5, s.IntRange(5, 1))
}

func TestSample_WithoutReplacement(t *testing.T) {
	s := rng.New(3)
	items := []string{"a", "b", "c", "d", "e"}
	got := rng.Sample(s, items, 3)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %q", v)
		seen[v] = true
	}
	assert.Len(t, rng.Sample(s, items, 10), 5)
	assert.Nil(t, rng.Sample(s, items, 0))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items, "input untouched")
}

func TestWeightedIndex(t *testing.T) {
	s := rng.New(5)
	assert.Equal(t, -1, rng.WeightedIndex(s, []float64{0, -1}))
	for i := 0; i < 200; i++ {
		idx := rng.WeightedIndex(s, []float64{0, 2, 0, 1})
		require.Contains(t, []int{1, 3}, idx)
	}
}

func TestChance_Edges(t *testing.T) {
	s := rng.New(8)
	assert.False(t, s.Chance(0))
	assert.True(t, s.Chance(1))
}
