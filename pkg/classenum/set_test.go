package classenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	assert.Equal(t, Set(0), Union())
	assert.Equal(t, Set(5), Union(1, 4))
	assert.Equal(t, Set(7), Union(1, 2, 4))
	assert.Equal(t, Set(3), Union(3, 1, 2))
}

func TestSet_With(t *testing.T) {
	s := Set(1)

	assert.Equal(t, Set(3), s.With(2))
	assert.Equal(t, Set(7), s.With(2, 4))
	assert.Equal(t, Set(1), s.With(), "no flags leaves the value unchanged")
	assert.Equal(t, Set(1), s, "receiver is never mutated")
}

func TestSet_Without(t *testing.T) {
	s := Set(7)

	assert.Equal(t, Set(5), s.Without(2))
	assert.Equal(t, Set(1), s.Without(2, 4))
	assert.Equal(t, Set(7), s.Without())
	assert.Equal(t, Set(7), s.Without(8), "clearing an absent flag is a no-op")
}

func TestSet_Has(t *testing.T) {
	s := Set(5) // bits 0 and 2

	assert.True(t, s.Has(1))
	assert.True(t, s.Has(4))
	assert.True(t, s.Has(1, 4), "all given flags must be present")
	assert.False(t, s.Has(2))
	assert.False(t, s.Has(1, 2), "one missing flag fails the check")
	assert.True(t, s.Has(), "the empty flag list is vacuously present")
}

func TestSet_Lacks(t *testing.T) {
	s := Set(5)

	assert.True(t, s.Lacks(2))
	assert.False(t, s.Lacks(1))
	assert.False(t, s.Lacks(1, 2), "one present flag fails the check")
	assert.True(t, s.Lacks(2, 8))
	assert.True(t, Set(0).Lacks(1, 2, 4))
}

func TestSet_HasLacksExclusivity(t *testing.T) {
	// For a single flag, exactly one of Has/Lacks holds for any value.
	for _, value := range []Set{0, 1, 2, 3, 5, 7} {
		for _, flag := range []Set{1, 2, 4} {
			assert.NotEqual(t, value.Has(flag), value.Lacks(flag),
				"value %d flag %d", value, flag)
		}
	}
}

func TestSet_IsEmpty(t *testing.T) {
	assert.True(t, Set(0).IsEmpty())
	assert.False(t, Set(1).IsEmpty())
}

func TestSet_ValueEquality(t *testing.T) {
	// Different combinations with the same union are the same value and hash
	// identically as map keys.
	a := Union(1, 4)
	b := Set(1).With(4)
	assert.Equal(t, a, b)

	seen := map[Set]int{}
	seen[a]++
	seen[b]++
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, seen[a])
}
