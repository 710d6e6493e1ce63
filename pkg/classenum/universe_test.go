package classenum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniverse_AssignsSortedPowersOfTwo(t *testing.T) {
	u, err := NewUniverse("Charlie", "Alpha", "Bravo")
	require.NoError(t, err)

	alpha, ok := u.Flag("Alpha")
	require.True(t, ok)
	bravo, ok := u.Flag("Bravo")
	require.True(t, ok)
	charlie, ok := u.Flag("Charlie")
	require.True(t, ok)

	assert.Equal(t, Set(1), alpha)
	assert.Equal(t, Set(2), bravo)
	assert.Equal(t, Set(4), charlie)
	assert.Equal(t, Set(7), u.Full())
	assert.Equal(t, 3, u.Size())
}

func TestNewUniverse_IdempotentAcrossInputOrder(t *testing.T) {
	orders := [][]string{
		{"Alpha", "Bravo", "Charlie"},
		{"Charlie", "Bravo", "Alpha"},
		{"Bravo", "Alpha", "Charlie"},
	}

	for _, names := range orders {
		t.Run(fmt.Sprintf("%v", names), func(t *testing.T) {
			u, err := NewUniverse(names...)
			require.NoError(t, err)

			defs := u.Flags()
			require.Len(t, defs, 3)
			assert.Equal(t, FlagDef{Name: "Alpha", Flag: 1}, defs[0])
			assert.Equal(t, FlagDef{Name: "Bravo", Flag: 2}, defs[1])
			assert.Equal(t, FlagDef{Name: "Charlie", Flag: 4}, defs[2])
		})
	}
}

func TestNewUniverse_RejectsDuplicateName(t *testing.T) {
	u, err := NewUniverse("Alpha", "Bravo", "Alpha")
	require.Error(t, err)
	assert.Nil(t, u)

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Alpha", dup.Name)
}

func TestNewUniverse_RejectsOverCapacity(t *testing.T) {
	names := make([]string, MaxFlags+1)
	for i := range names {
		names[i] = fmt.Sprintf("Impl%02d", i)
	}

	u, err := NewUniverse(names...)
	require.Error(t, err)
	assert.Nil(t, u)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, MaxFlags+1, capErr.Count)
}

func TestNewUniverse_AtCapacity(t *testing.T) {
	names := make([]string, MaxFlags)
	for i := range names {
		names[i] = fmt.Sprintf("Impl%02d", i)
	}

	u, err := NewUniverse(names...)
	require.NoError(t, err)
	assert.Equal(t, MaxFlags, u.Size())

	// All 31 flags are distinct powers of two and the top bit stays clear.
	assert.Equal(t, Set(1)<<MaxFlags-1, u.Full())
	for i, def := range u.Flags() {
		assert.Equal(t, Set(1)<<i, def.Flag)
	}
}

func TestNewUniverse_Empty(t *testing.T) {
	u, err := NewUniverse()
	require.NoError(t, err)

	assert.Equal(t, 0, u.Size())
	assert.Equal(t, Set(0), u.Full())
	assert.Equal(t, "", u.Format(0))
}

func TestMustUniverse_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustUniverse("Alpha", "Alpha")
	})
	assert.NotPanics(t, func() {
		MustUniverse("Alpha", "Bravo")
	})
}

func TestUniverse_Inverse(t *testing.T) {
	u, err := NewUniverse("Alpha", "Bravo", "Charlie")
	require.NoError(t, err)

	bravo, _ := u.Flag("Bravo")
	alpha, _ := u.Flag("Alpha")
	charlie, _ := u.Flag("Charlie")

	// Complement is relative to the universe, not the machine word.
	assert.Equal(t, Union(alpha, charlie), u.Inverse(bravo))
	assert.Equal(t, Set(5), u.Inverse(bravo))
	assert.Equal(t, u.Full(), u.Inverse(0))
	assert.Equal(t, Set(0), u.Inverse(u.Full()))
}

func TestUniverse_DoubleInverse(t *testing.T) {
	u, err := NewUniverse("Alpha", "Bravo", "Charlie")
	require.NoError(t, err)

	for _, s := range []Set{0, 1, 2, 3, 4, 5, 6, 7} {
		assert.Equal(t, s, u.Inverse(u.Inverse(s)), "value %d", s)
	}
}

func TestUniverse_Contains(t *testing.T) {
	u, err := NewUniverse("Alpha", "Bravo")
	require.NoError(t, err)

	assert.True(t, u.Contains(0))
	assert.True(t, u.Contains(3))
	assert.False(t, u.Contains(4))
	assert.False(t, u.Contains(5))
}

func TestUniverse_NamesAndFormat(t *testing.T) {
	u, err := NewUniverse("Charlie", "Alpha", "Bravo")
	require.NoError(t, err)

	alpha, _ := u.Flag("Alpha")
	charlie, _ := u.Flag("Charlie")

	// Registry order, independent of how the set was assembled.
	assert.Equal(t, []string{"Alpha", "Charlie"}, u.Names(Union(charlie, alpha)))
	assert.Equal(t, "Alpha, Charlie", u.Format(Union(charlie, alpha)))
	assert.Equal(t, "Alpha, Bravo, Charlie", u.Format(u.Full()))
	assert.Empty(t, u.Names(0))

	// Bits outside the universe are ignored.
	assert.Equal(t, []string{"Alpha"}, u.Names(alpha|Set(1)<<10))
}

func TestUniverse_FlagsIsACopy(t *testing.T) {
	u, err := NewUniverse("Alpha", "Bravo")
	require.NoError(t, err)

	defs := u.Flags()
	defs[0].Name = "mutated"

	fresh := u.Flags()
	assert.Equal(t, "Alpha", fresh[0].Name)
}

func TestUnknownImplementerError(t *testing.T) {
	err := NewUnknownImplementerError("PrerequisiteEnumeration", struct{ X int }{})
	assert.Contains(t, err.Error(), "PrerequisiteEnumeration")
	assert.Contains(t, err.Error(), "not a registered implementer")

	nilErr := NewUnknownImplementerError("PrerequisiteEnumeration", nil)
	assert.Equal(t, "<nil>", nilErr.TypeName)
}
