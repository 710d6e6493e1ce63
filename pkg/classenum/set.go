// Package classenum provides the bitmask algebra behind generated class
// enumerations. The algebra is defined once here: a Set is a combination of
// flags, a Universe is the closed, named flag space of one enumeration.
// Generated code instantiates a Universe per marker; the same types can be
// used directly when code generation is not wanted.
package classenum

// MaxFlags is the number of flags a single universe can hold. The top bit of
// the 32-bit word stays clear so Full survives round trips through signed
// 32-bit encodings.
const MaxFlags = 31

// Set is an immutable combination of flags drawn from one universe. The zero
// value is the empty set. Equality and map hashing operate on the backing
// integer.
type Set uint32

// Union returns the union of the given sets.
func Union(sets ...Set) Set {
	var out Set
	for _, s := range sets {
		out |= s
	}
	return out
}

// With returns a copy of s with the given flags set.
func (s Set) With(flags ...Set) Set {
	return s | Union(flags...)
}

// Without returns a copy of s with the given flags cleared.
func (s Set) Without(flags ...Set) Set {
	return s &^ Union(flags...)
}

// Has reports whether s contains every one of the given flags.
func (s Set) Has(flags ...Set) bool {
	u := Union(flags...)
	return s&u == u
}

// Lacks reports whether s contains none of the given flags.
func (s Set) Lacks(flags ...Set) bool {
	return s&Union(flags...) == 0
}

// IsEmpty reports whether no flag is set.
func (s Set) IsEmpty() bool {
	return s == 0
}
