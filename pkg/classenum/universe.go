package classenum

import (
	"sort"
	"strings"
)

// FlagDef is one named flag of a universe.
type FlagDef struct {
	Name string
	Flag Set
}

// Universe is the closed set of named flags for one class enumeration. Flags
// are assigned by the ascending sort of their names, so a universe built from
// the same name set is always bit-identical regardless of input order. A
// Universe is immutable after construction and safe for concurrent readers.
type Universe struct {
	defs   []FlagDef
	byName map[string]Set
	full   Set
}

// NewUniverse builds a universe from the given flag names. Names are sorted
// ascending and assigned flags 1<<0, 1<<1, ... in that order. It returns a
// DuplicateNameError when a name appears twice and a CapacityError when more
// than MaxFlags names are given.
func NewUniverse(names ...string) (*Universe, error) {
	if len(names) > MaxFlags {
		return nil, &CapacityError{Count: len(names)}
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	u := &Universe{
		defs:   make([]FlagDef, 0, len(sorted)),
		byName: make(map[string]Set, len(sorted)),
	}
	for i, name := range sorted {
		if _, exists := u.byName[name]; exists {
			return nil, &DuplicateNameError{Name: name}
		}
		flag := Set(1) << i
		u.defs = append(u.defs, FlagDef{Name: name, Flag: flag})
		u.byName[name] = flag
		u.full |= flag
	}
	return u, nil
}

// MustUniverse is NewUniverse that panics on error. Generated code uses it
// with names the generation pass has already validated.
func MustUniverse(names ...string) *Universe {
	u, err := NewUniverse(names...)
	if err != nil {
		panic(err)
	}
	return u
}

// Size returns the number of flags in the universe.
func (u *Universe) Size() int {
	return len(u.defs)
}

// Full returns the union of every flag in the universe.
func (u *Universe) Full() Set {
	return u.full
}

// Inverse returns the complement of s relative to the universe. Bits outside
// the universe are never set in the result.
func (u *Universe) Inverse(s Set) Set {
	return u.full &^ s
}

// Contains reports whether every bit of s belongs to the universe.
func (u *Universe) Contains(s Set) bool {
	return s&^u.full == 0
}

// Flag returns the flag registered under name.
func (u *Universe) Flag(name string) (Set, bool) {
	flag, ok := u.byName[name]
	return flag, ok
}

// Flags returns every flag definition in bit-assignment order.
func (u *Universe) Flags() []FlagDef {
	out := make([]FlagDef, len(u.defs))
	copy(out, u.defs)
	return out
}

// Names returns the names of the flags set in s, in bit-assignment order.
// Bits outside the universe are ignored.
func (u *Universe) Names(s Set) []string {
	names := make([]string, 0, len(u.defs))
	for _, def := range u.defs {
		if s&def.Flag != 0 {
			names = append(names, def.Name)
		}
	}
	return names
}

// Format returns the names of the flags set in s joined by ", ", in
// bit-assignment order. The empty set formats as the empty string.
func (u *Universe) Format(s Set) string {
	return strings.Join(u.Names(s), ", ")
}
