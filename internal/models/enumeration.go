package models

// FlagAssignment binds one implementer to its bit position
type FlagAssignment struct {
	DisplayName string            // flag display name (the implementer's simple name)
	ConstName   string            // generated constant identifier
	Flag        uint32            // assigned bit value
	Class       ImplementingClass // the implementer behind this flag
}

// EnumerationSpec carries everything needed to render one enumeration artifact.
// Flags are in registry order: display names sorted lexicographically, bit i
// assigned 1<<i.
type EnumerationSpec struct {
	Marker   MarkerInterface  // the marker this enumeration was derived from
	EnumName string           // enumeration type name
	PkgPath  string           // import path the artifact lands in
	PkgName  string           // package name the artifact declares
	Dir      string           // directory the artifact is written to
	Flags    []FlagAssignment // flag assignments in registry order
	Full     uint32           // union of all assigned flags
}

// Size returns the number of flags in the enumeration
func (e EnumerationSpec) Size() int {
	return len(e.Flags)
}

// DisplayNames returns the flag display names in registry order
func (e EnumerationSpec) DisplayNames() []string {
	names := make([]string, len(e.Flags))
	for i, flag := range e.Flags {
		names[i] = flag.DisplayName
	}
	return names
}
