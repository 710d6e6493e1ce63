package models

import "go/token"

// ImplementingClass represents one concrete type that satisfies a marker interface
type ImplementingClass struct {
	Name            string // simple type name
	PkgPath         string // import path of the declaring package
	PkgName         string // name of the declaring package
	RequiresPointer bool   // interface satisfied only through *T
	File            string // file containing the declaration
	Line            int    // line of the declaration
}

// FQN returns the fully qualified type name used for identity and dedup
func (c ImplementingClass) FQN() string {
	if c.PkgPath == "" {
		return c.Name
	}
	return c.PkgPath + "." + c.Name
}

// IsExported reports whether the class name is exported
func (c ImplementingClass) IsExported() bool {
	return token.IsExported(c.Name)
}
