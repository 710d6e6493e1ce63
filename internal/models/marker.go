package models

import "github.com/flagen/flagen/internal/annotations"

// MarkerInterface represents a marker interface discovered in the scanned program
type MarkerInterface struct {
	Name       string                        // interface name as declared
	PkgPath    string                        // import path of the declaring package
	PkgName    string                        // name of the declaring package
	Dir        string                        // directory holding the declaring file
	File       string                        // file containing the declaration
	Line       int                           // line of the declaration
	Annotation *annotations.ParsedAnnotation // the parsed //flagen::marker annotation
}

// FQN returns the fully qualified interface name used for identity
func (m MarkerInterface) FQN() string {
	if m.PkgPath == "" {
		return m.Name
	}
	return m.PkgPath + "." + m.Name
}

// NameOverride returns the -Name= override from the marker annotation, if any
func (m MarkerInterface) NameOverride() string {
	if m.Annotation == nil {
		return ""
	}
	return m.Annotation.GetString("Name")
}
