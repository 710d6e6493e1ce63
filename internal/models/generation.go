package models

import "strings"

// ArtifactPrefix starts every file name flagen owns inside scanned packages.
// The scanner and resolver skip these files so a later pass never treats
// previous output as input, and the cleaner deletes them by this prefix.
const ArtifactPrefix = "autogen_"

// GeneratedHeader is the first line of every generated artifact. The cleaner
// refuses to delete an autogen_ file that does not carry it.
const GeneratedHeader = "// Code generated by flagen. DO NOT EDIT."

// MarkerDocFile is the name of the per-package directive documentation artifact.
const MarkerDocFile = ArtifactPrefix + "marker.go"

// IsArtifactFile reports whether basename names a file flagen owns.
func IsArtifactFile(basename string) bool {
	return strings.HasPrefix(basename, ArtifactPrefix) && strings.HasSuffix(basename, ".go")
}

// GeneratedArtifact represents one generated source file ready to write
type GeneratedArtifact struct {
	PackageName string // name of the package the artifact belongs to
	PackagePath string // import path of that package
	FilePath    string // path where the artifact file should be written
	Content     string // generated Go code content
	EnumName    string // enumeration the artifact carries (empty for the marker doc file)
}
