package errors

import (
	"fmt"
	"strings"
)

// NewDirectiveSyntaxError reports a flagen directive comment that could not
// be parsed. Callers decide whether to treat it as a warning (fail-open
// scanning) or surface it.
func NewDirectiveSyntaxError(raw string, loc SourceLocation, cause error) *BaseError {
	return Wrap(SyntaxErrorCode, fmt.Sprintf("malformed flagen directive %q", raw), cause).
		WithLocation(loc).
		WithContext("directive", raw).
		WithSuggestion("Expected the form //flagen::marker [-Name=CustomName] or //flagen::exclude")
}

// NewUnknownDirectiveError reports a directive with the flagen prefix but an
// unregistered directive name.
func NewUnknownDirectiveError(name string, known []string, loc SourceLocation) *BaseError {
	return Newf(ResolutionErrorCode, "unknown flagen directive %q", name).
		WithLocation(loc).
		WithContext("directive", name).
		WithSuggestion(fmt.Sprintf("Known directives: %s", strings.Join(known, ", ")))
}

// NewDirectiveValidationError reports a directive whose parameters fail
// schema validation.
func NewDirectiveValidationError(name, detail string, loc SourceLocation) *BaseError {
	return Newf(ValidationErrorCode, "invalid %s directive: %s", name, detail).
		WithLocation(loc).
		WithContext("directive", name)
}

// NewLoadError reports a failure to load the target packages into a snapshot.
func NewLoadError(patterns []string, cause error) *BaseError {
	return Wrap(ResolutionErrorCode, "failed to load packages", cause).
		WithContext("patterns", strings.Join(patterns, " ")).
		WithSuggestion("Check that the patterns name packages inside the module").
		WithSuggestion("Run 'go build ./...' to surface compile errors first")
}

// NewModuleResolutionError reports a failure to determine the module name.
func NewModuleResolutionError(dir string, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, "unable to resolve module name", cause).
		WithContext("directory", dir).
		WithSuggestion("Run flagen inside a Go module or pass --module explicitly")
}

// NewNameCollisionError reports two implementers that reduce to the same
// identifier in the generated artifact. Registries never silently overwrite,
// so the marker's generation aborts with both declarations named.
func NewNameCollisionError(enumName, identifier, first, second string) *BaseError {
	return Newf(CollisionErrorCode,
		"implementers %s and %s of %s collide on generated identifier %q",
		first, second, enumName, identifier).
		WithContext("enumeration", enumName).
		WithContext("identifier", identifier).
		WithContext("first", first).
		WithContext("second", second).
		WithSuggestion("Rename one of the colliding types").
		WithSuggestion("Exclude one with //flagen::exclude")
}

// NewCapacityError reports an implementer count exceeding the backing word.
func NewCapacityError(enumName string, count, capacity int, cause error) *BaseError {
	return Wrapf(CapacityErrorCode, cause,
		"%s has %d implementers; a single enumeration holds at most %d",
		enumName, count, capacity).
		WithContext("enumeration", enumName).
		WithContext("implementers", count).
		WithSuggestion("Split the marker interface into smaller capability interfaces").
		WithSuggestion("Exclude implementers with //flagen::exclude")
}

// NewUnexportedImplementerError reports an implementer the generated artifact
// cannot reference: an unexported type declared outside the marker's package.
func NewUnexportedImplementerError(marker, implementer, markerPkg string) *BaseError {
	return Newf(GenerationErrorCode,
		"implementer %s is unexported outside the package of %s and cannot be referenced by generated code",
		implementer, marker).
		WithContext("marker", marker).
		WithContext("implementer", implementer).
		WithContext("marker_package", markerPkg).
		WithSuggestion("Export the type").
		WithSuggestion("Move the marker interface into the implementer's package").
		WithSuggestion("Exclude it with //flagen::exclude")
}

// NewArtifactConflictError reports two markers producing the same artifact
// identity in one package, e.g. through -Name overrides.
func NewArtifactConflictError(pkgPath, enumName, firstMarker, secondMarker string) *BaseError {
	return Newf(CollisionErrorCode,
		"markers %s and %s both generate %s in package %s",
		firstMarker, secondMarker, enumName, pkgPath).
		WithContext("package", pkgPath).
		WithContext("enumeration", enumName).
		WithSuggestion("Give one marker a distinct -Name override")
}

// NewTemplateError reports a failure while rendering a generated artifact.
func NewTemplateError(templateName string, cause error) *BaseError {
	return Wrapf(TemplateErrorCode, cause, "failed to render template %q", templateName).
		WithContext("template", templateName)
}

// NewFileWriteError reports a failure to persist a generated artifact.
func NewFileWriteError(path string, cause error) *BaseError {
	return Wrapf(FileSystemErrorCode, cause, "failed to write %s", path).
		WithContext("path", path)
}

// NewStaleArtifactError reports a --check mismatch between the rendered
// artifact and the file on disk.
func NewStaleArtifactError(path string) *BaseError {
	return Newf(GenerationErrorCode, "generated file %s is stale or missing", path).
		WithContext("path", path).
		WithSuggestion("Run flagen without --check to refresh generated files")
}
