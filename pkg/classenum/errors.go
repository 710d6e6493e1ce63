package classenum

import "fmt"

// DuplicateNameError reports two flags registered under the same name. A
// universe never silently overwrites an entry, because the colliding names
// would alias one bit.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate flag name %q", e.Name)
}

// CapacityError reports a universe that would exceed MaxFlags flags.
type CapacityError struct {
	Count int
}

// Error implements the error interface
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d flags exceed the %d-flag capacity of a universe", e.Count, MaxFlags)
}

// UnknownImplementerError reports an instance whose concrete type is not part
// of an enumeration's universe. It is returned instead of degrading to the
// empty set, because a silent empty result corrupts containment checks.
type UnknownImplementerError struct {
	Enumeration string
	TypeName    string
}

// NewUnknownImplementerError builds an UnknownImplementerError for the given
// enumeration and instance. A nil instance is reported as "<nil>".
func NewUnknownImplementerError(enumeration string, instance any) *UnknownImplementerError {
	typeName := "<nil>"
	if instance != nil {
		typeName = fmt.Sprintf("%T", instance)
	}
	return &UnknownImplementerError{
		Enumeration: enumeration,
		TypeName:    typeName,
	}
}

// Error implements the error interface
func (e *UnknownImplementerError) Error() string {
	return fmt.Sprintf("type %s is not a registered implementer of %s", e.TypeName, e.Enumeration)
}
